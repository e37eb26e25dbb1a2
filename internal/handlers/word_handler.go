package handlers

import (
	"errors"
	"log"

	"wordvault/internal/repositories"
	"wordvault/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// DefaultCategory is used when a request does not name a category.
const DefaultCategory = "general"

// WordHandler handles HTTP requests for word collections.
type WordHandler struct {
	wordService *services.WordService
	validate    *validator.Validate
}

// NewWordHandler creates a new WordHandler.
func NewWordHandler(wordService *services.WordService) *WordHandler {
	return &WordHandler{
		wordService: wordService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the word routes with the Fiber app. The router
// must already require authentication; adminOnly additionally guards the
// mutation routes reserved for admins.
func (h *WordHandler) RegisterRoutes(router fiber.Router, adminOnly fiber.Handler) {
	router.Post("/words", h.HandleAddWords)
	router.Get("/words", h.HandleListWords)
	router.Get("/random", h.HandleRandomWords)
	router.Put("/words", adminOnly, h.HandleUpdateWords)
	router.Delete("/words", adminOnly, h.HandleDeleteWords)
}

// WordsRequest represents the request body for every word mutation route.
type WordsRequest struct {
	Words    []string `json:"words" validate:"required,min=1,dive,required"`
	Category string   `json:"category" validate:"omitempty,max=100"`
}

// HandleAddWords merges words into a category (creating it on first write).
func (h *WordHandler) HandleAddWords(c *fiber.Ctx) error {
	req, err := h.parseWordsRequest(c)
	if err != nil || req == nil {
		return err
	}

	userID, _ := c.Locals("user_id").(string)
	if _, err := h.wordService.AddWords(req.Category, req.Words, userID); err != nil {
		log.Printf("Error adding words to category %s: %v", req.Category, err)
		return internalErrorResponse(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Words added successfully",
	})
}

// HandleRandomWords returns `count` random words from a category.
func (h *WordHandler) HandleRandomWords(c *fiber.Ctx) error {
	count := c.QueryInt("count", 1)
	category := c.Query("category", DefaultCategory)

	words, err := h.wordService.RandomWords(category, count)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "No words found",
			})
		}
		log.Printf("Error sampling words from category %s: %v", category, err)
		return internalErrorResponse(c)
	}

	return c.JSON(fiber.Map{
		"words": words,
	})
}

// HandleListWords returns one page of a category's words, with optional
// case-insensitive substring search.
func (h *WordHandler) HandleListWords(c *fiber.Ctx) error {
	page := c.QueryInt("page", services.DefaultPage)
	limit := c.QueryInt("limit", services.DefaultLimit)
	category := c.Query("category", DefaultCategory)
	search := c.Query("search")

	result, err := h.wordService.Page(category, page, limit, search)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "No words found",
			})
		}
		log.Printf("Error listing words for category %s: %v", category, err)
		return internalErrorResponse(c)
	}

	return c.JSON(fiber.Map{
		"words": result.Words,
		"pagination": fiber.Map{
			"total": result.Total,
			"page":  result.Page,
			"limit": result.Limit,
			"pages": result.Pages,
		},
		"metadata": fiber.Map{
			"category":   result.Collection.Category,
			"last_used":  result.Collection.LastUsed,
			"created_at": result.Collection.CreatedAt,
			"updated_at": result.Collection.UpdatedAt,
		},
	})
}

// HandleUpdateWords merges words into a category. Same union semantics as
// HandleAddWords; kept as a separate admin route for API compatibility.
func (h *WordHandler) HandleUpdateWords(c *fiber.Ctx) error {
	req, err := h.parseWordsRequest(c)
	if err != nil || req == nil {
		return err
	}

	userID, _ := c.Locals("user_id").(string)
	if _, err := h.wordService.AddWords(req.Category, req.Words, userID); err != nil {
		log.Printf("Error updating words in category %s: %v", req.Category, err)
		return internalErrorResponse(c)
	}

	return c.JSON(fiber.Map{
		"message": "Words updated successfully",
	})
}

// HandleDeleteWords removes words from a category's set.
func (h *WordHandler) HandleDeleteWords(c *fiber.Ctx) error {
	req, err := h.parseWordsRequest(c)
	if err != nil || req == nil {
		return err
	}

	if _, err := h.wordService.RemoveWords(req.Category, req.Words); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "No words found",
			})
		}
		log.Printf("Error deleting words from category %s: %v", req.Category, err)
		return internalErrorResponse(c)
	}

	return c.JSON(fiber.Map{
		"message": "Words deleted successfully",
	})
}

// parseWordsRequest parses and validates a word mutation body, applying the
// default category. A nil request means the failure response has already
// been rendered to the client.
func (h *WordHandler) parseWordsRequest(c *fiber.Ctx) (*WordsRequest, error) {
	var req WordsRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing words request body: %v", err)
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return nil, validationErrorResponse(c, err)
	}
	if req.Category == "" {
		req.Category = DefaultCategory
	}
	return &req, nil
}
