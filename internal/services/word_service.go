package services

import (
	"fmt"
	"log"
	"math/rand"
	"strings"

	"wordvault/internal/models"
	"wordvault/internal/repositories"
	"wordvault/pkg/rabbitmq"
)

// Default query parameters, applied when the caller omits or sends
// out-of-range values.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// PageResult is one window of a category's word set.
type PageResult struct {
	Words      []string
	Total      int // words matching the search filter
	Page       int
	Limit      int
	Pages      int
	Collection *models.WordCollection
}

// WordService handles business logic for word collections.
type WordService struct {
	wordRepo repositories.WordRepository
	mqClient *rabbitmq.Client // optional, nil skips event publication
}

// NewWordService creates a new WordService.
func NewWordService(wordRepo repositories.WordRepository, mqClient *rabbitmq.Client) *WordService {
	return &WordService{
		wordRepo: wordRepo,
		mqClient: mqClient,
	}
}

// AddWords merges words into a category, creating the collection on first
// write. The merge is a set union: adding an already-present word does not
// duplicate it but still refreshes last_used and updated_at.
func (s *WordService) AddWords(category string, words []string, userID string) (*models.WordCollection, error) {
	col, err := s.wordRepo.Upsert(category, words, userID)
	if err != nil {
		return nil, err
	}

	s.publishEvent("words.added", map[string]interface{}{
		"category":    col.Category,
		"words":       words,
		"total_words": col.TotalWords,
		"user_id":     userID,
	})

	return col, nil
}

// RandomWords draws up to count distinct words uniformly at random from a
// category, without replacement. A count at or above the set size returns
// every word in a uniformly random order; a count of zero or less returns
// an empty slice.
//
// Not idempotent: every call, whatever the count, refreshes the category's
// last_used and updated_at timestamps for usage tracking.
func (s *WordService) RandomWords(category string, count int) ([]string, error) {
	col, err := s.wordRepo.GetByCategory(category)
	if err != nil {
		return nil, err
	}
	if len(col.Words) == 0 {
		return nil, fmt.Errorf("word collection for category %s is empty: %w", category, repositories.ErrNotFound)
	}

	// Fisher-Yates over a copy; the stored word list is never reordered.
	shuffled := append([]string(nil), col.Words...)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if count < 0 {
		count = 0
	}
	if count > len(shuffled) {
		count = len(shuffled)
	}

	if err := s.wordRepo.TouchLastUsed(category); err != nil {
		return nil, err
	}

	return shuffled[:count], nil
}

// Page returns one page of a category's words. A non-empty search applies a
// case-insensitive substring filter first; Total counts the filtered words
// and Pages is computed over that filtered count. Page and limit values
// below 1 fall back to the defaults.
func (s *WordService) Page(category string, page, limit int, search string) (*PageResult, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	col, err := s.wordRepo.GetByCategory(category)
	if err != nil {
		return nil, err
	}

	filtered := col.Words
	if search != "" {
		needle := strings.ToLower(search)
		filtered = make([]string, 0, len(col.Words))
		for _, w := range col.Words {
			if strings.Contains(strings.ToLower(w), needle) {
				filtered = append(filtered, w)
			}
		}
	}

	total := len(filtered)
	pages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &PageResult{
		Words:      filtered[start:end],
		Total:      total,
		Page:       page,
		Limit:      limit,
		Pages:      pages,
		Collection: col,
	}, nil
}

// RemoveWords removes words from a category's set. Removing a word that is
// not a member is a no-op for that word; updated_at is always refreshed.
func (s *WordService) RemoveWords(category string, words []string) (*models.WordCollection, error) {
	col, err := s.wordRepo.RemoveWords(category, words)
	if err != nil {
		return nil, err
	}

	s.publishEvent("words.removed", map[string]interface{}{
		"category":    col.Category,
		"words":       words,
		"total_words": col.TotalWords,
	})

	return col, nil
}

// publishEvent publishes a word mutation event if a broker is configured.
// Publication failures are logged, never surfaced: the write already
// committed and the API response should not depend on the broker.
func (s *WordService) publishEvent(event string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishWordEvent(event, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", event, err)
	}
}
