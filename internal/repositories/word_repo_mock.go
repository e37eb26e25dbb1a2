package repositories

import (
	"fmt"
	"sync"
	"time"

	"wordvault/internal/models"

	"github.com/google/uuid"
)

// MockWordRepository is an in-memory implementation of WordRepository.
type MockWordRepository struct {
	collections map[string]models.WordCollection
	mu          sync.RWMutex
}

// NewMockWordRepository creates a new instance of MockWordRepository.
func NewMockWordRepository() *MockWordRepository {
	return &MockWordRepository{
		collections: make(map[string]models.WordCollection),
	}
}

// GetByCategory returns the collection for a category.
func (r *MockWordRepository) GetByCategory(category string) (*models.WordCollection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	col, ok := r.collections[category]
	if !ok {
		return nil, fmt.Errorf("word collection for category %s: %w", category, ErrNotFound)
	}
	// Copy the word slice so callers cannot mutate the stored set.
	col.Words = append([]string(nil), col.Words...)
	return &col, nil
}

// Upsert merges words into the category's collection, creating it if absent.
func (r *MockWordRepository) Upsert(category string, words []string, createdBy string) (*models.WordCollection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	col, ok := r.collections[category]
	if !ok {
		col = models.WordCollection{
			ID:        uuid.New().String(),
			Category:  category,
			CreatedBy: createdBy,
			CreatedAt: now,
		}
	}
	col.Words = append([]string(nil), col.Words...)
	col.MergeWords(words)
	col.LastUsed = now
	col.UpdatedAt = now
	r.collections[category] = col
	return &col, nil
}

// RemoveWords removes words from the category's collection.
func (r *MockWordRepository) RemoveWords(category string, words []string) (*models.WordCollection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	col, ok := r.collections[category]
	if !ok {
		return nil, fmt.Errorf("word collection for category %s: %w", category, ErrNotFound)
	}
	col.Words = append([]string(nil), col.Words...)
	col.DropWords(words)
	col.UpdatedAt = time.Now()
	r.collections[category] = col
	return &col, nil
}

// TouchLastUsed refreshes the usage timestamps for a category.
func (r *MockWordRepository) TouchLastUsed(category string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	col, ok := r.collections[category]
	if !ok {
		return fmt.Errorf("word collection for category %s: %w", category, ErrNotFound)
	}
	now := time.Now()
	col.LastUsed = now
	col.UpdatedAt = now
	r.collections[category] = col
	return nil
}
