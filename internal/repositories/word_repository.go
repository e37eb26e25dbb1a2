package repositories

import "wordvault/internal/models"

// WordRepository defines the interface for word-collection data access.
// All methods address a collection by its category. Upsert and RemoveWords
// must apply their set operation atomically with respect to concurrent
// writers on the same category.
type WordRepository interface {
	// GetByCategory returns the collection for a category, or ErrNotFound.
	GetByCategory(category string) (*models.WordCollection, error)
	// Upsert merges words into the category's set, creating the collection
	// if it does not exist. Adding an already-present word is a no-op on the
	// set but still refreshes last_used and updated_at.
	Upsert(category string, words []string, createdBy string) (*models.WordCollection, error)
	// RemoveWords removes words from the category's set and refreshes
	// updated_at. Returns ErrNotFound if the category does not exist.
	RemoveWords(category string, words []string) (*models.WordCollection, error)
	// TouchLastUsed refreshes last_used and updated_at without changing the
	// word set. Returns ErrNotFound if the category does not exist.
	TouchLastUsed(category string) error
}
