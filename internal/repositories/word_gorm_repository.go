package repositories

import (
	"errors"
	"fmt"
	"time"

	"wordvault/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// maxWriteAttempts bounds the optimistic retry loop on concurrent writes
// to the same category.
const maxWriteAttempts = 5

// GORMWordRepository is a GORM implementation of WordRepository.
//
// Set mutations use optimistic concurrency: the row is re-read and the
// UPDATE is guarded on the previously observed updated_at, so a concurrent
// writer to the same category forces a retry instead of a lost update.
// This works on every dialect, unlike SELECT ... FOR UPDATE which SQLite
// (used by the test harness) does not support.
type GORMWordRepository struct {
	db *gorm.DB
}

// NewGORMWordRepository creates a new instance of GORMWordRepository.
func NewGORMWordRepository(db *gorm.DB) *GORMWordRepository {
	return &GORMWordRepository{
		db: db,
	}
}

// GetByCategory retrieves the word collection for a category.
func (r *GORMWordRepository) GetByCategory(category string) (*models.WordCollection, error) {
	var col models.WordCollection
	if err := r.db.First(&col, "category = ?", category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("word collection for category %s: %w", category, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get word collection for category %s: %w", category, err)
	}
	return &col, nil
}

// Upsert merges words into the category's collection, creating it if absent.
func (r *GORMWordRepository) Upsert(category string, words []string, createdBy string) (*models.WordCollection, error) {
	for attempt := 0; attempt < maxWriteAttempts; attempt++ {
		var col models.WordCollection
		err := r.db.First(&col, "category = ?", category).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			col = models.WordCollection{
				ID:        uuid.New().String(),
				Category:  category,
				CreatedBy: createdBy,
				LastUsed:  time.Now(),
			}
			col.MergeWords(words)
			createErr := r.db.Create(&col).Error
			if errors.Is(createErr, gorm.ErrDuplicatedKey) {
				// Lost the race to create the category; merge into the
				// existing row instead.
				continue
			}
			if createErr != nil {
				return nil, fmt.Errorf("failed to create word collection for category %s: %w", category, createErr)
			}
			return &col, nil
		case err != nil:
			return nil, fmt.Errorf("failed to get word collection for category %s: %w", category, err)
		}

		prev := col.UpdatedAt
		col.MergeWords(words)
		col.LastUsed = time.Now()
		res := r.db.Model(&col).
			Where("updated_at = ?", prev).
			Select("words", "total_words", "last_used", "updated_at").
			Updates(&col)
		if res.Error != nil {
			return nil, fmt.Errorf("failed to update word collection for category %s: %w", category, res.Error)
		}
		if res.RowsAffected == 0 {
			// Concurrent writer got there first; re-read and retry.
			continue
		}
		return &col, nil
	}
	return nil, fmt.Errorf("upsert for category %s: too many concurrent writes", category)
}

// RemoveWords removes words from the category's collection.
func (r *GORMWordRepository) RemoveWords(category string, words []string) (*models.WordCollection, error) {
	for attempt := 0; attempt < maxWriteAttempts; attempt++ {
		col, err := r.GetByCategory(category)
		if err != nil {
			return nil, err
		}

		prev := col.UpdatedAt
		col.DropWords(words)
		res := r.db.Model(col).
			Where("updated_at = ?", prev).
			Select("words", "total_words", "updated_at").
			Updates(col)
		if res.Error != nil {
			return nil, fmt.Errorf("failed to update word collection for category %s: %w", category, res.Error)
		}
		if res.RowsAffected == 0 {
			continue
		}
		return col, nil
	}
	return nil, fmt.Errorf("remove words for category %s: too many concurrent writes", category)
}

// TouchLastUsed refreshes the usage timestamps for a category.
func (r *GORMWordRepository) TouchLastUsed(category string) error {
	now := time.Now()
	res := r.db.Model(&models.WordCollection{}).
		Where("category = ?", category).
		Updates(map[string]interface{}{"last_used": now, "updated_at": now})
	if res.Error != nil {
		return fmt.Errorf("failed to touch word collection for category %s: %w", category, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("word collection for category %s: %w", category, ErrNotFound)
	}
	return nil
}
