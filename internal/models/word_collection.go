package models

import "time"

// WordCollection holds the word set for a single category.
// Category is unique: every write to a category lands on the same row,
// so a category's words can never fragment across documents.
type WordCollection struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Category   string    `json:"category" gorm:"uniqueIndex;type:varchar(100)"`
	Words      []string  `json:"words" gorm:"serializer:json;type:text"`
	TotalWords int       `json:"total_words"`
	LastUsed   time.Time `json:"last_used"`
	CreatedBy  string    `json:"created_by" gorm:"type:varchar(36)"` // User ID, lookup only
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// MergeWords adds every word not already present, keeping existing order
// and appending new words in input order. Duplicate inputs collapse to one
// entry. Returns the number of words actually added.
func (c *WordCollection) MergeWords(words []string) int {
	seen := make(map[string]struct{}, len(c.Words))
	for _, w := range c.Words {
		seen[w] = struct{}{}
	}

	added := 0
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		c.Words = append(c.Words, w)
		added++
	}
	c.TotalWords = len(c.Words)
	return added
}

// DropWords removes every listed word from the set. Words not present are
// ignored. Returns the number of words actually removed.
func (c *WordCollection) DropWords(words []string) int {
	drop := make(map[string]struct{}, len(words))
	for _, w := range words {
		drop[w] = struct{}{}
	}

	kept := c.Words[:0]
	removed := 0
	for _, w := range c.Words {
		if _, ok := drop[w]; ok {
			removed++
			continue
		}
		kept = append(kept, w)
	}
	c.Words = kept
	c.TotalWords = len(c.Words)
	return removed
}
