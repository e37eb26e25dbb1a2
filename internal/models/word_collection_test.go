package models_test

import (
	"testing"

	"wordvault/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestWordCollection_MergeWords(t *testing.T) {
	col := &models.WordCollection{Words: []string{"cat", "dog", "bird"}}

	// Merging an overlapping batch only adds the new members.
	added := col.MergeWords([]string{"cat", "fish"})
	assert.Equal(t, 1, added)
	assert.Equal(t, []string{"cat", "dog", "bird", "fish"}, col.Words)
	assert.Equal(t, 4, col.TotalWords)

	// Merging the same batch again is a no-op on the set.
	added = col.MergeWords([]string{"cat", "fish"})
	assert.Equal(t, 0, added)
	assert.Equal(t, []string{"cat", "dog", "bird", "fish"}, col.Words)

	// Duplicate inputs collapse to a single entry.
	col = &models.WordCollection{}
	added = col.MergeWords([]string{"a", "a", "b"})
	assert.Equal(t, 2, added)
	assert.Equal(t, []string{"a", "b"}, col.Words)
}

func TestWordCollection_DropWords(t *testing.T) {
	col := &models.WordCollection{Words: []string{"cat", "dog", "bird"}}

	// Removing a non-member is a no-op for that word.
	removed := col.DropWords([]string{"dog", "fish"})
	assert.Equal(t, 1, removed)
	assert.Equal(t, []string{"cat", "bird"}, col.Words)
	assert.Equal(t, 2, col.TotalWords)

	removed = col.DropWords([]string{"cat", "bird"})
	assert.Equal(t, 2, removed)
	assert.Empty(t, col.Words)
	assert.Equal(t, 0, col.TotalWords)
}

func TestWordCollection_MergeThenDropRoundTrip(t *testing.T) {
	col := &models.WordCollection{Words: []string{"cat", "dog", "bird"}}

	col.MergeWords([]string{"fish", "owl"})
	col.DropWords([]string{"fish", "owl"})

	assert.Equal(t, []string{"cat", "dog", "bird"}, col.Words)
	assert.Equal(t, 3, col.TotalWords)
}
