package services_test

import (
	"sort"
	"testing"

	"wordvault/internal/repositories"
	"wordvault/internal/services"

	"github.com/stretchr/testify/assert"
)

func newWordService() (*services.WordService, *repositories.MockWordRepository) {
	repo := repositories.NewMockWordRepository()
	// nil mq client: event publication is skipped
	return services.NewWordService(repo, nil), repo
}

func TestWordService_AddWordsIdempotent(t *testing.T) {
	service, _ := newWordService()

	col, err := service.AddWords("general", []string{"cat", "dog", "bird"}, "user-1")
	assert.NoError(t, err)
	assert.Equal(t, 3, col.TotalWords)
	assert.Equal(t, "user-1", col.CreatedBy)

	// Adding the same batch twice yields the same set as adding it once
	col, err = service.AddWords("general", []string{"cat", "dog", "bird"}, "user-1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog", "bird"}, col.Words)

	// Overlapping batch only adds the new member
	col, err = service.AddWords("general", []string{"cat", "fish"}, "user-1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog", "bird", "fish"}, col.Words)
	assert.Equal(t, 4, col.TotalWords)
}

func TestWordService_AddWordsRefreshesTimestamps(t *testing.T) {
	service, repo := newWordService()

	_, err := service.AddWords("general", []string{"cat"}, "user-1")
	assert.NoError(t, err)
	before, err := repo.GetByCategory("general")
	assert.NoError(t, err)

	// A no-op on the set still refreshes last_used and updated_at
	_, err = service.AddWords("general", []string{"cat"}, "user-1")
	assert.NoError(t, err)
	after, err := repo.GetByCategory("general")
	assert.NoError(t, err)
	assert.Equal(t, before.Words, after.Words)
	assert.False(t, after.UpdatedAt.Before(before.UpdatedAt))
	assert.False(t, after.LastUsed.Before(before.LastUsed))
}

func TestWordService_RemoveWords(t *testing.T) {
	service, _ := newWordService()

	_, err := service.AddWords("general", []string{"cat", "dog", "bird"}, "user-1")
	assert.NoError(t, err)

	// Removing a non-member is a no-op for that word
	col, err := service.RemoveWords("general", []string{"dog", "fish"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"cat", "bird"}, col.Words)

	// Unknown category
	_, err = service.RemoveWords("missing", []string{"cat"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestWordService_AddThenRemoveRoundTrip(t *testing.T) {
	service, _ := newWordService()

	_, err := service.AddWords("general", []string{"cat", "dog", "bird"}, "user-1")
	assert.NoError(t, err)

	_, err = service.AddWords("general", []string{"fish", "owl"}, "user-1")
	assert.NoError(t, err)
	col, err := service.RemoveWords("general", []string{"fish", "owl"})
	assert.NoError(t, err)

	assert.Equal(t, []string{"cat", "dog", "bird"}, col.Words)
}

func TestWordService_RandomWords(t *testing.T) {
	service, repo := newWordService()

	_, err := service.AddWords("general", []string{"cat", "dog", "bird"}, "user-1")
	assert.NoError(t, err)

	// n below the set size returns n distinct members
	words, err := service.RandomWords("general", 2)
	assert.NoError(t, err)
	assert.Len(t, words, 2)
	assert.NotEqual(t, words[0], words[1])
	for _, w := range words {
		assert.Contains(t, []string{"cat", "dog", "bird"}, w)
	}

	// n at or above the set size returns a permutation of the whole set
	words, err = service.RandomWords("general", 10)
	assert.NoError(t, err)
	sort.Strings(words)
	assert.Equal(t, []string{"bird", "cat", "dog"}, words)

	// n of zero or less returns an empty slice
	words, err = service.RandomWords("general", 0)
	assert.NoError(t, err)
	assert.Empty(t, words)
	words, err = service.RandomWords("general", -3)
	assert.NoError(t, err)
	assert.Empty(t, words)

	// The stored word list is never reordered by sampling
	col, err := repo.GetByCategory("general")
	assert.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog", "bird"}, col.Words)

	// Unknown category
	_, err = service.RandomWords("missing", 1)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestWordService_RandomWordsTouchesLastUsed(t *testing.T) {
	service, repo := newWordService()

	_, err := service.AddWords("general", []string{"cat", "dog"}, "user-1")
	assert.NoError(t, err)
	before, err := repo.GetByCategory("general")
	assert.NoError(t, err)

	// Sampling is a read with a write side effect, even for count 0
	_, err = service.RandomWords("general", 0)
	assert.NoError(t, err)
	after, err := repo.GetByCategory("general")
	assert.NoError(t, err)
	assert.False(t, after.LastUsed.Before(before.LastUsed))
	assert.False(t, after.UpdatedAt.Before(before.UpdatedAt))
}

func TestWordService_Page(t *testing.T) {
	service, _ := newWordService()

	_, err := service.AddWords("general", []string{"cat", "dog", "bird"}, "user-1")
	assert.NoError(t, err)

	// First page of two
	result, err := service.Page("general", 1, 2, "")
	assert.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog"}, result.Words)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 2, result.Pages)

	// Last page holds the remainder
	result, err = service.Page("general", 2, 2, "")
	assert.NoError(t, err)
	assert.Equal(t, []string{"bird"}, result.Words)

	// A page past the end is empty, not an error
	result, err = service.Page("general", 3, 2, "")
	assert.NoError(t, err)
	assert.Empty(t, result.Words)
	assert.Equal(t, 3, result.Total)

	// Out-of-range page/limit fall back to defaults
	result, err = service.Page("general", 0, 0, "")
	assert.NoError(t, err)
	assert.Equal(t, services.DefaultPage, result.Page)
	assert.Equal(t, services.DefaultLimit, result.Limit)
	assert.Equal(t, []string{"cat", "dog", "bird"}, result.Words)

	// Unknown category
	_, err = service.Page("missing", 1, 10, "")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestWordService_PageSearch(t *testing.T) {
	service, _ := newWordService()

	_, err := service.AddWords("animals", []string{"Cat", "catfish", "dog", "bobcat", "bird"}, "user-1")
	assert.NoError(t, err)

	// Case-insensitive substring filter; total counts the filtered words
	result, err := service.Page("animals", 1, 10, "cat")
	assert.NoError(t, err)
	assert.Equal(t, []string{"Cat", "catfish", "bobcat"}, result.Words)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 1, result.Pages)

	// No matches: empty page, zero total, zero pages
	result, err = service.Page("animals", 1, 10, "zebra")
	assert.NoError(t, err)
	assert.Empty(t, result.Words)
	assert.Equal(t, 0, result.Total)
	assert.Equal(t, 0, result.Pages)
}

func TestWordService_PageReconstruction(t *testing.T) {
	service, _ := newWordService()

	all := []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf"}
	_, err := service.AddWords("nato", all, "user-1")
	assert.NoError(t, err)

	// Concatenating every page reconstructs the full set exactly once each
	limit := 3
	first, err := service.Page("nato", 1, limit, "")
	assert.NoError(t, err)
	assert.Equal(t, 3, first.Pages)

	var collected []string
	for p := 1; p <= first.Pages; p++ {
		result, err := service.Page("nato", p, limit, "")
		assert.NoError(t, err)
		assert.LessOrEqual(t, len(result.Words), limit)
		collected = append(collected, result.Words...)
	}
	assert.Equal(t, all, collected)
}
