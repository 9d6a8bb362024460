package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestImageEntries() []ImageEntry {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return []ImageEntry{
		{Path: "test/b.png", Created: base.Add(1 * time.Hour), Modified: base.Add(3 * time.Hour)},
		{Path: "test/file10.png", Created: base.Add(2 * time.Hour), Modified: base.Add(2 * time.Hour)},
		{Path: "test/a.jpg", Created: base.Add(3 * time.Hour), Modified: base.Add(1 * time.Hour)},
		{Path: "test/file2.png", Created: base, Modified: base},
	}
}

func entryPaths(entries []ImageEntry) []string {
	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.Path
	}
	return paths
}

func TestFileNameSortStrategy(t *testing.T) {
	strategy := &FileNameSortStrategy{}

	t.Run("Key", func(t *testing.T) {
		assert.Equal(t, SortFileName, strategy.Key())
	})

	t.Run("Sort", func(t *testing.T) {
		result := strategy.Sort(getTestImageEntries())
		assert.Equal(t, []string{
			"test/a.jpg",
			"test/b.png",
			"test/file2.png",
			"test/file10.png",
		}, entryPaths(result))
	})

	t.Run("MixedExtensions", func(t *testing.T) {
		// Ordering is by name, regardless of extension
		input := []ImageEntry{
			{Path: "dir/b.png"},
			{Path: "dir/a.jpg"},
		}
		result := strategy.Sort(input)
		assert.Equal(t, []string{"dir/a.jpg", "dir/b.png"}, entryPaths(result))
	})

	t.Run("NaturalNumbers", func(t *testing.T) {
		input := []ImageEntry{
			{Path: "dir/img10.png"},
			{Path: "dir/img2.png"},
			{Path: "dir/img1.png"},
		}
		result := strategy.Sort(input)
		assert.Equal(t, []string{"dir/img1.png", "dir/img2.png", "dir/img10.png"}, entryPaths(result))
	})

	t.Run("PathTiebreak", func(t *testing.T) {
		input := []ImageEntry{
			{Path: "zzz/same.png"},
			{Path: "aaa/same.png"},
		}
		result := strategy.Sort(input)
		assert.Equal(t, []string{"aaa/same.png", "zzz/same.png"}, entryPaths(result))
	})
}

func TestCreatedTimeSortStrategy(t *testing.T) {
	strategy := &CreatedTimeSortStrategy{}

	t.Run("Key", func(t *testing.T) {
		assert.Equal(t, SortCreatedTime, strategy.Key())
	})

	t.Run("Sort", func(t *testing.T) {
		result := strategy.Sort(getTestImageEntries())
		assert.Equal(t, []string{
			"test/file2.png",
			"test/b.png",
			"test/file10.png",
			"test/a.jpg",
		}, entryPaths(result))
	})

	t.Run("PathTiebreak", func(t *testing.T) {
		same := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		input := []ImageEntry{
			{Path: "dir/b.png", Created: same},
			{Path: "dir/a.png", Created: same},
		}
		result := strategy.Sort(input)
		assert.Equal(t, []string{"dir/a.png", "dir/b.png"}, entryPaths(result))
	})
}

func TestModifiedTimeSortStrategy(t *testing.T) {
	strategy := &ModifiedTimeSortStrategy{}

	t.Run("Key", func(t *testing.T) {
		assert.Equal(t, SortModifiedTime, strategy.Key())
	})

	t.Run("Sort", func(t *testing.T) {
		result := strategy.Sort(getTestImageEntries())
		assert.Equal(t, []string{
			"test/file2.png",
			"test/a.jpg",
			"test/file10.png",
			"test/b.png",
		}, entryPaths(result))
	})
}

func TestSortStrategiesImmutableInput(t *testing.T) {
	for _, strategy := range GetAllSortStrategies() {
		t.Run(string(strategy.Key()), func(t *testing.T) {
			input := getTestImageEntries()
			original := make([]ImageEntry, len(input))
			copy(original, input)

			_ = strategy.Sort(input)

			assert.Equal(t, original, input, "input slice must not be modified")
		})
	}
}

func TestSortStrategiesEdgeCases(t *testing.T) {
	for _, strategy := range GetAllSortStrategies() {
		t.Run(string(strategy.Key())+"/Empty", func(t *testing.T) {
			assert.Empty(t, strategy.Sort(nil))
		})

		t.Run(string(strategy.Key())+"/SingleElement", func(t *testing.T) {
			result := strategy.Sort([]ImageEntry{{Path: "test/single.png"}})
			require.Len(t, result, 1)
			assert.Equal(t, "test/single.png", result[0].Path)
		})
	}
}

func TestGetSortStrategy(t *testing.T) {
	tests := []struct {
		name     string
		key      SortAlgorithm
		expected SortAlgorithm
	}{
		{"FileName", SortFileName, SortFileName},
		{"CreatedTime", SortCreatedTime, SortCreatedTime},
		{"ModifiedTime", SortModifiedTime, SortModifiedTime},
		{"UnknownFallsBack", SortAlgorithm("Bogus"), SortFileName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetSortStrategy(tt.key).Key())
		})
	}
}

func TestGetAllSortStrategies(t *testing.T) {
	strategies := GetAllSortStrategies()
	require.Len(t, strategies, 3)

	keys := make(map[SortAlgorithm]bool)
	for _, s := range strategies {
		keys[s.Key()] = true
	}
	assert.True(t, keys[SortFileName])
	assert.True(t, keys[SortCreatedTime])
	assert.True(t, keys[SortModifiedTime])
}
