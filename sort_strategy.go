package main

import (
	"sort"

	"github.com/maruel/natural"
)

// SortStrategy orders an image list by one of the configured sort keys.
type SortStrategy interface {
	// Sort returns a new sorted slice without modifying the original.
	Sort(entries []ImageEntry) []ImageEntry
	// Key returns the configuration name of the strategy.
	Key() SortAlgorithm
}

func copyEntries(entries []ImageEntry) []ImageEntry {
	result := make([]ImageEntry, len(entries))
	copy(result, entries)
	return result
}

// FileNameSortStrategy sorts by file name in natural order (file2 before
// file10), with the full path as tiebreak.
type FileNameSortStrategy struct{}

func (s *FileNameSortStrategy) Sort(entries []ImageEntry) []ImageEntry {
	result := copyEntries(entries)
	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i].Name(), result[j].Name()
		if a == b {
			return result[i].Path < result[j].Path
		}
		return natural.Less(a, b)
	})
	return result
}

func (s *FileNameSortStrategy) Key() SortAlgorithm { return SortFileName }

// CreatedTimeSortStrategy sorts ascending by creation time, path tiebreak.
type CreatedTimeSortStrategy struct{}

func (s *CreatedTimeSortStrategy) Sort(entries []ImageEntry) []ImageEntry {
	result := copyEntries(entries)
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Created.Equal(result[j].Created) {
			return result[i].Path < result[j].Path
		}
		return result[i].Created.Before(result[j].Created)
	})
	return result
}

func (s *CreatedTimeSortStrategy) Key() SortAlgorithm { return SortCreatedTime }

// ModifiedTimeSortStrategy sorts ascending by modification time, path tiebreak.
type ModifiedTimeSortStrategy struct{}

func (s *ModifiedTimeSortStrategy) Sort(entries []ImageEntry) []ImageEntry {
	result := copyEntries(entries)
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Modified.Equal(result[j].Modified) {
			return result[i].Path < result[j].Path
		}
		return result[i].Modified.Before(result[j].Modified)
	})
	return result
}

func (s *ModifiedTimeSortStrategy) Key() SortAlgorithm { return SortModifiedTime }

// GetSortStrategy returns the strategy for the given sort key.
func GetSortStrategy(key SortAlgorithm) SortStrategy {
	switch key {
	case SortCreatedTime:
		return &CreatedTimeSortStrategy{}
	case SortModifiedTime:
		return &ModifiedTimeSortStrategy{}
	default:
		return &FileNameSortStrategy{}
	}
}

// GetAllSortStrategies returns all available sort strategies.
func GetAllSortStrategies() []SortStrategy {
	return []SortStrategy{
		&FileNameSortStrategy{},
		&CreatedTimeSortStrategy{},
		&ModifiedTimeSortStrategy{},
	}
}
