package main

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bodgit/sevenzip"
	"github.com/nwaples/rardecode"
	log "github.com/sirupsen/logrus"
)

// ErrNoImages is returned when a scan finds no supported image files.
var ErrNoImages = errors.New("no supported image files found")

// ImageEntry is one displayable image discovered by a scan. Archive members
// carry the archive path and their path within it; both fields are empty for
// regular files. Immutable once produced.
type ImageEntry struct {
	Path        string // local file path, or archive:entry for archive members
	ArchivePath string // empty for regular files
	EntryPath   string // empty for regular files
	Created     time.Time
	Modified    time.Time
}

// Name returns the file name used by the FileName sort key and the window
// title.
func (e ImageEntry) Name() string {
	if e.EntryPath != "" {
		return filepath.Base(e.EntryPath)
	}
	return filepath.Base(e.Path)
}

func isSupportedExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".webp":
		return true
	default:
		return false
	}
}

func isArchiveExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip", ".rar", ".7z":
		return true
	default:
		return false
	}
}

// ImageList is an ordered sequence of entries with a cursor. The sequence is
// immutable after build; only the cursor moves.
type ImageList struct {
	entries []ImageEntry
	index   int
}

func (l *ImageList) Len() int   { return len(l.entries) }
func (l *ImageList) Index() int { return l.index }

func (l *ImageList) Current() ImageEntry { return l.entries[l.index] }

// Next advances the cursor. At the last entry it is a no-op and reports
// false; the list never wraps.
func (l *ImageList) Next() (ImageEntry, bool) {
	if l.index+1 >= len(l.entries) {
		return ImageEntry{}, false
	}
	l.index++
	return l.entries[l.index], true
}

// Previous moves the cursor back. At the first entry it is a no-op and
// reports false.
func (l *ImageList) Previous() (ImageEntry, bool) {
	if l.index == 0 {
		return ImageEntry{}, false
	}
	l.index--
	return l.entries[l.index], true
}

// fileTimes extracts the timestamps used by the time-based sort keys.
// os.FileInfo exposes no portable creation time, so the modification time
// stands in for it.
func fileTimes(info os.FileInfo) (created, modified time.Time) {
	return info.ModTime(), info.ModTime()
}

// buildImageList builds the list for the entry-point path: a directory is
// scanned, an archive is listed, and a plain file selects itself within its
// parent directory's list.
func buildImageList(path string, key SortAlgorithm) (*ImageList, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	switch {
	case info.IsDir():
		return buildFromDirectory(path, key)
	case isArchiveExt(path):
		return buildFromArchive(path, key)
	default:
		return buildFromFile(path, key)
	}
}

// buildFromDirectory scans dir non-recursively, keeps supported image files
// and sorts them by the given key.
func buildFromDirectory(dir string, key SortAlgorithm) (*ImageList, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var entries []ImageEntry
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		fullPath := filepath.Join(dir, de.Name())
		if !isSupportedExt(fullPath) {
			continue
		}
		info, err := de.Info()
		if err != nil {
			log.Warnf("skipping %s: %v", fullPath, err)
			continue
		}
		created, modified := fileTimes(info)
		entries = append(entries, ImageEntry{
			Path:     fullPath,
			Created:  created,
			Modified: modified,
		})
	}
	if len(entries) == 0 {
		return nil, ErrNoImages
	}

	return &ImageList{entries: GetSortStrategy(key).Sort(entries)}, nil
}

// buildFromFile builds the list from the file's directory and positions the
// cursor on that file. The cursor stays at the first entry when the file
// itself is not in the list (unsupported extension).
func buildFromFile(path string, key SortAlgorithm) (*ImageList, error) {
	list, err := buildFromDirectory(filepath.Dir(path), key)
	if err != nil {
		return nil, err
	}

	target := filepath.Clean(path)
	for i, e := range list.entries {
		if e.Path == target {
			list.index = i
			break
		}
	}
	return list, nil
}

// buildFromArchive lists the image members of a zip/rar/7z archive given as
// the entry point. Timestamps come from the archive headers.
func buildFromArchive(path string, key SortAlgorithm) (*ImageList, error) {
	var entries []ImageEntry
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip":
		entries, err = listZipImages(path)
	case ".rar":
		entries, err = listRarImages(path)
	case ".7z":
		entries, err = list7zImages(path)
	default:
		err = fmt.Errorf("unsupported archive format: %s", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("reading archive %s: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, ErrNoImages
	}
	return &ImageList{entries: GetSortStrategy(key).Sort(entries)}, nil
}

func listZipImages(archivePath string) ([]ImageEntry, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var entries []ImageEntry
	for _, f := range r.File {
		if f.FileInfo().IsDir() || !isSupportedExt(f.Name) {
			continue
		}
		entries = append(entries, ImageEntry{
			Path:        archivePath + ":" + f.Name,
			ArchivePath: archivePath,
			EntryPath:   f.Name,
			Created:     f.Modified,
			Modified:    f.Modified,
		})
	}
	return entries, nil
}

func listRarImages(archivePath string) ([]ImageEntry, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := rardecode.NewReader(f, "")
	if err != nil {
		return nil, err
	}

	var entries []ImageEntry
	for {
		header, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if header.IsDir || !isSupportedExt(header.Name) {
			continue
		}
		created := header.CreationTime
		if created.IsZero() {
			created = header.ModificationTime
		}
		entries = append(entries, ImageEntry{
			Path:        archivePath + ":" + header.Name,
			ArchivePath: archivePath,
			EntryPath:   header.Name,
			Created:     created,
			Modified:    header.ModificationTime,
		})
	}
	return entries, nil
}

func list7zImages(archivePath string) ([]ImageEntry, error) {
	r, err := sevenzip.OpenReader(archivePath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var entries []ImageEntry
	for _, f := range r.File {
		if f.FileInfo().IsDir() || !isSupportedExt(f.Name) {
			continue
		}
		created := f.Created
		if created.IsZero() {
			created = f.Modified
		}
		entries = append(entries, ImageEntry{
			Path:        archivePath + ":" + f.Name,
			ArchivePath: archivePath,
			EntryPath:   f.Name,
			Created:     created,
			Modified:    f.Modified,
		})
	}
	return entries, nil
}
