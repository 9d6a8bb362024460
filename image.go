package main

import (
	"archive/zip"
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/nwaples/rardecode"
	_ "golang.org/x/image/webp"
)

// DecodedImage is a tightly packed RGBA8 pixel buffer. At most one is live
// at a time; the renderer owns it until the next navigation step replaces it.
type DecodedImage struct {
	Width  int
	Height int
	Pix    []byte // len == Width*Height*4
}

// DecodeError reports an unreadable or corrupt image file.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// decodeImage reads the entry's bytes and decodes them into an RGBA8 buffer.
// The format is inferred from the content, not the extension.
func decodeImage(entry ImageEntry) (*DecodedImage, error) {
	data, err := readEntryBytes(entry)
	if err != nil {
		return nil, &DecodeError{Path: entry.Path, Err: err}
	}
	return decodeBytes(data, entry.Path)
}

func decodeBytes(data []byte, path string) (*DecodedImage, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return rgbaBuffer(img), nil
}

// rgbaBuffer repacks a decoded image into a tight RGBA8 buffer. This is the
// only color conversion performed.
func rgbaBuffer(img image.Image) *DecodedImage {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return &DecodedImage{Width: w, Height: h, Pix: rgba.Pix}
}

func readEntryBytes(entry ImageEntry) ([]byte, error) {
	if entry.ArchivePath == "" {
		return os.ReadFile(entry.Path)
	}
	switch strings.ToLower(filepath.Ext(entry.ArchivePath)) {
	case ".zip":
		return readZipEntry(entry.ArchivePath, entry.EntryPath)
	case ".rar":
		return readRarEntry(entry.ArchivePath, entry.EntryPath)
	case ".7z":
		return read7zEntry(entry.ArchivePath, entry.EntryPath)
	default:
		return nil, fmt.Errorf("unsupported archive format: %s", filepath.Ext(entry.ArchivePath))
	}
}

func readZipEntry(archivePath, entryPath string) ([]byte, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name == entryPath {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("entry %s not found in %s", entryPath, archivePath)
}

func readRarEntry(archivePath, entryPath string) ([]byte, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := rardecode.NewReader(f, "")
	if err != nil {
		return nil, err
	}

	for {
		header, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if header.Name == entryPath {
			return io.ReadAll(r)
		}
	}
	return nil, fmt.Errorf("entry %s not found in %s", entryPath, archivePath)
}

func read7zEntry(archivePath, entryPath string) ([]byte, error) {
	r, err := sevenzip.OpenReader(archivePath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name == entryPath {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("entry %s not found in %s", entryPath, archivePath)
}
