// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package upload checks avatar and logo files before they leave the client.
// Rejected files never reach the network.
package upload

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/canonical/tenant-console/internal/types"
)

// MaxSize is the largest accepted image, 5 MiB
const MaxSize int64 = 5 << 20

type Gate struct {
	maxSize int64
}

// Validate rejects anything that is not an image or is larger than the
// configured limit. The declared content type, when present, must agree with
// the sniffed one.
func (g *Gate) Validate(f types.File) error {
	if f.Size() == 0 {
		return ErrEmptyFile
	}

	if f.ContentType != "" && !isImage(f.ContentType) {
		return fmt.Errorf("%w: declared %s", ErrNotImage, f.ContentType)
	}

	if detected := mimetype.Detect(f.Data); !isImage(detected.String()) {
		return fmt.Errorf("%w: detected %s", ErrNotImage, detected.String())
	}

	if f.Size() > g.maxSize {
		return fmt.Errorf("%w: %d bytes", ErrTooLarge, f.Size())
	}

	return nil
}

// Message turns a gate error into the text shown to the user, empty for
// errors the gate did not produce.
func (g *Gate) Message(err error) string {
	switch {
	case errors.Is(err, ErrNotImage), errors.Is(err, ErrEmptyFile):
		return "Please select an image file"
	case errors.Is(err, ErrTooLarge):
		return fmt.Sprintf("Image must be smaller than %dMB", g.maxSize>>20)
	case errors.Is(err, ErrEmptyCrop):
		return "Please select an area of the image"
	}
	return ""
}

func (g *Gate) MaxSize() int64 {
	return g.maxSize
}

// Load reads a file from disk. The size is checked from the file metadata
// first so oversized files are never read into memory.
func (g *Gate) Load(path string) (types.File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return types.File{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer fh.Close()

	info, err := fh.Stat()
	if err != nil {
		return types.File{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	// the type check wins over the size check, sniff the header before
	// looking at the size
	header := make([]byte, 3072)
	n, err := io.ReadFull(fh, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return types.File{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if n == 0 {
		return types.File{}, ErrEmptyFile
	}

	detected := mimetype.Detect(header[:n])
	if !isImage(detected.String()) {
		return types.File{}, fmt.Errorf("%w: detected %s", ErrNotImage, detected.String())
	}

	if info.Size() > g.maxSize {
		return types.File{}, fmt.Errorf("%w: %d bytes", ErrTooLarge, info.Size())
	}

	rest, err := io.ReadAll(fh)
	if err != nil {
		return types.File{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	f := types.File{
		Name:        filepath.Base(path),
		ContentType: declaredType(path, detected),
		Data:        append(header[:n], rest...),
	}

	return f, g.Validate(f)
}

func declaredType(path string, detected *mimetype.MIME) string {
	if t := mime.TypeByExtension(filepath.Ext(path)); isImage(t) {
		mediaType, _, err := mime.ParseMediaType(t)
		if err == nil {
			return mediaType
		}
	}
	return detected.String()
}

func isImage(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "image/")
}

// NewGate returns a gate with the given limit, MaxSize when maxSize is not
// positive.
func NewGate(maxSize int64) *Gate {
	if maxSize <= 0 {
		maxSize = MaxSize
	}

	g := new(Gate)
	g.maxSize = maxSize

	return g
}
