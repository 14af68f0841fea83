// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package upload

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/tenant-console/internal/types"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 0x80, A: 0xff})
		}
	}

	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))

	return buf.Bytes()
}

// oversized keeps the PNG signature so sniffing still sees an image
func oversized(t *testing.T, size int) []byte {
	t.Helper()

	data := make([]byte, size)
	copy(data, pngBytes(t, 2, 2))

	return data
}

func TestValidate(t *testing.T) {
	gate := NewGate(0)

	tests := []struct {
		name     string
		file     types.File
		expected error
		message  string
	}{
		{
			name: "png accepted",
			file: types.File{Name: "a.png", ContentType: "image/png", Data: pngBytes(t, 4, 4)},
		},
		{
			name: "no declared type",
			file: types.File{Name: "a", Data: pngBytes(t, 4, 4)},
		},
		{
			name: "exactly the limit",
			file: types.File{Name: "a.png", ContentType: "image/png", Data: oversized(t, int(MaxSize))},
		},
		{
			name:     "one byte over the limit",
			file:     types.File{Name: "a.png", ContentType: "image/png", Data: oversized(t, int(MaxSize)+1)},
			expected: ErrTooLarge,
			message:  "Image must be smaller than 5MB",
		},
		{
			name:     "declared as pdf",
			file:     types.File{Name: "a.pdf", ContentType: "application/pdf", Data: pngBytes(t, 4, 4)},
			expected: ErrNotImage,
			message:  "Please select an image file",
		},
		{
			name:     "text content declared as image",
			file:     types.File{Name: "a.png", ContentType: "image/png", Data: []byte("hello world")},
			expected: ErrNotImage,
			message:  "Please select an image file",
		},
		{
			name:     "oversized text is reported as not an image",
			file:     types.File{Name: "a.txt", ContentType: "text/plain", Data: bytes.Repeat([]byte("a"), int(MaxSize)+1)},
			expected: ErrNotImage,
			message:  "Please select an image file",
		},
		{
			name:     "empty",
			file:     types.File{Name: "a.png", ContentType: "image/png"},
			expected: ErrEmptyFile,
			message:  "Please select an image file",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := gate.Validate(test.file)

			if test.expected == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, test.expected)
			assert.Equal(t, test.message, gate.Message(err))
		})
	}
}

func TestMessageUnknownError(t *testing.T) {
	assert.Empty(t, NewGate(0).Message(os.ErrNotExist))
}

func TestCustomLimitMessage(t *testing.T) {
	gate := NewGate(1 << 20)

	err := gate.Validate(types.File{Name: "a.png", Data: oversized(t, 2<<20)})

	assert.ErrorIs(t, err, ErrTooLarge)
	assert.Equal(t, "Image must be smaller than 1MB", gate.Message(err))
	assert.Equal(t, int64(1<<20), gate.MaxSize())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	gate := NewGate(0)

	good := filepath.Join(dir, "me.png")
	require.NoError(t, os.WriteFile(good, pngBytes(t, 8, 8), 0o600))

	f, err := gate.Load(good)
	require.NoError(t, err)
	assert.Equal(t, "me.png", f.Name)
	assert.Equal(t, "image/png", f.ContentType)
	assert.Equal(t, pngBytes(t, 8, 8), f.Data)

	big := filepath.Join(dir, "big.png")
	require.NoError(t, os.WriteFile(big, oversized(t, int(MaxSize)+10), 0o600))

	_, err = gate.Load(big)
	assert.ErrorIs(t, err, ErrTooLarge)

	text := filepath.Join(dir, "notes.png")
	require.NoError(t, os.WriteFile(text, []byte("just some notes"), 0o600))

	_, err = gate.Load(text)
	assert.ErrorIs(t, err, ErrNotImage)

	empty := filepath.Join(dir, "empty.png")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))

	_, err = gate.Load(empty)
	assert.ErrorIs(t, err, ErrEmptyFile)

	_, err = gate.Load(filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
