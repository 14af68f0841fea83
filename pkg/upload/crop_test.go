// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package upload

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/tenant-console/internal/types"
)

func TestCrop(t *testing.T) {
	src := types.File{Name: "holiday.png", ContentType: "image/png", Data: pngBytes(t, 40, 20)}

	out, err := Crop(src, image.Rect(10, 5, 30, 15))
	require.NoError(t, err)

	assert.Equal(t, CroppedName, out.Name)
	assert.Equal(t, "image/png", out.ContentType)

	img, err := png.Decode(bytes.NewReader(out.Data))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 20, 10), img.Bounds())

	// pixel (0,0) of the crop is pixel (10,5) of the source
	r, g, _, _ := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(10), r>>8)
	assert.Equal(t, uint32(5), g>>8)

	assert.NoError(t, NewGate(0).Validate(out))
}

func TestCropClampsToBounds(t *testing.T) {
	src := types.File{Data: pngBytes(t, 10, 10)}

	out, err := Crop(src, image.Rect(5, 5, 50, 50))
	require.NoError(t, err)

	cfg, err := png.DecodeConfig(bytes.NewReader(out.Data))
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Width)
	assert.Equal(t, 5, cfg.Height)
}

func TestCropErrors(t *testing.T) {
	_, err := Crop(types.File{Data: pngBytes(t, 10, 10)}, image.Rect(20, 20, 30, 30))
	assert.ErrorIs(t, err, ErrEmptyCrop)

	_, err = Crop(types.File{Data: []byte("not an image")}, image.Rect(0, 0, 1, 1))
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestCenterSquare(t *testing.T) {
	tests := []struct {
		bounds   image.Rectangle
		expected image.Rectangle
	}{
		{image.Rect(0, 0, 40, 20), image.Rect(10, 0, 30, 20)},
		{image.Rect(0, 0, 20, 40), image.Rect(0, 10, 20, 30)},
		{image.Rect(0, 0, 16, 16), image.Rect(0, 0, 16, 16)},
		{image.Rect(5, 5, 15, 9), image.Rect(8, 5, 12, 9)},
	}

	for _, test := range tests {
		if got := CenterSquare(test.bounds); got != test.expected {
			t.Errorf("CenterSquare(%v) = %v, expected %v", test.bounds, got, test.expected)
		}
	}
}

func TestCropCenterSquare(t *testing.T) {
	out, err := CropCenterSquare(types.File{Data: pngBytes(t, 30, 12)})
	require.NoError(t, err)

	cfg, err := png.DecodeConfig(bytes.NewReader(out.Data))
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Width)
	assert.Equal(t, 12, cfg.Height)
}
