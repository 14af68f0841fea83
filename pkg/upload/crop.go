// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package upload

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	"github.com/canonical/tenant-console/internal/types"
)

// CroppedName is the file name given to every cropped upload
const CroppedName = "avatar.png"

// Crop cuts area out of f and returns it as a new PNG file, the source file
// is not kept.
func Crop(f types.File, area image.Rectangle) (types.File, error) {
	src, _, err := image.Decode(bytes.NewReader(f.Data))
	if err != nil {
		return types.File{}, fmt.Errorf("%w: %v", ErrNotImage, err)
	}

	area = area.Canon().Intersect(src.Bounds())
	if area.Empty() {
		return types.File{}, ErrEmptyCrop
	}

	dst := image.NewRGBA(image.Rect(0, 0, area.Dx(), area.Dy()))
	draw.Draw(dst, dst.Bounds(), src, area.Min, draw.Src)

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, dst); err != nil {
		return types.File{}, fmt.Errorf("failed to encode cropped image: %w", err)
	}

	return types.File{
		Name:        CroppedName,
		ContentType: "image/png",
		Data:        buf.Bytes(),
	}, nil
}

// CenterSquare returns the largest square centred in bounds
func CenterSquare(bounds image.Rectangle) image.Rectangle {
	side := min(bounds.Dx(), bounds.Dy())

	x := bounds.Min.X + (bounds.Dx()-side)/2
	y := bounds.Min.Y + (bounds.Dy()-side)/2

	return image.Rect(x, y, x+side, y+side)
}

// CropCenterSquare decodes f far enough to learn its size and crops the
// centred square out of it.
func CropCenterSquare(f types.File) (types.File, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(f.Data))
	if err != nil {
		return types.File{}, fmt.Errorf("%w: %v", ErrNotImage, err)
	}

	return Crop(f, CenterSquare(image.Rect(0, 0, cfg.Width, cfg.Height)))
}
