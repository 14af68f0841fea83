// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package upload

import "errors"

var (
	ErrNotImage  = errors.New("file is not an image")
	ErrTooLarge  = errors.New("image exceeds the maximum upload size")
	ErrEmptyFile = errors.New("file is empty")
	ErrEmptyCrop = errors.New("crop area does not intersect the image")
)
