package gotext

import "errors"

// Sentinel errors for the gotext package.
var (
	// ErrNilFace is returned when a layout is requested without a font face.
	ErrNilFace = errors.New("gotext: face cannot be nil")

	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("gotext: empty font data")
)
