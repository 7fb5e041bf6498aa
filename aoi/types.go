package aoi

import "errors"

var (
	// ErrEmptyTable indicates an AOI table without rows.
	ErrEmptyTable = errors.New("aoi: table must contain at least one area of interest")

	// ErrBadBox indicates a box with a non-finite coordinate or a non-positive size.
	ErrBadBox = errors.New("aoi: box must have finite coordinates and positive size")
)

// AOI is one area of interest, normally a word box.
type AOI struct {
	Kind   string  `json:"kind"`
	Name   string  `json:"name"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Table is an AOI table in natural reading order
// (left-to-right, top-to-bottom).
type Table []AOI

// Point is a word centre.
type Point struct {
	X float64
	Y float64
}
