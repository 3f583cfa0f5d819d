// Package aastrip converts filled vector paths into triangle strips with
// per-vertex coverage, so that antialiased shapes can be drawn by
// hardware which only knows how to draw triangles.
//
// All antialiasing happens on the CPU.  Every pixel is sampled on a 16×16
// grid, and the pixels of the clip rectangle are grouped into
// axis-aligned rectangles of constant coverage.  Each rectangle becomes
// two triangles of the strip.  Drawing the strip with alpha equal to the
// interpolated coverage reproduces the antialiased fill.
//
// Paths can be given as arrays of [PointType] and [Point] values, see
// [RasterizeToTriStrip], or built incrementally using a [PathBuilder].
package aastrip

//go:generate go run ./testcases/export
