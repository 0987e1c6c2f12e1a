// Package tilecontour turns rectangular tile grids into closed, simplified
// 2D polygons tracing the boundaries of contiguous solid regions — outer
// outlines and inner holes alike — with no per-polygon allocation.
//
// 🚀 What is tilecontour?
//
//	A small, deterministic geometry pipeline for tile data:
//		• gridkey/  — packed integer keys for grid points and undirected unit edges
//		• boundary/ — exposed-edge extraction and point adjacency from a tile grid
//		• contour/  — contour tracing, vertex simplification, and polygon streaming
//
// ✨ Why choose tilecontour?
//
//   - Deterministic – identical grids produce identical polygons, winding included
//   - Exact – pure integer geometry, no floating-point drift in any decision
//   - Allocation-disciplined – scratch buffers are acquired once per call and
//     reused for every polygon; output lands in the caller's buffer
//   - Pure Go – no cgo, no hidden deps
//
// Typical consumers: collision shapes, destructible terrain, replayable or
// networked geometry — anywhere tile data must become repeatable outlines.
//
// Quick ASCII example:
//
//	tiles        polygons
//	█ █ █
//	█ · █   →   one outer 12-gon + one inner 4-gon (the hole)
//	█ █ █
//
// Dive into contour.StreamPolygons for the single entry point, and each
// subpackage's doc.go for algorithms, options, and complexity notes.
package tilecontour
