// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the raster surfaces a pixel buffer can alias or
// copy into.
//
// A raster surface is anything that exposes a width, a height and a mutable
// byte slice of width*height*4 bytes in R, G, B, A order. The package
// supplies:
//
//   - ImageSurface: a CPU surface backed by *image.RGBA
//   - RawSurface: a surface over caller-owned bytes
//   - EbitenSurface: an ebiten-backed surface (requires the ebiten build tag)
//
// # Registry
//
// Host backends register themselves by name and priority. The highest
// priority available backend serves NewSurface:
//
//	func init() {
//	    surface.Register("ebiten", 50, newEbiten, nil)
//	}
//
//	s, err := surface.NewSurface(256, 256)
//
// Headless builds only register the "image" software backend.
//
// # Snapshots
//
// Surfaces that implement Encoder can snapshot their pixels into a data URI:
//
//	s := surface.NewImageSurface(64, 64)
//	uri, err := s.DataURL(surface.MIMETypePNG)
//
// PNG is encoded with the standard library; BMP and TIFF use
// golang.org/x/image. Unknown mime types fall back to PNG.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
package surface
