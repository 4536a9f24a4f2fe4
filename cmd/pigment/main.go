// Pigment - a median cut colour palette generator
//
// Pigment extracts representative colour palettes from images using the
// median cut algorithm and renders them as hex/rgb text, JSON, CSV or
// HTML swatch pages.
//
// Copyright (c) 2026 John Mylchreest
// Licensed under the MIT License
package main

import (
	"github.com/jmylchreest/pigment/internal/cli"
)

func main() {
	cli.Execute()
}
