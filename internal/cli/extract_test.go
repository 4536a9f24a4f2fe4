package cli

import (
	"encoding/json"
	"image/color"
	"strings"
	"testing"

	"github.com/jmylchreest/pigment/internal/colour"
)

func testCLIPalette() *colour.Palette {
	return colour.NewPalette([]color.Color{
		color.RGBA{R: 255, G: 0, B: 0, A: 255},
		color.RGBA{R: 0, G: 0, B: 255, A: 255},
	})
}

func TestFormatPaletteHex(t *testing.T) {
	output, err := formatPalette(testCLIPalette(), "hex", "", false)
	if err != nil {
		t.Fatalf("formatPalette() error = %v", err)
	}

	want := "#ff0000\n#0000ff\n"
	if output != want {
		t.Errorf("formatPalette() = %q, want %q", output, want)
	}
}

func TestFormatPaletteHexWithPreview(t *testing.T) {
	output, err := formatPalette(testCLIPalette(), "hex", "", true)
	if err != nil {
		t.Fatalf("formatPalette() error = %v", err)
	}

	if !strings.Contains(output, "\033[48;2;255;0;0m") {
		t.Error("preview output is missing the ANSI swatch")
	}
	if !strings.Contains(output, "#ff0000") {
		t.Error("preview output is missing the hex code")
	}
}

func TestFormatPaletteRGB(t *testing.T) {
	output, err := formatPalette(testCLIPalette(), "rgb", "", false)
	if err != nil {
		t.Fatalf("formatPalette() error = %v", err)
	}

	want := "rgb(255, 0, 0)\nrgb(0, 0, 255)\n"
	if output != want {
		t.Errorf("formatPalette() = %q, want %q", output, want)
	}
}

func TestFormatPaletteJSON(t *testing.T) {
	output, err := formatPalette(testCLIPalette(), "json", "", false)
	if err != nil {
		t.Fatalf("formatPalette() error = %v", err)
	}

	var doc struct {
		Palette []struct {
			Hex string `json:"hex"`
		} `json:"palette"`
	}
	if err := json.Unmarshal([]byte(output), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(doc.Palette) != 2 || doc.Palette[0].Hex != "#ff0000" {
		t.Errorf("unexpected JSON document: %+v", doc)
	}
}

func TestFormatPaletteCSV(t *testing.T) {
	output, err := formatPalette(testCLIPalette(), "csv", "", false)
	if err != nil {
		t.Fatalf("formatPalette() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3 (header + 2 rows)", len(lines))
	}
	if lines[0] != "r,g,b,a,hex" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "255,0,0,255,#ff0000" {
		t.Errorf("first row = %q", lines[1])
	}
}

func TestFormatPaletteHTML(t *testing.T) {
	output, err := formatPalette(testCLIPalette(), "html", "wallpaper.jpg", false)
	if err != nil {
		t.Fatalf("formatPalette() error = %v", err)
	}

	if !strings.Contains(output, `src="wallpaper.jpg"`) {
		t.Error("HTML output does not reference the source image")
	}
	if !strings.Contains(output, "rgb(255, 0, 0)") {
		t.Error("HTML output is missing the first swatch")
	}
}

func TestFormatPaletteUnsupported(t *testing.T) {
	if _, err := formatPalette(testCLIPalette(), "yaml", "", false); err == nil {
		t.Error("expected error for unsupported format")
	}
}
