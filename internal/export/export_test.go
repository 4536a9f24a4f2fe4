package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jmylchreest/pigment/internal/colour"
)

var testPalette = []colour.RGBA{
	{R: 255, G: 0, B: 0, A: 255},
	{R: 26, G: 43, B: 60, A: 255},
}

func TestJSON(t *testing.T) {
	data, err := JSON(testPalette)
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}

	var doc struct {
		Palette []struct {
			R   uint8  `json:"r"`
			G   uint8  `json:"g"`
			B   uint8  `json:"b"`
			A   uint8  `json:"a"`
			Hex string `json:"hex"`
		} `json:"palette"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(doc.Palette) != 2 {
		t.Fatalf("palette length = %d, want 2", len(doc.Palette))
	}
	if doc.Palette[0].R != 255 || doc.Palette[0].Hex != "#ff0000" {
		t.Errorf("first entry = %+v", doc.Palette[0])
	}
	if doc.Palette[1].Hex != "#1a2b3c" {
		t.Errorf("second entry hex = %q, want %q", doc.Palette[1].Hex, "#1a2b3c")
	}
}

func TestJSONEmptyPalette(t *testing.T) {
	data, err := JSON(nil)
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	if !json.Valid(data) {
		t.Error("output is not valid JSON")
	}
}

func TestCSV(t *testing.T) {
	data, err := CSV(testPalette)
	if err != nil {
		t.Fatalf("CSV() error = %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("got %d records, want 3 (header + 2 rows)", len(records))
	}
	wantHeader := []string{"r", "g", "b", "a", "hex"}
	for i, field := range wantHeader {
		if records[0][i] != field {
			t.Errorf("header[%d] = %q, want %q", i, records[0][i], field)
		}
	}
	wantRow := []string{"26", "43", "60", "255", "#1a2b3c"}
	for i, field := range wantRow {
		if records[2][i] != field {
			t.Errorf("row[%d] = %q, want %q", i, records[2][i], field)
		}
	}
}

func TestHTML(t *testing.T) {
	data, err := HTML("wallpaper.png", testPalette)
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	page := string(data)

	if !strings.Contains(page, `src="wallpaper.png"`) {
		t.Error("page does not reference the source image")
	}
	if !strings.Contains(page, "rgb(255, 0, 0)") {
		t.Error("page is missing the first swatch")
	}
	if !strings.Contains(page, "#1a2b3c") {
		t.Error("page is missing the second swatch's hex label")
	}
}

func TestHTMLWithoutImage(t *testing.T) {
	data, err := HTML("", testPalette)
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	if strings.Contains(string(data), "<img") {
		t.Error("page should not contain an image element when no path is given")
	}
}
