// Package export renders colour palettes as standalone documents.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html/template"
	"strconv"

	"github.com/jmylchreest/pigment/internal/colour"
)

// colourJSON is one palette entry in the JSON document.
type colourJSON struct {
	colour.RGBA
	Hex string `json:"hex"`
}

// paletteJSON is the top-level JSON document.
type paletteJSON struct {
	Palette []colourJSON `json:"palette"`
}

// JSON renders the palette as an indented JSON document of the form
// {"palette": [{"r":..,"g":..,"b":..,"a":..,"hex":".."}, ...]}.
func JSON(palette []colour.RGBA) ([]byte, error) {
	doc := paletteJSON{
		Palette: make([]colourJSON, len(palette)),
	}
	for i, c := range palette {
		doc.Palette[i] = colourJSON{RGBA: c, Hex: c.Hex()}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal palette: %w", err)
	}
	return append(data, '\n'), nil
}

// CSV renders the palette as CSV with an r,g,b,a,hex header row followed
// by one row per entry.
func CSV(palette []colour.RGBA) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"r", "g", "b", "a", "hex"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, c := range palette {
		record := []string{
			strconv.Itoa(int(c.R)),
			strconv.Itoa(int(c.G)),
			strconv.Itoa(int(c.B)),
			strconv.Itoa(int(c.A)),
			c.Hex(),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// htmlTemplate lays out the source image above a row of palette swatches.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Palette</title>
<style>
body { font-family: sans-serif; margin: 0; padding: 1rem; }
img { display: block; margin: 0 auto; max-width: 100%; }
.swatches { display: grid; grid-auto-flow: column; justify-content: center; gap: 5px; padding-top: 10px; }
.swatch { width: 100px; height: 100px; display: flex; align-items: flex-end; justify-content: center; }
.swatch span { font-size: 0.75rem; padding-bottom: 0.25rem; }
</style>
</head>
<body>
{{if .ImagePath}}<img src="{{.ImagePath}}" alt="Input image">{{end}}
<div class="swatches">
{{range .Colours}}<div class="swatch" style="background-color: rgb({{.R}}, {{.G}}, {{.B}})"><span>{{.Hex}}</span></div>
{{end}}</div>
</body>
</html>
`

var htmlTmpl = template.Must(template.New("palette").Parse(htmlTemplate))

// HTML renders the palette as a standalone HTML page showing the source
// image (referenced by path, not embedded) above the palette swatches.
// imagePath may be empty, in which case only the swatches are rendered.
func HTML(imagePath string, palette []colour.RGBA) ([]byte, error) {
	data := struct {
		ImagePath string
		Colours   []colour.RGBA
	}{
		ImagePath: imagePath,
		Colours:   palette,
	}

	var buf bytes.Buffer
	if err := htmlTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render HTML: %w", err)
	}
	return buf.Bytes(), nil
}
