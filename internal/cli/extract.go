// Package cli provides the command-line interface for Pigment.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/jmylchreest/pigment/internal/colour"
	"github.com/jmylchreest/pigment/internal/export"
	"github.com/jmylchreest/pigment/internal/image"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	// Extract command flags
	extractIterations  int
	extractAlgorithm   string
	extractFormat      string
	extractOutput      string
	extractShowPreview bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Extract a colour palette from an image",
	Long: `Extract a colour palette from an image using the median cut algorithm.

The extract command reads every pixel of the image and recursively splits
the colour set along its widest channel. With N iterations the palette
holds up to 2^N colours; fewer when the image has less colour variety.

Supported image formats: JPEG, PNG, GIF, WebP, BMP, TIFF

Examples:
  # Extract up to 16 colours (default 4 iterations) from an image
  pigment extract wallpaper.jpg

  # Extract up to 4 colours with terminal previews
  pigment extract --preview -i 2 wallpaper.png

  # Extract colours and output as JSON
  pigment extract --format json wallpaper.jpg

  # Write an HTML swatch page next to the image
  pigment extract -f html -o palette.html wallpaper.jpg

  # Extract from a URL and print rgb values
  pigment extract -f rgb https://example.com/wallpaper.png`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	// Define flags for the extract command
	extractCmd.Flags().IntVarP(&extractIterations, "iterations", "i", 4, "number of median cut iterations (0-8, palette holds up to 2^N colours)")
	extractCmd.Flags().StringVarP(&extractAlgorithm, "algorithm", "a", "mediancut", "extraction algorithm (mediancut)")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "hex", "output format (hex, rgb, json, csv, html)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output file (default: stdout)")
	extractCmd.Flags().BoolVar(&extractShowPreview, "preview", false, "show colour previews in terminal")
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, args []string) error {
	imagePath := args[0]
	logger := newLogger(cmd)

	// Validate the image path
	if err := image.ValidateImagePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	// Validate configuration
	config := colour.ExtractorConfig{
		Algorithm:  colour.Algorithm(extractAlgorithm),
		Iterations: extractIterations,
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Load the image
	logger.Debug("loading image", "path", imagePath)
	loadStart := time.Now()

	loader := image.NewSmartLoader()
	img, err := loader.Load(imagePath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	bounds := img.Bounds()
	logger.Debug("image loaded",
		"width", bounds.Dx(),
		"height", bounds.Dy(),
		"duration", time.Since(loadStart))

	// Create the colour extractor
	extractor, err := colour.NewExtractor(config.Algorithm)
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}

	// Extract the colour palette
	logger.Debug("generating palette", "algorithm", extractAlgorithm, "iterations", extractIterations)
	extractStart := time.Now()

	palette, err := extractor.Extract(img, extractIterations)
	if err != nil {
		return fmt.Errorf("failed to extract colours: %w", err)
	}

	logger.Debug("palette generated",
		"colours", palette.Len(),
		"duration", time.Since(extractStart))

	// ANSI previews only make sense on a terminal, and never inside files.
	showPreview := extractShowPreview && extractOutput == "" && term.IsTerminal(int(os.Stdout.Fd()))

	// Format the output
	output, err := formatPalette(palette, extractFormat, imagePath, showPreview)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	// Write output to file or stdout
	if extractOutput != "" {
		if err := os.WriteFile(extractOutput, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		logger.Debug("palette written", "path", extractOutput)
	} else {
		fmt.Print(output)
	}

	return nil
}

// formatPalette formats the palette according to the specified format.
// imagePath is only used by the html format, which references the source
// image from the generated page.
func formatPalette(palette *colour.Palette, format, imagePath string, showPreview bool) (string, error) {
	switch format {
	case "hex":
		return formatHex(palette, showPreview), nil
	case "rgb":
		return formatRGB(palette, showPreview), nil
	case "json":
		data, err := export.JSON(palette.ToRGBASlice())
		if err != nil {
			return "", err
		}
		return string(data), nil
	case "csv":
		data, err := export.CSV(palette.ToRGBASlice())
		if err != nil {
			return "", err
		}
		return string(data), nil
	case "html":
		data, err := export.HTML(imagePath, palette.ToRGBASlice())
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, rgb, json, csv, html)", format)
	}
}

// formatHex formats the palette as hex colour codes.
func formatHex(palette *colour.Palette, showPreview bool) string {
	output := ""
	for _, rgb := range palette.ToRGBSlice() {
		if showPreview {
			output += colour.FormatColourWithPreview(rgb, 8) + "\n"
		} else {
			output += rgb.Hex() + "\n"
		}
	}
	return output
}

// formatRGB formats the palette as RGB values.
func formatRGB(palette *colour.Palette, showPreview bool) string {
	output := ""
	for _, rgb := range palette.ToRGBSlice() {
		if showPreview {
			output += colour.ColourPreview(rgb, 8) + "  " + rgb.String() + "\n"
		} else {
			output += rgb.String() + "\n"
		}
	}
	return output
}
