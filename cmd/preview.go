package cmd

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"

	"github.com/mj1618/grayscale-cli/internal/imaging"
	"github.com/mj1618/grayscale-cli/internal/output"
	"github.com/spf13/cobra"
)

// PreviewResult is the output of `preview`.
type PreviewResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
	In     string `yaml:"in"     json:"in"`
	Out    string `yaml:"out"    json:"out"`
	Width  int    `yaml:"width"  json:"width"`
	Height int    `yaml:"height" json:"height"`
}

var previewCmd = &cobra.Command{
	Use:   "preview <image>",
	Short: "Render an image file in grayscale",
	Long:  "Converts an image file to grayscale so the effect of forced grayscale rendering can be inspected without changing the display.",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().String("out", "", "Output path (default: <input>-gray.<ext>)")
	previewCmd.Flags().Float64("scale", 1.0, "Scale factor 0.1-1.0")
	previewCmd.Flags().Int("quality", 80, "JPEG quality 1-100")
}

// previewOutPath derives the default output path: foo.png -> foo-gray.png.
func previewOutPath(in string) string {
	ext := filepath.Ext(in)
	return strings.TrimSuffix(in, ext) + "-gray" + ext
}

// encodeFormatForPath maps an output file extension to an encoder name.
func encodeFormatForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png", nil
	case ".jpg", ".jpeg":
		return "jpg", nil
	default:
		return "", fmt.Errorf("unsupported output extension %q (use .png, .jpg, or .jpeg)", filepath.Ext(path))
	}
}

func runPreview(cmd *cobra.Command, args []string) error {
	in := args[0]
	out, _ := cmd.Flags().GetString("out")
	scale, _ := cmd.Flags().GetFloat64("scale")
	quality, _ := cmd.Flags().GetInt("quality")

	if out == "" {
		out = previewOutPath(in)
	}
	format, err := encodeFormatForPath(out)
	if err != nil {
		return err
	}
	if quality < 1 || quality > 100 {
		return fmt.Errorf("quality must be 1-100, got %d", quality)
	}

	f, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", in, err)
	}

	var result image.Image = imaging.ToGray(src)
	if scale != 1.0 {
		result, err = imaging.Scale(result, scale)
		if err != nil {
			return err
		}
	}

	dst, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer dst.Close()

	switch format {
	case "png":
		err = png.Encode(dst, result)
	case "jpg":
		err = jpeg.Encode(dst, result, &jpeg.Options{Quality: quality})
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", out, err)
	}

	bounds := result.Bounds()
	return output.Print(PreviewResult{
		OK:     true,
		Action: "preview",
		In:     in,
		Out:    out,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	})
}
