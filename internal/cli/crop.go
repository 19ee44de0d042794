package cli

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phanxgames/boxzoom/internal/imageio"
)

func newCropCommand() *cobra.Command {
	var (
		out     string
		quality int
	)
	cmd := &cobra.Command{
		Use:   "crop <image> <record.yaml>",
		Short: "Crop an image with a stored box",
		Long: `Crop cuts the box of a record written by "boxzoom view --out" out of an image.
The box is stored relative to the canvas it was drawn on, so the image may be
a different resolution of the one that was viewed.

Examples:
  boxzoom crop photo.jpg box.yaml
  boxzoom crop photo.jpg box.yaml -o face.webp --quality 80`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = defaultCropPath(args[0])
			}
			if err := runCrop(args[0], args[1], out, quality); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file; the extension picks the format (default: <image>_crop.<ext>)")
	cmd.Flags().IntVar(&quality, "quality", imageio.DefaultQuality, "JPEG/WebP quality")
	return cmd
}

func runCrop(imagePath, recordPath, out string, quality int) error {
	rec, err := LoadRecord(recordPath)
	if err != nil {
		return err
	}
	img, err := imageio.Load(imagePath)
	if err != nil {
		return err
	}
	b := img.Bounds()
	r := rec.Box.PixelRect(b.Dx(), b.Dy())
	log.Printf("crop %s: record %s -> %v", imagePath, rec.ID, r)
	cropped, err := imageio.Crop(img, r)
	if err != nil {
		return fmt.Errorf("crop %s: %w", imagePath, err)
	}
	return imageio.Save(cropped, out, quality)
}

func defaultCropPath(imagePath string) string {
	ext := filepath.Ext(imagePath)
	return strings.TrimSuffix(imagePath, ext) + "_crop" + ext
}
