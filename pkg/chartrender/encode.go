package chartrender

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/MacroPower/chartform/pkg/chartform"
)

// JPEGQuality matches the default quality of browser canvas exports.
const JPEGQuality = 92

var (
	// ErrPDFUnavailable is returned for [chartform.FormatPDF]; producing PDF
	// output requires an external PDF library.
	ErrPDFUnavailable = errors.New("PDF export requires an external PDF library")

	ErrNoSurface = errors.New("no drawing surface")
)

// Encode writes img to w in the requested raster format.
func Encode(w io.Writer, img image.Image, f chartform.ImageFormat) error {
	if img == nil {
		return ErrNoSurface
	}

	switch f {
	case chartform.FormatPNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("encode png: %w", err)
		}

	case chartform.FormatJPG:
		if err := jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
			return fmt.Errorf("encode jpg: %w", err)
		}

	case chartform.FormatPDF:
		return ErrPDFUnavailable

	default:
		return fmt.Errorf("%w: %q", chartform.ErrUnknownFormat, f)
	}

	return nil
}
