package chartrender_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/chartform/pkg/chartform"
	"github.com/MacroPower/chartform/pkg/chartrender"
)

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	for x := range 8 {
		img.Set(x, 1, color.RGBA{R: 54, G: 162, B: 235, A: 255})
	}

	return img
}

func TestEncodePNG(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, chartrender.Encode(&buf, testImage(), chartform.FormatPNG))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
}

func TestEncodeJPG(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, chartrender.Encode(&buf, testImage(), chartform.FormatJPG))

	img, err := jpeg.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dy())
}

func TestEncodeErrors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := chartrender.Encode(&buf, testImage(), chartform.FormatPDF)
	require.ErrorIs(t, err, chartrender.ErrPDFUnavailable)

	err = chartrender.Encode(&buf, testImage(), "gif")
	require.ErrorIs(t, err, chartform.ErrUnknownFormat)

	err = chartrender.Encode(&buf, nil, chartform.FormatPNG)
	require.ErrorIs(t, err, chartrender.ErrNoSurface)

	assert.Zero(t, buf.Len())
}
