package chartrender

import (
	"fmt"
	"image"

	"github.com/google/uuid"

	"github.com/MacroPower/chartform/pkg/chartform"
)

// Canvas is a rendered chart instance. It owns the drawing surface until
// [Canvas.Destroy] is called.
type Canvas struct {
	img       image.Image
	id        string
	chartType chartform.ChartType
	destroyed bool
}

// NewCanvas wraps a drawn surface in a new [Canvas] with a random id.
func NewCanvas(t chartform.ChartType, img image.Image) (*Canvas, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("failed to generate uuid: %w", err)
	}

	return &Canvas{
		img:       img,
		id:        id.String(),
		chartType: t,
	}, nil
}

func (c *Canvas) ID() string {
	return c.id
}

func (c *Canvas) ChartType() chartform.ChartType {
	return c.chartType
}

// Image returns the drawing surface, or nil once the canvas is destroyed.
func (c *Canvas) Image() image.Image {
	return c.img
}

// Destroy releases the drawing surface. It is safe to call more than once.
func (c *Canvas) Destroy() {
	c.img = nil
	c.destroyed = true
}

func (c *Canvas) Destroyed() bool {
	return c.destroyed
}
