package chartcmd

import "github.com/MacroPower/chartform/pkg/chartform"

type (
	// Sent when a submit was rejected.
	EventRejected struct {
		Err error
	}

	// Sent when a chart instance has been created.
	EventRendered struct {
		ID     string
		Type   chartform.ChartType
		Points int
	}

	// Sent when a chart instance has been destroyed.
	EventDestroyed struct {
		ID string
	}

	// Sent when an export has completed, or failed.
	EventExported struct {
		Err      error
		Format   chartform.ImageFormat
		Location string
	}

	// Sent when the view has returned to the form.
	EventReset struct{}
)
