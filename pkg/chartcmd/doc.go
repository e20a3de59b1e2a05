// Package chartcmd manages the lifecycle of a chart built from a form.
//
// It serves as the core implementation behind every front end: a [Manager]
// validates and collects the form, asks a [Renderer] to draw the chart,
// keeps the single live chart instance, exports it through a [Sink] and
// resets back to the form. Progress is published as events to subscribers.
package chartcmd
