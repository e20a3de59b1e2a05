// Package chartform turns the values entered into a chart form into a chart
// configuration.
//
// It holds the form model ([Form]), the period-dependent input layout, the
// data collector ([Collect]) and the configuration builder ([BuildConfig]).
// Everything in this package is free of any UI or rendering concerns, so
// terminal, flag and file front ends can share it. Rendering and the chart
// lifecycle live in [github.com/MacroPower/chartform/pkg/chartrender] and
// [github.com/MacroPower/chartform/pkg/chartcmd].
package chartform
