// Package chartrender draws chart configurations built by
// [github.com/MacroPower/chartform/pkg/chartform].
//
// [Raster] renders a configuration into an in-memory drawing surface held by
// a [Canvas], which can then be encoded to PNG or JPEG with [Encode].
// [WriteHTML] writes an interactive ECharts page for the same configuration.
package chartrender
