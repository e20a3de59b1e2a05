// Package charttui provides a terminal user interface for the chart form.
//
// This package implements an interactive form on top of
// [github.com/MacroPower/chartform/pkg/chartcmd]: the chart type, period and
// title fields, the dynamic data region, and the chart view with its export
// actions. It uses the Bubble Tea framework; logs written while the program
// runs are printed above the form.
package charttui
