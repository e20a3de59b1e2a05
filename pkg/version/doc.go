// Package version provides build information for the chartform binary.
//
// The variables are set at link time, e.g.
//
//	go build -ldflags "-X github.com/MacroPower/chartform/pkg/version.Version=1.2.3"
package version
