package cli

import (
	"github.com/spf13/cobra"

	"github.com/MacroPower/chartform/pkg/version"
)

func GetVersionString() string {
	return version.Version
}

// NewVersionCmd returns the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version of the chartform CLI",
		Run: func(cc *cobra.Command, _ []string) {
			cc.Println(version.String())
		},
	}
}
