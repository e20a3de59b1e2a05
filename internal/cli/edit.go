package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/MacroPower/chartform/pkg/chartcmd"
	"github.com/MacroPower/chartform/pkg/charttui"
	"github.com/MacroPower/chartform/pkg/download"
	"github.com/MacroPower/chartform/pkg/log"
)

var ErrNotTerminal = errors.New("edit requires a terminal, use render instead")

// NewEditCmd returns the edit command.
func NewEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Fill in the chart form interactively",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			var merr error

			flags := cc.Flags()

			outputDir, err := flags.GetString("output_dir")
			if err != nil {
				merr = multierror.Append(merr, err)
			}

			logLevel, err := flags.GetString("log_level")
			if err != nil {
				merr = multierror.Append(merr, err)
			}

			renderer, err := rasterFromFlags(cc)
			if err != nil {
				merr = multierror.Append(merr, err)
			}

			if merr != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
			}

			if !isatty.IsTerminal(os.Stdout.Fd()) {
				return ErrNotTerminal
			}

			lvl, err := log.GetLevel(logLevel)
			if err != nil {
				// Should not be possible due to root's PersistentPreRunE.
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			form, err := formFromFlags(cc)
			if err != nil {
				return err
			}

			mgr := chartcmd.NewManager(form, renderer, download.NewDir(outputDir))

			err = charttui.NewChartTUI(cc.OutOrStdout(), cc.InOrStdin(), lvl, mgr).Run()
			if err != nil {
				return fmt.Errorf("edit failed: %w", err)
			}

			return nil
		},
	}

	addFormFlags(cmd)
	addRasterFlags(cmd)

	cmd.Flags().StringP("output_dir", "o", ".", "Directory to write exported images to")

	if err := cmd.MarkFlagDirname("output_dir"); err != nil {
		panic(err)
	}

	return cmd
}
