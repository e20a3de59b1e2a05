package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"sigs.k8s.io/yaml"

	"github.com/MacroPower/chartform/pkg/chartcmd"
	"github.com/MacroPower/chartform/pkg/chartform"
	"github.com/MacroPower/chartform/pkg/chartrender"
	"github.com/MacroPower/chartform/pkg/download"
)

const (
	renderDesc = `Fill in the chart form from flags or a form file, generate the chart and
export it in the requested formats.
`
	renderExample = `  # Yearly bar chart, exported as sales.png
  chartform render --type bar --title sales --value 10 --value 12 --value 20 --value 18

  # Custom rows from a workbook, exported as PNG and JPG
  chartform render --type pie --file team.xlsx --format png --format jpg -o out

  # Print the chart configuration instead of exporting
  chartform render -f sales.yaml --format "" --print_config yaml
`
)

var ErrUnknownConfigFormat = errors.New("unknown config format")

// NewRenderCmd returns the render command.
func NewRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "render",
		Short:   "Generate and export a chart",
		Long:    renderDesc,
		Example: renderExample,
		Args:    cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			var merr error

			flags := cc.Flags()

			formatArgs, err := flags.GetStringSlice("format")
			if err != nil {
				merr = multierror.Append(merr, err)
			}

			outputDir, err := flags.GetString("output_dir")
			if err != nil {
				merr = multierror.Append(merr, err)
			}

			htmlPath, err := flags.GetString("html")
			if err != nil {
				merr = multierror.Append(merr, err)
			}

			printConfig, err := flags.GetString("print_config")
			if err != nil {
				merr = multierror.Append(merr, err)
			}

			renderer, err := rasterFromFlags(cc)
			if err != nil {
				merr = multierror.Append(merr, err)
			}

			formats := []chartform.ImageFormat{}
			for _, arg := range formatArgs {
				if arg == "" {
					continue
				}

				f, err := chartform.ParseImageFormat(arg)
				if err != nil {
					merr = multierror.Append(merr, err)

					continue
				}

				formats = append(formats, f)
			}

			if printConfig != "" && printConfig != "json" && printConfig != "yaml" {
				merr = multierror.Append(merr, fmt.Errorf("%w: %q", ErrUnknownConfigFormat, printConfig))
			}

			if merr != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
			}

			form, err := formFromFlags(cc)
			if err != nil {
				return err
			}

			mgr := chartcmd.NewManager(form, renderer, download.NewDir(outputDir))

			if err := mgr.Submit(); err != nil {
				return fmt.Errorf("render failed: %w", err)
			}

			if printConfig != "" {
				if err := writeConfig(cc.OutOrStdout(), mgr.Config(), printConfig); err != nil {
					return err
				}
			}

			if htmlPath != "" {
				if err := writeHTML(htmlPath, mgr.Config()); err != nil {
					return err
				}
			}

			var exportErr error

			for _, f := range formats {
				loc, err := mgr.Export(f)
				if err != nil {
					exportErr = multierror.Append(exportErr, err)

					continue
				}

				if _, err := fmt.Fprintln(cc.OutOrStdout(), loc); err != nil {
					return fmt.Errorf("failed to write to output: %w", err)
				}
			}

			if exportErr != nil {
				return fmt.Errorf("export failed: %w", exportErr)
			}

			return nil
		},
	}

	addFormFlags(cmd)
	addRasterFlags(cmd)

	cmd.Flags().StringSlice("format", []string{string(chartform.FormatPNG)}, "Export formats (png, jpg, pdf)")
	cmd.Flags().StringP("output_dir", "o", ".", "Directory to write exported images to")
	cmd.Flags().String("html", "", "Also write an interactive HTML preview to this file")
	cmd.Flags().String("print_config", "", "Print the chart configuration (json, yaml)")

	if err := cmd.MarkFlagDirname("output_dir"); err != nil {
		panic(err)
	}

	return cmd
}

// addRasterFlags adds the flags sizing the rendered image.
func addRasterFlags(cmd *cobra.Command) {
	cmd.Flags().Int("width", chartrender.DefaultWidth, "Image width in pixels")
	cmd.Flags().Int("height", chartrender.DefaultHeight, "Image height in pixels")
	cmd.Flags().Float64("scale", 1, "Pixel ratio applied to fixed sizes")
}

func rasterFromFlags(cc *cobra.Command) (*chartrender.Raster, error) {
	var merr error

	flags := cc.Flags()

	width, err := flags.GetInt("width")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	height, err := flags.GetInt("height")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	scale, err := flags.GetFloat64("scale")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	if merr != nil {
		return nil, merr
	}

	if width <= 0 || height <= 0 || scale <= 0 {
		return nil, fmt.Errorf("size must be positive: %dx%d at %gx", width, height, scale)
	}

	return chartrender.NewRaster(
		chartrender.WithSize(width, height),
		chartrender.WithScale(scale),
	), nil
}

func writeConfig(w io.Writer, cfg *chartform.Config, format string) error {
	var (
		b   []byte
		err error
	)

	switch format {
	case "yaml":
		b, err = yaml.Marshal(cfg)
	default:
		b, err = json.MarshalIndent(cfg, "", "  ")
		b = append(b, '\n')
	}

	if err != nil {
		return fmt.Errorf("failed to marshal chart configuration: %w", err)
	}

	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("failed to write to output: %w", err)
	}

	return nil
}

func writeHTML(path string, cfg *chartform.Config) error {
	err := os.MkdirAll(filepath.Dir(path), 0o700)
	if err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create html file: %w", err)
	}

	err = chartrender.WriteHTML(f, cfg)
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	if err != nil {
		return fmt.Errorf("failed to write html file: %w", err)
	}

	return nil
}
