package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/chartform/internal/cli"
	"github.com/MacroPower/chartform/pkg/chartform"
	"github.com/MacroPower/chartform/pkg/chartrender"
	"github.com/MacroPower/chartform/pkg/log"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	tc := cli.NewRootCmd("test_render", "", "")
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	tc.SetArgs(args)
	tc.SetOut(stdout)
	tc.SetErr(stderr)

	err := tc.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRenderCmd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	stdout, stderr, err := execute(t,
		"render",
		"--type=bar",
		"--title=Sales",
		"--value=10", "--value=", "--value=20", "--value=abc",
		"--format=png,jpg",
		"--width=400", "--height=300",
		"-o", dir,
	)
	require.NoError(t, err)
	assert.Empty(t, stderr, "stderr should be empty")

	want := []string{filepath.Join(dir, "Sales.png"), filepath.Join(dir, "Sales.jpg")}
	assert.Equal(t, want, strings.Fields(stdout))

	for _, path := range want {
		assert.FileExists(t, path)
	}
}

func TestRenderCmdCustomRows(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	stdout, _, err := execute(t,
		"render",
		"--type=doughnut",
		"--title=Team",
		"--row=Alice=15", "--row==30", "--row=Bob=oops", "--row=Carol=5",
		"--format=",
		"--print_config=json",
		"-o", dir,
	)
	require.NoError(t, err)

	var cfg struct {
		Type string `json:"type"`
		Data struct {
			Labels   []string `json:"labels"`
			Datasets []struct {
				Data []float64 `json:"data"`
			} `json:"datasets"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &cfg))
	assert.Equal(t, "doughnut", cfg.Type)
	assert.Equal(t, []string{"Alice", "Carol"}, cfg.Data.Labels)
	require.Len(t, cfg.Data.Datasets, 1)
	assert.Equal(t, []float64{15, 5}, cfg.Data.Datasets[0].Data)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRenderCmdFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "form.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
chart_type: line
period: yearly
title: From file
values: [1, 2, 3, 4]
`), 0o600))

	htmlPath := filepath.Join(dir, "preview", "chart.html")

	stdout, _, err := execute(t,
		"render",
		"-f", path,
		"--title=Override",
		"--format=",
		"--print_config=yaml",
		"--html", htmlPath,
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, "type: line")
	assert.Contains(t, stdout, "text: Override")

	html, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(html), "echarts")
	assert.Contains(t, string(html), "Override")
}

func TestRenderCmdErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		err  error
		args []string
	}{
		"missing fields": {
			args: []string{"render", "--value=1"},
			err:  chartform.ErrMissingFields,
		},
		"no data": {
			args: []string{"render", "--type=pie", "--title=x", "--period=custom"},
			err:  chartform.ErrNoData,
		},
		"pdf": {
			args: []string{"render", "--type=bar", "--title=x", "--value=1", "--format=pdf"},
			err:  chartrender.ErrPDFUnavailable,
		},
		"unknown format": {
			args: []string{"render", "--format=gif"},
			err:  chartform.ErrUnknownFormat,
		},
		"unknown type": {
			args: []string{"render", "--type=radar"},
			err:  chartform.ErrUnknownChartType,
		},
		"bad row": {
			args: []string{"render", "--row=Alice"},
			err:  cli.ErrInvalidRow,
		},
		"bad config format": {
			args: []string{"render", "--print_config=toml"},
			err:  cli.ErrUnknownConfigFormat,
		},
		"bad log level": {
			args: []string{"render", "--log_level=loud"},
			err:  log.ErrUnknownLevel,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			args := append(tc.args, "-o", t.TempDir())
			_, _, err := execute(t, args...)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestSchemaCmd(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := execute(t, "schema")
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, `"chart_type"`)
	assert.True(t, json.Valid([]byte(stdout)))
}
