package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/MacroPower/chartform/internal/cli"
)

const (
	cmdName = "chartform"

	shortDesc = "Turn a small form of values into a chart."
	longDesc  = `Chartform collects a handful of labeled values, either one per year from
2021 to 2024 or in free-form rows, and draws them as a bar, line, pie or
doughnut chart. Rendered charts can be exported as PNG or JPG images.

Use "chartform edit" for the interactive form, or "chartform render" to fill
the form from flags or a form file.
`
)

func main() {
	cmd := cli.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
