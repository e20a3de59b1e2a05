package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MacroPower/chartform/pkg/formfile"
)

func main() {
	basePath := "docs"
	if err := generate(basePath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// generate writes the form file schema into path.
func generate(path string) error {
	err := os.MkdirAll(path, 0o700)
	if err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	//nolint:gosec // G304 not relevant for client-side generation.
	f, err := os.Create(filepath.Join(path, "formfile.schema.json"))
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}

	if err = formfile.WriteSchema(f); err != nil {
		return fmt.Errorf("failed to generate schema: %w", err)
	}

	if err = f.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}

	return nil
}
