package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"formcraft/internal/config"
	"formcraft/internal/editor"
)

type printNavigator struct{ baseURL string }

func (n printNavigator) Navigate(path string) {
	fmt.Printf("Form page: %s%s\n", n.baseURL, path)
}

func runBuild(ctx context.Context, cfg *config.ClientConfig, args []string) error {
	fs := newFlagSet("build")
	file := fs.String("f", "", "YAML form definition (required)")
	verbose := fs.Bool("verbose", false, "Log API calls")
	fs.Parse(args)

	if *file == "" {
		return errors.New("build: -f is required")
	}

	f, err := os.Open(*file)
	if err != nil {
		return err
	}
	defer f.Close()

	def, err := editor.ParseDefinition(f)
	if err != nil {
		return err
	}

	api := newClient(cfg, *verbose)
	ed := editor.New(api,
		editor.WithNotifier(stderrNotifier{}),
		editor.WithNavigator(printNavigator{baseURL: api.BaseURL()}),
	)
	if err := def.Apply(ed, filepath.Dir(*file), nil); err != nil {
		return err
	}

	form, err := ed.Save(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Fill it with: formctl fill -id %s\n", form.ID)
	return nil
}
