package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"formcraft/internal/client"
	"formcraft/internal/config"
	"formcraft/internal/logging"
)

const usage = `usage: formctl <command> [flags]

commands:
  build -f form.yaml   create a form from a YAML definition
  fill -id <formId>    answer a form interactively
  responses -id <id>   list the responses of a form
  forms                list saved forms

FORMCRAFT_API_URL sets the API base URL (default http://localhost:5000).
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.LoadClient()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "build":
		err = runBuild(ctx, cfg, args)
	case "fill":
		err = runFill(ctx, cfg, args)
	case "responses":
		err = runResponses(ctx, cfg, args)
	case "forms":
		err = runForms(ctx, cfg, args)
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", cmd, usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newClient builds an API client that reports to stderr
func newClient(cfg *config.ClientConfig, verbose bool) *client.Client {
	env := "production"
	if verbose {
		env = "development"
	}
	return client.New(cfg.APIURL,
		client.WithNotifier(stderrNotifier{}),
		client.WithLogger(logging.NewWithWriter(os.Stderr, "text", env)),
	)
}

type stderrNotifier struct{}

func (stderrNotifier) Notify(msg string) {
	fmt.Fprintln(os.Stderr, "!", msg)
}

func newFlagSet(name string) *flag.FlagSet {
	return flag.NewFlagSet(name, flag.ExitOnError)
}
