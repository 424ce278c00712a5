package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"formcraft/internal/config"
	"formcraft/internal/model"
)

func runResponses(ctx context.Context, cfg *config.ClientConfig, args []string) error {
	fs := newFlagSet("responses")
	id := fs.String("id", "", "Form id (required)")
	verbose := fs.Bool("verbose", false, "Log API calls")
	fs.Parse(args)

	if *id == "" {
		return errors.New("responses: -id is required")
	}

	responses, err := newClient(cfg, *verbose).ListResponses(ctx, *id)
	if err != nil {
		return err
	}
	if len(responses) == 0 {
		fmt.Println("No responses yet.")
		return nil
	}

	for _, r := range responses {
		fmt.Printf("Response %s (%s)\n", r.ID, r.SubmittedAt.Local().Format(time.DateTime))
		for _, a := range r.Answers {
			fmt.Printf("  %s: %s\n", a.QuestionClientID, answerText(a.Answer))
		}
	}
	return nil
}

func runForms(ctx context.Context, cfg *config.ClientConfig, args []string) error {
	fs := newFlagSet("forms")
	verbose := fs.Bool("verbose", false, "Log API calls")
	fs.Parse(args)

	forms, err := newClient(cfg, *verbose).ListForms(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tQUESTIONS\tCREATED")
	for _, f := range forms {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", f.ID, f.Title, len(f.Questions), f.CreatedAt.Local().Format(time.DateTime))
	}
	return w.Flush()
}

func answerText(v model.AnswerValue) string {
	if v.IsEmpty() {
		return "(no answer)"
	}
	return v.String()
}
