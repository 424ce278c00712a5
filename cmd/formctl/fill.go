package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"formcraft/internal/config"
	"formcraft/internal/fill"
)

func runFill(ctx context.Context, cfg *config.ClientConfig, args []string) error {
	fs := newFlagSet("fill")
	id := fs.String("id", "", "Form id (required)")
	verbose := fs.Bool("verbose", false, "Log API calls")
	fs.Parse(args)

	if *id == "" {
		return errors.New("fill: -id is required")
	}

	fmt.Println("Loading form...")
	session := fill.New(newClient(cfg, *verbose), *id, fill.WithNotifier(stderrNotifier{}))
	if session.Load(ctx) != fill.StateFilling {
		fmt.Println("Form not found!")
		return nil
	}

	return fillInteractive(ctx, session, os.Stdin, os.Stdout)
}

// fillInteractive walks the questions in order, reading answers from in
func fillInteractive(ctx context.Context, session *fill.Session, in io.Reader, out io.Writer) error {
	view, err := session.Render()
	if err != nil {
		return err
	}
	scanner := bufio.NewScanner(in)

	fmt.Fprintf(out, "\n%s\n%s\n", view.Title, strings.Repeat("=", len(view.Title)))
	if view.HeaderImageURL != "" {
		fmt.Fprintf(out, "[header image: %s]\n", view.HeaderImageURL)
	}

	for n, q := range view.Questions {
		fmt.Fprintf(out, "\n%d. %s\n", n+1, q.Title)
		if q.ImageURL != "" {
			fmt.Fprintf(out, "   [image: %s]\n", q.ImageURL)
		}
		if q.Passage != "" {
			fmt.Fprintf(out, "   %s\n", q.Passage)
		}

		switch q.Input {
		case fill.InputCheckboxes:
			for i, opt := range q.Options {
				fmt.Fprintf(out, "   [%d] %s\n", i+1, opt)
			}
			fmt.Fprint(out, "Select options in order (e.g. 3,1), blank to skip: ")
			if !scanner.Scan() {
				return scanner.Err()
			}
			for _, pick := range parsePicks(scanner.Text(), len(q.Options)) {
				if err := session.Toggle(q.ClientID, q.Options[pick], true); err != nil {
					return err
				}
			}
		case fill.InputText:
			fmt.Fprintf(out, "%s ", q.Placeholder)
			if !scanner.Scan() {
				return scanner.Err()
			}
			if text := strings.TrimSpace(scanner.Text()); text != "" {
				if err := session.SetText(q.ClientID, text); err != nil {
					return err
				}
			}
		}
	}

	for {
		fmt.Fprint(out, "\nSubmit form? [Y/n] ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		if ans := strings.ToLower(strings.TrimSpace(scanner.Text())); ans == "n" || ans == "no" {
			fmt.Fprintln(out, "Not submitted.")
			return nil
		}
		if err := session.Submit(ctx); err != nil {
			fmt.Fprintln(out, "Submit failed, try again?")
			continue
		}
		fmt.Fprintln(out, "Form Submitted Successfully! Your responses have been recorded.")
		return nil
	}
}

// parsePicks turns "3, 1" into zero-based option indexes, skipping
// anything out of range and repeats
func parsePicks(line string, n int) []int {
	seen := make(map[int]bool)
	var picks []int
	for _, field := range strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ' ' }) {
		i, err := strconv.Atoi(field)
		if err != nil || i < 1 || i > n || seen[i-1] {
			continue
		}
		seen[i-1] = true
		picks = append(picks, i-1)
	}
	return picks
}
