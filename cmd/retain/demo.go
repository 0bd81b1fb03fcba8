package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vango-dev/retain/internal/demo"
	"github.com/vango-dev/retain/internal/errors"
	"github.com/vango-dev/retain/pkg/host/htmlhost"
	"github.com/vango-dev/retain/pkg/vdom"
)

func demoCmd() *cobra.Command {
	var (
		keyed   bool
		journal bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "demo [name]",
		Short: "Play a scripted demo",
		Long: `Render a demo into an in-memory HTML document, fire its scripted
events, and print the document after every step.

Demos: ` + strings.Join(demo.Names(), ", ") + `

Examples:
  retain demo toggle
  retain demo todo --keyed --journal`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "toggle"
			if len(args) == 1 {
				name = args[0]
			}
			return runDemo(cmd.Context(), cmd.OutOrStdout(), name, keyed, journal, verbose)
		},
	}

	cmd.Flags().BoolVarP(&keyed, "keyed", "k", false, "Match children by key")
	cmd.Flags().BoolVarP(&journal, "journal", "j", false, "Print each step's host mutations as JSON")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every reconciliation pass")

	return cmd
}

func runDemo(ctx context.Context, out io.Writer, name string, keyed, journal, verbose bool) error {
	d, ok := demo.Lookup(name)
	if !ok {
		return errors.New(errors.CodeUsage).
			WithDetail("Unknown demo " + name).
			WithSuggestion("Choose one of: " + strings.Join(demo.Names(), ", "))
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	opts := []vdom.Option{
		vdom.WithLogger(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))),
	}
	if keyed {
		opts = append(opts, vdom.WithKeyedChildren())
	}

	doc := htmlhost.New()
	root := vdom.NewRoot(doc, doc.Container(), opts...)

	fmt.Fprintf(out, "%s: %s\n\n", d.Name, d.Description)
	return demo.Play(ctx, d, root, doc, func(i int, s demo.Step) error {
		if i < 0 {
			fmt.Fprintln(out, "initial render")
		} else {
			fmt.Fprintf(out, "step %d: %s at %s\n", i+1, s.Event, s.Path)
		}
		fmt.Fprintf(out, "  %s\n", doc.HTML())

		if journal {
			enc := json.NewEncoder(out)
			for _, m := range doc.Mutations() {
				fmt.Fprint(out, "    ")
				if err := enc.Encode(m); err != nil {
					return err
				}
			}
		}
		doc.ResetJournal()
		return nil
	})
}
