package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/vango-dev/retain/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┬─┐┌─┐┌┬┐┌─┐┬┌┐┌
  ├┬┘├┤  │ ├─┤││││
  ┴└─└─┘ ┴ ┴ ┴┴┘└┘
`

func main() {
	if fd := os.Stderr.Fd(); !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		errors.DisableColors()
	}
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprint(os.Stderr, errors.FromError(err, errors.CodeUsage).Format())
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "retain",
		Short: "A retained-mode UI reconciler",
		Long: `retain keeps a host tree in sync with declarative element trees.

Commands:

  • demo    play a scripted demo against an in-memory HTML document
  • serve   mount a demo behind the live HTTP inspector
  • version print build information`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		demoCmd(),
		serveCmd(),
		versionCmd(),
	)
	return root
}

// printBanner prints the ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
