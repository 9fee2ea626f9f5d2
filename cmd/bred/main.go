package main

import (
	"fmt"
	"log/slog"
	"os"

	"bred/internal/dump"
	"bred/internal/runner"

	"github.com/spf13/cobra"
)

var version = "0.4.0"

var (
	length   int
	hexMode  bool
	binMode  bool
	color    bool
	space    bool
	progress bool
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:           "bred [file]",
	Short:         "The fastest binary file reader with coloring",
	Long:          `bred dumps a file, or stdin if no file is given, as escaped text, hex or binary with a running offset.`,
	Version:       version,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		slog.SetDefault(runner.NewLogger(os.Stderr, verbose))

		opts, err := resolveOptions(cmd, args)
		if err != nil {
			return err
		}
		return runner.Run(opts, os.Stdin, os.Stdout, os.Stderr)
	},
}

// resolveOptions translates the flags into runner options. The line length
// defaults per mode when --length is not given.
func resolveOptions(cmd *cobra.Command, args []string) (runner.Options, error) {
	mode := dump.ModeText
	switch {
	case hexMode:
		mode = dump.ModeHex
	case binMode:
		mode = dump.ModeBinary
	}

	n := mode.DefaultLength()
	if cmd.Flags().Changed("length") {
		n = length
	}

	opts := runner.Options{
		Mode:     mode,
		Length:   n,
		Color:    color,
		Space:    space,
		Progress: progress,
	}
	if len(args) == 1 {
		opts.Path = args[0]
	}
	opts.ApplyEnv(os.Getenv)

	if _, err := opts.Config(); err != nil {
		return runner.Options{}, err
	}
	return opts, nil
}

func init() {
	rootCmd.Flags().IntVarP(&length, "length", "l", 0, "Number of bytes/bits per line (default 16 for hex, 64 otherwise)")
	rootCmd.Flags().BoolVarP(&hexMode, "hex", "x", false, "Print in hex (fastest mode)")
	rootCmd.Flags().BoolVarP(&binMode, "binary", "b", false, "Print in binary")
	rootCmd.Flags().BoolVarP(&color, "color", "G", false, "Print in color (disabled by a non-empty NO_COLOR)")
	rootCmd.Flags().BoolVarP(&space, "space", "s", false, "Highlight space characters (0x20)")
	rootCmd.Flags().BoolVarP(&progress, "progress", "p", false, "Show a progress bar on stderr if it is a terminal")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log debug information to stderr")
	rootCmd.MarkFlagsMutuallyExclusive("hex", "binary")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\x1b[31mError:\x1b[0m %v\n", err)
		os.Exit(1)
	}
}
