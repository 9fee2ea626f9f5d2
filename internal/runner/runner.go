// Package runner drives a dump: it opens the input, feeds it to the dumper
// selected by the options and flushes the output.
package runner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"bred/internal/dump"
	"bred/internal/input"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// WriteBufferSize is the size of the buffered writer in front of stdout
const WriteBufferSize = 64 * 1024

// Options is the resolved command line
type Options struct {
	// Path of the input file, empty for stdin
	Path string

	Mode dump.Mode

	// Length is the line length, see dump.Config.BytesPerLine
	Length int

	Color    bool
	Space    bool
	Progress bool
}

// ApplyEnv lets the environment override options. A non-empty NO_COLOR
// disables colors; space highlighting stays as configured.
func (o *Options) ApplyEnv(getenv func(string) string) {
	if getenv("NO_COLOR") != "" {
		o.Color = false
	}
}

// Config returns the validated dumper configuration
func (o Options) Config() (dump.Config, error) {
	cfg := dump.Config{
		BytesPerLine:   o.Length,
		Color:          o.Color,
		SpaceHighlight: o.Space,
	}
	if err := cfg.Validate(); err != nil {
		return dump.Config{}, err
	}
	return cfg, nil
}

// NewLogger creates the text logger used for diagnostics on stderr
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Run dumps the input described by opts to stdout. The configuration is
// checked before any input is opened. Any error aborts the dump.
func Run(opts Options, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	cfg, err := opts.Config()
	if err != nil {
		return err
	}

	src, err := openSource(opts.Path, stdin)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := src.Close(); closeErr != nil {
			if err == nil {
				err = fmt.Errorf("failed to close input: %w", closeErr)
			} else {
				slog.Warn("Failed to close input", "error", closeErr)
			}
		}
	}()

	slog.Debug("Starting dump",
		"mode", opts.Mode,
		"length", cfg.BytesPerLine,
		"input", src.Kind(),
		"size", src.Size(),
	)

	out := bufio.NewWriterSize(stdout, WriteBufferSize)
	engine, err := dump.New(opts.Mode, cfg, out)
	if err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	if opts.Progress && isTerminal(stderr) {
		bar = newProgressBar(stderr, src.Size())
	}

	total, chunks, err := feed(src, engine, bar)
	if err != nil {
		return err
	}
	if err := engine.Finish(); err != nil {
		return err
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	if bar != nil {
		_ = bar.Finish()
	}

	slog.Debug("Dump finished", "bytes", total, "chunks", chunks, "offset", engine.Offset())
	return nil
}

func openSource(path string, stdin io.Reader) (input.Source, error) {
	if path != "" {
		return input.Open(path)
	}
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		slog.Debug("Reading from terminal, end input with Ctrl-D")
	}
	return input.Stdin(stdin), nil
}

// feed passes every chunk of src to engine. With a progress bar, large
// chunks (a whole mapped file) are handed over in ReadBufferSize slices so
// the bar advances.
func feed(src input.Source, engine dump.Engine, bar *progressbar.ProgressBar) (total int64, chunks int, err error) {
	for {
		chunk, err := src.Next()
		if errors.Is(err, io.EOF) {
			return total, chunks, nil
		}
		if err != nil {
			return total, chunks, fmt.Errorf("failed to read input: %w", err)
		}
		chunks++

		for len(chunk) > 0 {
			n := len(chunk)
			if bar != nil {
				n = min(n, input.ReadBufferSize)
			}
			if err := engine.Process(chunk[:n]); err != nil {
				return total, chunks, err
			}
			total += int64(n)
			chunk = chunk[n:]
			if bar != nil {
				_ = bar.Add(n)
			}
		}
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newProgressBar(w io.Writer, size int64) *progressbar.ProgressBar {
	return progressbar.NewOptions64(size,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("dumping"),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionShowBytes(true),
		progressbar.OptionClearOnFinish(),
	)
}
