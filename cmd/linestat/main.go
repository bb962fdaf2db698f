// Command linestat reports line statistics for UTF-8 text files.
//
// It exists mostly as a working exercise of the textview zero-copy paths:
// the whole input is held in one buffer, every line is a view into it, and
// no line is ever copied.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/dshills/textview"
)

// Version information (set via ldflags during build).
var version = "dev"

// CLI defines the command-line interface for linestat.
var CLI struct {
	Paths   []string `arg:"" optional:"" type:"path" help:"Files to analyze (reads stdin when empty)"`
	Digest  bool     `help:"Include a BLAKE3 digest of each input"`
	Verbose bool     `short:"v" help:"Enable debug logging"`
	Version bool     `help:"Print version and exit"`
}

func main() {
	os.Exit(run())
}

func run() int {
	kong.Parse(&CLI,
		kong.Name("linestat"),
		kong.Description("Report line statistics for UTF-8 text files."),
	)

	if CLI.Version {
		fmt.Println(version)
		return 0
	}

	level := slog.LevelInfo
	if CLI.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if len(CLI.Paths) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			logger.Error("read stdin", "error", err)
			return 1
		}
		report("stdin", data, logger)
		return 0
	}

	exit := 0
	for _, path := range CLI.Paths {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Error("read file", "path", path, "error", err)
			exit = 1
			continue
		}
		report(path, data, logger)
	}
	return exit
}

// report prints one statistics line for a single input.
func report(name string, data []byte, logger *slog.Logger) {
	text := textview.FromBytesLossy(data)

	var lineCount, maxWidth int
	for it := text.Lines(); it.Next(); {
		lineCount++
		if w := it.Text().Width(); w > maxWidth {
			maxWidth = w
		}
	}

	logger.Debug("analyzed input",
		"name", name,
		"bytes", text.Len(),
		"lines", lineCount,
	)

	fmt.Printf("%s: %d lines, %d bytes, max width %d", name, lineCount, text.Len(), maxWidth)
	if CLI.Digest {
		sum := text.Sum256()
		fmt.Printf(", blake3 %s", hex.EncodeToString(sum[:]))
	}
	fmt.Println()
}
