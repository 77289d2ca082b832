package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/studiowebux/ispcli/internal/sample"
	"github.com/studiowebux/ispcli/internal/snapshot"
)

// SampleOptions configures the sample command
type SampleOptions struct {
	Output
	Format string    // json, yaml; used when writing to stdout
	Force  bool      // Overwrite without asking
	Stdin  io.Reader // Defaults to os.Stdin
}

// isTerminal is replaced in tests
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Sample writes the built-in demo snapshot
func Sample(opts SampleOptions) error {
	format, err := snapshot.ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	if opts.Path != "" {
		format = snapshot.DetectFormat(opts.Path)
		if _, err := os.Stat(opts.Path); err == nil && !opts.Force {
			if !isTerminal() {
				return fmt.Errorf("%s already exists (use --force to overwrite)", opts.Path)
			}
			if !confirm(opts.stdin(), opts.stderr(), fmt.Sprintf("%s exists. Overwrite? [y/N]: ", opts.Path)) {
				warn(opts.stderr(), "Operation cancelled.")
				return nil
			}
		}
	}

	data, err := snapshot.Encode(sample.Document(), format)
	if err != nil {
		return err
	}
	out := string(data)
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return opts.emit(out)
}

func (o SampleOptions) stdin() io.Reader {
	if o.Stdin != nil {
		return o.Stdin
	}
	return os.Stdin
}

func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt)
	input, _ := bufio.NewReader(in).ReadString('\n')
	input = strings.ToLower(strings.TrimSpace(input))
	return input == "y" || input == "yes"
}
