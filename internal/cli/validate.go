package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/studiowebux/ispcli/internal/bcc"
	"github.com/studiowebux/ispcli/internal/snapshot"
)

// ValidateOptions configures the validate command
type ValidateOptions struct {
	File   string
	Stdout io.Writer
}

// Validate reports whether a snapshot is well formed and ready for test generation
func Validate(opts ValidateOptions) error {
	w := opts.Stdout
	if w == nil {
		w = os.Stdout
	}

	doc, err := snapshot.ReadFile(opts.File)
	if err != nil {
		failure(w, "%v", err)
		return err
	}

	active := bcc.ActiveCharacteristics(doc)
	fmt.Fprintf(w, "File: %s\n", opts.File)
	fmt.Fprintf(w, "  Parameters:      %d\n", len(doc))
	fmt.Fprintf(w, "  Characteristics: %d (%d with partitions)\n", doc.CharacteristicCount(), len(active))

	reason := bcc.CheckReady(doc)
	if reason == nil {
		fmt.Fprintf(w, "  Tests:           %d\n", bcc.ExpectedRowCount(doc))
		success(w, "Ready for Base Choice Coverage")
		return nil
	}

	var missing *bcc.MissingBaseError
	if errors.As(reason, &missing) {
		for _, col := range missing.Characteristics {
			fmt.Fprintf(w, "  %s %s\n", color.YellowString("missing base:"), col.Label())
		}
	} else {
		fmt.Fprintf(w, "  %s\n", color.YellowString(reason.Error()))
	}
	warn(w, "%s", bcc.GuidanceMessage)
	return fmt.Errorf("%w: %v", ErrNotReady, reason)
}
