// Package output provides utilities for creating termenv.Output with
// consistent color profile and TTY handling across the CLI.
package output

import (
	"io"
	"os"
	"strconv"

	"github.com/muesli/termenv"
	"github.com/vividus-framework/vividus-cli/internal/core/domain"
)

// ColorProfile returns the color profile to use for CLI output.
// It checks if NO_COLOR is set, returning Ascii if so.
// Otherwise, it detects the terminal's capabilities automatically.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a new termenv.Output with the specific profile logic.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ColorProfile()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}

// Verdict renders the final run outcome line, green for passed and red for
// failed. Leniently accepted runs carry their reason so a passing line is
// never mistaken for a clean one.
func Verdict(out *termenv.Output, v domain.Verdict) string {
	if v.OK {
		line := out.String("PASSED").Foreground(out.Color("2")).Bold().String()
		if v.Reason != domain.ReasonClean {
			line += " (" + v.Reason.String() + ")"
		}
		return line
	}

	line := out.String("FAILED").Foreground(out.Color("1")).Bold().String()
	return line + " (exit code " + strconv.Itoa(v.ExitCode) + ")"
}
