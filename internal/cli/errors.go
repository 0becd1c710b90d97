package cli

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// ErrPromptCancelled indicates that the user aborted an interactive prompt.
var ErrPromptCancelled = errors.New("prompt cancelled")

const bannerDelimiter = "----------------------------------------"

// printErrorBanner frames the error between delimiter lines and follows it
// with a timestamped abort notice, the tool's terminal failure output.
func printErrorBanner(w io.Writer, err error) {
	fmt.Fprintln(w, bannerDelimiter)
	fmt.Fprintf(w, "Error: %v\n", err)
	fmt.Fprintln(w, bannerDelimiter)
	fmt.Fprintf(w, "Aborted at %s\n", time.Now().Format(time.RFC3339))
}
