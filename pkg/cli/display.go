package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/c04ch1337/repoinit/pkg/domain/interfaces"
	"github.com/fatih/color"
)

// Reporter prints human-readable progress lines. All user-facing output
// goes through here so the orchestration can be tested with a recorder.
type Reporter struct {
	out io.Writer
}

func NewReporter(out io.Writer) interfaces.Reporter {
	return &Reporter{out: out}
}

func (r *Reporter) Printf(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

func (r *Reporter) Successf(format string, args ...any) {
	fmt.Fprintf(r.out, "%s %s\n",
		color.New(color.FgGreen).Sprint("✓"),
		fmt.Sprintf(format, args...))
}

func (r *Reporter) Warnf(format string, args ...any) {
	fmt.Fprintf(r.out, "%s %s\n",
		color.New(color.FgYellow).Sprint("Warning:"),
		fmt.Sprintf(format, args...))
}

func (r *Reporter) Errorf(format string, args ...any) {
	fmt.Fprintln(r.out, color.New(color.FgRed).Sprint(fmt.Sprintf(format, args...)))
}

// Diagnostic pretty-prints the provider's error body verbatim.
func (r *Reporter) Diagnostic(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(r.out, "%v\n", v)
		return
	}
	fmt.Fprintln(r.out, string(data))
}
