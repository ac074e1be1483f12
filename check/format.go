package check

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/timewinder-dev/hanoi/cas"
	"github.com/timewinder-dev/hanoi/render"
	"github.com/timewinder-dev/hanoi/tower"
)

// maxTraceSteps bounds how much of a long history a report prints.
const maxTraceSteps = 16

var (
	heavyRule = strings.Repeat("=", 80)
	lightRule = strings.Repeat("-", 80)
)

func section(b *strings.Builder, title string) {
	b.WriteString(color.Gray.Sprint(lightRule))
	b.WriteString("\n")
	b.WriteString(color.Cyan.Sprint(title))
	b.WriteString("\n")
	b.WriteString(color.Gray.Sprint(lightRule))
	b.WriteString("\n")
}

// FormatViolation formats a single property violation for display
func FormatViolation(v Violation) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(color.Gray.Sprint(heavyRule))
	b.WriteString("\n")
	b.WriteString(color.Red.Sprint("PROPERTY VIOLATION"))
	b.WriteString("\n")
	b.WriteString(color.Gray.Sprint(heavyRule))
	b.WriteString("\n")
	b.WriteString(color.Bold.Sprint("Property: "))
	b.WriteString(color.Yellow.Sprintf("%s\n", v.PropertyName))

	if v.PropertyType != "" && v.PropertyType != Always {
		b.WriteString(color.Bold.Sprint("Type:     "))
		b.WriteString(fmt.Sprintf("%s\n", v.PropertyType))
	}

	b.WriteString(color.Bold.Sprint("Strategy: "))
	b.WriteString(fmt.Sprintf("%s\n", v.Strategy))
	b.WriteString(color.Bold.Sprint("Message:  "))
	b.WriteString(color.Red.Sprintf("%s\n", v.Message))
	b.WriteString(color.Bold.Sprint("State:    "))
	b.WriteString(fmt.Sprintf("#%d\n", v.StateNumber))
	b.WriteString(color.Bold.Sprint("Hash:     "))
	b.WriteString(fmt.Sprintf("0x%x\n", v.StateHash))
	b.WriteString("\n")
	section(&b, "Move Trace:")

	if len(v.Trace) == 0 {
		b.WriteString("  (Initial state - no moves yet)\n")
	} else if v.ShowDetails && v.CAS != nil {
		reconstructTrace(&b, v)
	} else {
		start := max(0, len(v.Trace)-maxTraceSteps)
		if start > 0 {
			b.WriteString(fmt.Sprintf("  ... (%d earlier moves)\n", start))
		}
		for i := start; i < len(v.Trace); i++ {
			step := v.Trace[i]
			b.WriteString(fmt.Sprintf("  %3d. %s → State 0x%x\n", i+1, step.Move, step.StateHash))
		}
	}

	if v.State != nil {
		b.WriteString("\n")
		section(&b, "Final State:")
		b.WriteString(v.State.String())
		b.WriteString("\n\n")
		b.WriteString(render.String(v.State))
	}

	b.WriteString(color.Gray.Sprint(heavyRule))
	b.WriteString("\n")
	return b.String()
}

// reconstructTrace draws the last steps of the trace from the states kept in
// the CAS, writing directly to w
func reconstructTrace(w io.Writer, v Violation) {
	start := max(0, len(v.Trace)-maxTraceSteps)
	if start > 0 {
		fmt.Fprintf(w, "  ... (%d earlier moves)\n", start)
	}
	for i := start; i < len(v.Trace); i++ {
		step := v.Trace[i]
		state, err := cas.Retrieve[*tower.State](v.CAS, step.StateHash)
		if err != nil {
			// If we can't retrieve, fall back to simple display
			fmt.Fprintf(w, "\n  Step %d: %s → State 0x%x (unavailable)\n", i+1, step.Move, step.StateHash)
			continue
		}
		fmt.Fprintf(w, "\n  Step %d:\n", i+1)
		fmt.Fprintf(w, "  ├─ Move: %s (%s to %s)\n", step.Move, step.Move.From.Name(), step.Move.To.Name())
		fmt.Fprintf(w, "  ├─ Hash: 0x%x\n", step.StateHash)
		fmt.Fprint(w, "  └─ State:\n")
		indented := &indentWriter{w: w, indent: "     ", atLineStart: true}
		fmt.Fprint(indented, render.String(state))
	}
}

// indentWriter wraps an io.Writer to add indentation to each line
type indentWriter struct {
	w           io.Writer
	indent      string
	atLineStart bool
}

func (iw *indentWriter) Write(p []byte) (n int, err error) {
	totalWritten := 0

	for len(p) > 0 {
		if iw.atLineStart {
			if _, err := io.WriteString(iw.w, iw.indent); err != nil {
				return totalWritten, err
			}
			iw.atLineStart = false
		}

		// Write up to and including the next newline
		idx := 0
		for idx < len(p) && p[idx] != '\n' {
			idx++
		}
		if idx < len(p) {
			idx++
			iw.atLineStart = true
		}

		written, err := iw.w.Write(p[:idx])
		totalWritten += written
		if err != nil {
			return totalWritten, err
		}

		p = p[idx:]
	}

	return totalWritten, nil
}

// FormatAllViolations formats all property violations for display
func FormatAllViolations(violations []Violation) string {
	if len(violations) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(color.Gray.Sprint(heavyRule))
	b.WriteString("\n")
	b.WriteString(color.Red.Sprintf("PROPERTY VIOLATIONS FOUND: %d\n", len(violations)))
	b.WriteString(color.Gray.Sprint(heavyRule))
	b.WriteString("\n")

	for i, v := range violations {
		b.WriteString(color.Yellow.Sprintf("\nViolation #%d:\n", i+1))
		b.WriteString(FormatViolation(v))
	}

	return b.String()
}

// FormatStatistics formats checking statistics
func FormatStatistics(stats Statistics) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(color.Cyan.Sprint("=== Check statistics ==="))
	b.WriteString("\n")
	b.WriteString(color.Bold.Sprint("Histories checked: "))
	b.WriteString(fmt.Sprintf("%d\n", stats.Histories))
	b.WriteString(color.Bold.Sprint("States visited: "))
	b.WriteString(fmt.Sprintf("%d\n", stats.TotalStates))
	b.WriteString(color.Bold.Sprint("Unique states found: "))
	b.WriteString(fmt.Sprintf("%d\n", stats.UniqueStates))
	b.WriteString(color.Bold.Sprint("Longest history (moves): "))
	b.WriteString(fmt.Sprintf("%d\n", stats.LongestHistory))

	b.WriteString(color.Bold.Sprint("Revisited states: "))
	if stats.Revisits > 0 {
		b.WriteString(color.Yellow.Sprintf("%d\n", stats.Revisits))
	} else {
		b.WriteString(fmt.Sprintf("%d\n", stats.Revisits))
	}

	b.WriteString(color.Bold.Sprint("Property violations found: "))
	if stats.ViolationCount > 0 {
		b.WriteString(color.Red.Sprintf("%d\n", stats.ViolationCount))
	} else {
		b.WriteString(color.Green.Sprintf("%d\n", stats.ViolationCount))
	}
	return b.String()
}
