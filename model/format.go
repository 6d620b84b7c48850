package model

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
	"github.com/timewinder-dev/rpn/interp"
	"github.com/timewinder-dev/rpn/vm"
)

// FormatResult renders a line's result. It returns false for vm.None, which
// is not printed at all.
func FormatResult(v vm.Value, precision int) (string, bool) {
	if vm.IsNone(v) {
		return "", false
	}
	if f, ok := vm.AsNumber(v); ok {
		return interp.FormatNumber(f, precision), true
	}
	return interp.FormatValue(v), true
}

func FormatError(err error) string {
	return color.Red.Sprint(err.Error())
}

// FormatVariables lists every binding, sorted by name
func FormatVariables(vars *interp.Variables, precision int) string {
	var b strings.Builder
	names := vars.Names()
	if len(names) == 0 {
		b.WriteString("  (none)\n")
		return b.String()
	}
	for _, name := range names {
		v, _ := vars.Lookup(name)
		b.WriteString("  ")
		b.WriteString(color.Yellow.Sprint(name))
		b.WriteString(fmt.Sprintf(" = %s\n", interp.FormatNumber(v, precision)))
	}
	return b.String()
}

// FormatHistory lists the session's lines with their outcome
func FormatHistory(entries []HistoryEntry, precision int) string {
	var b strings.Builder
	if len(entries) == 0 {
		b.WriteString("  (empty)\n")
		return b.String()
	}
	for i, e := range entries {
		b.WriteString(color.Gray.Sprintf("%4d  ", i+1))
		b.WriteString(e.Line)
		switch {
		case e.Err != nil:
			b.WriteString(color.Red.Sprint("  ! "))
			b.WriteString(color.Red.Sprint(e.Err.Error()))
		default:
			if s, ok := FormatResult(e.Result, precision); ok {
				b.WriteString(color.Green.Sprint("  => "))
				b.WriteString(s)
			}
		}
		if e.Mutated() {
			b.WriteString(color.Cyan.Sprintf("  [%s]", e.After))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatTraceStep renders the stack after one token of a traced line
func FormatTraceStep(index int, token string, stack *interp.Stack) string {
	return fmt.Sprintf("%s %-8s %s\n",
		color.Gray.Sprintf("%3d", index+1),
		color.Bold.Sprint(token),
		interp.FormatStack(stack))
}
