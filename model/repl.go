package model

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/timewinder-dev/rpn/interp"
)

const helpText = `Enter postfix expressions, e.g. "3 4 +" or "x 5 =".
Operators: + - * / and = (assign: name value =).
Commands:
  :vars           list variables
  :history        list evaluated lines
  :undo           revert the last line that changed a variable
  :trace EXPR     evaluate EXPR showing the stack after each token
  :help           show this text
  :quit           leave
`

// REPL reads lines, evaluates them in one session and prints the outcome.
type REPL struct {
	Session     *Session
	Prompt      string
	Precision   int
	Interactive bool
}

// Run processes lines from in until EOF or :quit. Results go to out and
// evaluation errors to errOut; an error never ends the loop.
func (r *REPL) Run(in io.Reader, out, errOut io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		if r.Interactive {
			fmt.Fprint(out, r.Prompt)
		}
		if !scanner.Scan() {
			if r.Interactive {
				fmt.Fprintln(out)
			}
			return scanner.Err()
		}
		if quit := r.handleLine(scanner.Text(), out, errOut); quit {
			return nil
		}
	}
}

func (r *REPL) handleLine(line string, out, errOut io.Writer) bool {
	fields := strings.Fields(line)
	if len(fields) > 0 {
		switch fields[0] {
		case ":quit", ":q":
			if len(fields) == 1 {
				return true
			}
		case ":help":
			if len(fields) == 1 {
				fmt.Fprint(out, helpText)
				return false
			}
		case ":vars":
			if len(fields) == 1 {
				fmt.Fprint(out, FormatVariables(r.Session.Variables(), r.Precision))
				return false
			}
		case ":history":
			if len(fields) == 1 {
				fmt.Fprint(out, FormatHistory(r.Session.History(), r.Precision))
				return false
			}
		case ":undo":
			if len(fields) == 1 {
				r.undo(out, errOut)
				return false
			}
		case ":trace":
			r.trace(strings.Join(fields[1:], " "), out, errOut)
			return false
		}
	}

	result, err := r.Session.EvalLine(line)
	if err != nil {
		fmt.Fprintln(errOut, FormatError(err))
		return false
	}
	if s, ok := FormatResult(result, r.Precision); ok {
		fmt.Fprintln(out, s)
	}
	return false
}

func (r *REPL) undo(out, errOut io.Writer) {
	entry, err := r.Session.Undo()
	if err != nil {
		if errors.Is(err, ErrNothingToUndo) {
			fmt.Fprintln(out, err.Error())
			return
		}
		fmt.Fprintln(errOut, FormatError(err))
		return
	}
	fmt.Fprintf(out, "undid: %s\n", entry.Line)
}

func (r *REPL) trace(line string, out, errOut io.Writer) {
	Trace(r.Session, line, &ColorReporter{Writer: out}, out, errOut, r.Precision)
}

// Trace evaluates line in s, reporting the stack after each token. It
// returns the evaluation error, which has already been printed to errOut.
func Trace(s *Session, line string, rep Reporter, out, errOut io.Writer, precision int) error {
	result, err := s.TraceLine(line, func(i int, tok string, stack *interp.Stack) {
		rep.Printf("%s", FormatTraceStep(i, tok, stack))
	})
	if err != nil {
		fmt.Fprintln(errOut, FormatError(err))
		return err
	}
	if str, ok := FormatResult(result, precision); ok {
		fmt.Fprintln(out, str)
	}
	return nil
}
