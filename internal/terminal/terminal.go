package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Terminal is the line-oriented boundary: write a prompt, read one line, trim
// it. Reads after EOF return empty values with ok=false so menu loops can
// unwind instead of spinning.
type Terminal struct {
	scanner *bufio.Scanner
	out     io.Writer
	eof     bool
}

func New(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// EOF reports whether the input stream has ended.
func (t *Terminal) EOF() bool {
	return t.eof
}

// Line writes one formatted line to the screen.
func (t *Terminal) Line(format string, args ...any) {
	fmt.Fprintf(t.out, format+"\n", args...)
}

// Blank writes an empty line.
func (t *Terminal) Blank() {
	fmt.Fprintln(t.out)
}

// Prompt writes the label and reads one line.
func (t *Terminal) Prompt(label string) string {
	fmt.Fprintf(t.out, "%s ", label)
	return t.readLine()
}

// Choice reads a menu selection. ok is false for EOF or anything that is not
// an integer; range checks belong to the menu owning the choice set.
func (t *Terminal) Choice() (int, bool) {
	input := t.Prompt(">")
	if t.eof {
		return 0, false
	}

	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, false
	}
	return n, true
}

// PromptInt keeps asking until the input parses as an integer. ok is false
// only on EOF.
func (t *Terminal) PromptInt(label string) (int64, bool) {
	for {
		input := t.Prompt(label)
		if t.eof {
			return 0, false
		}

		n, err := strconv.ParseInt(input, 10, 64)
		if err != nil {
			t.Blank()
			t.Line("The value you've entered is not acceptable. Please enter in a number for the value of the change.")
			continue
		}
		return n, true
	}
}

// PromptOptionalInt reads an integer where empty input means "not
// applicable" (nil). Non-empty input must parse; it re-prompts otherwise.
func (t *Terminal) PromptOptionalInt(label string) (*int64, bool) {
	for {
		input := t.Prompt(label)
		if t.eof {
			return nil, false
		}
		if input == "" {
			return nil, true
		}

		n, err := strconv.ParseInt(input, 10, 64)
		if err != nil {
			t.Line("Please enter a whole number, or nothing to skip.")
			continue
		}
		return &n, true
	}
}

func (t *Terminal) readLine() string {
	if t.eof {
		return ""
	}
	if !t.scanner.Scan() {
		t.eof = true
		return ""
	}
	return strings.TrimSpace(t.scanner.Text())
}
