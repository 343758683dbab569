// Package calculator implements the four-function keypad calculator from the
// board demos as a pure state machine. Hosts feed it key labels and show
// Display and Status.
package calculator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Op is a binary operator.
type Op string

const (
	OpNone Op = ""
	OpAdd  Op = "+"
	OpSub  Op = "-"
	OpMul  Op = "×"
	OpDiv  Op = "÷"
)

// ErrorDisplay is shown after division by zero or an unrepresentable result.
const ErrorDisplay = "Error"

// ErrUnknownKey is returned by Press for labels that are not on the keypad.
var ErrUnknownKey = errors.New("unknown key")

// maxDecimals bounds the fractional digits of a non-integer result.
const maxDecimals = 10

// Calculator holds the entry being typed, the stored left operand and the
// pending operator. The zero value is not ready; use New.
type Calculator struct {
	current   string
	previous  string
	op        Op
	resetNext bool // next digit starts a new entry
}

// New returns a cleared calculator showing "0".
func New() *Calculator {
	c := &Calculator{}
	c.Clear()
	return c
}

// Display returns the main display text.
func (c *Calculator) Display() string {
	return c.current
}

// Status returns the pending operation, e.g. "12 +", or "" when none.
func (c *Calculator) Status() string {
	if c.previous == "" || c.op == OpNone {
		return ""
	}
	return c.previous + " " + string(c.op)
}

// Digit appends d (0-9) to the entry, or starts a new entry after an
// operator, a result or a lone zero.
func (c *Calculator) Digit(d int) error {
	if d < 0 || d > 9 {
		return fmt.Errorf("calculator: digit %d out of range", d)
	}
	s := strconv.Itoa(d)
	if c.resetNext || c.current == "0" {
		c.current = s
		c.resetNext = false
	} else {
		c.current += s
	}
	return nil
}

// Decimal adds a decimal point if the entry has none.
func (c *Calculator) Decimal() {
	if c.resetNext {
		c.current = "0."
		c.resetNext = false
		return
	}
	if !strings.Contains(c.current, ".") {
		c.current += "."
	}
}

// Operator stores the entry as the left operand. Pressing an operator while
// another is pending with a fresh right operand evaluates first, so
// "2 + 3 ×" shows 5.
func (c *Calculator) Operator(op Op) {
	if c.previous != "" && c.op != OpNone && !c.resetNext {
		c.Equals()
	}
	c.previous = c.current
	c.op = op
	c.resetNext = true
}

// Equals applies the pending operator. Without one it does nothing.
func (c *Calculator) Equals() {
	if c.previous == "" || c.op == OpNone {
		return
	}

	c.current = evaluate(c.previous, c.op, c.current)
	c.previous = ""
	c.op = OpNone
	c.resetNext = true
}

func evaluate(left string, op Op, right string) string {
	a, err := strconv.ParseFloat(left, 64)
	if err != nil {
		return ErrorDisplay
	}
	b, err := strconv.ParseFloat(right, 64)
	if err != nil {
		return ErrorDisplay
	}

	var r float64
	switch op {
	case OpAdd:
		r = a + b
	case OpSub:
		r = a - b
	case OpMul:
		r = a * b
	case OpDiv:
		if b == 0 {
			return ErrorDisplay
		}
		r = a / b
	default:
		return ErrorDisplay
	}
	return format(r)
}

// format prints integers without a decimal point and everything else with
// at most maxDecimals digits, trailing zeros trimmed.
func format(r float64) string {
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return ErrorDisplay
	}
	if r == math.Trunc(r) {
		if r == 0 {
			r = 0 // drop the sign of -0
		}
		return strconv.FormatFloat(r, 'f', 0, 64)
	}
	s := strconv.FormatFloat(r, 'f', maxDecimals, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		s = "0"
	}
	return s
}

// Clear resets everything (C).
func (c *Calculator) Clear() {
	c.current = "0"
	c.previous = ""
	c.op = OpNone
	c.resetNext = false
}

// ClearEntry resets only the entry being typed (CE).
func (c *Calculator) ClearEntry() {
	c.current = "0"
	c.resetNext = false
}

// Backspace deletes the last character; the last one leaves "0". On Error
// the whole display goes back to "0".
func (c *Calculator) Backspace() {
	next := ""
	if c.current != ErrorDisplay && len(c.current) > 1 {
		next = c.current[:len(c.current)-1]
	}
	if next == "" || next == "-" {
		next = "0"
	}
	c.current = next
	c.resetNext = false
}

// Negate flips the sign of the entry. Zero and Error are left alone.
func (c *Calculator) Negate() {
	if c.current == "0" || c.current == ErrorDisplay {
		return
	}
	if strings.HasPrefix(c.current, "-") {
		c.current = c.current[1:]
	} else {
		c.current = "-" + c.current
	}
}

// Press applies one keypad label. Both the board's labels and ASCII
// spellings are accepted: "x" and "*" for ×, "/" for ÷, "BK" for ⌫, "+/-" for ±.
func (c *Calculator) Press(key string) error {
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		return c.Digit(int(key[0] - '0'))
	}

	switch key {
	case ".":
		c.Decimal()
	case "+":
		c.Operator(OpAdd)
	case "-":
		c.Operator(OpSub)
	case "×", "x", "*":
		c.Operator(OpMul)
	case "÷", "/":
		c.Operator(OpDiv)
	case "=", "enter":
		c.Equals()
	case "C", "c", "esc":
		c.Clear()
	case "CE", "ce", "delete":
		c.ClearEntry()
	case "⌫", "BK", "backspace":
		c.Backspace()
	case "±", "+/-", "n":
		c.Negate()
	default:
		return fmt.Errorf("calculator: %w %q", ErrUnknownKey, key)
	}
	return nil
}

// Eval presses keys in order on a fresh calculator and returns the display.
func Eval(keys []string) (string, error) {
	c := New()
	for _, k := range keys {
		if err := c.Press(k); err != nil {
			return c.Display(), err
		}
	}
	return c.Display(), nil
}

// Keypad is the board's button layout, row by row.
var Keypad = [][]string{
	{"C", "CE", "⌫", "÷"},
	{"7", "8", "9", "×"},
	{"4", "5", "6", "-"},
	{"1", "2", "3", "+"},
	{"±", "0", ".", "="},
}
