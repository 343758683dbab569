package calculator

import (
	"errors"
	"strings"
	"testing"
)

func TestEval(t *testing.T) {
	tests := []struct {
		name string
		keys string
		want string
	}{
		{"single digit", "7", "7"},
		{"leading zero replaced", "0 0 5", "5"},
		{"addition", "1 2 + 3 =", "15"},
		{"subtraction below zero", "3 - 8 =", "-5"},
		{"multiplication", "6 × 7 =", "42"},
		{"ascii multiply", "6 x 7 =", "42"},
		{"division", "1 / 4 =", "0.25"},
		{"repeating decimal", "2 ÷ 3 =", "0.6666666667"},
		{"float noise trimmed", "0 . 1 + 0 . 2 =", "0.3"},
		{"integer result from floats", "2 . 5 × 4 =", "10"},
		{"chained operators", "2 + 3 × 4 =", "20"},
		{"operator shows running total", "2 + 3 ×", "5"},
		{"operator replaced before operand", "5 + - 2 =", "3"},
		{"divide by zero", "5 ÷ 0 =", "Error"},
		{"digit after error", "5 ÷ 0 = 4", "4"},
		{"equals without operator", "9 =", "9"},
		{"digit after result starts fresh", "2 + 2 = 7", "7"},
		{"decimal once", "1 . . 5", "1.5"},
		{"decimal after operator", "3 + .", "0."},
		{"clear", "1 2 + 3 C", "0"},
		{"clear entry keeps operation", "1 2 + 9 CE 3 =", "15"},
		{"backspace", "1 2 3 ⌫", "12"},
		{"backspace to zero", "7 BK", "0"},
		{"backspace clears error", "7 / 0 = BK", "0"},
		{"backspace negative single digit", "7 ± ⌫", "0"},
		{"negate", "5 ±", "-5"},
		{"negate twice", "5 +/- +/-", "5"},
		{"negate zero", "±", "0"},
		{"negate in expression", "5 ± + 8 =", "3"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Eval(strings.Fields(tc.keys))
			if err != nil {
				t.Fatalf("Eval() failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("Eval(%q) = %q, expected %q", tc.keys, got, tc.want)
			}
		})
	}
}

func TestStatus(t *testing.T) {
	c := New()
	for _, k := range []string{"1", "2", "+"} {
		if err := c.Press(k); err != nil {
			t.Fatal(err)
		}
	}
	if c.Status() != "12 +" {
		t.Errorf("Status() = %q, expected \"12 +\"", c.Status())
	}

	c.Equals()
	if c.Status() != "" {
		t.Errorf("Status() after equals = %q", c.Status())
	}
}

func TestDivideByZeroClearsOperation(t *testing.T) {
	c := New()
	for _, k := range strings.Fields("8 ÷ 0 =") {
		if err := c.Press(k); err != nil {
			t.Fatal(err)
		}
	}
	if c.Display() != ErrorDisplay || c.Status() != "" {
		t.Errorf("display=%q status=%q", c.Display(), c.Status())
	}

	c.Negate()
	c.Backspace()
	if c.Display() != "0" {
		t.Errorf("backspace on error should reset, got %q", c.Display())
	}
}

func TestPressUnknownKey(t *testing.T) {
	c := New()
	err := c.Press("sqrt")
	if !errors.Is(err, ErrUnknownKey) {
		t.Errorf("expected ErrUnknownKey, got %v", err)
	}

	if _, err := Eval([]string{"1", "%"}); err == nil {
		t.Error("Eval should stop on unknown keys")
	}
}

func TestDigitRange(t *testing.T) {
	c := New()
	if err := c.Digit(10); err == nil {
		t.Error("expected error for digit 10")
	}
	if c.Display() != "0" {
		t.Errorf("rejected digit changed display to %q", c.Display())
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{3, "3"},
		{-0.0, "0"},
		{1e20, "100000000000000000000"},
		{0.1, "0.1"},
		{-1.5, "-1.5"},
		{1e-12, "0"},
		{-1e-12, "0"},
	}
	for _, tc := range tests {
		if got := format(tc.in); got != tc.want {
			t.Errorf("format(%v) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestKeypadKeysAllPress(t *testing.T) {
	c := New()
	for _, row := range Keypad {
		for _, k := range row {
			if err := c.Press(k); err != nil {
				t.Errorf("keypad key %q rejected: %v", k, err)
			}
		}
	}
}
