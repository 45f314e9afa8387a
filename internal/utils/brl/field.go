package brl

import (
	"errors"
	"fmt"
	"strings"
)

// Strategy selects how a masked money field reacts to typing.
type Strategy int

const (
	// StrategyBlurOnly leaves typed text alone and formats only on blur.
	StrategyBlurOnly Strategy = iota
	// StrategyDigitAccumulation reads every digit typed as the next centavo
	// and re-renders the display value on each keystroke.
	StrategyDigitAccumulation
)

// ErrUnknownStrategy is returned by ParseStrategy for unrecognised names.
var ErrUnknownStrategy = errors.New("unknown money mask strategy")

func (s Strategy) String() string {
	switch s {
	case StrategyBlurOnly:
		return "blur"
	case StrategyDigitAccumulation:
		return "digits"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps the data-money-mode attribute value to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "blur", "blur-only", "blur_only":
		return StrategyBlurOnly, nil
	case "digits", "digit-accumulation", "digit_accumulation":
		return StrategyDigitAccumulation, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Field holds the text of one masked money input and applies a single
// Strategy to its focus, input, blur and submit transitions.
type Field struct {
	strategy Strategy
	value    string
	raw      string
}

// NewField binds a field with the given strategy. An initial value that
// contains a digit, e.g. one rendered by the server, is formatted at once.
func NewField(strategy Strategy, initial string) *Field {
	f := &Field{strategy: strategy, value: initial}
	if HasDigit(initial) {
		a := Parse(initial)
		f.value = FormatDisplay(a)
		f.raw = FormatCanonical(a)
	}
	return f
}

// RestoreField rebuilds a field from state held elsewhere, e.g. by a browser
// replaying events. value is taken as shown; raw is kept only if canonical.
func RestoreField(strategy Strategy, value, raw string) *Field {
	f := &Field{strategy: strategy, value: value}
	if raw != "" && FormatCanonical(Parse(raw)) == raw {
		f.raw = raw
	}
	return f
}

func (f *Field) Strategy() Strategy { return f.strategy }

// Value is the text currently shown in the input.
func (f *Field) Value() string { return f.value }

// Raw is the canonical value recorded on the last blur, empty after edits.
func (f *Field) Raw() string { return f.raw }

// Amount interprets the current state of the field.
func (f *Field) Amount() Amount {
	if f.raw != "" {
		return Parse(f.raw)
	}
	if f.strategy == StrategyDigitAccumulation {
		return ParseDigits(f.value)
	}
	return Parse(f.value)
}

// Focus prepares the value for editing. Blur-only fields drop the symbol and
// grouping; a zero amount becomes empty so typing starts clean.
func (f *Field) Focus() string {
	if f.strategy == StrategyDigitAccumulation {
		return f.value
	}
	a := f.Amount()
	if a == Zero {
		f.value = ""
	} else {
		f.value = FormatEditable(a)
	}
	return f.value
}

// Input records the text after a keystroke.
func (f *Field) Input(text string) string {
	f.raw = ""
	if f.strategy == StrategyDigitAccumulation {
		if !HasDigit(text) {
			f.value = ""
		} else {
			f.value = FormatDisplay(ParseDigits(text))
		}
		return f.value
	}
	f.value = text
	return f.value
}

// Blur renders the display form and records the canonical raw value.
func (f *Field) Blur() string {
	a := f.Amount()
	f.value = FormatDisplay(a)
	f.raw = FormatCanonical(a)
	return f.value
}

// Submit rewrites the value to the canonical form the server expects.
func (f *Field) Submit() string {
	f.value = FormatCanonical(f.Amount())
	f.raw = f.value
	return f.value
}
