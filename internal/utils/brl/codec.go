package brl

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// maxAccumulatedDigits caps ParseDigits so the accumulated centavos fit in int64.
const maxAccumulatedDigits = 15

// Parse reads a loosely formatted amount such as "400", "400,50", "1.234,56",
// "R$ 1.234,56" or "1234.56".
//
// When a comma is present it is the decimal separator and every dot before it
// is a grouping separator. Without a comma, a last dot followed by one or two
// digits is the decimal separator and every other dot is grouping. More than
// two fractional digits are rounded to centavos. Empty or unparseable input
// yields Zero.
func Parse(input string) Amount {
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, input)
	s = strings.ReplaceAll(s, Symbol, "")

	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}

	intPart, fracPart := splitSeparators(numericPrefix(s))
	if intPart == "" && fracPart == "" {
		return Zero
	}
	if intPart == "" {
		intPart = "0"
	}
	literal := intPart
	if fracPart != "" {
		literal += "." + fracPart
	}

	d, err := decimal.NewFromString(literal)
	if err != nil {
		return Zero
	}
	if negative {
		d = d.Neg()
	}
	return FromDecimal(d)
}

// ParseDigits treats every digit in input as the next centavo digit, ignoring
// any other character: "1.234,5" is 12345 centavos. Digits beyond the
// fifteenth significant one are dropped.
func ParseDigits(input string) Amount {
	var cents int64
	significant := 0
	for i := 0; i < len(input); i++ {
		c := input[i]
		if c < '0' || c > '9' {
			continue
		}
		if significant == maxAccumulatedDigits {
			break
		}
		cents = cents*10 + int64(c-'0')
		if cents > 0 {
			significant++
		}
	}
	return Amount(cents)
}

// FormatDisplay renders "R$ 1.234,56": grouping dots every three integer
// digits, a decimal comma and exactly two fractional digits.
func FormatDisplay(a Amount) string {
	negative, units, cents := a.parts()
	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(Symbol)
	b.WriteByte(' ')
	b.WriteString(groupThousands(strconv.FormatUint(units, 10)))
	b.WriteByte(',')
	writeTwoDigits(&b, cents)
	return b.String()
}

// FormatEditable renders a value for re-editing: no symbol, no grouping,
// "400" for whole amounts and "400,5" or "400,05" otherwise.
func FormatEditable(a Amount) string {
	negative, units, cents := a.parts()
	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(strconv.FormatUint(units, 10))
	if cents == 0 {
		return b.String()
	}
	b.WriteByte(',')
	if cents%10 == 0 {
		b.WriteString(strconv.FormatUint(cents/10, 10))
	} else {
		writeTwoDigits(&b, cents)
	}
	return b.String()
}

// FormatCanonical renders "<integer>.<two digits>" for the server boundary.
func FormatCanonical(a Amount) string {
	negative, units, cents := a.parts()
	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(strconv.FormatUint(units, 10))
	b.WriteByte('.')
	writeTwoDigits(&b, cents)
	return b.String()
}

// HasDigit reports whether s contains at least one ASCII digit.
func HasDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}

// numericPrefix returns the leading run of digits, dots and commas.
func numericPrefix(s string) string {
	end := 0
	for end < len(s) {
		c := s[end]
		if (c < '0' || c > '9') && c != '.' && c != ',' {
			break
		}
		end++
	}
	return s[:end]
}

func splitSeparators(s string) (intPart, fracPart string) {
	if i := strings.IndexByte(s, ','); i >= 0 {
		return strings.ReplaceAll(s[:i], ".", ""), leadingDigits(s[i+1:])
	}
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		if tail := s[i+1:]; len(tail) >= 1 && len(tail) <= 2 {
			return strings.ReplaceAll(s[:i], ".", ""), tail
		}
	}
	return strings.ReplaceAll(s, ".", ""), ""
}

func leadingDigits(s string) string {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func writeTwoDigits(b *strings.Builder, n uint64) {
	b.WriteByte(byte('0' + n/10))
	b.WriteByte(byte('0' + n%10))
}
