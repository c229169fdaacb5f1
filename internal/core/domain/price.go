package domain

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

// DisplayPrecision is the number of significant digits of a discounted price.
const DisplayPrecision = 2

// ParseDiscount parses the leading integer of raw.
//
// Leading whitespace (Unicode spaces and BOM) and a sign are accepted,
// a "0x" prefix switches to hexadecimal, parsing stops at the first
// non-digit. Returns 0 if raw has no leading digits or overflows int.
func ParseDiscount(raw string) int {
	s := strings.TrimLeftFunc(raw, isLeadingSpace)

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	base, isDigit := 10, isDecDigit
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base, isDigit = 16, isHexDigit
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == 0 {
		return 0
	}

	n, err := strconv.ParseInt(s[:end], base, strconv.IntSize)
	if err != nil {
		return 0
	}
	if neg {
		return -int(n)
	}
	return int(n)
}

// U+0085 is a space for [unicode.IsSpace] but not for the cookie grammar.
func isLeadingSpace(r rune) bool {
	return r == '\uFEFF' || (r != '\u0085' && unicode.IsSpace(r))
}

func isDecDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDecDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// DiscountAmount returns floor(discount * price / 100).
func DiscountAmount(discount int, price float64) float64 {
	return math.Floor(float64(discount) * price / 100)
}

// DiscountedPrice returns the price reduced by its discount amount.
func DiscountedPrice(discount int, price float64) float64 {
	return price - DiscountAmount(discount, price)
}

// FormatRawPrice returns the shortest decimal representation of p.
//
// Magnitudes below 1e-6 or from 1e21 up are written in exponent form
// without exponent padding: 1e-7 -> "1e-7", 1.5e21 -> "1.5e+21".
func FormatRawPrice(p float64) string {
	if s, ok := formatSpecial(p); ok {
		return s
	}
	if p == 0 {
		return "0"
	}

	abs := math.Abs(p)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(p, 'f', -1, 64)
	}

	mantissa, expPart, _ := strings.Cut(strconv.FormatFloat(p, 'e', -1, 64), "e")
	exp, _ := strconv.Atoi(expPart)
	if exp < 0 {
		return mantissa + "e-" + strconv.Itoa(-exp)
	}
	return mantissa + "e+" + strconv.Itoa(exp)
}

// FormatPrecision rounds v to digits significant digits and writes it
// in positional notation: 900.99 -> "900", 44.991 -> "45", 0.5549 -> "0.55".
//
// Rounding works on the exact binary value of v, an exact tie rounds
// away from zero: 125 -> "130", 0.125 -> "0.13".
func FormatPrecision(v float64, digits int) string {
	if digits < 1 {
		digits = 1
	}
	if s, ok := formatSpecial(v); ok {
		return s
	}
	if v == 0 {
		return strconv.FormatFloat(0, 'f', digits-1, 64)
	}

	sign := ""
	if v < 0 {
		sign = "-"
	}
	mantissaDigits, exp := roundSignificant(math.Abs(v), digits)

	var out string
	switch {
	case exp >= digits-1:
		out = mantissaDigits + strings.Repeat("0", exp-(digits-1))
	case exp >= 0:
		out = mantissaDigits[:exp+1] + "." + mantissaDigits[exp+1:]
	default:
		out = "0." + strings.Repeat("0", -exp-1) + mantissaDigits
	}
	return sign + out
}

// exactDigits covers the longest exact decimal expansion of a float64.
const exactDigits = 1100

// roundSignificant returns the first digits significant digits of the
// positive finite v rounded half up, and the decimal exponent of the
// first one.
func roundSignificant(v float64, digits int) (string, int) {
	sci := new(big.Float).SetFloat64(v).Text('e', exactDigits)
	mantissa, expPart, _ := strings.Cut(sci, "e")
	exp, _ := strconv.Atoi(expPart)
	all := strings.Replace(mantissa, ".", "", 1)

	if digits >= len(all) {
		return all + strings.Repeat("0", digits-len(all)), exp
	}

	kept := []byte(all[:digits])
	if all[digits] < '5' {
		return string(kept), exp
	}

	for i := len(kept) - 1; i >= 0; i-- {
		if kept[i] != '9' {
			kept[i]++
			return string(kept), exp
		}
		kept[i] = '0'
	}
	return "1" + string(kept[:digits-1]), exp + 1
}

func formatSpecial(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "NaN", true
	case math.IsInf(v, 1):
		return "Infinity", true
	case math.IsInf(v, -1):
		return "-Infinity", true
	}
	return "", false
}

// NewPriceView computes the display price of p for the discount.
//
// A positive discount yields the discounted price at DisplayPrecision
// significant digits with a badge, otherwise the raw price as is.
func NewPriceView(index int, p Product, discount int) PriceView {
	if discount > 0 {
		return PriceView{
			Index:    index,
			Discount: discount,
			Value: FormatPrecision(
				DiscountedPrice(discount, p.Price), DisplayPrecision,
			),
			HasBadge: true,
		}
	}
	return PriceView{
		Index:    index,
		Discount: discount,
		Value:    FormatRawPrice(p.Price),
	}
}
