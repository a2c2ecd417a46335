package numeric

import (
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// Literal forms accepted wherever the console reads a number.
// Underscores may separate digits.
const (
	HexDigits = `[0-9a-fA-F]`
	HexNumber = `0[xX]` + HexDigits + `(?:` + HexDigits + `|_` + HexDigits + `)*`

	OctDigits = `[0-7]`
	OctNumber = `0[oO]` + OctDigits + `(?:` + OctDigits + `|_` + OctDigits + `)*`

	BinDigits = `[01]`
	BinNumber = `0[bB]` + BinDigits + `(?:` + BinDigits + `|_` + BinDigits + `)*`

	DecDigits = `[0-9]`
	DecNumber = DecDigits + `(?:` + DecDigits + `|_` + DecDigits + `)*`

	FloatFrac   = `\.` + DecDigits + `(?:` + DecDigits + `|_` + DecDigits + `)*`
	FloatExp    = `[eE][+-]?` + DecDigits + `(?:` + DecDigits + `|_` + DecDigits + `)*`
	FloatNumber = DecNumber + `(?:` + FloatFrac + `)?(?:` + FloatExp + `)?`

	// Complete number pattern for tokenizing (includes optional minus sign)
	NumberPattern = `-?(?:` + HexNumber + `|` + OctNumber + `|` + BinNumber + `|` + FloatNumber + `)`
)

var (
	decimalRegex = regexp.MustCompile(`^-?` + DecNumber + `$`)
	hexRegex     = regexp.MustCompile(`^-?` + HexNumber + `$`)
	octalRegex   = regexp.MustCompile(`^-?` + OctNumber + `$`)
	binaryRegex  = regexp.MustCompile(`^-?` + BinNumber + `$`)
	// 1.5, 1e9, 1.5e-3; a bare integer is not a float
	floatRegex = regexp.MustCompile(`^-?` + DecNumber + `(?:` + FloatFrac + `(?:` + FloatExp + `)?|` + FloatExp + `)$`)
)

// IsFloat reports whether s is a decimal fraction or uses an exponent.
func IsFloat(s string) bool {
	return floatRegex.MatchString(s)
}

// IsInteger reports whether s is an integer in any supported base.
func IsInteger(s string) bool {
	return decimalRegex.MatchString(s) || hexRegex.MatchString(s) ||
		octalRegex.MatchString(s) || binaryRegex.MatchString(s)
}

// StringToBigInt parses an integer literal of any supported base.
func StringToBigInt(s string) (*big.Int, error) {
	s = strings.ReplaceAll(s, "_", "")
	negative := strings.HasPrefix(s, "-")
	digits := strings.TrimPrefix(s, "-")

	base := 10
	switch {
	case hexRegex.MatchString(digits):
		base = 16
	case octalRegex.MatchString(digits):
		base = 8
	case binaryRegex.MatchString(digits):
		base = 2
	}
	if base != 10 {
		digits = digits[2:]
	}

	result, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, fmt.Errorf("invalid integer literal: %s", s)
	}
	if negative {
		result.Neg(result)
	}
	return result, nil
}

// FitsInBitSize checks whether value is representable in bitSize bits.
func FitsInBitSize(value *big.Int, bitSize int, signed bool) bool {
	if signed {
		min := new(big.Int).Lsh(big.NewInt(-1), uint(bitSize-1))
		max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(bitSize-1)), big.NewInt(1))
		return value.Cmp(min) >= 0 && value.Cmp(max) <= 0
	}
	if value.Sign() < 0 {
		return false
	}
	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(bitSize)), big.NewInt(1))
	return value.Cmp(max) <= 0
}

// ParseInt32 parses an integer literal that must fit a signed 32-bit value.
func ParseInt32(s string) (int32, error) {
	value, err := StringToBigInt(s)
	if err != nil {
		return 0, err
	}
	if !FitsInBitSize(value, 32, true) {
		return 0, fmt.Errorf("integer literal %s overflows i32", s)
	}
	return int32(value.Int64()), nil
}

// ParseFloat parses a float literal, ignoring digit separators.
func ParseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, "_", ""), 64)
}

// NumericToOrdinal renders 1 as 1st, 2 as 2nd, 11 as 11th and so on.
func NumericToOrdinal(n int) string {
	if n <= 0 {
		return ""
	}
	switch n % 100 {
	case 11, 12, 13:
		return fmt.Sprintf("%dth", n)
	}
	switch n % 10 {
	case 1:
		return fmt.Sprintf("%dst", n)
	case 2:
		return fmt.Sprintf("%dnd", n)
	case 3:
		return fmt.Sprintf("%drd", n)
	default:
		return fmt.Sprintf("%dth", n)
	}
}
