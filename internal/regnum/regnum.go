// File: regnum.go
// Title: Register Number Literals
// Description: Arbitrary-precision register numbers used for base and window
//              addresses. Parses decimal, 0x/0b/0o prefixed and Verilog-style
//              sized or unsized literals, remembering width and radix so the
//              value can be printed back in its source form.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package regnum

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/ordt/foundation/core/error"
)

// Radix is the base a number was written in.
type Radix int

const (
	Binary      Radix = 2
	Octal       Radix = 8
	Decimal     Radix = 10
	Hexadecimal Radix = 16
)

// Number is an immutable, non-negative register number.
type Number struct {
	value *big.Int
	width int // bits, 0 when unsized
	radix Radix
}

// New returns an unsized decimal number.
func New(v int64) *Number {
	return &Number{value: big.NewInt(v), radix: Decimal}
}

// Parse converts a numeric literal into a Number. Accepted forms:
//
//	4096  0x1000  0b1_0000  0o10000  'h1000  32'h0000_1000  16'd4096
func Parse(text string) (*Number, error) {
	s := strings.ReplaceAll(strings.TrimSpace(text), "_", "")
	if s == "" {
		return nil, invalid(text, "empty literal")
	}

	if idx := strings.IndexByte(s, '\''); idx >= 0 {
		return parseVerilog(text, s[:idx], s[idx+1:])
	}

	radix := Decimal
	digits := s
	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			radix, digits = Hexadecimal, s[2:]
		case 'b', 'B':
			radix, digits = Binary, s[2:]
		case 'o', 'O':
			radix, digits = Octal, s[2:]
		}
	}

	value, ok := parseDigits(digits, radix)
	if !ok {
		return nil, invalid(text, fmt.Sprintf("invalid base %d digits %q", radix, digits))
	}
	return &Number{value: value, radix: radix}, nil
}

func parseVerilog(text, widthPart, rest string) (*Number, error) {
	width := 0
	if widthPart != "" {
		w, err := strconv.Atoi(widthPart)
		if err != nil || w <= 0 {
			return nil, invalid(text, fmt.Sprintf("invalid width %q", widthPart))
		}
		width = w
	}
	if len(rest) < 2 {
		return nil, invalid(text, "missing radix or digits")
	}

	var radix Radix
	switch rest[0] {
	case 'h', 'H':
		radix = Hexadecimal
	case 'd', 'D':
		radix = Decimal
	case 'b', 'B':
		radix = Binary
	case 'o', 'O':
		radix = Octal
	default:
		return nil, invalid(text, fmt.Sprintf("unknown radix %q", rest[0]))
	}

	value, ok := parseDigits(rest[1:], radix)
	if !ok {
		return nil, invalid(text, fmt.Sprintf("invalid base %d digits %q", radix, rest[1:]))
	}
	if width > 0 && value.BitLen() > width {
		return nil, mdwerror.Newf("register number %s does not fit in %d bits", text, width).
			WithCode(mdwerror.CodeValueOutOfRange).
			WithDetail("input", text).
			WithDetail("width", width)
	}
	return &Number{value: value, width: width, radix: radix}, nil
}

// parseDigits only accepts plain digits, so signs and nested prefixes fail.
func parseDigits(digits string, radix Radix) (*big.Int, bool) {
	if digits == "" || digits[0] == '+' || digits[0] == '-' {
		return nil, false
	}
	return new(big.Int).SetString(digits, int(radix))
}

func invalid(text, reason string) error {
	return mdwerror.Newf("invalid register number %q: %s", text, reason).
		WithCode(mdwerror.CodeInvalidFormat).
		WithDetail("input", text)
}

// Width returns the declared bit width, or 0 for unsized literals.
func (n *Number) Width() int {
	return n.width
}

// Radix returns the radix the number was written in.
func (n *Number) Radix() Radix {
	return n.radix
}

// BigInt returns a copy of the numeric value.
func (n *Number) BigInt() *big.Int {
	return new(big.Int).Set(n.value)
}

// Uint64 returns the value and whether it fits in 64 bits.
func (n *Number) Uint64() (uint64, bool) {
	if !n.value.IsUint64() {
		return 0, false
	}
	return n.value.Uint64(), true
}

// Cmp compares the numeric values of n and other, ignoring width and radix.
func (n *Number) Cmp(other *Number) int {
	return n.value.Cmp(other.value)
}

// String renders the number in its source radix, Verilog style when sized.
func (n *Number) String() string {
	if n.width > 0 {
		return fmt.Sprintf("%d'%c%s", n.width, radixLetter(n.radix), n.value.Text(int(n.radix)))
	}
	switch n.radix {
	case Hexadecimal:
		return "0x" + n.value.Text(16)
	case Binary:
		return "0b" + n.value.Text(2)
	case Octal:
		return "0o" + n.value.Text(8)
	default:
		return n.value.Text(10)
	}
}

func radixLetter(r Radix) byte {
	switch r {
	case Hexadecimal:
		return 'h'
	case Binary:
		return 'b'
	case Octal:
		return 'o'
	default:
		return 'd'
	}
}
