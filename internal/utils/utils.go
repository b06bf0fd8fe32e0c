package utils

import (
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// TrimHexPrefix strips an optional "0x"/"0X" prefix from a hex string.
func TrimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

// HexToSeed decodes a hex-encoded 32-byte key seed. The "0x" prefix is
// optional.
func HexToSeed(s string) ([]byte, error) {
	raw, err := hex.DecodeString(TrimHexPrefix(s))
	if err != nil {
		return nil, fmt.Errorf("invalid hex seed: %w", err)
	}
	if len(raw) != 32 {
		return nil, fmt.Errorf("seed must be 32 bytes, got %d", len(raw))
	}
	return raw, nil
}

// StringToFloat converts a decimal string to float64
func StringToFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// FormatDecimal formats a float as a plain decimal string: no exponent
// notation, no trailing zeros after the decimal point.
func FormatDecimal(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return "0"
	}

	formatted := strconv.FormatFloat(x, 'f', -1, 64)

	if strings.Contains(formatted, ".") {
		formatted = strings.TrimRight(formatted, "0")
		formatted = strings.TrimRight(formatted, ".")
	}

	// Handle negative zero
	if formatted == "-0" {
		formatted = "0"
	}

	return formatted
}
