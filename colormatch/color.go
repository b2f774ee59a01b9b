package colormatch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var ErrMalformedColor = errors.New("malformed color")

// MalformedColorError reports a color string that could not be parsed strictly.
type MalformedColorError struct {
	Input  string
	Reason string
}

func (e *MalformedColorError) Error() string {
	return fmt.Sprintf("malformed color %q: %s", e.Input, e.Reason)
}

func (e *MalformedColorError) Unwrap() error {
	return ErrMalformedColor
}

// RGB is the canonical internal color. Every algorithm in this package works
// on RGB values only; strings are converted at the boundary.
type RGB struct {
	R, G, B uint8
}

// Hex returns the canonical lowercase #rrggbb form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) Functional() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return c.Hex()
}

func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

func (c *RGB) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseHex parses a #rrggbb string, case-insensitive.
func ParseHex(s string) (RGB, error) {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "#") {
		return RGB{}, &MalformedColorError{Input: s, Reason: "missing leading #"}
	}
	if len(trimmed) != 7 {
		return RGB{}, &MalformedColorError{Input: s, Reason: "expected 6 hex digits"}
	}

	parsed, err := colorful.Hex(trimmed)
	if err != nil || !strings.EqualFold(parsed.Hex(), trimmed) {
		return RGB{}, &MalformedColorError{Input: s, Reason: "non-hex digit"}
	}
	r, g, b := parsed.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// ParseFunctional parses strings such as rgb(12,34,56) or rgba(12,34,56,0.5).
// The first three digit runs are taken as R, G and B.
func ParseFunctional(s string) (RGB, error) {
	runs := digitRuns(s)
	if len(runs) < 3 {
		return RGB{}, &MalformedColorError{Input: s, Reason: "expected three numeric channels"}
	}

	var channels [3]uint8
	for i := range channels {
		v, err := strconv.Atoi(runs[i])
		if err != nil || v > 255 {
			return RGB{}, &MalformedColorError{Input: s, Reason: "channel out of range"}
		}
		channels[i] = uint8(v)
	}
	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// ParseColor accepts either encoding: a leading # selects hex, anything else
// is read as a functional literal.
func ParseColor(s string) (RGB, error) {
	if strings.HasPrefix(strings.TrimSpace(s), "#") {
		return ParseHex(s)
	}
	return ParseFunctional(s)
}

func MustParseHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic("MustParseHex: " + err.Error())
	}
	return c
}

// DecodeHex reads the digit pairs at offsets 1-2, 3-4 and 5-6. A missing or
// non-hex pair yields 0 for that channel instead of an error.
func DecodeHex(s string) RGB {
	s = strings.TrimSpace(s)
	var channels [3]uint8
	for i := range channels {
		start := 1 + i*2
		if start+2 > len(s) {
			break
		}
		if v, err := strconv.ParseUint(s[start:start+2], 16, 8); err == nil {
			channels[i] = uint8(v)
		}
	}
	return RGB{R: channels[0], G: channels[1], B: channels[2]}
}

// DecodeFunctional reads the first three digit runs. Missing runs become 0 and
// values above 255 are clamped.
func DecodeFunctional(s string) RGB {
	runs := digitRuns(s)
	var channels [3]uint8
	for i := 0; i < len(channels) && i < len(runs); i++ {
		v, err := strconv.Atoi(runs[i])
		switch {
		case err != nil, v > 255:
			channels[i] = 255
		default:
			channels[i] = uint8(v)
		}
	}
	return RGB{R: channels[0], G: channels[1], B: channels[2]}
}

// digitRuns returns every maximal run of ASCII digits, left to right.
func digitRuns(s string) []string {
	var runs []string
	start := -1
	for i := 0; i < len(s); i++ {
		isDigit := s[i] >= '0' && s[i] <= '9'
		switch {
		case isDigit && start < 0:
			start = i
		case !isDigit && start >= 0:
			runs = append(runs, s[start:i])
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, s[start:])
	}
	return runs
}
