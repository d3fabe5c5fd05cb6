package promptline

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Number is the set of numeric types the prompt operations can parse.
type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// StringOpts configures GetString. Prompt is shown once before the first
// attempt and Repeat after every failed attempt; either may be empty to
// suppress the line. MaxLength of zero means unlimited.
type StringOpts struct {
	Prompt     string
	Repeat     string
	MaxLength  int
	AllowEmpty bool
}

// NumberOpts configures GetNumber. Min and Max are optional inclusive
// bounds; nil means unbounded on that side.
type NumberOpts[T Number] struct {
	Prompt string
	Repeat string
	Min    *T
	Max    *T
}

// GetString prompts for a line of text and returns it trimmed of
// surrounding whitespace. Input is re-requested until it satisfies the
// length and emptiness constraints. The only errors are fatal read
// failures; validation failures print a diagnostic and loop.
func GetString(c *Console, opts StringOpts) (string, error) {
	c.printPrompt(opts.Prompt)
	for {
		line, err := c.readLine()
		if err != nil {
			return "", err
		}
		length := utf8.RuneCountInString(line)
		if lengthOK(c.out, length, opts.MaxLength) && emptyOK(c.out, length, opts.AllowEmpty) {
			c.log.Debug().Int("length", length).Msg("string input accepted")
			return line, nil
		}
		c.log.Debug().Int("length", length).Msg("string input rejected")
		c.printPrompt(opts.Repeat)
	}
}

// GetNumber prompts for a number of type T and returns it once it parses
// and falls within the optional bounds. Malformed input prints a
// diagnostic naming the expected type and loops.
func GetNumber[T Number](c *Console, opts NumberOpts[T]) (T, error) {
	var zero T
	c.printPrompt(opts.Prompt)
	for {
		line, err := c.readLine()
		if err != nil {
			return zero, err
		}
		v, perr := parseNumber[T](line)
		switch {
		case perr != nil:
			fmt.Fprintf(c.out, "Please enter a valid %T value.\n", zero)
			c.log.Debug().Str("input", line).Msg("numeric parse failed")
		case rangeOK(c.out, v, opts.Min, opts.Max):
			c.log.Debug().Str("input", line).Msg("numeric input accepted")
			return v, nil
		}
		c.printPrompt(opts.Repeat)
	}
}

// parseNumber converts trimmed text into T using the strconv parser that
// matches T's kind and width, so overflow is caught at parse time.
func parseNumber[T Number](s string) (T, error) {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		f, err := strconv.ParseFloat(s, numberBits(zero))
		if err != nil {
			return zero, err
		}
		return T(f), nil
	case uint, uint8, uint16, uint32, uint64:
		u, err := strconv.ParseUint(s, 10, numberBits(zero))
		if err != nil {
			return zero, err
		}
		return T(u), nil
	default:
		i, err := strconv.ParseInt(s, 10, numberBits(zero))
		if err != nil {
			return zero, err
		}
		return T(i), nil
	}
}

// numberBits reports the bit size strconv should parse zero's type with.
func numberBits[T Number](zero T) int {
	switch any(zero).(type) {
	case int8, uint8:
		return 8
	case int16, uint16:
		return 16
	case int32, uint32, float32:
		return 32
	case int, uint:
		return strconv.IntSize
	default:
		return 64
	}
}
