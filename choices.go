package promptline

import "fmt"

// NumberChoiceOpts configures SelectNumber. Choices must be non-empty.
// ShowChoicesOnFailure echoes the full candidate list in the rejection
// diagnostic instead of the generic "not a valid choice" message.
type NumberChoiceOpts[T Number] struct {
	Prompt               string
	Repeat               string
	Choices              []T
	ShowChoicesOnFailure bool
}

// StringChoiceOpts configures SelectString. Choices must be non-empty.
// CaseSensitive controls how candidate matching compares strings; matching
// is exact either way, there is no prefix or fuzzy matching.
type StringChoiceOpts struct {
	Prompt               string
	Repeat               string
	Choices              []string
	CaseSensitive        bool
	ShowChoicesOnFailure bool
}

// SelectNumber prompts until the user enters a number equal to one of the
// candidate choices, and returns it. An empty candidate set is a
// configuration error: the operation returns ErrNoChoices before reading
// any input.
func SelectNumber[T Number](c *Console, opts NumberChoiceOpts[T]) (T, error) {
	var zero T
	if len(opts.Choices) == 0 {
		return zero, ErrNoChoices
	}
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
		case numberChoiceOK(c.out, v, opts.Choices, opts.ShowChoicesOnFailure):
			c.log.Debug().Str("input", line).Msg("number choice accepted")
			return v, nil
		}
		c.printPrompt(opts.Repeat)
	}
}

// SelectString prompts until the user enters one of the candidate choices,
// and returns the input as the user typed it (trimmed), not the canonical
// spelling from the candidate list. An empty candidate set returns
// ErrNoChoices before reading any input.
func SelectString(c *Console, opts StringChoiceOpts) (string, error) {
	if len(opts.Choices) == 0 {
		return "", ErrNoChoices
	}
	c.printPrompt(opts.Prompt)
	for {
		line, err := c.readLine()
		if err != nil {
			return "", err
		}
		if stringChoiceOK(c.out, line, opts.Choices, opts.CaseSensitive, opts.ShowChoicesOnFailure) {
			c.log.Debug().Str("input", line).Msg("string choice accepted")
			return line, nil
		}
		c.printPrompt(opts.Repeat)
	}
}
