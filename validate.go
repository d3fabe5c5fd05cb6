package promptline

import (
	"fmt"
	"io"
	"strings"
)

// Validators are pure accept/reject predicates over a candidate value. The
// printed diagnostic is part of the contract: on rejection each validator
// writes exactly one human-readable message to w, and the prompt loop then
// reads a fresh line. The message templates below are stable; callers and
// tests match on them verbatim.

// lengthOK accepts when maxLength is zero (no limit) or length does not
// exceed it. Rejection reports how far over the limit the input was.
func lengthOK(w io.Writer, length, maxLength int) bool {
	if maxLength == 0 || length <= maxLength {
		return true
	}
	fmt.Fprintf(w, "Your input is %d characters higher than the %d character limit. Please try again.\n",
		length-maxLength, maxLength)
	return false
}

// emptyOK accepts any non-empty input, and empty input only when the caller
// allows it.
func emptyOK(w io.Writer, length int, allowEmpty bool) bool {
	if length > 0 || allowEmpty {
		return true
	}
	fmt.Fprintln(w, "Your input cannot be empty.")
	return false
}

// rangeOK accepts v unless it violates an optional inclusive bound. Both
// bounds are independent; min is checked first.
func rangeOK[T Number](w io.Writer, v T, min, max *T) bool {
	if min != nil && v < *min {
		fmt.Fprintf(w, "Your input (%v) is lower than the minimum allowed value of %v.\n", v, *min)
		return false
	}
	if max != nil && v > *max {
		fmt.Fprintf(w, "Your input (%v) is larger than the maximum allowed value of %v.\n", v, *max)
		return false
	}
	return true
}

// numberChoiceOK accepts v when it equals some element of choices. On
// rejection the full candidate list is echoed only when showChoices is set.
func numberChoiceOK[T Number](w io.Writer, v T, choices []T, showChoices bool) bool {
	for _, choice := range choices {
		if v == choice {
			return true
		}
	}
	if showChoices {
		fmt.Fprintf(w, "Your input (%v) is not an option of the choices: ", v)
		for _, choice := range choices {
			fmt.Fprintf(w, "%v, ", choice)
		}
		fmt.Fprintln(w)
	} else {
		fmt.Fprintf(w, "Your input (%v) is not a valid choice.\n", v)
	}
	return false
}

// stringChoiceOK accepts s when it matches some element of choices, exactly
// or case-insensitively depending on caseSensitive. Rejection always reports
// the case-sensitivity mode in effect so the user knows whether spelling or
// casing was the problem.
func stringChoiceOK(w io.Writer, s string, choices []string, caseSensitive, showChoices bool) bool {
	for _, choice := range choices {
		if s == choice {
			return true
		}
		if !caseSensitive && strings.EqualFold(s, choice) {
			return true
		}
	}
	if showChoices {
		fmt.Fprintf(w, "Your input (%s) is not an option of the choices: ", s)
		for _, choice := range choices {
			fmt.Fprintf(w, "%s, ", choice)
		}
		fmt.Fprintln(w)
	} else {
		fmt.Fprintf(w, "Your input (%s) is not a valid choice. ", s)
	}
	fmt.Fprintf(w, "(Case Sensitive: %t)\n", caseSensitive)
	return false
}
