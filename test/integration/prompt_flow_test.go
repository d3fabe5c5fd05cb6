// Package integration exercises the public promptline API end to end with
// scripted input streams, the way a calling program would drive it.
package integration

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/promptline"
)

func intPtr(v int) *int { return &v }

// A bounded numeric prompt fed garbage, an out-of-range value, and finally
// a valid value must reject the first two with distinct diagnostics and
// return the third.
func TestBoundedNumberRetryFlow(t *testing.T) {
	var out bytes.Buffer
	c := promptline.New(strings.NewReader("abc\n500\n42\n"), &out)

	got, err := promptline.GetNumber(c, promptline.NumberOpts[int]{
		Prompt: "Pick a number between 1 and 100!",
		Repeat: "Try Again.",
		Min:    intPtr(1),
		Max:    intPtr(100),
	})
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	transcript := out.String()
	assert.Contains(t, transcript, "Please enter a valid int value.")
	assert.Contains(t, transcript, "Your input (500) is larger than the maximum allowed value of 100.")
	first := strings.Index(transcript, "Please enter a valid int value.")
	second := strings.Index(transcript, "larger than the maximum")
	assert.Less(t, first, second, "parse failure must be diagnosed before the range failure")
}

// Chained prompts share one console: a name, a menu selection, and a
// paginated browse, consuming a single scripted stream in order.
func TestChainedPromptSession(t *testing.T) {
	// Name, case-insensitive choice, two pages forward, one back, exit.
	input := strings.Join([]string{"Ada", "earl", "n", "n", "p", "e"}, "\n") + "\n"

	var out bytes.Buffer
	c := promptline.New(strings.NewReader(input), &out)

	name, err := promptline.GetString(c, promptline.StringOpts{
		Prompt:    "Enter your name:",
		MaxLength: 25,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada", name)

	grandpa, err := promptline.SelectString(c, promptline.StringChoiceOpts{
		Prompt:  "Pick a grandpa:",
		Choices: []string{"Earl", "Roger", "Mark"},
	})
	require.NoError(t, err)
	assert.Equal(t, "earl", grandpa)

	items := []string{"a", "b", "c", "d", "e", "f", "g"}
	err = promptline.PaginatedList(c, items, promptline.ListOpts{
		Header:       "Letters:",
		ItemsPerPage: 2,
	})
	require.NoError(t, err)

	transcript := out.String()
	assert.Contains(t, transcript, "(Page 1 of 4)")
	assert.Contains(t, transcript, "(Page 3 of 4)")
	assert.Contains(t, transcript, "e\nf\n(Page 3 of 4)")
	// Back on page 2 after the single P command.
	assert.Equal(t, 2, strings.Count(transcript, "(Page 2 of 4)"))
}

// Selection operations with an unsatisfiable constraint must fail before
// consuming any input, leaving the stream intact for the next prompt.
func TestEmptyChoicesLeaveStreamUntouched(t *testing.T) {
	var out bytes.Buffer
	c := promptline.New(strings.NewReader("42\n"), &out)

	_, err := promptline.SelectNumber(c, promptline.NumberChoiceOpts[int]{})
	require.ErrorIs(t, err, promptline.ErrNoChoices)

	got, err := promptline.GetNumber(c, promptline.NumberOpts[int]{})
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}
