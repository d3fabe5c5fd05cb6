package promptline

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T {
	return &v
}

func TestLengthOK(t *testing.T) {
	tests := []struct {
		name      string
		length    int
		maxLength int
		want      bool
		wantDiag  string
	}{
		{
			name:      "no limit accepts any length",
			length:    5000,
			maxLength: 0,
			want:      true,
		},
		{
			name:      "under limit",
			length:    3,
			maxLength: 10,
			want:      true,
		},
		{
			name:      "exactly at limit",
			length:    10,
			maxLength: 10,
			want:      true,
		},
		{
			name:      "over limit reports overflow",
			length:    15,
			maxLength: 10,
			want:      false,
			wantDiag:  "Your input is 5 characters higher than the 10 character limit. Please try again.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := lengthOK(&out, tt.length, tt.maxLength)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantDiag, out.String())
		})
	}
}

func TestEmptyOK(t *testing.T) {
	tests := []struct {
		name       string
		length     int
		allowEmpty bool
		want       bool
	}{
		{name: "empty allowed", length: 0, allowEmpty: true, want: true},
		{name: "empty rejected", length: 0, allowEmpty: false, want: false},
		{name: "non-empty always accepted", length: 7, allowEmpty: false, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := emptyOK(&out, tt.length, tt.allowEmpty)
			assert.Equal(t, tt.want, got)
			if !tt.want {
				assert.Equal(t, "Your input cannot be empty.\n", out.String())
			} else {
				assert.Empty(t, out.String())
			}
		})
	}
}

func TestRangeOK(t *testing.T) {
	tests := []struct {
		name     string
		value    int
		min      *int
		max      *int
		want     bool
		wantDiag string
	}{
		{name: "no bounds", value: 42, want: true},
		{name: "min only satisfied", value: 42, min: ptr(1), want: true},
		{name: "max only satisfied", value: 42, max: ptr(100), want: true},
		{name: "both bounds satisfied", value: 42, min: ptr(1), max: ptr(100), want: true},
		{name: "equal to min", value: 1, min: ptr(1), want: true},
		{name: "equal to max", value: 100, max: ptr(100), want: true},
		{
			name:     "below min",
			value:    0,
			min:      ptr(1),
			max:      ptr(100),
			want:     false,
			wantDiag: "Your input (0) is lower than the minimum allowed value of 1.\n",
		},
		{
			name:     "above max",
			value:    500,
			min:      ptr(1),
			max:      ptr(100),
			want:     false,
			wantDiag: "Your input (500) is larger than the maximum allowed value of 100.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := rangeOK(&out, tt.value, tt.min, tt.max)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantDiag, out.String())
		})
	}
}

func TestRangeOKFloat(t *testing.T) {
	var out bytes.Buffer
	assert.True(t, rangeOK(&out, 2.5, ptr(0.0), ptr(10.0)))
	assert.False(t, rangeOK(&out, -0.1, ptr(0.0), ptr(10.0)))
	assert.Contains(t, out.String(), "lower than the minimum allowed value of 0")
}

func TestNumberChoiceOK(t *testing.T) {
	choices := []int{1, 5, 10, 15}

	t.Run("member accepted", func(t *testing.T) {
		var out bytes.Buffer
		assert.True(t, numberChoiceOK(&out, 5, choices, true))
		assert.Empty(t, out.String())
	})

	t.Run("non-member rejected with choices shown", func(t *testing.T) {
		var out bytes.Buffer
		assert.False(t, numberChoiceOK(&out, -50, choices, true))
		assert.Equal(t, "Your input (-50) is not an option of the choices: 1, 5, 10, 15, \n", out.String())
	})

	t.Run("non-member rejected with generic message", func(t *testing.T) {
		var out bytes.Buffer
		assert.False(t, numberChoiceOK(&out, -50, choices, false))
		assert.Equal(t, "Your input (-50) is not a valid choice.\n", out.String())
	})
}

func TestStringChoiceOK(t *testing.T) {
	choices := []string{"Earl", "Roger", "Mark"}

	t.Run("exact match", func(t *testing.T) {
		var out bytes.Buffer
		assert.True(t, stringChoiceOK(&out, "Earl", choices, true, true))
		assert.Empty(t, out.String())
	})

	t.Run("case-insensitive match", func(t *testing.T) {
		var out bytes.Buffer
		assert.True(t, stringChoiceOK(&out, "EARL", choices, false, true))
		assert.Empty(t, out.String())
	})

	t.Run("case-sensitive mismatch", func(t *testing.T) {
		var out bytes.Buffer
		assert.False(t, stringChoiceOK(&out, "EARL", choices, true, true))
		assert.Equal(t, "Your input (EARL) is not an option of the choices: Earl, Roger, Mark, \n(Case Sensitive: true)\n", out.String())
	})

	t.Run("generic message reports case mode", func(t *testing.T) {
		var out bytes.Buffer
		assert.False(t, stringChoiceOK(&out, "Moe", choices, false, false))
		assert.Equal(t, "Your input (Moe) is not a valid choice. (Case Sensitive: false)\n", out.String())
	})
}
