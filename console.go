package promptline

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Console couples a line-oriented input source with an output sink. All
// prompt operations read from and write to a Console, which keeps the
// library testable without a real terminal: tests inject a strings.Reader
// and a bytes.Buffer.
//
// A Console is not safe for concurrent use; the library assumes one active
// prompt at a time on one goroutine.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
	log zerolog.Logger
}

// Option configures a Console.
type Option func(*Console)

// WithLogger attaches a structured logger to the Console. Prompt operations
// emit debug-level events for accepted and rejected input. Without this
// option the Console logs nowhere.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Console) {
		c.log = log
	}
}

// New creates a Console reading lines from in and writing prompts and
// diagnostics to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:  bufio.NewScanner(in),
		out: out,
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Default creates a Console bound to os.Stdin and os.Stdout.
func Default(opts ...Option) *Console {
	return New(os.Stdin, os.Stdout, opts...)
}

// printPrompt writes text followed by a newline, or nothing when text is
// empty. Both the header prompt and the retry prompt are optional in every
// operation; an empty string suppresses the line entirely.
func (c *Console) printPrompt(text string) {
	if text != "" {
		fmt.Fprintln(c.out, text)
	}
}

// readLine reads the next line from the input source and trims surrounding
// whitespace. A scanner error is wrapped and returned; EOF without an error
// yields ErrInputClosed. Both are fatal to the calling operation.
func (c *Console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(c.in.Text()), nil
}
