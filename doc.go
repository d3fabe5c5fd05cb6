// Package promptline provides line-oriented interactive input helpers for
// CLI programs: validated string and numeric prompts, selection from a fixed
// choice set, and a paginated, navigable list renderer.
//
// Every operation runs the same retry loop: print the prompt, read one
// trimmed line, parse it, validate it, and either return the value or print
// a diagnostic and ask again. Diagnostics go to the Console's output writer
// as plain text so callers (and tests) can observe them. Input and output
// are injected through Console, so none of the operations touch the real
// terminal unless the caller built the Console from os.Stdin/os.Stdout.
//
// The helpers are synchronous and single-threaded: each call blocks until a
// valid value arrives or the input stream fails. A read error or EOF is
// fatal and is returned to the caller; it is never retried.
package promptline
