package promptline

import (
	"fmt"
	"strings"
)

// Navigation command prompts for the paginated list. The same text is used
// as both the header and the retry message so the user always sees the
// available commands.
const (
	pageNavPrompt  = "Press N to view the next page, P for previous, S for a specific page, or E to Exit."
	pageJumpPrompt = "Enter the page you would like to view."
)

// ListOpts configures PaginatedList. ItemsPerPage must be at least one.
// ClearOnUpdate clears the terminal after every iteration, which gives
// full-screen apps a clean re-render as the user navigates.
type ListOpts struct {
	Header        string
	ItemsPerPage  int
	ClearOnUpdate bool
}

// PrintList renders the optional header followed by every item on its own
// line. One-shot and non-interactive; the paginated counterpart is
// PaginatedList.
func PrintList[T any](c *Console, header string, items []T) {
	c.printPrompt(header)
	for _, item := range items {
		fmt.Fprintln(c.out, item)
	}
}

// PaginatedList renders items one page at a time and lets the user navigate
// with single-letter commands: N (next), P (previous), S (jump to a page),
// E (exit). Commands are case-insensitive, and the command prompt re-lists
// them after invalid input. N and P clamp silently at the last and first
// page. The call blocks until the user exits; the only other way out is a
// fatal input error.
func PaginatedList[T any](c *Console, items []T, opts ListOpts) error {
	if opts.ItemsPerPage < 1 {
		return ErrInvalidPageSize
	}
	total := totalPages(len(items), opts.ItemsPerPage)
	page := 1
	done := false
	for !done {
		c.printPrompt(opts.Header)
		renderPage(c, items, page, total, opts.ItemsPerPage)

		command, err := SelectString(c, StringChoiceOpts{
			Prompt:               pageNavPrompt,
			Repeat:               pageNavPrompt,
			Choices:              []string{"N", "P", "S", "E"},
			CaseSensitive:        false,
			ShowChoicesOnFailure: true,
		})
		if err != nil {
			return err
		}

		switch strings.ToLower(command) {
		case "n":
			if page < total {
				page++
			}
		case "p":
			if page > 1 {
				page--
			}
		case "s":
			pages := make([]int, total)
			for i := range pages {
				pages[i] = i + 1
			}
			page, err = SelectNumber(c, NumberChoiceOpts[int]{
				Prompt:  pageJumpPrompt,
				Repeat:  pageJumpPrompt,
				Choices: pages,
			})
			if err != nil {
				return err
			}
		case "e":
			done = true
		}

		if opts.ClearOnUpdate {
			ClearTerminal(c)
		}
	}
	c.log.Debug().Int("pages", total).Int("items", len(items)).Msg("paginated list exited")
	return nil
}

// renderPage prints the slice of items belonging to page followed by the
// fixed-format page indicator.
func renderPage[T any](c *Console, items []T, page, total, perPage int) {
	start := (page - 1) * perPage
	end := page * perPage
	if page == total || end > len(items) {
		end = len(items)
	}
	for _, item := range items[start:end] {
		fmt.Fprintln(c.out, item)
	}
	fmt.Fprintf(c.out, "(Page %d of %d)\n", page, total)
}

// totalPages is the page count for n items at perPage each, floored at one
// so an empty list still renders a single empty page.
func totalPages(n, perPage int) int {
	pages := (n + perPage - 1) / perPage
	if pages < 1 {
		pages = 1
	}
	return pages
}
