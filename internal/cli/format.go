package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"say-to-plan/internal/domain"
)

const shortIDLen = 8

func shortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}
	return id[:shortIDLen]
}

// dueText renders a deadline as "2026-10-19 23:59 (1 day from now)".
func dueText(due time.Time, layout string, now time.Time) string {
	return fmt.Sprintf("%s (%s)", due.Format(layout), humanize.RelTime(due, now, "ago", "from now"))
}

// writeTask prints one task line:
//
//	[x] 1a2b3c4d  Buy milk  due 2026-10-19 23:59 (1 day from now)
func writeTask(w io.Writer, t domain.Task, layout string, now time.Time) {
	box := "[ ]"
	if t.Completed {
		box = "[x]"
	}
	line := fmt.Sprintf("%s %s  %s", box, shortID(t.ID), t.Description)
	if t.DueDate != nil {
		line += "  due " + dueText(*t.DueDate, layout, now)
		if t.IsOverdue(now) {
			line += "  OVERDUE"
		}
	}
	fmt.Fprintln(w, line)
}

// writeCandidate prints a parsed candidate awaiting confirmation.
func writeCandidate(w io.Writer, c domain.ParsedCandidate, layout string, now time.Time) {
	fmt.Fprintf(w, "Task: %s\n", c.Description)
	if c.DueDate != nil {
		fmt.Fprintf(w, "Due:  %s\n", dueText(*c.DueDate, layout, now))
	} else {
		fmt.Fprintln(w, "Due:  none")
	}
}
