package telegram

import (
	"fmt"
	"strings"

	"canvas-assistant/internal/model"
)

func (h *handler) formatDeadlines(deadlines []model.Deadline) string {
	if len(deadlines) == 0 {
		return msgNoDeadlines
	}

	now := h.now()
	var sb strings.Builder
	fmt.Fprintf(&sb, "⏰ *Upcoming deadlines* (%d)\n\n", len(deadlines))

	for i, d := range deadlines {
		if i == maxDeadlines {
			fmt.Fprintf(&sb, "_...and %d more_\n", len(deadlines)-maxDeadlines)
			break
		}
		status := ""
		if d.Submitted {
			status = " ✅"
		}
		fmt.Fprintf(&sb, "%d. *%s*%s\n   %s\n   📅 %s (in %s)\n",
			i+1,
			escapeMarkdown(d.AssignmentName),
			status,
			escapeMarkdown(d.CourseName),
			h.formatter.Format(d.DueAt),
			h.formatter.Until(d.DueAt, now),
		)
	}
	return sb.String()
}

var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

// escapeMarkdown escapes the legacy Markdown control characters.
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
