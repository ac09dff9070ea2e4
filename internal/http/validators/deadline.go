package validators

import (
	"time"

	apperrors "task-board.com/task-board/internal/errors"
)

var deadlineFormats = []string{
	time.RFC3339,
	"2006-01-02",
}

// ParseDeadline accepts an RFC 3339 timestamp or a bare date.
func ParseDeadline(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, apperrors.Validation("deadline is required")
	}

	for _, format := range deadlineFormats {
		if t, err := time.Parse(format, raw); err == nil {
			return t, nil
		}
	}

	return time.Time{}, apperrors.Validation("deadline must be a valid date")
}
