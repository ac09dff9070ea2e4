package validators

import (
	"time"

	dto "task-board.com/task-board/internal/data_models"
	apperrors "task-board.com/task-board/internal/errors"
)

// ValidateCreateTaskRequest checks the required fields and parses the
// deadline. A zero reward counts as missing.
func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) (time.Time, error) {
	if r.Title == "" {
		return time.Time{}, apperrors.Validation("title is required")
	}
	if r.Description == "" {
		return time.Time{}, apperrors.Validation("description is required")
	}
	if r.Reward == 0 {
		return time.Time{}, apperrors.Validation("reward is required")
	}
	if r.PostedBy == "" {
		return time.Time{}, apperrors.Validation("postedBy is required")
	}

	return ParseDeadline(r.Deadline)
}
