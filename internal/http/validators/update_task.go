package validators

import (
	"time"

	dto "task-board.com/task-board/internal/data_models"
)

// ValidateUpdateTaskRequest parses the deadline. Title, description and
// reward are passed through as given; callers are expected to supply all
// fields.
func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) (time.Time, error) {
	return ParseDeadline(r.Deadline)
}
