package validators

import (
	dto "task-board.com/task-board/internal/data_models"
	apperrors "task-board.com/task-board/internal/errors"
)

func ValidateApplyRequest(r *dto.ApplyRequest) error {
	if r.UserID == "" {
		return apperrors.Validation("userId is required")
	}
	if r.TaskID == 0 {
		return apperrors.Validation("taskId is required")
	}
	return nil
}
