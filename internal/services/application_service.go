package services

import (
	"context"

	apperrors "task-board.com/task-board/internal/errors"
	model "task-board.com/task-board/internal/models"
	repository "task-board.com/task-board/internal/repositories"
)

type ApplicationService struct {
	repo *repository.ApplicantRepository
}

func NewApplicationService(repo *repository.ApplicantRepository) *ApplicationService {
	return &ApplicationService{repo: repo}
}

// Apply records a user's application to a task, rejecting a second
// application for the same (user, task) pair. The existence check and the
// insert are separate round trips; near-simultaneous duplicate requests can
// both pass the check.
func (s *ApplicationService) Apply(ctx context.Context, userID string, taskID uint) (*model.Applicant, error) {
	if userID == "" {
		return nil, apperrors.ErrUserIDRequired
	}
	if taskID == 0 {
		return nil, apperrors.ErrInvalidTaskID
	}

	applied, err := s.repo.ExistsForUserAndTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	if applied {
		return nil, apperrors.ErrAlreadyApplied
	}

	return s.repo.Create(ctx, userID, taskID)
}

func (s *ApplicationService) ListApplicantsForTask(ctx context.Context, taskID uint) ([]model.Applicant, error) {
	return s.repo.ListByTask(ctx, taskID)
}

func (s *ApplicationService) ListApplicationsForUser(ctx context.Context, userID string) ([]model.Applicant, error) {
	if userID == "" {
		return nil, apperrors.ErrUserIDRequired
	}
	return s.repo.ListByUser(ctx, userID)
}
