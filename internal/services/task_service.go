package services

import (
	"context"
	"time"

	apperrors "task-board.com/task-board/internal/errors"
	model "task-board.com/task-board/internal/models"
	repository "task-board.com/task-board/internal/repositories"
)

type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) CreateTask(ctx context.Context, title, description string, reward int, deadline time.Time, postedBy string) (*model.Task, error) {
	return s.repo.Create(ctx, title, description, reward, deadline, postedBy)
}

func (s *TaskService) GetTask(ctx context.Context, id uint) (*model.Task, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TaskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	return s.repo.List(ctx)
}

func (s *TaskService) ListTasksByPoster(ctx context.Context, userID string) ([]model.Task, error) {
	if userID == "" {
		return nil, apperrors.ErrUserIDRequired
	}
	return s.repo.ListByPoster(ctx, userID)
}

func (s *TaskService) UpdateTask(ctx context.Context, id uint, title, description string, reward int, deadline time.Time) (*model.Task, error) {
	return s.repo.Update(ctx, id, title, description, reward, deadline)
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
