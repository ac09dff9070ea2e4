package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "task-board.com/task-board/internal/errors"
	model "task-board.com/task-board/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, title, description string, reward int, deadline time.Time, postedBy string) (*model.Task, error) {
	task := &model.Task{
		Title:       title,
		Description: description,
		Reward:      reward,
		Deadline:    deadline,
		PostedBy:    postedBy,
		CreatedAt:   time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}

	return task, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

// List returns every task, newest first.
func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	tasks := make([]model.Task, 0)
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) ListByPoster(ctx context.Context, userID string) ([]model.Task, error) {
	tasks := make([]model.Task, 0)
	err := r.db.WithContext(ctx).Where("posted_by = ?", userID).Find(&tasks).Error
	return tasks, err
}

// Update overwrites the four mutable columns. PostedBy and CreatedAt are
// never touched.
func (r *TaskRepository) Update(ctx context.Context, id uint, title, description string, reward int, deadline time.Time) (*model.Task, error) {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":       title,
			"description": description,
			"reward":      reward,
			"deadline":    deadline,
		})

	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		return nil, apperrors.ErrTaskNotFound
	}

	return r.FindByID(ctx, id)
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return apperrors.ErrTaskNotFound
	}

	return nil
}
