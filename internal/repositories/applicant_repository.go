package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	model "task-board.com/task-board/internal/models"
)

type ApplicantRepository struct {
	db *gorm.DB
}

func NewApplicantRepository(db *gorm.DB) *ApplicantRepository {
	return &ApplicantRepository{db: db}
}

func (r *ApplicantRepository) Create(ctx context.Context, userID string, taskID uint) (*model.Applicant, error) {
	applicant := &model.Applicant{
		UserID:    userID,
		TaskID:    taskID,
		AppliedAt: time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(applicant).Error; err != nil {
		return nil, err
	}

	return applicant, nil
}

func (r *ApplicantRepository) ExistsForUserAndTask(ctx context.Context, userID string, taskID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Applicant{}).
		Where("user_id = ? AND task_id = ?", userID, taskID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ApplicantRepository) ListByTask(ctx context.Context, taskID uint) ([]model.Applicant, error) {
	applicants := make([]model.Applicant, 0)
	err := r.db.WithContext(ctx).Where("task_id = ?", taskID).Find(&applicants).Error
	return applicants, err
}

func (r *ApplicantRepository) ListByUser(ctx context.Context, userID string) ([]model.Applicant, error) {
	applicants := make([]model.Applicant, 0)
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&applicants).Error
	return applicants, err
}
