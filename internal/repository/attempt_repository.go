package repository

import (
	"errors"
	"time"

	"quiz_prep_backend/internal/model"
	"quiz_prep_backend/internal/util"

	"gorm.io/gorm"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

func (r *AttemptRepository) Create(attempt *model.Attempt) error {
	return r.DB.Create(attempt).Error
}

func (r *AttemptRepository) FindByIDAndUser(id uint, userID string) (*model.Attempt, error) {
	var a model.Attempt
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAttemptNotFound
		}
		return nil, err
	}
	return &a, nil
}

// ListByUser 按创建时间倒序，时间相同再按 ID 倒序兜底
func (r *AttemptRepository) ListByUser(userID string) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&attempts).Error
	return attempts, err
}

func (r *AttemptRepository) FindNewestByUser(userID string) (*model.Attempt, error) {
	var a model.Attempt
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAttemptNotFound
		}
		return nil, err
	}
	return &a, nil
}

// Finish 按 (id, user_id) 定稿，finished_at 已落库的不再覆盖。
// 返回受影响行数，0 行由调用方区分未找到和已定稿。
func (r *AttemptRepository) Finish(id uint, userID string, correctCount int, finishedAt time.Time) (int64, error) {
	result := r.DB.Model(&model.Attempt{}).
		Where("id = ? AND user_id = ? AND finished_at IS NULL", id, userID).
		Updates(map[string]interface{}{
			"correct_count": correctCount,
			"finished_at":   finishedAt,
		})
	return result.RowsAffected, result.Error
}

func (r *AttemptRepository) DeleteByIDs(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.DB.Where("id IN ?", ids).Delete(&model.Attempt{}).Error
}

// DistinctUserIDs 有答题记录的用户，供后台保留清扫遍历
func (r *AttemptRepository) DistinctUserIDs() ([]string, error) {
	var userIDs []string
	err := r.DB.Model(&model.Attempt{}).
		Distinct("user_id").
		Pluck("user_id", &userIDs).Error
	return userIDs, err
}
