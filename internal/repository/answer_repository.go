package repository

import (
	"quiz_prep_backend/internal/model"

	"gorm.io/gorm"
)

type AnswerRepository struct {
	DB *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{DB: db}
}

func (r *AnswerRepository) Create(answer *model.Answer) error {
	return r.DB.Create(answer).Error
}

// ListByAttempt 按写入顺序（ID 升序）返回，反映答题顺序而不是题目顺序
func (r *AnswerRepository) ListByAttempt(attemptID uint, userID string) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.DB.Where("attempt_id = ? AND user_id = ?", attemptID, userID).
		Order("id ASC").
		Find(&answers).Error
	return answers, err
}

// ListByUserNewestFirst 全量历史，answered_at 相同再按 ID 倒序
func (r *AnswerRepository) ListByUserNewestFirst(userID string) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.DB.Where("user_id = ?", userID).
		Order("answered_at DESC, id DESC").
		Find(&answers).Error
	return answers, err
}

func (r *AnswerRepository) DeleteByAttemptIDs(attemptIDs []uint) error {
	if len(attemptIDs) == 0 {
		return nil
	}
	return r.DB.Where("attempt_id IN ?", attemptIDs).Delete(&model.Answer{}).Error
}
