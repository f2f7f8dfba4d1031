package repository

import (
	"errors"

	"quiz_prep_backend/internal/model"
	"quiz_prep_backend/internal/util"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func preloadChoices(db *gorm.DB) *gorm.DB {
	return db.Order("choices.id ASC")
}

// FindByLevel 按难度取题，题目和选项都按 ID 升序
func (r *QuestionRepository) FindByLevel(level model.QuestionLevel) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Preload("Choices", preloadChoices).
		Where("level = ?", level).
		Order("id ASC").
		Find(&questions).Error
	return questions, err
}

// FindByIDs 批量取题，供历史详情和错题回顾做一次性查找
func (r *QuestionRepository) FindByIDs(ids []uint) ([]model.Question, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var questions []model.Question
	err := r.DB.Preload("Choices", preloadChoices).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.Preload("Choices", preloadChoices).First(&q, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}
	return &q, nil
}

func (r *QuestionRepository) Create(question *model.Question) error {
	return r.DB.Create(question).Error
}

// Update 整体替换题目及其选项，避免留下孤儿选项。
// 调用方负责先确认题目存在。
func (r *QuestionRepository) Update(question *model.Question) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"level":       question.Level,
			"category":    question.Category,
			"prompt":      question.Prompt,
			"explanation": question.Explanation,
		}
		if err := tx.Model(&model.Question{}).Where("id = ?", question.ID).Updates(updates).Error; err != nil {
			return err
		}

		if err := tx.Where("question_id = ?", question.ID).Delete(&model.Choice{}).Error; err != nil {
			return err
		}
		if len(question.Choices) == 0 {
			return nil
		}
		for i := range question.Choices {
			question.Choices[i].ID = 0
			question.Choices[i].QuestionID = question.ID
		}
		return tx.Create(&question.Choices).Error
	})
}

func (r *QuestionRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&model.Choice{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Question{}, id).Error
	})
}
