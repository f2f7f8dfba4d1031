package service

import (
	"quiz_prep_backend/internal/repository"
)

// ValidatingRecorder 是 AnswerRecorder 的严格实现：无视调用方给的
// isCorrect，按题库里选项的正确标记重新判分后落库。默认不启用，
// 留给不信任客户端的部署替换。
type ValidatingRecorder struct {
	QuestionRepo *repository.QuestionRepository
	Attempts     *AttemptService
}

func NewValidatingRecorder(questionRepo *repository.QuestionRepository, attempts *AttemptService) *ValidatingRecorder {
	return &ValidatingRecorder{QuestionRepo: questionRepo, Attempts: attempts}
}

func (r *ValidatingRecorder) RecordAnswer(userID string, attemptID, questionID, choiceID uint, _ bool) error {
	question, err := r.QuestionRepo.FindByID(questionID)
	if err != nil {
		return err
	}

	isCorrect := false
	if choice := question.ChoiceByID(choiceID); choice != nil {
		isCorrect = choice.IsCorrect
	}

	return r.Attempts.RecordAnswer(userID, attemptID, questionID, choiceID, isCorrect)
}
