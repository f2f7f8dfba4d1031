package service

import (
	"quiz_prep_backend/internal/model"
	"quiz_prep_backend/internal/repository"
)

// 题库数据在答题之后被改动或删除时，详情里用占位文案而不是报错
const (
	placeholderQuestion      = "Question no longer available"
	placeholderChoice        = "Choice not found"
	placeholderCorrectChoice = "Correct choice not found"
)

// AttemptDetailItem 历史详情里的一行：题干 + 所选/正确选项文案
type AttemptDetailItem struct {
	QuestionID          uint   `json:"questionId"`
	Prompt              string `json:"prompt"`
	Explanation         string `json:"explanation"`
	SelectedChoiceLabel string `json:"selectedChoiceLabel"`
	CorrectChoiceLabel  string `json:"correctChoiceLabel"`
	IsCorrect           bool   `json:"isCorrect"`
}

type AttemptDetail struct {
	Attempt model.Attempt       `json:"attempt"`
	Items   []AttemptDetailItem `json:"items"`
}

// HistoryService 历史答题记录的读侧。
type HistoryService struct {
	AttemptRepo  *repository.AttemptRepository
	AnswerRepo   *repository.AnswerRepository
	QuestionRepo *repository.QuestionRepository
	Retention    *RetentionPolicy
}

func NewHistoryService(
	attemptRepo *repository.AttemptRepository,
	answerRepo *repository.AnswerRepository,
	questionRepo *repository.QuestionRepository,
	retention *RetentionPolicy,
) *HistoryService {
	return &HistoryService{
		AttemptRepo:  attemptRepo,
		AnswerRepo:   answerRepo,
		QuestionRepo: questionRepo,
		Retention:    retention,
	}
}

// AttemptHistory 新到旧的会话列表。读侧再套一遍和写侧相同的每难度
// 上限过滤，挡住清理之前的存量或尚未收敛的超额记录。
func (s *HistoryService) AttemptHistory(userID string) ([]model.Attempt, error) {
	attempts, err := s.AttemptRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	kept, _ := s.Retention.Apply(attempts)
	return kept, nil
}

// AttemptDetail 重建一次会话的判分视图：按作答顺序逐条配上题干、
// 所选选项与正确选项的文案。
func (s *HistoryService) AttemptDetail(userID string, attemptID uint) (*AttemptDetail, error) {
	attempt, err := s.AttemptRepo.FindByIDAndUser(attemptID, userID)
	if err != nil {
		return nil, err
	}

	answers, err := s.AnswerRepo.ListByAttempt(attemptID, userID)
	if err != nil {
		return nil, err
	}
	if len(answers) == 0 {
		return &AttemptDetail{Attempt: *attempt, Items: []AttemptDetailItem{}}, nil
	}

	questionIDs := make([]uint, 0, len(answers))
	seen := make(map[uint]bool, len(answers))
	for _, answer := range answers {
		if !seen[answer.QuestionID] {
			seen[answer.QuestionID] = true
			questionIDs = append(questionIDs, answer.QuestionID)
		}
	}

	questions, err := s.QuestionRepo.FindByIDs(questionIDs)
	if err != nil {
		return nil, err
	}
	questionByID := make(map[uint]*model.Question, len(questions))
	for i := range questions {
		questionByID[questions[i].ID] = &questions[i]
	}

	items := make([]AttemptDetailItem, 0, len(answers))
	for _, answer := range answers {
		item := AttemptDetailItem{
			QuestionID:          answer.QuestionID,
			Prompt:              placeholderQuestion,
			SelectedChoiceLabel: placeholderChoice,
			CorrectChoiceLabel:  placeholderCorrectChoice,
			IsCorrect:           answer.IsCorrect,
		}

		if question, ok := questionByID[answer.QuestionID]; ok {
			item.Prompt = question.Prompt
			item.Explanation = question.Explanation
			if selected := question.ChoiceByID(answer.ChoiceID); selected != nil {
				item.SelectedChoiceLabel = selected.Label
			}
			if correct := question.CorrectChoice(); correct != nil {
				item.CorrectChoiceLabel = correct.Label
			}
		}

		items = append(items, item)
	}

	return &AttemptDetail{Attempt: *attempt, Items: items}, nil
}
