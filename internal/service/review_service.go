package service

import (
	"errors"
	"sync"

	"quiz_prep_backend/internal/model"
	"quiz_prep_backend/internal/repository"
	"quiz_prep_backend/internal/util"
)

// 错题选取策略名，写进配置文件 review.strategy
const (
	StrategyLatestPerQuestion = "latest_per_question"
	StrategyLastAttempt       = "last_attempt"
)

// IncorrectQuestionStrategy 决定"哪些题算当前错题"。两种口径：
// 全历史每题最新一次作答为错（默认，和原始行为一致），
// 或只看最近一次会话里的错题。
type IncorrectQuestionStrategy interface {
	LatestIncorrect(userID string) ([]model.Question, error)
}

// latestPerQuestionStrategy 全历史扫描，每道题只认最新一条作答
//（answered_at 倒序，ID 倒序打平），最新一条为错才入选。
type latestPerQuestionStrategy struct {
	answers   *repository.AnswerRepository
	questions *repository.QuestionRepository
}

func (s *latestPerQuestionStrategy) LatestIncorrect(userID string) ([]model.Question, error) {
	answers, err := s.answers.ListByUserNewestFirst(userID)
	if err != nil {
		return nil, err
	}
	if len(answers) == 0 {
		return nil, nil
	}

	latestByQuestion := make(map[uint]bool, len(answers))
	var questionIDs []uint
	for _, answer := range answers {
		if _, ok := latestByQuestion[answer.QuestionID]; ok {
			continue
		}
		latestByQuestion[answer.QuestionID] = answer.IsCorrect
		if !answer.IsCorrect {
			questionIDs = append(questionIDs, answer.QuestionID)
		}
	}
	if len(questionIDs) == 0 {
		return nil, nil
	}

	return s.questions.FindByIDs(questionIDs)
}

// lastAttemptStrategy 只看最近一次会话的错题。
type lastAttemptStrategy struct {
	attempts  *repository.AttemptRepository
	answers   *repository.AnswerRepository
	questions *repository.QuestionRepository
}

func (s *lastAttemptStrategy) LatestIncorrect(userID string) ([]model.Question, error) {
	newest, err := s.attempts.FindNewestByUser(userID)
	if err != nil {
		if errors.Is(err, util.ErrAttemptNotFound) {
			return nil, nil
		}
		return nil, err
	}

	answers, err := s.answers.ListByAttempt(newest.ID, userID)
	if err != nil {
		return nil, err
	}

	var questionIDs []uint
	seen := make(map[uint]bool, len(answers))
	for _, answer := range answers {
		if !answer.IsCorrect && !seen[answer.QuestionID] {
			seen[answer.QuestionID] = true
			questionIDs = append(questionIDs, answer.QuestionID)
		}
	}
	if len(questionIDs) == 0 {
		return nil, nil
	}

	return s.questions.FindByIDs(questionIDs)
}

// ReviewService 错题回顾。策略可在运行中随配置热切换。
type ReviewService struct {
	attemptRepo  *repository.AttemptRepository
	answerRepo   *repository.AnswerRepository
	questionRepo *repository.QuestionRepository

	mu       sync.RWMutex
	strategy IncorrectQuestionStrategy
}

func NewReviewService(
	attemptRepo *repository.AttemptRepository,
	answerRepo *repository.AnswerRepository,
	questionRepo *repository.QuestionRepository,
	strategyName string,
) *ReviewService {
	s := &ReviewService{
		attemptRepo:  attemptRepo,
		answerRepo:   answerRepo,
		questionRepo: questionRepo,
	}
	s.SetStrategy(strategyName)
	return s
}

// SetStrategy 未知策略名落回默认的 latest_per_question
func (s *ReviewService) SetStrategy(name string) {
	var strategy IncorrectQuestionStrategy
	switch name {
	case StrategyLastAttempt:
		strategy = &lastAttemptStrategy{
			attempts:  s.attemptRepo,
			answers:   s.answerRepo,
			questions: s.questionRepo,
		}
	default:
		strategy = &latestPerQuestionStrategy{
			answers:   s.answerRepo,
			questions: s.questionRepo,
		}
	}

	s.mu.Lock()
	s.strategy = strategy
	s.mu.Unlock()
}

// LatestIncorrectQuestions 当前策略下的错题列表，题目按 ID 升序，
// 选项齐全，可直接用于重刷。
func (s *ReviewService) LatestIncorrectQuestions(userID string) ([]model.Question, error) {
	s.mu.RLock()
	strategy := s.strategy
	s.mu.RUnlock()
	return strategy.LatestIncorrect(userID)
}
