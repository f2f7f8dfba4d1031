package service

import (
	"strconv"
	"time"

	"quiz_prep_backend/internal/model"
	"quiz_prep_backend/internal/repository"
	"quiz_prep_backend/internal/util"
	"quiz_prep_backend/pkg/logger"
	"quiz_prep_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// AnswerRecorder 记录单题作答。AttemptService 直接信任调用方给出的
// isCorrect（前端持有完整题目数据，重复校验是多余 I/O）；需要更严格
// 的行为时换成 ValidatingRecorder，调用方无感知。
type AnswerRecorder interface {
	RecordAnswer(userID string, attemptID, questionID, choiceID uint, isCorrect bool) error
}

// AttemptService 答题会话台账：创建、定稿、历史保留清理。
type AttemptService struct {
	AttemptRepo *repository.AttemptRepository
	AnswerRepo  *repository.AnswerRepository
	Retention   *RetentionPolicy
}

func NewAttemptService(
	attemptRepo *repository.AttemptRepository,
	answerRepo *repository.AnswerRepository,
	retention *RetentionPolicy,
) *AttemptService {
	return &AttemptService{
		AttemptRepo: attemptRepo,
		AnswerRepo:  answerRepo,
		Retention:   retention,
	}
}

// CreateAttempt 新建进行中的答题会话并返回。插入成功后异步触发该用户
// 的保留清理；清理失败只记日志，绝不影响本次创建。
func (s *AttemptService) CreateAttempt(userID string, level model.QuestionLevel, totalQuestions int) (*model.Attempt, error) {
	if !level.Valid() {
		return nil, util.ErrInvalidLevel
	}

	attempt := &model.Attempt{
		UserID:         userID,
		Level:          level,
		TotalQuestions: totalQuestions,
	}
	if err := s.AttemptRepo.Create(attempt); err != nil {
		return nil, err
	}

	go s.PruneHistory(userID)

	return attempt, nil
}

// RecordAnswer 追加一条作答记录。同一题重复写入不在存储层拦截，
// 打分视图以最新一条为准。
func (s *AttemptService) RecordAnswer(userID string, attemptID, questionID, choiceID uint, isCorrect bool) error {
	answer := &model.Answer{
		UserID:     userID,
		AttemptID:  attemptID,
		QuestionID: questionID,
		ChoiceID:   choiceID,
		IsCorrect:  isCorrect,
	}
	if err := s.AnswerRepo.Create(answer); err != nil {
		return err
	}
	monitoring.AnswersRecorded.WithLabelValues(strconv.FormatBool(isCorrect)).Inc()
	return nil
}

// FinishAttempt 定稿：写入 correct_count 和 finished_at，范围限定
// (id, user_id)。finished_at 已存在即视为终态，再次定稿被拒绝。
func (s *AttemptService) FinishAttempt(userID string, attemptID uint, correctCount int, finishedAt *time.Time) error {
	attempt, err := s.AttemptRepo.FindByIDAndUser(attemptID, userID)
	if err != nil {
		return err
	}
	if attempt.Finished() {
		return util.ErrAttemptFinished
	}

	at := time.Now()
	if finishedAt != nil {
		at = *finishedAt
	}

	rows, err := s.AttemptRepo.Finish(attemptID, userID, correctCount, at)
	if err != nil {
		return err
	}
	if rows == 0 {
		// 并发定稿输掉了更新条件里的 finished_at IS NULL
		return util.ErrAttemptFinished
	}
	return nil
}

// PruneHistory 收敛单个用户的答题历史到保留上限。
// 整个过程尽力而为：取列表、删答案、删会话三步各自失败都只记日志，
// 先删答案后删会话，保证不会留下孤儿答案。不重试。
func (s *AttemptService) PruneHistory(userID string) {
	attempts, err := s.AttemptRepo.ListByUser(userID)
	if err != nil {
		monitoring.PruneFailures.Inc()
		logger.Log.Warn("retention prune: list attempts failed",
			zap.String("user_id", userID), zap.Error(err))
		return
	}

	_, pruned := s.Retention.Apply(attempts)
	if len(pruned) == 0 {
		return
	}

	ids := make([]uint, len(pruned))
	for i, attempt := range pruned {
		ids[i] = attempt.ID
	}

	if err := s.AnswerRepo.DeleteByAttemptIDs(ids); err != nil {
		monitoring.PruneFailures.Inc()
		logger.Log.Warn("retention prune: delete answers failed",
			zap.String("user_id", userID), zap.Uints("attempt_ids", ids), zap.Error(err))
		return
	}

	if err := s.AttemptRepo.DeleteByIDs(ids); err != nil {
		monitoring.PruneFailures.Inc()
		logger.Log.Warn("retention prune: delete attempts failed",
			zap.String("user_id", userID), zap.Uints("attempt_ids", ids), zap.Error(err))
		return
	}

	for _, attempt := range pruned {
		monitoring.AttemptsPruned.WithLabelValues(string(attempt.Level)).Inc()
	}
	logger.Log.Info("retention prune: removed old attempts",
		zap.String("user_id", userID), zap.Int("count", len(ids)))
}

// SweepRetention 对所有有记录的用户重跑一次清理，兜底补偿创建时
// 清理的局部失败。由后台定时任务调用。
func (s *AttemptService) SweepRetention() error {
	userIDs, err := s.AttemptRepo.DistinctUserIDs()
	if err != nil {
		return err
	}
	for _, userID := range userIDs {
		s.PruneHistory(userID)
	}
	return nil
}
