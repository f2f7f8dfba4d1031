package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"quiz_prep_backend/internal/model"
	"quiz_prep_backend/internal/repository"
	"quiz_prep_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// QuestionService 题库读写。按难度的题目列表走 Redis 读穿缓存，
// 管理端写操作使对应难度的缓存失效。rdb 为 nil 时直连数据库（测试）。
type QuestionService struct {
	QuestionRepo *repository.QuestionRepository
	rdb          *redis.Client
	ttl          time.Duration
}

func NewQuestionService(questionRepo *repository.QuestionRepository, rdb *redis.Client, ttl time.Duration) *QuestionService {
	return &QuestionService{
		QuestionRepo: questionRepo,
		rdb:          rdb,
		ttl:          ttl,
	}
}

func questionCacheKey(level model.QuestionLevel) string {
	return fmt.Sprintf("questions:level:%s", level)
}

// ByLevel 按难度取题（含选项，均按 ID 升序）。缓存命中失败按未命中
// 处理，缓存故障从不影响取题。
func (s *QuestionService) ByLevel(ctx context.Context, level model.QuestionLevel) ([]model.Question, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, questionCacheKey(level)).Bytes()
		if err == nil {
			var questions []model.Question
			if err := json.Unmarshal(cached, &questions); err == nil {
				return questions, nil
			}
		} else if err != redis.Nil {
			logger.Log.Warn("question cache read failed",
				zap.String("level", string(level)), zap.Error(err))
		}
	}

	questions, err := s.QuestionRepo.FindByLevel(level)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if payload, err := json.Marshal(questions); err == nil {
			if err := s.rdb.Set(ctx, questionCacheKey(level), payload, s.ttl).Err(); err != nil {
				logger.Log.Warn("question cache write failed",
					zap.String("level", string(level)), zap.Error(err))
			}
		}
	}

	return questions, nil
}

func (s *QuestionService) invalidate(ctx context.Context, levels ...model.QuestionLevel) {
	if s.rdb == nil {
		return
	}
	for _, level := range levels {
		if err := s.rdb.Del(ctx, questionCacheKey(level)).Err(); err != nil {
			logger.Log.Warn("question cache invalidation failed",
				zap.String("level", string(level)), zap.Error(err))
		}
	}
}

func (s *QuestionService) Create(ctx context.Context, question *model.Question) error {
	if err := s.QuestionRepo.Create(question); err != nil {
		return err
	}
	s.invalidate(ctx, question.Level)
	return nil
}

// Update 可能改动难度，新旧两个难度的缓存都要失效
func (s *QuestionService) Update(ctx context.Context, question *model.Question) error {
	existing, err := s.QuestionRepo.FindByID(question.ID)
	if err != nil {
		return err
	}
	if err := s.QuestionRepo.Update(question); err != nil {
		return err
	}
	if existing.Level != question.Level {
		s.invalidate(ctx, existing.Level, question.Level)
	} else {
		s.invalidate(ctx, question.Level)
	}
	return nil
}

func (s *QuestionService) Delete(ctx context.Context, id uint) error {
	existing, err := s.QuestionRepo.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.QuestionRepo.Delete(id); err != nil {
		return err
	}
	s.invalidate(ctx, existing.Level)
	return nil
}
