package controller

import (
	"errors"
	"strconv"
	"time"

	"quiz_prep_backend/internal/model"
	"quiz_prep_backend/internal/service"
	"quiz_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AttemptController struct {
	AttemptService *service.AttemptService
	Recorder       service.AnswerRecorder
}

func NewAttemptController(attemptService *service.AttemptService, recorder service.AnswerRecorder) *AttemptController {
	return &AttemptController{AttemptService: attemptService, Recorder: recorder}
}

type createAttemptRequest struct {
	Level          string `json:"level" binding:"required"`
	TotalQuestions int    `json:"totalQuestions" binding:"required,gt=0"`
}

type recordAnswerRequest struct {
	QuestionID uint `json:"questionId" binding:"required"`
	ChoiceID   uint `json:"choiceId" binding:"required"`
	IsCorrect  bool `json:"isCorrect"`
}

type finishAttemptRequest struct {
	CorrectCount int        `json:"correctCount" binding:"min=0"`
	FinishedAt   *time.Time `json:"finishedAt"`
}

// @Summary 开始答题
// @Tags 答题
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param attempt body createAttemptRequest true "难度与题数"
// @Success 201 {object} util.Response
// @Router /attempts [post]
func (c *AttemptController) CreateAttempt(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req createAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	level, ok := model.ParseQuestionLevel(req.Level)
	if !ok {
		util.BadRequest(ctx, "invalid level")
		return
	}

	attempt, err := c.AttemptService.CreateAttempt(user.UserID(), level, req.TotalQuestions)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"id": attempt.ID})
}

// @Summary 提交单题作答
// @Tags 答题
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "会话ID"
// @Param answer body recordAnswerRequest true "作答内容"
// @Success 201 {object} util.Response
// @Router /attempts/{id}/answers [post]
func (c *AttemptController) RecordAnswer(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	attemptID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || attemptID <= 0 {
		util.BadRequest(ctx, "invalid attempt id")
		return
	}

	var req recordAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Recorder.RecordAnswer(user.UserID(), uint(attemptID), req.QuestionID, req.ChoiceID, req.IsCorrect); err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx, "question not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, nil)
}

// @Summary 结束答题并写入成绩
// @Tags 答题
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "会话ID"
// @Param result body finishAttemptRequest true "成绩"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /attempts/{id}/finish [post]
func (c *AttemptController) FinishAttempt(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	attemptID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || attemptID <= 0 {
		util.BadRequest(ctx, "invalid attempt id")
		return
	}

	var req finishAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err = c.AttemptService.FinishAttempt(user.UserID(), uint(attemptID), req.CorrectCount, req.FinishedAt)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrAttemptNotFound):
			util.NotFound(ctx, "attempt not found")
		case errors.Is(err, util.ErrAttemptFinished):
			util.Conflict(ctx, "attempt already finished")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, nil)
}
