package controller

import (
	"errors"
	"strconv"

	"quiz_prep_backend/internal/model"
	"quiz_prep_backend/internal/service"
	"quiz_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

type choicePayload struct {
	Label     string `json:"label" binding:"required"`
	IsCorrect bool   `json:"isCorrect"`
}

type questionPayload struct {
	Level       string          `json:"level" binding:"required"`
	Category    string          `json:"category"`
	Prompt      string          `json:"prompt" binding:"required"`
	Explanation string          `json:"explanation"`
	Choices     []choicePayload `json:"choices" binding:"required,min=2,dive"`
}

func (p *questionPayload) toModel() (*model.Question, bool) {
	level, ok := model.ParseQuestionLevel(p.Level)
	if !ok {
		return nil, false
	}

	// 题库约定每题恰好一个正确选项
	correct := 0
	choices := make([]model.Choice, len(p.Choices))
	for i, choice := range p.Choices {
		choices[i] = model.Choice{Label: choice.Label, IsCorrect: choice.IsCorrect}
		if choice.IsCorrect {
			correct++
		}
	}
	if correct != 1 {
		return nil, false
	}

	return &model.Question{
		Level:       level,
		Category:    p.Category,
		Prompt:      p.Prompt,
		Explanation: p.Explanation,
		Choices:     choices,
	}, true
}

// @Summary 按难度取题
// @Description 游客可访问；登录用户的作答才会持久化
// @Tags 题库
// @Produce json
// @Param level query string true "难度" Enums(beginner, intermediate, advanced)
// @Success 200 {object} util.Response
// @Router /questions [get]
func (c *QuestionController) GetQuestionsByLevel(ctx *gin.Context) {
	level, ok := model.ParseQuestionLevel(ctx.Query("level"))
	if !ok {
		util.BadRequest(ctx, "invalid level")
		return
	}

	questions, err := c.QuestionService.ByLevel(ctx.Request.Context(), level)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, questions)
}

// @Summary 新建题目
// @Tags 题库管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param question body questionPayload true "题目与选项"
// @Success 201 {object} util.Response
// @Router /admin/questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	var req questionPayload
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, ok := req.toModel()
	if !ok {
		util.BadRequest(ctx, "invalid level or choices must contain exactly one correct option")
		return
	}

	if err := c.QuestionService.Create(ctx.Request.Context(), question); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, question)
}

// @Summary 更新题目
// @Description 整体替换题干和选项
// @Tags 题库管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "题目ID"
// @Param question body questionPayload true "题目与选项"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /admin/questions/{id} [put]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id <= 0 {
		util.BadRequest(ctx, "invalid question id")
		return
	}

	var req questionPayload
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, ok := req.toModel()
	if !ok {
		util.BadRequest(ctx, "invalid level or choices must contain exactly one correct option")
		return
	}
	question.ID = uint(id)

	if err := c.QuestionService.Update(ctx.Request.Context(), question); err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx, "question not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, question)
}

// @Summary 删除题目
// @Tags 题库管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "题目ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /admin/questions/{id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id <= 0 {
		util.BadRequest(ctx, "invalid question id")
		return
	}

	if err := c.QuestionService.Delete(ctx.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx, "question not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}
