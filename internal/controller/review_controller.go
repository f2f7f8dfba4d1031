package controller

import (
	"quiz_prep_backend/internal/service"
	"quiz_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	ReviewService *service.ReviewService
}

func NewReviewController(reviewService *service.ReviewService) *ReviewController {
	return &ReviewController{ReviewService: reviewService}
}

// @Summary 错题回顾
// @Description 按当前配置的策略返回待复习的错题，含全部选项
// @Tags 回顾
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /review/incorrect [get]
func (c *ReviewController) GetIncorrectQuestions(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	questions, err := c.ReviewService.LatestIncorrectQuestions(user.UserID())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, questions)
}
