package controller

import (
	"errors"
	"strconv"

	"quiz_prep_backend/internal/service"
	"quiz_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HistoryController struct {
	HistoryService *service.HistoryService
}

func NewHistoryController(historyService *service.HistoryService) *HistoryController {
	return &HistoryController{HistoryService: historyService}
}

// @Summary 答题历史列表
// @Description 新到旧，每个难度最多返回保留上限条
// @Tags 历史
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /history [get]
func (c *HistoryController) GetHistory(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	attempts, err := c.HistoryService.AttemptHistory(user.UserID())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, attempts)
}

// @Summary 单次答题详情
// @Tags 历史
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "会话ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /history/{id} [get]
func (c *HistoryController) GetHistoryDetail(ctx *gin.Context) {
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

	detail, err := c.HistoryService.AttemptDetail(user.UserID(), uint(attemptID))
	if err != nil {
		if errors.Is(err, util.ErrAttemptNotFound) {
			util.NotFound(ctx, "attempt not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, detail)
}
