package controller

import (
	"context"
	"cybit_edu/internal/quiz"
	"cybit_edu/internal/runner"
	"cybit_edu/internal/service"
	"cybit_edu/internal/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondError 把业务错误映射为 HTTP 状态码，未知错误记录日志后返回 500
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrCourseNotFound),
		errors.Is(err, util.ErrVideoNotFound),
		errors.Is(err, util.ErrSectionNotFound),
		errors.Is(err, util.ErrSessionNotFound),
		errors.Is(err, util.ErrNoQuizForVideo),
		errors.Is(err, util.ErrFileNotFound):
		util.NotFoundMessage(ctx, err.Error())
	case errors.Is(err, quiz.ErrUnknownQuestion),
		errors.Is(err, quiz.ErrInvalidQuestion),
		errors.Is(err, util.ErrInvalidPreference),
		errors.Is(err, util.ErrInvalidVideoFile),
		errors.Is(err, service.ErrEmptyFileName),
		errors.Is(err, runner.ErrUnknownProfile):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, service.ErrFileTooLarge):
		util.Error(ctx, http.StatusRequestEntityTooLarge, err.Error())
	case service.IsStateError(err), errors.Is(err, runner.ErrRunPending):
		util.Conflict(ctx, err.Error())
	case errors.Is(err, context.Canceled):
		// 客户端已断开
		ctx.Abort()
	default:
		util.LogInternalError(ctx, err)
	}
}

func pathID(ctx *gin.Context, name string) (uint, bool) {
	id, err := util.ParseID(ctx.Param(name))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return 0, false
	}
	return id, true
}
