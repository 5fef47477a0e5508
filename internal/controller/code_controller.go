package controller

import (
	"cybit_edu/internal/middleware"
	"cybit_edu/internal/service"
	"cybit_edu/internal/util"

	"github.com/gin-gonic/gin"
)

type CodeController struct {
	Service *service.CodeService
}

func NewCodeController(svc *service.CodeService) *CodeController {
	return &CodeController{Service: svc}
}

// @Summary 模拟运行代码
// @Description 不会真正执行代码，延迟后返回预设输出。同一编辑器的运行未结束时拒绝新的请求。
// @Tags 代码
// @Accept json
// @Produce json
// @Param X-Client-ID header string false "客户端标识"
// @Param body body service.RunRequest true "editorId, language, code, profile(quiz|editor|playground)"
// @Success 200 {object} util.Response{data=runner.Result}
// @Failure 409 {object} util.Response
// @Router /api/code/run [post]
func (c *CodeController) Run(ctx *gin.Context) {
	var req service.RunRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	res, err := c.Service.Run(ctx.Request.Context(), middleware.GetClientID(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, res)
}
