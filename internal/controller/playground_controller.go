package controller

import (
	"cybit_edu/internal/middleware"
	"cybit_edu/internal/service"
	"cybit_edu/internal/util"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PlaygroundController struct {
	Service *service.PlaygroundService
}

func NewPlaygroundController(svc *service.PlaygroundService) *PlaygroundController {
	return &PlaygroundController{Service: svc}
}

// @Summary 已保存的练习场文件
// @Tags 练习场
// @Produce json
// @Param X-Client-ID header string false "客户端标识"
// @Success 200 {object} util.Response{data=util.ListResponse}
// @Router /api/playground/files [get]
func (c *PlaygroundController) List(ctx *gin.Context) {
	files, err := c.Service.List(middleware.GetClientID(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.ListResponse{List: files, Total: len(files)})
}

// @Summary 保存练习场文件
// @Tags 练习场
// @Accept json
// @Produce json
// @Param X-Client-ID header string false "客户端标识"
// @Param body body service.SaveFileRequest true "文件名、语言、代码"
// @Success 201 {object} util.Response{data=model.PlaygroundFile}
// @Failure 413 {object} util.Response
// @Router /api/playground/files [post]
func (c *PlaygroundController) Save(ctx *gin.Context) {
	var req service.SaveFileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	file, err := c.Service.Save(ctx.Request.Context(), middleware.GetClientID(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, file)
}

// @Summary 打开练习场文件
// @Tags 练习场
// @Produce json
// @Param X-Client-ID header string false "客户端标识"
// @Param id path string true "文件ID"
// @Success 200 {object} util.Response{data=model.PlaygroundFile}
// @Failure 404 {object} util.Response
// @Router /api/playground/files/{id} [get]
func (c *PlaygroundController) Load(ctx *gin.Context) {
	file, err := c.Service.Load(ctx.Request.Context(), middleware.GetClientID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, file)
}

// @Summary 下载练习场文件
// @Tags 练习场
// @Produce plain
// @Param X-Client-ID header string false "客户端标识"
// @Param id path string true "文件ID"
// @Success 200 {string} string "代码内容"
// @Failure 404 {object} util.Response
// @Router /api/playground/files/{id}/download [get]
func (c *PlaygroundController) Download(ctx *gin.Context) {
	file, err := c.Service.Load(ctx.Request.Context(), middleware.GetClientID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", c.Service.DownloadName(file)))
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(file.Code))
}

// @Summary 删除练习场文件
// @Tags 练习场
// @Produce json
// @Param X-Client-ID header string false "客户端标识"
// @Param id path string true "文件ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/playground/files/{id} [delete]
func (c *PlaygroundController) Delete(ctx *gin.Context) {
	if err := c.Service.Delete(ctx.Request.Context(), middleware.GetClientID(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
