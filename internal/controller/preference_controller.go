package controller

import (
	"cybit_edu/internal/middleware"
	"cybit_edu/internal/service"
	"cybit_edu/internal/util"

	"github.com/gin-gonic/gin"
)

type PreferenceController struct {
	Service *service.PreferenceService
}

func NewPreferenceController(svc *service.PreferenceService) *PreferenceController {
	return &PreferenceController{Service: svc}
}

// @Summary 获取界面偏好
// @Description 未保存过时返回配置中的默认主题和强调色
// @Tags 偏好设置
// @Produce json
// @Param X-Client-ID header string false "客户端标识"
// @Success 200 {object} util.Response{data=service.PreferenceView}
// @Router /api/preferences [get]
func (c *PreferenceController) Get(ctx *gin.Context) {
	pref, err := c.Service.Get(middleware.GetClientID(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, pref)
}

// @Summary 更新界面偏好
// @Tags 偏好设置
// @Accept json
// @Produce json
// @Param X-Client-ID header string false "客户端标识"
// @Param body body service.PreferenceRequest true "theme: light|dark|system, accent: 强调色"
// @Success 200 {object} util.Response{data=service.PreferenceView}
// @Failure 400 {object} util.Response
// @Router /api/preferences [put]
func (c *PreferenceController) Update(ctx *gin.Context) {
	var req service.PreferenceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	pref, err := c.Service.Update(middleware.GetClientID(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, pref)
}

// @Summary 强调色列表
// @Tags 偏好设置
// @Produce json
// @Success 200 {object} util.Response{data=[]model.AccentColor}
// @Router /api/preferences/accents [get]
func (c *PreferenceController) Accents(ctx *gin.Context) {
	util.Success(ctx, c.Service.Accents())
}
