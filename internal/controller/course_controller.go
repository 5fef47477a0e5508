package controller

import (
	"cybit_edu/internal/catalog"
	"cybit_edu/internal/middleware"
	"cybit_edu/internal/service"
	"cybit_edu/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	Service *service.CourseService
}

func NewCourseController(svc *service.CourseService) *CourseController {
	return &CourseController{Service: svc}
}

// @Summary 课程列表
// @Description 按关键字、分类、难度筛选并排序，all 或空值表示不过滤
// @Tags 课程
// @Produce json
// @Param search query string false "搜索标题、讲师、简介、标签"
// @Param category query string false "分类"
// @Param level query string false "难度"
// @Param sort query string false "排序 popular|rating|newest|alphabetical"
// @Success 200 {object} util.Response{data=service.CourseList}
// @Router /api/courses [get]
func (c *CourseController) List(ctx *gin.Context) {
	var q catalog.Query
	if err := ctx.ShouldBindQuery(&q); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	list, err := c.Service.List(q)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// @Summary 课程分类和难度选项
// @Tags 课程
// @Produce json
// @Success 200 {object} util.Response{data=catalog.Facets}
// @Router /api/courses/categories [get]
func (c *CourseController) Categories(ctx *gin.Context) {
	facets, err := c.Service.Facets()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, facets)
}

// @Summary 课程详情
// @Description 课程信息、课程大纲以及当前客户端的学习进度
// @Tags 课程
// @Produce json
// @Param X-Client-ID header string false "客户端标识"
// @Param id path int true "课程ID"
// @Success 200 {object} util.Response{data=service.CourseDetail}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [get]
func (c *CourseController) Detail(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	detail, err := c.Service.Detail(middleware.GetClientID(ctx), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, detail)
}

// @Summary 课程进度
// @Description 已完成视频数 / 章节录入课时数之和
// @Tags 课程
// @Produce json
// @Param X-Client-ID header string false "客户端标识"
// @Param id path int true "课程ID"
// @Success 200 {object} util.Response{data=curriculum.Summary}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/progress [get]
func (c *CourseController) Progress(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	summary, err := c.Service.Progress(middleware.GetClientID(ctx), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}

// @Summary 课时播放列表
// @Description 所有章节的视频按顺序展开，index 越界时夹到首尾
// @Tags 课程
// @Produce json
// @Param X-Client-ID header string false "客户端标识"
// @Param id path int true "课程ID"
// @Param index query int false "课时序号" default(0)
// @Param videoId query int false "按视频定位，优先于 index"
// @Success 200 {object} util.Response{data=service.PlayerView}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/player [get]
func (c *CourseController) Player(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	index, err := strconv.Atoi(ctx.DefaultQuery("index", "0"))
	if err != nil {
		util.BadRequest(ctx, "invalid index")
		return
	}
	var videoID uint
	if raw := ctx.Query("videoId"); raw != "" {
		if videoID, err = util.ParseID(raw); err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
	}

	view, err := c.Service.Player(middleware.GetClientID(ctx), id, index, videoID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary 标记视频已完成
// @Tags 课程
// @Produce json
// @Param X-Client-ID header string false "客户端标识"
// @Param id path int true "课程ID"
// @Param videoId path int true "视频ID"
// @Success 200 {object} util.Response{data=curriculum.Summary}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/videos/{videoId}/complete [post]
func (c *CourseController) CompleteVideo(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	videoID, ok := pathID(ctx, "videoId")
	if !ok {
		return
	}

	summary, err := c.Service.MarkVideoComplete(middleware.GetClientID(ctx), id, videoID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}
