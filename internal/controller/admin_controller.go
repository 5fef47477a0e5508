package controller

import (
	"cybit_edu/internal/service"
	"cybit_edu/internal/util"
	"os"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Service *service.AdminService
}

func NewAdminController(svc *service.AdminService) *AdminController {
	return &AdminController{Service: svc}
}

// @Summary 管理端概览
// @Description 课程数、报名、完成率、平均评分以及测验和课时完成统计
// @Tags 管理
// @Produce json
// @Success 200 {object} util.Response{data=service.Dashboard}
// @Router /api/admin/dashboard [get]
func (c *AdminController) Dashboard(ctx *gin.Context) {
	dash, err := c.Service.Dashboard()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, dash)
}

// @Summary 管理端课程列表
// @Tags 管理
// @Produce json
// @Param search query string false "标题、讲师或分类"
// @Success 200 {object} util.Response{data=util.ListResponse}
// @Router /api/admin/courses [get]
func (c *AdminController) Courses(ctx *gin.Context) {
	courses, err := c.Service.Courses(ctx.Query("search"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.ListResponse{List: courses, Total: len(courses)})
}

// @Summary 创建课程
// @Description 未指定状态时为草稿
// @Tags 管理
// @Accept json
// @Produce json
// @Param body body service.CreateCourseRequest true "课程信息"
// @Success 201 {object} util.Response{data=model.Course}
// @Router /api/admin/courses [post]
func (c *AdminController) CreateCourse(ctx *gin.Context) {
	var req service.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.Service.CreateCourse(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, course)
}

// @Summary 删除课程
// @Description 同时删除章节、视频和题目
// @Tags 管理
// @Produce json
// @Param id path int true "课程ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/courses/{id} [delete]
func (c *AdminController) DeleteCourse(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.Service.DeleteCourse(id); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary 上传课时视频
// @Description 校验格式，用 ffprobe 读取时长，写入对象存储后追加到章节末尾
// @Tags 管理
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "课程ID"
// @Param sectionId path int true "章节ID"
// @Param title formData string true "课时标题"
// @Param description formData string false "课时简介"
// @Param file formData file true "视频文件"
// @Success 201 {object} util.Response{data=model.Video}
// @Failure 400 {object} util.Response
// @Router /api/admin/courses/{id}/sections/{sectionId}/videos [post]
func (c *AdminController) UploadVideo(ctx *gin.Context) {
	courseID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	sectionID, ok := pathID(ctx, "sectionId")
	if !ok {
		return
	}
	title := ctx.PostForm("title")
	if title == "" {
		util.BadRequest(ctx, "title is required")
		return
	}
	header, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	tmp, err := os.CreateTemp("", "cybit-upload-*")
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := ctx.SaveUploadedFile(header, tmpPath); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	video, err := c.Service.UploadVideo(ctx.Request.Context(), service.UploadVideoRequest{
		CourseID:    courseID,
		SectionID:   sectionID,
		Title:       title,
		Description: ctx.PostForm("description"),
		FileName:    header.Filename,
		LocalPath:   tmpPath,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, video)
}

// @Summary 替换视频测验题目
// @Description 逐题校验后整体替换，题目 id 在同一视频内唯一
// @Tags 管理
// @Accept json
// @Produce json
// @Param videoId path int true "视频ID"
// @Param body body []service.QuestionInput true "题目列表"
// @Success 200 {object} util.Response{data=[]model.QuizQuestion}
// @Failure 400 {object} util.Response
// @Router /api/admin/videos/{videoId}/questions [put]
func (c *AdminController) ReplaceQuestions(ctx *gin.Context) {
	videoID, ok := pathID(ctx, "videoId")
	if !ok {
		return
	}
	var inputs []service.QuestionInput
	if err := ctx.ShouldBindJSON(&inputs); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	questions, err := c.Service.ReplaceQuestions(videoID, inputs)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}
