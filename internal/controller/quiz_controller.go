package controller

import (
	"context"
	"cybit_edu/internal/middleware"
	"cybit_edu/internal/quiz"
	"cybit_edu/internal/service"
	"cybit_edu/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	Service *service.QuizService
}

func NewQuizController(svc *service.QuizService) *QuizController {
	return &QuizController{Service: svc}
}

// AnswerRequest answer 可以是字符串、字符串数组或 {"code","output"} 对象
type AnswerRequest struct {
	Answer quiz.Answer `json:"answer" swaggertype:"object"`
}

// @Summary 开始测验
// @Description 为视频附带的题目创建答题会话
// @Tags 测验
// @Produce json
// @Param X-Client-ID header string false "客户端标识"
// @Param videoId path int true "视频ID"
// @Success 201 {object} util.Response{data=service.SessionView}
// @Failure 404 {object} util.Response
// @Router /api/videos/{videoId}/quiz-sessions [post]
func (c *QuizController) Start(ctx *gin.Context) {
	videoID, ok := pathID(ctx, "videoId")
	if !ok {
		return
	}

	view, err := c.Service.Start(ctx.Request.Context(), middleware.GetClientID(ctx), videoID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, view)
}

// @Summary 获取答题会话
// @Tags 测验
// @Produce json
// @Param X-Client-ID header string false "客户端标识"
// @Param id path string true "会话ID"
// @Success 200 {object} util.Response{data=service.SessionView}
// @Failure 404 {object} util.Response
// @Router /api/quiz-sessions/{id} [get]
func (c *QuizController) Get(ctx *gin.Context) {
	view, err := c.Service.Get(ctx.Request.Context(), middleware.GetClientID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary 作答
// @Description 覆盖该题之前的答案，不移动当前题目
// @Tags 测验
// @Accept json
// @Produce json
// @Param X-Client-ID header string false "客户端标识"
// @Param id path string true "会话ID"
// @Param questionId path string true "题目ID"
// @Param body body AnswerRequest true "答案"
// @Success 200 {object} util.Response{data=service.SessionView}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/quiz-sessions/{id}/answers/{questionId} [put]
func (c *QuizController) Answer(ctx *gin.Context) {
	var req AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	view, err := c.Service.Answer(ctx.Request.Context(), middleware.GetClientID(ctx), ctx.Param("id"), ctx.Param("questionId"), req.Answer)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

type sessionOp func(ctx context.Context, clientID, sessionID string) (*service.SessionView, error)

func (c *QuizController) transition(ctx *gin.Context, op sessionOp) {
	view, err := op(ctx.Request.Context(), middleware.GetClientID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary 下一题
// @Description 最后一题上等同于提交
// @Tags 测验
// @Produce json
// @Param X-Client-ID header string false "客户端标识"
// @Param id path string true "会话ID"
// @Success 200 {object} util.Response{data=service.SessionView}
// @Failure 409 {object} util.Response
// @Router /api/quiz-sessions/{id}/next [post]
func (c *QuizController) Next(ctx *gin.Context) {
	c.transition(ctx, c.Service.Next)
}

// @Summary 上一题
// @Tags 测验
// @Produce json
// @Param X-Client-ID header string false "客户端标识"
// @Param id path string true "会话ID"
// @Success 200 {object} util.Response{data=service.SessionView}
// @Failure 409 {object} util.Response
// @Router /api/quiz-sessions/{id}/previous [post]
func (c *QuizController) Previous(ctx *gin.Context) {
	c.transition(ctx, c.Service.Previous)
}

// @Summary 提交测验
// @Tags 测验
// @Produce json
// @Param X-Client-ID header string false "客户端标识"
// @Param id path string true "会话ID"
// @Success 200 {object} util.Response{data=service.SessionView}
// @Failure 409 {object} util.Response
// @Router /api/quiz-sessions/{id}/submit [post]
func (c *QuizController) Submit(ctx *gin.Context) {
	c.transition(ctx, c.Service.Submit)
}

// @Summary 重新答题
// @Description 仅提交后可用，会话回到初始状态
// @Tags 测验
// @Produce json
// @Param X-Client-ID header string false "客户端标识"
// @Param id path string true "会话ID"
// @Success 200 {object} util.Response{data=service.SessionView}
// @Failure 409 {object} util.Response
// @Router /api/quiz-sessions/{id}/retake [post]
func (c *QuizController) Retake(ctx *gin.Context) {
	c.transition(ctx, c.Service.Retake)
}

// @Summary 答题回顾
// @Tags 测验
// @Produce json
// @Param X-Client-ID header string false "客户端标识"
// @Param id path string true "会话ID"
// @Success 200 {object} util.Response{data=[]quiz.ReviewEntry}
// @Failure 409 {object} util.Response
// @Router /api/quiz-sessions/{id}/review [get]
func (c *QuizController) Review(ctx *gin.Context) {
	review, err := c.Service.Review(ctx.Request.Context(), middleware.GetClientID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, review)
}

// @Summary 视频测验最高分
// @Tags 测验
// @Produce json
// @Param X-Client-ID header string false "客户端标识"
// @Param videoId path int true "视频ID"
// @Success 200 {object} util.Response{data=service.BestScore}
// @Router /api/videos/{videoId}/quiz-scores [get]
func (c *QuizController) BestScore(ctx *gin.Context) {
	videoID, ok := pathID(ctx, "videoId")
	if !ok {
		return
	}

	best, err := c.Service.BestScore(middleware.GetClientID(ctx), videoID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, best)
}
