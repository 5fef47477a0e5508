package service

import (
	"context"
	"cybit_edu/internal/runner"
	"cybit_edu/pkg/logger"
	"cybit_edu/pkg/monitoring"
	"errors"

	"go.uber.org/zap"
)

type RunRequest struct {
	EditorID string `json:"editorId" binding:"required"`
	Language string `json:"language" binding:"required"`
	Code     string `json:"code"`
	Profile  string `json:"profile"`
}

type CodeService struct {
	Runner *runner.Runner
}

func NewCodeService(r *runner.Runner) *CodeService {
	return &CodeService{Runner: r}
}

// Run 编辑器按客户端隔离，profile 为空时按 editor 处理
func (s *CodeService) Run(ctx context.Context, clientID string, req RunRequest) (runner.Result, error) {
	profile := runner.Profile(req.Profile)
	if profile == "" {
		profile = runner.ProfileEditor
	}

	res, err := s.Runner.Run(ctx, clientID+":"+req.EditorID, profile, req.Language, req.Code)
	switch {
	case err == nil:
		res.EditorID = req.EditorID
		monitoring.ObserveCodeRun(req.Language, "ok")
	case errors.Is(err, runner.ErrRunPending):
		monitoring.ObserveCodeRun(req.Language, "pending")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		monitoring.ObserveCodeRun(req.Language, "cancelled")
		logger.Log.Debug("code run abandoned", zap.String("editorID", req.EditorID), zap.Error(err))
	}
	return res, err
}
