package runner

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

var (
	ErrRunPending     = errors.New("a run is already pending for this editor")
	ErrUnknownProfile = errors.New("unknown runner profile")
)

// Result 一次模拟运行的结果
type Result struct {
	EditorID string  `json:"editorId"`
	Profile  Profile `json:"profile"`
	Language string  `json:"language"`
	Output   string  `json:"output"`
	Elapsed  int64   `json:"elapsedMs"`
}

// Runner 模拟代码运行：等待固定延迟后返回预设输出。
// 同一个编辑器同时只允许一次运行，重复请求直接拒绝。
type Runner struct {
	delay atomic.Int64

	mu      sync.Mutex
	pending map[string]struct{}
}

func New(delay time.Duration) *Runner {
	r := &Runner{pending: make(map[string]struct{})}
	r.SetDelay(delay)
	return r
}

// SetDelay 配置热更新时调用，对之后的运行生效
func (r *Runner) SetDelay(d time.Duration) {
	if d < 0 {
		d = 0
	}
	r.delay.Store(int64(d))
}

func (r *Runner) Delay() time.Duration {
	return time.Duration(r.delay.Load())
}

// Pending 编辑器是否有未完成的运行
func (r *Runner) Pending(editorID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.pending[editorID]
	return ok
}

func (r *Runner) acquire(editorID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pending[editorID]; ok {
		return false
	}
	r.pending[editorID] = struct{}{}
	return true
}

func (r *Runner) release(editorID string) {
	r.mu.Lock()
	delete(r.pending, editorID)
	r.mu.Unlock()
}

// Run 阻塞到延迟结束；ctx 取消时放弃本次运行，不产生结果
func (r *Runner) Run(ctx context.Context, editorID string, p Profile, language, code string) (Result, error) {
	if !p.Valid() {
		return Result{}, ErrUnknownProfile
	}
	if !r.acquire(editorID) {
		return Result{}, ErrRunPending
	}
	defer r.release(editorID)

	start := time.Now()
	timer := time.NewTimer(r.Delay())
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case <-timer.C:
	}

	return Result{
		EditorID: editorID,
		Profile:  p,
		Language: language,
		Output:   Output(p, language, code),
		Elapsed:  time.Since(start).Milliseconds(),
	}, nil
}
