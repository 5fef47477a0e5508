package service

import (
	"context"
	"cybit_edu/internal/model"
	"cybit_edu/internal/quiz"
	"cybit_edu/internal/repository"
	"cybit_edu/internal/util"
	"cybit_edu/pkg/logger"
	"cybit_edu/pkg/monitoring"
	"cybit_edu/pkg/tracing"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// SessionView 测验会话的接口返回
type SessionView struct {
	ID      string `json:"id"`
	VideoID uint   `json:"videoId"`
	quiz.View
}

type BestScore struct {
	VideoID  uint `json:"videoId"`
	Score    int  `json:"score"`
	Attempts int  `json:"attempts"`
	HasScore bool `json:"hasScore"`
}

type QuizService struct {
	QuizRepo   *repository.QuizRepository
	CourseRepo *repository.CourseRepository
	Store      repository.SessionStore

	validator atomic.Pointer[quiz.Validator]
	locks     sessionLocks
}

func NewQuizService(quizRepo *repository.QuizRepository, courseRepo *repository.CourseRepository, store repository.SessionStore, policy quiz.CodingPolicy) *QuizService {
	s := &QuizService{
		QuizRepo:   quizRepo,
		CourseRepo: courseRepo,
		Store:      store,
	}
	s.SetCodingPolicy(policy)
	return s
}

// SetCodingPolicy 替换判分器，已打开的会话在下一次操作时使用新策略
func (s *QuizService) SetCodingPolicy(policy quiz.CodingPolicy) {
	s.validator.Store(quiz.NewValidator(quiz.WithCodingPolicy(policy)))
}

func (s *QuizService) CodingPolicy() quiz.CodingPolicy {
	return s.validator.Load().CodingPolicy()
}

func (s *QuizService) questions(videoID uint) ([]quiz.Question, error) {
	rows, err := s.QuizRepo.QuestionsForVideo(videoID)
	if err != nil {
		return nil, err
	}
	out := make([]quiz.Question, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ToQuiz())
	}
	return out, nil
}

// Start 为视频附带的题目打开一个新会话
func (s *QuizService) Start(ctx context.Context, clientID string, videoID uint) (*SessionView, error) {
	if _, err := s.CourseRepo.FindVideo(videoID); err != nil {
		return nil, notFound(err, util.ErrVideoNotFound)
	}
	questions, err := s.questions(videoID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, util.ErrNoQuizForVideo
	}

	now := time.Now()
	rec := &repository.SessionRecord{
		ID:        uuid.New().String(),
		ClientID:  clientID,
		VideoID:   videoID,
		Questions: repository.FreezeQuestions(questions),
		CreatedAt: now,
		UpdatedAt: now,
	}
	session := quiz.NewSession(questions, s.validator.Load(), nil)
	rec.Snapshot = session.Snapshot()
	if err := s.Store.Save(ctx, rec); err != nil {
		return nil, err
	}

	logger.Log.Info("quiz session started",
		zap.String("sessionID", rec.ID),
		zap.String("clientID", clientID),
		zap.Uint("videoID", videoID),
		zap.Int("questions", len(questions)))
	return &SessionView{ID: rec.ID, VideoID: videoID, View: session.View()}, nil
}

func (s *QuizService) load(ctx context.Context, clientID, sessionID string) (*repository.SessionRecord, error) {
	rec, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if rec.ClientID != clientID {
		return nil, util.ErrSessionNotFound
	}
	return rec, nil
}

func (s *QuizService) Get(ctx context.Context, clientID, sessionID string) (*SessionView, error) {
	rec, err := s.load(ctx, clientID, sessionID)
	if err != nil {
		return nil, err
	}
	session := quiz.Restore(rec.QuizQuestions(), rec.Snapshot, s.validator.Load(), nil)
	return &SessionView{ID: rec.ID, VideoID: rec.VideoID, View: session.View()}, nil
}

// mutate 串行化同一会话上的操作：恢复、执行、保存快照。
// 提交时的完成回调会写入一条 QuizAttempt，序号相同的重复提交只记录一次。
func (s *QuizService) mutate(ctx context.Context, clientID, sessionID string, op func(*quiz.Session) error) (*SessionView, error) {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	rec, err := s.load(ctx, clientID, sessionID)
	if err != nil {
		return nil, err
	}

	v := s.validator.Load()
	var (
		submitted  bool
		persistErr error
	)
	onComplete := func(score int, answers map[string]quiz.Answer) {
		submitted = true
		persistErr = s.recordAttempt(ctx, rec, rec.Submissions+1, v.CodingPolicy(), score, answers)
	}

	session := quiz.Restore(rec.QuizQuestions(), rec.Snapshot, v, onComplete)
	if err := op(session); err != nil {
		return nil, err
	}
	if persistErr != nil {
		return nil, persistErr
	}

	if submitted {
		rec.Submissions++
	}
	rec.Snapshot = session.Snapshot()
	rec.UpdatedAt = time.Now()
	if err := s.Store.Save(ctx, rec); err != nil {
		return nil, err
	}
	return &SessionView{ID: rec.ID, VideoID: rec.VideoID, View: session.View()}, nil
}

func (s *QuizService) recordAttempt(ctx context.Context, rec *repository.SessionRecord, seq int, policy quiz.CodingPolicy, score int, answers map[string]quiz.Answer) error {
	_, span := tracing.Tracer.Start(ctx, "quiz.submit")
	defer span.End()
	span.SetAttributes(
		attribute.String("quiz.session_id", rec.ID),
		attribute.Int("quiz.video_id", int(rec.VideoID)),
		attribute.Int("quiz.score", score),
		attribute.Int("quiz.sequence", seq),
	)

	raw, err := json.Marshal(answers)
	if err != nil {
		span.RecordError(err)
		return err
	}
	attempt := &model.QuizAttempt{
		ClientID:  rec.ClientID,
		VideoID:   rec.VideoID,
		SessionID: rec.ID,
		Sequence:  seq,
		Score:     score,
		Answers:   raw,
	}
	created, err := s.QuizRepo.CreateAttemptOnce(attempt)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if !created {
		// 上次提交已写入结果但会话快照没有保存成功
		logger.Log.Warn("quiz attempt already recorded",
			zap.String("sessionID", rec.ID),
			zap.Int("sequence", seq))
		return nil
	}

	monitoring.ObserveQuizSubmission(string(policy), score)
	logger.Log.Info("quiz submitted",
		zap.String("sessionID", rec.ID),
		zap.String("clientID", rec.ClientID),
		zap.Uint("videoID", rec.VideoID),
		zap.Int("score", score),
		zap.String("codingPolicy", string(policy)))
	return nil
}

func (s *QuizService) Answer(ctx context.Context, clientID, sessionID, questionID string, a quiz.Answer) (*SessionView, error) {
	return s.mutate(ctx, clientID, sessionID, func(q *quiz.Session) error {
		return q.RecordAnswer(questionID, a)
	})
}

func (s *QuizService) Next(ctx context.Context, clientID, sessionID string) (*SessionView, error) {
	return s.mutate(ctx, clientID, sessionID, (*quiz.Session).Next)
}

func (s *QuizService) Previous(ctx context.Context, clientID, sessionID string) (*SessionView, error) {
	return s.mutate(ctx, clientID, sessionID, (*quiz.Session).Previous)
}

func (s *QuizService) Submit(ctx context.Context, clientID, sessionID string) (*SessionView, error) {
	return s.mutate(ctx, clientID, sessionID, (*quiz.Session).Submit)
}

func (s *QuizService) Retake(ctx context.Context, clientID, sessionID string) (*SessionView, error) {
	view, err := s.mutate(ctx, clientID, sessionID, (*quiz.Session).Retake)
	if err == nil {
		logger.Log.Info("quiz retake", zap.String("sessionID", sessionID), zap.String("clientID", clientID))
	}
	return view, err
}

func (s *QuizService) Review(ctx context.Context, clientID, sessionID string) ([]quiz.ReviewEntry, error) {
	rec, err := s.load(ctx, clientID, sessionID)
	if err != nil {
		return nil, err
	}
	return quiz.Restore(rec.QuizQuestions(), rec.Snapshot, s.validator.Load(), nil).Review()
}

func (s *QuizService) BestScore(clientID string, videoID uint) (*BestScore, error) {
	if _, err := s.CourseRepo.FindVideo(videoID); err != nil {
		return nil, notFound(err, util.ErrVideoNotFound)
	}
	score, ok, err := s.QuizRepo.BestScore(clientID, videoID)
	if err != nil {
		return nil, err
	}
	attempts, err := s.QuizRepo.Attempts(clientID, videoID)
	if err != nil {
		return nil, err
	}
	return &BestScore{VideoID: videoID, Score: score, Attempts: len(attempts), HasScore: ok}, nil
}

// IsStateError 会话状态不允许该操作
func IsStateError(err error) bool {
	return errors.Is(err, quiz.ErrSubmitted) || errors.Is(err, quiz.ErrNotSubmitted)
}

// sessionLocks 按会话 ID 加锁，无人持有时回收
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func (l *sessionLocks) lock(id string) func() {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[string]*sessionLock)
	}
	sl, ok := l.locks[id]
	if !ok {
		sl = &sessionLock{}
		l.locks[id] = sl
	}
	sl.refs++
	l.mu.Unlock()

	sl.mu.Lock()
	return func() {
		sl.mu.Unlock()
		l.mu.Lock()
		sl.refs--
		if sl.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}
