package repository

import (
	"context"
	"cybit_edu/internal/quiz"
	"cybit_edu/internal/util"
	"cybit_edu/pkg/monitoring"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// SessionRecord 存储中的测验会话：开始时冻结的题目、快照和归属信息。
// 管理端之后修改题目不影响已打开的会话。
type SessionRecord struct {
	ID        string           `json:"id"`
	ClientID  string           `json:"clientId"`
	VideoID   uint             `json:"videoId"`
	Questions []StoredQuestion `json:"questions"`
	Snapshot  quiz.Snapshot    `json:"snapshot"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`

	// Submissions 已提交次数，下一次提交的序号为 Submissions+1
	Submissions int `json:"submissions"`
}

// StoredQuestion 与 quiz.Question 字段一致，但保留标准答案用于存储
type StoredQuestion struct {
	ID          string           `json:"id"`
	Kind        quiz.Kind        `json:"type"`
	Prompt      string           `json:"question"`
	Points      int              `json:"points"`
	Options     []string         `json:"options,omitempty"`
	CorrectText string           `json:"correctText,omitempty"`
	CorrectSet  []string         `json:"correctSet,omitempty"`
	Coding      *quiz.CodingSpec `json:"coding,omitempty"`
	Explanation string           `json:"explanation,omitempty"`
}

func FreezeQuestions(questions []quiz.Question) []StoredQuestion {
	out := make([]StoredQuestion, len(questions))
	for i, q := range questions {
		out[i] = StoredQuestion(q)
	}
	return out
}

// QuizQuestions 会话开始时的题目列表
func (r *SessionRecord) QuizQuestions() []quiz.Question {
	out := make([]quiz.Question, len(r.Questions))
	for i, q := range r.Questions {
		out[i] = quiz.Question(q)
	}
	return out
}

type SessionStore interface {
	Get(ctx context.Context, id string) (*SessionRecord, error)
	Save(ctx context.Context, rec *SessionRecord) error
	Delete(ctx context.Context, id string) error
}

type memoryEntry struct {
	rec       SessionRecord
	expiresAt time.Time
}

// MemorySessionStore 进程内会话存储，过期条目由 Sweep 清理
type MemorySessionStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemorySessionStore) expired(e memoryEntry, now time.Time) bool {
	return s.ttl > 0 && now.After(e.expiresAt)
}

func (s *MemorySessionStore) Get(ctx context.Context, id string) (*SessionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok || s.expired(e, s.now()) {
		return nil, util.ErrSessionNotFound
	}
	rec := e.rec
	return &rec, nil
}

func (s *MemorySessionStore) Save(ctx context.Context, rec *SessionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[rec.ID] = memoryEntry{rec: *rec, expiresAt: s.now().Add(s.ttl)}
	monitoring.ActiveQuizSessions.Set(float64(len(s.entries)))
	return nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, id)
	monitoring.ActiveQuizSessions.Set(float64(len(s.entries)))
	return nil
}

// Sweep 删除过期会话，返回删除数量
func (s *MemorySessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, e := range s.entries {
		if s.expired(e, now) {
			delete(s.entries, id)
			removed++
		}
	}
	monitoring.ActiveQuizSessions.Set(float64(len(s.entries)))
	return removed
}

func (s *MemorySessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

const sessionKeyPrefix = "cybit_edu:quiz_session:"

// RedisSessionStore 会话快照以 JSON 存入 redis，过期由 redis 处理
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (*SessionRecord, error) {
	raw, err := s.Client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, util.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var rec SessionRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, rec *SessionRecord) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, sessionKeyPrefix+rec.ID, raw, s.TTL).Err()
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.Client.Del(ctx, sessionKeyPrefix+id).Err()
}
