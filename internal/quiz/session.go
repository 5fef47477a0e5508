package quiz

import (
	"errors"
	"math"
)

// State 会话状态
type State string

const (
	StateInProgress State = "in_progress"
	StateSubmitted  State = "submitted"
)

var (
	ErrSubmitted       = errors.New("quiz already submitted")
	ErrNotSubmitted    = errors.New("quiz not submitted yet")
	ErrUnknownQuestion = errors.New("question does not belong to this quiz")
)

// CompletionFunc 提交时调用一次，answers 为冻结后的答案副本
type CompletionFunc func(score int, answers map[string]Answer)

// Snapshot 会话的不可变快照，可序列化后存入会话存储
type Snapshot struct {
	State            State             `json:"state"`
	CurrentIndex     int               `json:"currentIndex"`
	Answers          map[string]Answer `json:"answers"`
	Score            int               `json:"score"`
	SubmittedAnswers map[string]Answer `json:"submittedAnswers,omitempty"`
}

// Session 一次答题过程。单一所有者使用，本身不加锁。
type Session struct {
	questions  []Question
	index      map[string]int
	validator  *Validator
	onComplete CompletionFunc

	state     State
	current   int
	answers   map[string]Answer
	score     int
	submitted map[string]Answer
}

func NewSession(questions []Question, v *Validator, onComplete CompletionFunc) *Session {
	if v == nil {
		v = NewValidator()
	}
	qs := append([]Question(nil), questions...)
	idx := make(map[string]int, len(qs))
	for i, q := range qs {
		idx[q.ID] = i
	}
	s := &Session{
		questions:  qs,
		index:      idx,
		validator:  v,
		onComplete: onComplete,
	}
	s.reset()
	return s
}

// Restore 从快照恢复会话，不会重复触发完成回调
func Restore(questions []Question, snap Snapshot, v *Validator, onComplete CompletionFunc) *Session {
	s := NewSession(questions, v, onComplete)
	for id, a := range snap.Answers {
		if _, ok := s.index[id]; ok {
			s.answers[id] = a
		}
	}
	s.current = s.clamp(snap.CurrentIndex)
	if snap.State == StateSubmitted {
		s.state = StateSubmitted
		s.score = snap.Score
		s.submitted = make(map[string]Answer, len(snap.SubmittedAnswers))
		for id, a := range snap.SubmittedAnswers {
			if _, ok := s.index[id]; ok {
				s.submitted[id] = a
			}
		}
	}
	return s
}

func (s *Session) reset() {
	s.state = StateInProgress
	s.current = 0
	s.answers = map[string]Answer{}
	s.score = 0
	s.submitted = nil
}

func (s *Session) clamp(i int) int {
	if i > len(s.questions)-1 {
		i = len(s.questions) - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

func (s *Session) Questions() []Question {
	return append([]Question(nil), s.questions...)
}

func (s *Session) Validator() *Validator {
	return s.validator
}

func (s *Session) Status() State {
	return s.state
}

// FinalScore 仅在提交后有意义
func (s *Session) FinalScore() int {
	return s.score
}

// Current 空测验没有当前题目
func (s *Session) Current() (Question, bool) {
	if len(s.questions) == 0 {
		return Question{}, false
	}
	return s.questions[s.current], true
}

func (s *Session) IsLast() bool {
	return s.current >= len(s.questions)-1
}

// CanAdvance 调用方的前置条件：当前题目已作答才允许“下一题/提交”
func (s *Session) CanAdvance() bool {
	q, ok := s.Current()
	if !ok {
		return s.state == StateInProgress
	}
	return s.state == StateInProgress && s.answers[q.ID].Given()
}

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:        s.state,
		CurrentIndex: s.current,
		Answers:      cloneAnswers(s.answers),
		Score:        s.score,
	}
	if s.submitted != nil {
		snap.SubmittedAnswers = cloneAnswers(s.submitted)
	}
	return snap
}

// RecordAnswer 覆盖之前的答案，不移动当前题目，不校验答案形态
func (s *Session) RecordAnswer(questionID string, a Answer) error {
	if s.state != StateInProgress {
		return ErrSubmitted
	}
	if _, ok := s.index[questionID]; !ok {
		return ErrUnknownQuestion
	}
	s.answers[questionID] = a
	return nil
}

// Next 在最后一题上等同于提交
func (s *Session) Next() error {
	if s.state != StateInProgress {
		return ErrSubmitted
	}
	if s.IsLast() {
		return s.Submit()
	}
	s.current = s.clamp(s.current + 1)
	return nil
}

func (s *Session) Previous() error {
	if s.state != StateInProgress {
		return ErrSubmitted
	}
	s.current = s.clamp(s.current - 1)
	return nil
}

func (s *Session) Submit() error {
	if s.state != StateInProgress {
		return ErrSubmitted
	}

	s.score = Score(s.validator, s.questions, s.answers)
	s.submitted = cloneAnswers(s.answers)
	s.state = StateSubmitted

	if s.onComplete != nil {
		s.onComplete(s.score, cloneAnswers(s.submitted))
	}
	return nil
}

// Retake 重新开始一次全新的答题
func (s *Session) Retake() error {
	if s.state != StateSubmitted {
		return ErrNotSubmitted
	}
	s.reset()
	return nil
}

// Score 按分值加权的百分制得分，四舍五入到整数；总分为 0 时得 0
func Score(v *Validator, questions []Question, answers map[string]Answer) int {
	earned, total := 0, 0
	for _, q := range questions {
		w := q.weight()
		total += w
		if v.IsCorrect(q, answers[q.ID]) {
			earned += w
		}
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(earned) / float64(total)))
}
