package model

import (
	"cybit_edu/internal/quiz"
	"time"

	"gorm.io/datatypes"
)

type TestCase struct {
	Input          string `json:"input" yaml:"input"`
	ExpectedOutput string `json:"expectedOutput" yaml:"expectedOutput"`
}

// QuizQuestion 视频课时附带的测验题目
type QuizQuestion struct {
	BaseModel
	VideoID        uint                          `gorm:"index" json:"videoId" yaml:"-"`
	Key            string                        `gorm:"size:64;not null" json:"key" yaml:"id"`
	Type           string                        `gorm:"size:32;not null" json:"type" yaml:"type"`
	Prompt         string                        `gorm:"type:text" json:"question" yaml:"question"`
	Options        datatypes.JSONSlice[string]   `json:"options,omitempty" yaml:"options"`
	CorrectText    string                        `gorm:"type:text" json:"-" yaml:"correctAnswer"`
	CorrectSet     datatypes.JSONSlice[string]   `json:"-" yaml:"correctAnswers"`
	Points         int                           `gorm:"default:0" json:"points" yaml:"points"`
	Explanation    string                        `gorm:"type:text" json:"explanation,omitempty" yaml:"explanation"`
	Language       string                        `gorm:"size:32" json:"language,omitempty" yaml:"language"`
	StarterCode    string                        `gorm:"type:text" json:"starterCode,omitempty" yaml:"starterCode"`
	ExpectedOutput string                        `gorm:"type:text" json:"expectedOutput,omitempty" yaml:"expectedOutput"`
	TestCases      datatypes.JSONSlice[TestCase] `json:"testCases,omitempty" yaml:"testCases"`
	Order          int                           `gorm:"column:sort_order;default:0" json:"order" yaml:"order"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

// ToQuiz 转换为判分引擎使用的题目
func (q QuizQuestion) ToQuiz() quiz.Question {
	out := quiz.Question{
		ID:          q.Key,
		Kind:        quiz.Kind(q.Type),
		Prompt:      q.Prompt,
		Points:      q.Points,
		Options:     append([]string(nil), q.Options...),
		CorrectText: q.CorrectText,
		CorrectSet:  append([]string(nil), q.CorrectSet...),
		Explanation: q.Explanation,
	}
	if out.Kind == quiz.KindCoding {
		spec := &quiz.CodingSpec{
			Language:       q.Language,
			StarterCode:    q.StarterCode,
			ExpectedOutput: q.ExpectedOutput,
		}
		for _, tc := range q.TestCases {
			spec.TestCases = append(spec.TestCases, quiz.TestCase{Input: tc.Input, ExpectedOutput: tc.ExpectedOutput})
		}
		out.Coding = spec
	}
	return out
}

// QuizAttempt 一次已提交的测验结果
type QuizAttempt struct {
	BaseModel
	ClientID    string         `gorm:"size:64;index:idx_attempt_client_video" json:"clientId"`
	VideoID     uint           `gorm:"index:idx_attempt_client_video" json:"videoId"`
	SessionID   string         `gorm:"size:36;index:idx_attempt_session" json:"sessionId"`
	// Sequence 同一会话内第几次提交，和 SessionID 一起识别重复写入
	Sequence    int            `gorm:"index:idx_attempt_session" json:"sequence"`
	Score       int            `gorm:"not null" json:"score"`
	Answers     datatypes.JSON `json:"answers"`
	CompletedAt time.Time      `json:"completedAt"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}
