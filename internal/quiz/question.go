package quiz

import (
	"errors"
	"fmt"
)

// Kind 题目类型
type Kind string

const (
	KindMultipleChoice Kind = "multiple-choice"
	KindMultipleSelect Kind = "multiple-select"
	KindShortAnswer    Kind = "short-answer"
	KindLongAnswer     Kind = "long-answer"
	KindTrueFalse      Kind = "true-false"
	KindCoding         Kind = "coding"
)

var trueFalseOptions = []string{"true", "false"}

// Supported 未知类型不会报错，只会被判为错误并在视图中标记为 unsupported
func (k Kind) Supported() bool {
	switch k {
	case KindMultipleChoice, KindMultipleSelect, KindShortAnswer, KindLongAnswer, KindTrueFalse, KindCoding:
		return true
	}
	return false
}

// TestCase 编程题的测试用例，仅用于展示
type TestCase struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expectedOutput"`
}

// CodingSpec 编程题附加信息
type CodingSpec struct {
	Language       string     `json:"language"`
	StarterCode    string     `json:"starterCode"`
	ExpectedOutput string     `json:"expectedOutput,omitempty"`
	TestCases      []TestCase `json:"testCases,omitempty"`
}

// Question 测验题目。会话期间不可变。
type Question struct {
	ID          string      `json:"id"`
	Kind        Kind        `json:"type"`
	Prompt      string      `json:"question"`
	Points      int         `json:"points"`
	Options     []string    `json:"options,omitempty"`
	CorrectText string      `json:"-"`
	CorrectSet  []string    `json:"-"`
	Coding      *CodingSpec `json:"coding,omitempty"`
	Explanation string      `json:"explanation,omitempty"`
}

// ChoiceOptions 判断题固定为 true/false
func (q Question) ChoiceOptions() []string {
	if q.Kind == KindTrueFalse {
		return append([]string(nil), trueFalseOptions...)
	}
	return q.Options
}

// CorrectAnswer 以 Answer 形式返回标准答案，编程题没有标准答案
func (q Question) CorrectAnswer() Answer {
	switch q.Kind {
	case KindMultipleSelect:
		return Selection(q.CorrectSet...)
	case KindCoding:
		return Answer{}
	}
	if !q.Kind.Supported() && q.CorrectText == "" && len(q.CorrectSet) > 0 {
		return Selection(q.CorrectSet...)
	}
	return Text(q.CorrectText)
}

func (q Question) weight() int {
	if q.Points < 0 {
		return 0
	}
	return q.Points
}

var (
	ErrInvalidQuestion = errors.New("invalid question")
)

// Validate 仅在题目写入（管理端）时调用，会话本身不做校验
func (q Question) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidQuestion)
	}
	if !q.Kind.Supported() {
		return fmt.Errorf("%w: unsupported type %q", ErrInvalidQuestion, q.Kind)
	}
	if q.Points < 0 {
		return fmt.Errorf("%w: points must not be negative", ErrInvalidQuestion)
	}

	switch q.Kind {
	case KindMultipleChoice:
		if len(q.Options) == 0 {
			return fmt.Errorf("%w: %s requires options", ErrInvalidQuestion, q.Kind)
		}
		if !contains(q.Options, q.CorrectText) {
			return fmt.Errorf("%w: correct answer %q is not an option", ErrInvalidQuestion, q.CorrectText)
		}
	case KindTrueFalse:
		if !contains(trueFalseOptions, q.CorrectText) {
			return fmt.Errorf("%w: true-false answer must be \"true\" or \"false\"", ErrInvalidQuestion)
		}
	case KindMultipleSelect:
		if len(q.Options) == 0 || len(q.CorrectSet) == 0 {
			return fmt.Errorf("%w: %s requires options and a correct set", ErrInvalidQuestion, q.Kind)
		}
		for _, c := range q.CorrectSet {
			if !contains(q.Options, c) {
				return fmt.Errorf("%w: correct answer %q is not an option", ErrInvalidQuestion, c)
			}
		}
	case KindShortAnswer, KindLongAnswer:
		if q.CorrectText == "" {
			return fmt.Errorf("%w: %s requires a correct answer", ErrInvalidQuestion, q.Kind)
		}
	case KindCoding:
		if q.Coding == nil {
			return fmt.Errorf("%w: coding question requires language and starter code", ErrInvalidQuestion)
		}
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
