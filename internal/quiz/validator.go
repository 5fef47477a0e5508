package quiz

import (
	"fmt"
	"strings"
)

// CodingPolicy 编程题判分策略
type CodingPolicy string

const (
	// CodingAcceptAny 只要提交了代码即判为正确。
	// 这是已知缺口：目前没有真实的代码执行评测。
	CodingAcceptAny CodingPolicy = "accept_any"
	// CodingExpectedOutput 比对运行输出与题目的期望输出（去除首尾空白）
	CodingExpectedOutput CodingPolicy = "expected_output"
)

func ParseCodingPolicy(s string) (CodingPolicy, error) {
	switch CodingPolicy(strings.TrimSpace(s)) {
	case "", CodingAcceptAny:
		return CodingAcceptAny, nil
	case CodingExpectedOutput:
		return CodingExpectedOutput, nil
	}
	return "", fmt.Errorf("unknown coding policy %q", s)
}

type checkFunc func(q Question, a Answer) bool

type Option func(*config)

type config struct {
	coding CodingPolicy
}

func WithCodingPolicy(p CodingPolicy) Option { return func(c *config) { c.coding = p } }

// Validator 按题目类型路由到对应的判分规则。无副作用，不会 panic。
type Validator struct {
	policy CodingPolicy
	checks map[Kind]checkFunc
}

func NewValidator(opts ...Option) *Validator {
	cfg := &config{coding: CodingAcceptAny}
	for _, o := range opts {
		o(cfg)
	}

	v := &Validator{policy: cfg.coding}
	v.checks = map[Kind]checkFunc{
		KindMultipleChoice: exactMatch,
		KindTrueFalse:      exactMatch,
		KindMultipleSelect: setMatch,
		KindShortAnswer:    foldedMatch,
		KindLongAnswer:     foldedMatch,
		KindCoding:         v.codingMatch,
	}
	return v
}

func (v *Validator) CodingPolicy() CodingPolicy {
	return v.policy
}

// IsCorrect 未作答永远判错；类型不支持或答案形态不匹配同样判错
func (v *Validator) IsCorrect(q Question, a Answer) bool {
	if !a.Given() {
		return false
	}
	check, ok := v.checks[q.Kind]
	if !ok {
		return false
	}
	return check(q, a)
}

func exactMatch(q Question, a Answer) bool {
	s, ok := a.TextValue()
	return ok && s == q.CorrectText
}

func setMatch(q Question, a Answer) bool {
	got, ok := a.SelectionValue()
	if !ok {
		return false
	}
	want := Selection(q.CorrectSet...).selection
	if len(want) != len(got) {
		return false
	}
	set := make(map[string]struct{}, len(got))
	for _, g := range got {
		set[g] = struct{}{}
	}
	for _, w := range want {
		if _, ok := set[w]; !ok {
			return false
		}
	}
	return true
}

func foldedMatch(q Question, a Answer) bool {
	s, ok := a.TextValue()
	if !ok {
		return false
	}
	return strings.ToLower(strings.TrimSpace(s)) == strings.ToLower(strings.TrimSpace(q.CorrectText))
}

func (v *Validator) codingMatch(q Question, a Answer) bool {
	sub, ok := a.CodeValue()
	if !ok {
		return false
	}
	if v.policy != CodingExpectedOutput || q.Coding == nil || q.Coding.ExpectedOutput == "" {
		return true
	}
	return strings.TrimSpace(sub.Output) == strings.TrimSpace(q.Coding.ExpectedOutput)
}
