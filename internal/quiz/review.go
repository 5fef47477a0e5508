package quiz

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode/utf8"
)

const (
	NoAnswer        = "No answer"
	codePreviewSize = 100
	ellipsis        = "…"
)

// ReviewEntry 提交后逐题的“你的答案 / 正确答案”对照
type ReviewEntry struct {
	Question      Question `json:"question"`
	Correct       bool     `json:"isCorrect"`
	YourAnswer    string   `json:"yourAnswer"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation,omitempty"`
}

// Review 使用冻结的答案重新判分，只能在提交后调用
func (s *Session) Review() ([]ReviewEntry, error) {
	if s.state != StateSubmitted {
		return nil, ErrNotSubmitted
	}
	return BuildReview(s.validator, s.questions, s.submitted), nil
}

func BuildReview(v *Validator, questions []Question, answers map[string]Answer) []ReviewEntry {
	out := make([]ReviewEntry, 0, len(questions))
	for _, q := range questions {
		a := answers[q.ID]
		out = append(out, ReviewEntry{
			Question:      q,
			Correct:       v.IsCorrect(q, a),
			YourAnswer:    FormatAnswer(a),
			CorrectAnswer: FormatAnswer(q.CorrectAnswer()),
			Explanation:   q.Explanation,
		})
	}
	return out
}

// FormatAnswer 将答案转换为展示用文本
func FormatAnswer(a Answer) string {
	switch a.Shape() {
	case ShapeNone:
		return NoAnswer
	case ShapeText:
		return a.text
	case ShapeSelection:
		return strings.Join(a.selection, ", ")
	case ShapeCode:
		return previewCode(a.code.Code)
	case ShapeInvalid:
		var buf bytes.Buffer
		if err := json.Compact(&buf, a.raw); err != nil {
			return string(a.raw)
		}
		return buf.String()
	}
	return NoAnswer
}

func previewCode(code string) string {
	code = strings.TrimSpace(code)
	if utf8.RuneCountInString(code) <= codePreviewSize {
		return code
	}
	runes := []rune(code)
	return string(runes[:codePreviewSize]) + ellipsis
}
