package quiz

import (
	"bytes"
	"encoding/json"
)

// Shape 答案形态，与题目类型一一对应
type Shape string

const (
	ShapeNone      Shape = "none"
	ShapeText      Shape = "text"
	ShapeSelection Shape = "selection"
	ShapeCode      Shape = "code"
	ShapeInvalid   Shape = "invalid"
)

// CodeSubmission 编程题提交内容
type CodeSubmission struct {
	Code   string `json:"code"`
	Output string `json:"output"`
}

// Answer 用户答案。零值表示未作答。
type Answer struct {
	shape     Shape
	text      string
	selection []string
	code      CodeSubmission
	raw       json.RawMessage
}

func Text(s string) Answer {
	return Answer{shape: ShapeText, text: s}
}

// Selection 去重并保留首次出现的顺序
func Selection(options ...string) Answer {
	seen := make(map[string]struct{}, len(options))
	out := make([]string, 0, len(options))
	for _, o := range options {
		if _, ok := seen[o]; ok {
			continue
		}
		seen[o] = struct{}{}
		out = append(out, o)
	}
	return Answer{shape: ShapeSelection, selection: out}
}

func Code(code, output string) Answer {
	return Answer{shape: ShapeCode, code: CodeSubmission{Code: code, Output: output}}
}

func (a Answer) Shape() Shape {
	if a.shape == "" {
		return ShapeNone
	}
	return a.shape
}

func (a Answer) TextValue() (string, bool) {
	return a.text, a.shape == ShapeText
}

func (a Answer) SelectionValue() ([]string, bool) {
	if a.shape != ShapeSelection {
		return nil, false
	}
	return append([]string(nil), a.selection...), true
}

func (a Answer) CodeValue() (CodeSubmission, bool) {
	return a.code, a.shape == ShapeCode
}

// Given 空字符串与未作答一样视为“没有答案”
func (a Answer) Given() bool {
	switch a.Shape() {
	case ShapeNone:
		return false
	case ShapeText:
		return a.text != ""
	}
	return true
}

func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.Shape() {
	case ShapeText:
		return json.Marshal(a.text)
	case ShapeSelection:
		if a.selection == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(a.selection)
	case ShapeCode:
		return json.Marshal(a.code)
	case ShapeInvalid:
		if len(a.raw) == 0 {
			return []byte("null"), nil
		}
		return a.raw, nil
	}
	return []byte("null"), nil
}

// UnmarshalJSON 按 JSON 结构推断形态，结构不合法时保留原文并标记为 invalid，不返回错误
func (a *Answer) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*a = Answer{}
		return nil
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		*a = Text(s)
		return nil
	}

	var list []string
	if err := json.Unmarshal(trimmed, &list); err == nil {
		*a = Selection(list...)
		return nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err == nil {
		if rawCode, ok := obj["code"]; ok {
			var sub CodeSubmission
			if err := json.Unmarshal(rawCode, &sub.Code); err == nil {
				if rawOut, ok := obj["output"]; ok {
					_ = json.Unmarshal(rawOut, &sub.Output)
				}
				*a = Answer{shape: ShapeCode, code: sub}
				return nil
			}
		}
	}

	*a = Answer{shape: ShapeInvalid, raw: append(json.RawMessage(nil), trimmed...)}
	return nil
}

func cloneAnswers(in map[string]Answer) map[string]Answer {
	out := make(map[string]Answer, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
