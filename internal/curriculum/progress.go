package curriculum

import "cybit_edu/internal/model"

// Summary 课程进度，只读派生数据
type Summary struct {
	CompletedLessons int     `json:"completedLessons"`
	TotalLessons     int     `json:"totalLessons"`
	Percentage       float64 `json:"percentage"`
}

// Summarize 总课时取 section.Lessons 字段之和，而不是实际视频数量；
// 已完成数按所有章节的视频 isCompleted 统计，不超过总课时。总课时为 0 时进度为 0。
func Summarize(sections []model.Section) Summary {
	var s Summary
	for _, sec := range sections {
		if sec.Lessons > 0 {
			s.TotalLessons += sec.Lessons
		}
		for _, v := range sec.Videos {
			if v.IsCompleted {
				s.CompletedLessons++
			}
		}
	}
	if s.CompletedLessons > s.TotalLessons {
		s.CompletedLessons = s.TotalLessons
	}
	if s.TotalLessons > 0 {
		s.Percentage = 100 * float64(s.CompletedLessons) / float64(s.TotalLessons)
	}
	return s
}

// ApplyCompletions 把客户端的完成记录叠加到 isCompleted 上，返回副本
func ApplyCompletions(sections []model.Section, completed map[uint]bool) []model.Section {
	out := make([]model.Section, len(sections))
	for i, sec := range sections {
		out[i] = sec
		out[i].Videos = make([]model.Video, len(sec.Videos))
		for j, v := range sec.Videos {
			if completed[v.ID] {
				v.IsCompleted = true
			}
			out[i].Videos[j] = v
		}
	}
	return out
}
