package catalog

import "cybit_edu/internal/model"

// Stats 管理端课程统计
type Stats struct {
	TotalCourses     int     `json:"totalCourses"`
	PublishedCourses int     `json:"publishedCourses"`
	TotalEnrollments int     `json:"totalEnrollments"`
	TotalCompletions int     `json:"totalCompletions"`
	CompletionRate   float64 `json:"completionRate"`
	AverageRating    float64 `json:"averageRating"`
}

// CourseCompletion 单门课程的完成率
type CourseCompletion struct {
	CourseID       uint    `json:"courseId"`
	Title          string  `json:"title"`
	Enrolled       int     `json:"enrolled"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completionRate"`
}

// Summarize 平均评分只统计有评分的课程，没有评分时为 0
func Summarize(courses []model.Course) Stats {
	s := Stats{TotalCourses: len(courses)}
	rated, ratingSum := 0, 0.0
	for _, c := range courses {
		if c.Status == model.StatusPublished {
			s.PublishedCourses++
		}
		s.TotalEnrollments += c.Students
		s.TotalCompletions += c.Completions
		if c.Rating > 0 {
			rated++
			ratingSum += c.Rating
		}
	}
	if rated > 0 {
		s.AverageRating = ratingSum / float64(rated)
	}
	s.CompletionRate = rate(s.TotalCompletions, s.TotalEnrollments)
	return s
}

func Completions(courses []model.Course) []CourseCompletion {
	out := make([]CourseCompletion, 0, len(courses))
	for _, c := range courses {
		out = append(out, CourseCompletion{
			CourseID:       c.ID,
			Title:          c.Title,
			Enrolled:       c.Students,
			Completed:      c.Completions,
			CompletionRate: rate(c.Completions, c.Students),
		})
	}
	return out
}

func rate(done, total int) float64 {
	if total <= 0 {
		return 0
	}
	return 100 * float64(done) / float64(total)
}
