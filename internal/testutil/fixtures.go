package testutil

import (
	"testing"
	"time"

	"cybit_edu/internal/model"

	"gorm.io/gorm"
)

// SeedCourse 两个章节（录入课时 8 和 4）、三个视频，第一个视频附带三道题
func SeedCourse(tb testing.TB, db *gorm.DB) *model.Course {
	tb.Helper()

	course := &model.Course{
		Title:       "Go for Beginners",
		Instructor:  model.Instructor{Name: "Rob Pike"},
		Level:       model.LevelBeginner,
		Category:    "Programming",
		Description: "Learn Go",
		Tags:        []string{"go", "backend"},
		Students:    100,
		Completions: 25,
		Rating:      4.5,
		Status:      model.StatusPublished,
		LastUpdated: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Sections: []model.Section{
			{
				Title:   "Basics",
				Lessons: 8,
				Order:   1,
				Videos: []model.Video{
					{
						Title: "Hello", Order: 1,
						Questions: []model.QuizQuestion{
							{Key: "q1", Type: "multiple-choice", Prompt: "2+2?", Options: []string{"3", "4"}, CorrectText: "4", Points: 10, Order: 1},
							{Key: "q2", Type: "short-answer", Prompt: "Language?", CorrectText: "Go", Points: 20, Order: 2},
							{Key: "q3", Type: "true-false", Prompt: "Go has goroutines", CorrectText: "true", Points: 10, Order: 3},
						},
					},
					{Title: "Types", Order: 2},
				},
			},
			{
				Title:   "Concurrency",
				Lessons: 4,
				Order:   2,
				Videos:  []model.Video{{Title: "Goroutines", Order: 1, IsLocked: true}},
			},
		},
	}
	if err := db.Create(course).Error; err != nil {
		tb.Fatalf("failed to seed course: %v", err)
	}
	return course
}
