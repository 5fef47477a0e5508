package repository

import (
	"cybit_edu/internal/model"
	"time"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

// QuestionsForVideo 按录入顺序返回视频附带的题目
func (r *QuizRepository) QuestionsForVideo(videoID uint) ([]model.QuizQuestion, error) {
	var questions []model.QuizQuestion
	err := r.DB.Where("video_id = ?", videoID).Order("sort_order, id").Find(&questions).Error
	return questions, err
}

func (r *QuizRepository) CreateAttempt(attempt *model.QuizAttempt) error {
	if attempt.CompletedAt.IsZero() {
		attempt.CompletedAt = time.Now()
	}
	return r.DB.Create(attempt).Error
}

// CreateAttemptOnce 按 (SessionID, Sequence) 去重，已存在时不写入并返回 false
func (r *QuizRepository) CreateAttemptOnce(attempt *model.QuizAttempt) (bool, error) {
	created := false
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.QuizAttempt{}).
			Where("session_id = ? AND sequence = ?", attempt.SessionID, attempt.Sequence).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		if attempt.CompletedAt.IsZero() {
			attempt.CompletedAt = time.Now()
		}
		if err := tx.Create(attempt).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	return created, err
}

// BestScore 客户端在该视频测验上的最高分，没有记录时 ok 为 false
func (r *QuizRepository) BestScore(clientID string, videoID uint) (score int, ok bool, err error) {
	var row struct {
		Best  int
		Count int64
	}
	err = r.DB.Model(&model.QuizAttempt{}).
		Select("COALESCE(MAX(score), 0) AS best, COUNT(*) AS count").
		Where("client_id = ? AND video_id = ?", clientID, videoID).
		Scan(&row).Error
	if err != nil {
		return 0, false, err
	}
	return row.Best, row.Count > 0, nil
}

func (r *QuizRepository) Attempts(clientID string, videoID uint) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.DB.Where("client_id = ? AND video_id = ?", clientID, videoID).
		Order("completed_at DESC, id DESC").
		Find(&attempts).Error
	return attempts, err
}

// AverageScore 管理端统计使用
func (r *QuizRepository) AverageScore() (avg float64, count int64, err error) {
	var row struct {
		Avg   float64
		Count int64
	}
	err = r.DB.Model(&model.QuizAttempt{}).
		Select("COALESCE(AVG(score), 0) AS avg, COUNT(*) AS count").
		Scan(&row).Error
	return row.Avg, row.Count, err
}

// ReplaceQuestions 整体替换视频的题目
func (r *QuizRepository) ReplaceQuestions(videoID uint, questions []model.QuizQuestion) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("video_id = ?", videoID).Delete(&model.QuizQuestion{}).Error; err != nil {
			return err
		}
		if len(questions) == 0 {
			return nil
		}
		for i := range questions {
			questions[i].ID = 0
			questions[i].VideoID = videoID
			if questions[i].Order == 0 {
				questions[i].Order = i + 1
			}
		}
		return tx.Create(&questions).Error
	})
}
