package repository

import (
	"cybit_edu/internal/model"
	"time"

	"gorm.io/gorm"
)

type VideoCompletionRepository struct {
	DB *gorm.DB
}

func NewVideoCompletionRepository(db *gorm.DB) *VideoCompletionRepository {
	return &VideoCompletionRepository{DB: db}
}

// MarkCompleted 重复标记不会产生新记录
func (r *VideoCompletionRepository) MarkCompleted(clientID string, videoID uint) error {
	completion := model.VideoCompletion{ClientID: clientID, VideoID: videoID}
	return r.DB.
		Where(model.VideoCompletion{ClientID: clientID, VideoID: videoID}).
		Attrs(model.VideoCompletion{CompletedAt: time.Now()}).
		FirstOrCreate(&completion).Error
}

// CompletedVideoIDs 返回客户端在给定视频中已完成的集合
func (r *VideoCompletionRepository) CompletedVideoIDs(clientID string, videoIDs []uint) (map[uint]bool, error) {
	result := make(map[uint]bool)
	if clientID == "" || len(videoIDs) == 0 {
		return result, nil
	}

	var completions []model.VideoCompletion
	err := r.DB.Where("client_id = ? AND video_id IN ?", clientID, videoIDs).Find(&completions).Error
	if err != nil {
		return nil, err
	}
	for _, c := range completions {
		result[c.VideoID] = true
	}
	return result, nil
}

func (r *VideoCompletionRepository) Count() (int64, error) {
	var n int64
	err := r.DB.Model(&model.VideoCompletion{}).Count(&n).Error
	return n, err
}
