package repository

import (
	"cybit_edu/internal/model"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PreferenceRepository struct {
	DB *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{DB: db}
}

// FindByClient 没有保存过偏好时返回 nil, nil
func (r *PreferenceRepository) FindByClient(clientID string) (*model.UserPreference, error) {
	var pref model.UserPreference
	err := r.DB.Where("client_id = ?", clientID).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

func (r *PreferenceRepository) Upsert(pref *model.UserPreference) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "client_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"theme", "accent", "updated_at"}),
	}).Create(pref).Error
}
