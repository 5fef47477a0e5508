package repository

import (
	"cybit_edu/internal/model"

	"gorm.io/gorm"
)

type PlaygroundFileRepository struct {
	DB *gorm.DB
}

func NewPlaygroundFileRepository(db *gorm.DB) *PlaygroundFileRepository {
	return &PlaygroundFileRepository{DB: db}
}

func (r *PlaygroundFileRepository) Create(file *model.PlaygroundFile) error {
	return r.DB.Create(file).Error
}

func (r *PlaygroundFileRepository) ListByClient(clientID string) ([]model.PlaygroundFile, error) {
	var files []model.PlaygroundFile
	err := r.DB.Where("client_id = ?", clientID).Order("created_at").Find(&files).Error
	return files, err
}

// FindByID 只能访问自己的文件
func (r *PlaygroundFileRepository) FindByID(clientID, id string) (*model.PlaygroundFile, error) {
	var file model.PlaygroundFile
	err := r.DB.Where("id = ? AND client_id = ?", id, clientID).First(&file).Error
	if err != nil {
		return nil, err
	}
	return &file, nil
}

func (r *PlaygroundFileRepository) Delete(file *model.PlaygroundFile) error {
	return r.DB.Delete(file).Error
}
