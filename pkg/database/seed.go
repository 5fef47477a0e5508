package database

import (
	"cybit_edu/internal/model"
	"cybit_edu/pkg/logger"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// CatalogFile 课程种子数据文件格式
type CatalogFile struct {
	Courses []model.Course `yaml:"courses"`
}

func LoadCatalogFile(path string) (*CatalogFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f CatalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &f, nil
}

// SeedCatalog 课程表为空（或 force）时导入种子数据，章节、视频和题目随课程一并创建
func SeedCatalog(db *gorm.DB, path string, force bool) (int, error) {
	if path == "" {
		return 0, nil
	}

	var count int64
	if err := db.Model(&model.Course{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 && !force {
		return 0, nil
	}

	f, err := LoadCatalogFile(path)
	if err != nil {
		return 0, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for i := range f.Courses {
			if err := tx.Create(&f.Courses[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.Log.Info("Catalog seeded", zap.String("file", path), zap.Int("courses", len(f.Courses)))
	return len(f.Courses), nil
}
