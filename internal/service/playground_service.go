package service

import (
	"context"
	"cybit_edu/internal/model"
	"cybit_edu/internal/repository"
	"cybit_edu/internal/util"
	"cybit_edu/pkg/logger"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

var (
	ErrFileTooLarge  = errors.New("playground file too large")
	ErrEmptyFileName = errors.New("file name is required")
)

// 练习场支持的语言及下载时使用的扩展名
var playgroundExtensions = map[string]string{
	"javascript": ".js",
	"typescript": ".ts",
	"python":     ".py",
	"html":       ".html",
	"css":        ".css",
	"json":       ".json",
}

func PlaygroundExtension(language string) string {
	if ext, ok := playgroundExtensions[strings.ToLower(language)]; ok {
		return ext
	}
	return ".txt"
}

type SaveFileRequest struct {
	Name     string `json:"name" binding:"required"`
	Language string `json:"language" binding:"required"`
	Code     string `json:"code"`
}

type PlaygroundService struct {
	FileRepo *repository.PlaygroundFileRepository
	Storage  StorageProvider
}

func NewPlaygroundService(repo *repository.PlaygroundFileRepository, storage StorageProvider) *PlaygroundService {
	return &PlaygroundService{FileRepo: repo, Storage: storage}
}

func (s *PlaygroundService) objectKey(clientID, fileID, language string) string {
	return fmt.Sprintf("playground/%s/%s%s", clientID, fileID, PlaygroundExtension(language))
}

func (s *PlaygroundService) Save(ctx context.Context, clientID string, req SaveFileRequest) (*model.PlaygroundFile, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrEmptyFileName
	}
	if len(req.Code) > util.MaxPlaygroundFileSize {
		return nil, ErrFileTooLarge
	}

	file := &model.PlaygroundFile{
		Name:     name,
		Language: strings.ToLower(req.Language),
		ClientID: clientID,
		Size:     int64(len(req.Code)),
	}
	file.ID = model.GenerateUUID()
	file.ObjectKey = s.objectKey(clientID, file.ID, file.Language)

	url, err := s.Storage.Upload(ctx, file.ObjectKey, strings.NewReader(req.Code), file.Size, util.MimeText)
	if err != nil {
		return nil, err
	}
	file.URL = url

	if err := s.FileRepo.Create(file); err != nil {
		// 元数据写入失败时清理已上传的对象
		if delErr := s.Storage.Delete(ctx, file.ObjectKey); delErr != nil {
			logger.Log.Warn("failed to remove orphan playground object", zap.String("key", file.ObjectKey), zap.Error(delErr))
		}
		return nil, err
	}
	file.Code = req.Code
	return file, nil
}

func (s *PlaygroundService) List(clientID string) ([]model.PlaygroundFile, error) {
	return s.FileRepo.ListByClient(clientID)
}

func (s *PlaygroundService) find(clientID, id string) (*model.PlaygroundFile, error) {
	file, err := s.FileRepo.FindByID(clientID, id)
	if err != nil {
		return nil, notFound(err, util.ErrFileNotFound)
	}
	return file, nil
}

// Load 返回文件元数据及代码内容
func (s *PlaygroundService) Load(ctx context.Context, clientID, id string) (*model.PlaygroundFile, error) {
	file, err := s.find(clientID, id)
	if err != nil {
		return nil, err
	}
	rc, err := s.Storage.Download(ctx, file.ObjectKey)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, util.MaxPlaygroundFileSize+1))
	if err != nil {
		return nil, err
	}
	file.Code = string(data)
	return file, nil
}

// DownloadName 下载时的文件名，与练习场导出一致
func (s *PlaygroundService) DownloadName(file *model.PlaygroundFile) string {
	return "playground-code" + PlaygroundExtension(file.Language)
}

func (s *PlaygroundService) Delete(ctx context.Context, clientID, id string) error {
	file, err := s.find(clientID, id)
	if err != nil {
		return err
	}
	if err := s.FileRepo.Delete(file); err != nil {
		return err
	}
	if err := s.Storage.Delete(ctx, file.ObjectKey); err != nil {
		logger.Log.Warn("failed to delete playground object", zap.String("key", file.ObjectKey), zap.Error(err))
	}
	return nil
}
