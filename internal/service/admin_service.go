package service

import (
	"context"
	"cybit_edu/internal/catalog"
	"cybit_edu/internal/model"
	"cybit_edu/internal/quiz"
	"cybit_edu/internal/repository"
	"cybit_edu/internal/util"
	"cybit_edu/pkg/logger"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Dashboard struct {
	catalog.Stats
	Courses          []catalog.CourseCompletion `json:"courses"`
	QuizAttempts     int64                      `json:"quizAttempts"`
	AverageQuizScore float64                    `json:"averageQuizScore"`
	VideoCompletions int64                      `json:"videoCompletions"`
}

type CreateCourseRequest struct {
	Title       string             `json:"title" binding:"required"`
	Instructor  string             `json:"instructor" binding:"required"`
	Category    string             `json:"category" binding:"required"`
	Level       model.CourseLevel  `json:"level"`
	Description string             `json:"description"`
	Duration    string             `json:"duration"`
	Price       float64            `json:"price"`
	Status      model.CourseStatus `json:"status"`
	Tags        []string           `json:"tags"`
	Sections    []string           `json:"sections"`
}

// UploadVideoRequest 上传文件已保存在本地临时路径
type UploadVideoRequest struct {
	CourseID    uint
	SectionID   uint
	Title       string
	Description string
	FileName    string
	LocalPath   string
}

type AdminService struct {
	CourseRepo     *repository.CourseRepository
	QuizRepo       *repository.QuizRepository
	CompletionRepo *repository.VideoCompletionRepository
	Storage        StorageProvider
	// Probe 为 nil 时跳过时长探测
	Probe util.ProbeFunc
}

func NewAdminService(courseRepo *repository.CourseRepository, quizRepo *repository.QuizRepository, completionRepo *repository.VideoCompletionRepository, storage StorageProvider, probe util.ProbeFunc) *AdminService {
	return &AdminService{
		CourseRepo:     courseRepo,
		QuizRepo:       quizRepo,
		CompletionRepo: completionRepo,
		Storage:        storage,
		Probe:          probe,
	}
}

func (s *AdminService) Dashboard() (*Dashboard, error) {
	courses, err := s.CourseRepo.FindAll()
	if err != nil {
		return nil, err
	}
	avg, attempts, err := s.QuizRepo.AverageScore()
	if err != nil {
		return nil, err
	}
	completions, err := s.CompletionRepo.Count()
	if err != nil {
		return nil, err
	}
	return &Dashboard{
		Stats:            catalog.Summarize(courses),
		Courses:          catalog.Completions(courses),
		QuizAttempts:     attempts,
		AverageQuizScore: avg,
		VideoCompletions: completions,
	}, nil
}

func (s *AdminService) Courses(search string) ([]model.Course, error) {
	courses, err := s.CourseRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return catalog.AdminSearch(courses, search), nil
}

// CreateCourse 新课程默认为草稿
func (s *AdminService) CreateCourse(req CreateCourseRequest) (*model.Course, error) {
	course := &model.Course{
		Title:       req.Title,
		Instructor:  model.Instructor{Name: req.Instructor},
		Category:    req.Category,
		Level:       req.Level,
		Description: req.Description,
		Duration:    req.Duration,
		Price:       req.Price,
		IsFree:      req.Price == 0,
		Status:      req.Status,
		Tags:        req.Tags,
		LastUpdated: time.Now(),
	}
	if course.Level == "" {
		course.Level = model.LevelBeginner
	}
	if course.Status == "" {
		course.Status = model.StatusDraft
	}
	for i, title := range req.Sections {
		course.Sections = append(course.Sections, model.Section{Title: title, Order: i + 1})
	}

	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}
	logger.Log.Info("course created", zap.Uint("courseID", course.ID), zap.String("title", course.Title))
	return course, nil
}

func (s *AdminService) DeleteCourse(id uint) error {
	if err := s.CourseRepo.Delete(id); err != nil {
		return notFound(err, util.ErrCourseNotFound)
	}
	logger.Log.Info("course deleted", zap.Uint("courseID", id))
	return nil
}

// UploadVideo 校验文件、探测时长、写入对象存储后创建课时
func (s *AdminService) UploadVideo(ctx context.Context, req UploadVideoRequest) (*model.Video, error) {
	section, err := s.CourseRepo.FindSection(req.CourseID, req.SectionID)
	if err != nil {
		return nil, notFound(err, util.ErrSectionNotFound)
	}
	if !util.HasAllowedExtension(req.FileName, util.AllowedVideoExtensions) {
		return nil, util.ErrInvalidVideoFile
	}

	f, err := os.Open(req.LocalPath)
	if err != nil {
		return nil, err
	}
	mimeType, err := util.ValidateMimeType(f, []string{util.MimeVideo, util.MimeOctetStream})
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrInvalidVideoFile, err)
	}

	video := &model.Video{
		SectionID:   section.ID,
		Title:       req.Title,
		Description: req.Description,
	}
	if s.Probe != nil {
		info, err := util.ProbeVideo(s.Probe, req.LocalPath)
		if err != nil {
			logger.Log.Warn("video probe failed", zap.String("file", req.FileName), zap.Error(err))
		} else {
			video.Duration = util.FormatDuration(info.Duration)
		}
	}

	key := fmt.Sprintf("videos/%d/%s%s", section.ID, uuid.New().String(), filepath.Ext(req.FileName))
	url, err := s.Storage.UploadFile(ctx, key, req.LocalPath, mimeType)
	if err != nil {
		return nil, err
	}
	video.Resources = append(video.Resources, model.VideoResource{Name: req.FileName, Type: "video", URL: url})

	if video.Order, err = s.CourseRepo.NextVideoOrder(section.ID); err != nil {
		return nil, err
	}
	if err := s.CourseRepo.CreateVideo(video); err != nil {
		return nil, err
	}
	logger.Log.Info("video uploaded",
		zap.Uint("courseID", req.CourseID),
		zap.Uint("videoID", video.ID),
		zap.String("duration", video.Duration))
	return video, nil
}

// QuestionInput 管理端写入题目的请求体，字段名与课程数据文件一致
type QuestionInput struct {
	ID             string           `json:"id" binding:"required"`
	Type           string           `json:"type" binding:"required"`
	Question       string           `json:"question"`
	Options        []string         `json:"options"`
	CorrectAnswer  string           `json:"correctAnswer"`
	CorrectAnswers []string         `json:"correctAnswers"`
	Points         int              `json:"points"`
	Explanation    string           `json:"explanation"`
	Language       string           `json:"language"`
	StarterCode    string           `json:"starterCode"`
	ExpectedOutput string           `json:"expectedOutput"`
	TestCases      []model.TestCase `json:"testCases"`
}

func (in QuestionInput) Model() model.QuizQuestion {
	return model.QuizQuestion{
		Key:            in.ID,
		Type:           in.Type,
		Prompt:         in.Question,
		Options:        in.Options,
		CorrectText:    in.CorrectAnswer,
		CorrectSet:     in.CorrectAnswers,
		Points:         in.Points,
		Explanation:    in.Explanation,
		Language:       in.Language,
		StarterCode:    in.StarterCode,
		ExpectedOutput: in.ExpectedOutput,
		TestCases:      in.TestCases,
	}
}

// ReplaceQuestions 题目写入前逐条校验，id 在同一视频内不能重复
func (s *AdminService) ReplaceQuestions(videoID uint, inputs []QuestionInput) ([]model.QuizQuestion, error) {
	if _, err := s.CourseRepo.FindVideo(videoID); err != nil {
		return nil, notFound(err, util.ErrVideoNotFound)
	}

	questions := make([]model.QuizQuestion, 0, len(inputs))
	seen := make(map[string]bool, len(inputs))
	for i, in := range inputs {
		q := in.Model()
		if err := q.ToQuiz().Validate(); err != nil {
			return nil, &QuestionError{Index: i, Err: err}
		}
		if seen[q.Key] {
			return nil, &QuestionError{Index: i, Err: fmt.Errorf("%w: duplicate id %q", quiz.ErrInvalidQuestion, q.Key)}
		}
		seen[q.Key] = true
		q.Order = i + 1
		questions = append(questions, q)
	}

	if err := s.QuizRepo.ReplaceQuestions(videoID, questions); err != nil {
		return nil, err
	}
	return s.QuizRepo.QuestionsForVideo(videoID)
}

// QuestionError 管理端题目校验失败
type QuestionError struct {
	Index int
	Err   error
}

func (e *QuestionError) Error() string {
	return fmt.Sprintf("question %d: %v", e.Index, e.Err)
}

func (e *QuestionError) Unwrap() error { return e.Err }
