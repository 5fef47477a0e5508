package service

import (
	"cybit_edu/internal/catalog"
	"cybit_edu/internal/curriculum"
	"cybit_edu/internal/model"
	"cybit_edu/internal/repository"
	"cybit_edu/internal/util"
	"errors"

	"gorm.io/gorm"
)

type CourseService struct {
	CourseRepo     *repository.CourseRepository
	CompletionRepo *repository.VideoCompletionRepository
}

func NewCourseService(courseRepo *repository.CourseRepository, completionRepo *repository.VideoCompletionRepository) *CourseService {
	return &CourseService{
		CourseRepo:     courseRepo,
		CompletionRepo: completionRepo,
	}
}

type CourseList struct {
	Courses []model.Course `json:"courses"`
	Shown   int            `json:"shown"`
	Total   int            `json:"total"`
}

type CourseDetail struct {
	Course   *model.Course      `json:"course"`
	Progress curriculum.Summary `json:"progress"`
}

// PlayerView 课时播放页：扁平化的课时列表和当前位置
type PlayerView struct {
	CourseID    uint                `json:"courseId"`
	CourseTitle string              `json:"courseTitle"`
	Lessons     []curriculum.Lesson `json:"lessons"`
	Index       int                 `json:"index"`
	Current     *curriculum.Lesson  `json:"current,omitempty"`
	Previous    *curriculum.Lesson  `json:"previous,omitempty"`
	Next        *curriculum.Lesson  `json:"next,omitempty"`
	Progress    float64             `json:"progress"`
}

func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

func (s *CourseService) List(q catalog.Query) (*CourseList, error) {
	all, err := s.CourseRepo.FindAll()
	if err != nil {
		return nil, err
	}
	shown := catalog.Apply(all, q)
	return &CourseList{Courses: shown, Shown: len(shown), Total: len(all)}, nil
}

func (s *CourseService) Facets() (catalog.Facets, error) {
	all, err := s.CourseRepo.FindAll()
	if err != nil {
		return catalog.Facets{}, err
	}
	return catalog.BuildFacets(all), nil
}

// withCompletions 加载课程并叠加客户端的完成记录
func (s *CourseService) withCompletions(clientID string, courseID uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		return nil, notFound(err, util.ErrCourseNotFound)
	}

	var videoIDs []uint
	for _, sec := range course.Sections {
		for _, v := range sec.Videos {
			videoIDs = append(videoIDs, v.ID)
		}
	}
	done, err := s.CompletionRepo.CompletedVideoIDs(clientID, videoIDs)
	if err != nil {
		return nil, err
	}
	course.Sections = curriculum.ApplyCompletions(course.Sections, done)
	return course, nil
}

func (s *CourseService) Detail(clientID string, courseID uint) (*CourseDetail, error) {
	course, err := s.withCompletions(clientID, courseID)
	if err != nil {
		return nil, err
	}
	return &CourseDetail{Course: course, Progress: curriculum.Summarize(course.Sections)}, nil
}

func (s *CourseService) Progress(clientID string, courseID uint) (curriculum.Summary, error) {
	course, err := s.withCompletions(clientID, courseID)
	if err != nil {
		return curriculum.Summary{}, err
	}
	return curriculum.Summarize(course.Sections), nil
}

// Player index 越界时夹到首尾；videoID 非 0 时优先按视频定位
func (s *CourseService) Player(clientID string, courseID uint, index int, videoID uint) (*PlayerView, error) {
	course, err := s.withCompletions(clientID, courseID)
	if err != nil {
		return nil, err
	}

	p := curriculum.NewPlaylist(course.Sections)
	if videoID != 0 {
		i, ok := p.IndexOf(videoID)
		if !ok {
			return nil, util.ErrVideoNotFound
		}
		index = i
	}
	p.Select(index)

	view := &PlayerView{
		CourseID:    course.ID,
		CourseTitle: course.Title,
		Lessons:     p.Lessons(),
		Index:       p.Index(),
		Progress:    p.Progress(),
	}
	if cur, ok := p.Current(); ok {
		view.Current = &cur
	}
	if p.HasPrevious() {
		prev := view.Lessons[p.Index()-1]
		view.Previous = &prev
	}
	if p.HasNext() {
		next := view.Lessons[p.Index()+1]
		view.Next = &next
	}
	return view, nil
}

// MarkVideoComplete 返回更新后的课程进度
func (s *CourseService) MarkVideoComplete(clientID string, courseID, videoID uint) (curriculum.Summary, error) {
	if _, err := s.CourseRepo.FindVideoInCourse(courseID, videoID); err != nil {
		return curriculum.Summary{}, notFound(err, util.ErrVideoNotFound)
	}
	if err := s.CompletionRepo.MarkCompleted(clientID, videoID); err != nil {
		return curriculum.Summary{}, err
	}
	return s.Progress(clientID, courseID)
}
