package repository

import (
	"cybit_edu/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func orderedCurriculum(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Sections", func(tx *gorm.DB) *gorm.DB { return tx.Order("sort_order, id") }).
		Preload("Sections.Videos", func(tx *gorm.DB) *gorm.DB { return tx.Order("sort_order, id") })
}

// FindAll 列表页不加载课程大纲
func (r *CourseRepository) FindAll() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Order("id").Find(&courses).Error
	return courses, err
}

// FindAllWithCurriculum 管理端统计需要完整大纲
func (r *CourseRepository) FindAllWithCurriculum() ([]model.Course, error) {
	var courses []model.Course
	err := orderedCurriculum(r.DB).Order("id").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := orderedCurriculum(r.DB).First(&course, id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

// Delete 连同章节、视频、题目一起删除
func (r *CourseRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var sectionIDs []uint
		if err := tx.Model(&model.Section{}).Where("course_id = ?", id).Pluck("id", &sectionIDs).Error; err != nil {
			return err
		}
		if len(sectionIDs) > 0 {
			var videoIDs []uint
			if err := tx.Model(&model.Video{}).Where("section_id IN ?", sectionIDs).Pluck("id", &videoIDs).Error; err != nil {
				return err
			}
			if len(videoIDs) > 0 {
				if err := tx.Where("video_id IN ?", videoIDs).Delete(&model.QuizQuestion{}).Error; err != nil {
					return err
				}
				if err := tx.Where("id IN ?", videoIDs).Delete(&model.Video{}).Error; err != nil {
					return err
				}
			}
			if err := tx.Where("id IN ?", sectionIDs).Delete(&model.Section{}).Error; err != nil {
				return err
			}
		}

		res := tx.Delete(&model.Course{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *CourseRepository) FindSection(courseID, sectionID uint) (*model.Section, error) {
	var section model.Section
	err := r.DB.Where("id = ? AND course_id = ?", sectionID, courseID).First(&section).Error
	if err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *CourseRepository) FindVideo(videoID uint) (*model.Video, error) {
	var video model.Video
	if err := r.DB.First(&video, videoID).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

// FindVideoInCourse 确认视频属于该课程
func (r *CourseRepository) FindVideoInCourse(courseID, videoID uint) (*model.Video, error) {
	var video model.Video
	err := r.DB.
		Joins("JOIN course_sections ON course_sections.id = course_videos.section_id AND course_sections.deleted_at IS NULL").
		Where("course_videos.id = ? AND course_sections.course_id = ?", videoID, courseID).
		First(&video).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *CourseRepository) CreateVideo(video *model.Video) error {
	return r.DB.Create(video).Error
}

// NextVideoOrder 章节内下一个视频的排序值
func (r *CourseRepository) NextVideoOrder(sectionID uint) (int, error) {
	var max int
	err := r.DB.Model(&model.Video{}).
		Select("COALESCE(MAX(sort_order), 0)").
		Where("section_id = ?", sectionID).
		Scan(&max).Error
	return max + 1, err
}
