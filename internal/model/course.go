package model

import (
	"time"

	"gorm.io/datatypes"
)

type CourseLevel string

const (
	LevelBeginner     CourseLevel = "Beginner"
	LevelIntermediate CourseLevel = "Intermediate"
	LevelAdvanced     CourseLevel = "Advanced"
)

type CourseStatus string

const (
	StatusPublished CourseStatus = "Published"
	StatusDraft     CourseStatus = "Draft"
	StatusArchived  CourseStatus = "Archived"
)

type Instructor struct {
	Name       string  `gorm:"size:100" json:"name" yaml:"name"`
	Avatar     string  `gorm:"size:255" json:"avatar" yaml:"avatar"`
	Bio        string  `gorm:"type:text" json:"bio" yaml:"bio"`
	Rating     float64 `json:"rating" yaml:"rating"`
	Students   int     `json:"students" yaml:"students"`
	Experience string  `gorm:"size:255" json:"experience" yaml:"experience"`
}

// swagger:model Course
type Course struct {
	BaseModel
	Title            string                      `gorm:"size:255;not null" json:"title" yaml:"title"`
	Instructor       Instructor                  `gorm:"embedded;embeddedPrefix:instructor_" json:"instructor" yaml:"instructor"`
	Level            CourseLevel                 `gorm:"size:20;index" json:"level" yaml:"level"`
	Duration         string                      `gorm:"size:50" json:"duration" yaml:"duration"`
	Students         int                         `gorm:"default:0" json:"students" yaml:"students"`
	Completions      int                         `gorm:"default:0" json:"completions" yaml:"completions"`
	Rating           float64                     `gorm:"default:0" json:"rating" yaml:"rating"`
	Category         string                      `gorm:"size:100;index" json:"category" yaml:"category"`
	Description      string                      `gorm:"size:500" json:"description" yaml:"description"`
	LongDescription  string                      `gorm:"type:text" json:"longDescription" yaml:"longDescription"`
	Image            string                      `gorm:"size:255" json:"image" yaml:"image"`
	Tags             datatypes.JSONSlice[string] `json:"tags" yaml:"tags"`
	WhatYouWillLearn datatypes.JSONSlice[string] `json:"whatYouWillLearn" yaml:"whatYouWillLearn"`
	Requirements     datatypes.JSONSlice[string] `json:"requirements" yaml:"requirements"`
	Sections         []Section                   `gorm:"foreignKey:CourseID" json:"curriculum" yaml:"curriculum"`
	Price            float64                     `gorm:"default:0" json:"price" yaml:"price"`
	IsFree           bool                        `gorm:"default:false" json:"isFree" yaml:"isFree"`
	Certificate      bool                        `gorm:"default:false" json:"certificate" yaml:"certificate"`
	Language         string                      `gorm:"size:50" json:"language" yaml:"language"`
	Status           CourseStatus                `gorm:"size:20;default:'Published'" json:"status" yaml:"status"`
	LastUpdated      time.Time                   `json:"lastUpdated" yaml:"lastUpdated"`
}

func (Course) TableName() string {
	return "courses"
}

// Section 课程章节。Lessons 为录入的课时数，与实际视频数量可以不一致。
type Section struct {
	BaseModel
	CourseID uint    `gorm:"index" json:"courseId" yaml:"-"`
	Title    string  `gorm:"size:255;not null" json:"title" yaml:"title"`
	Duration string  `gorm:"size:50" json:"duration" yaml:"duration"`
	Lessons  int     `gorm:"default:0" json:"lessons" yaml:"lessons"`
	Order    int     `gorm:"column:sort_order;default:0" json:"order" yaml:"order"`
	Videos   []Video `gorm:"foreignKey:SectionID" json:"videos" yaml:"videos"`
}

func (Section) TableName() string {
	return "course_sections"
}

type VideoResource struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
	URL  string `json:"url" yaml:"url"`
}

type Video struct {
	BaseModel
	SectionID   uint                               `gorm:"index" json:"sectionId" yaml:"-"`
	Title       string                             `gorm:"size:255;not null" json:"title" yaml:"title"`
	Duration    string                             `gorm:"size:20" json:"duration" yaml:"duration"`
	Description string                             `gorm:"type:text" json:"description" yaml:"description"`
	IsCompleted bool                               `gorm:"default:false" json:"isCompleted" yaml:"isCompleted"`
	IsLocked    bool                               `gorm:"default:false" json:"isLocked" yaml:"isLocked"`
	Order       int                                `gorm:"column:sort_order;default:0" json:"order" yaml:"order"`
	Resources   datatypes.JSONSlice[VideoResource] `json:"resources,omitempty" yaml:"resources"`
	Questions   []QuizQuestion                     `gorm:"foreignKey:VideoID" json:"-" yaml:"questions"`
}

func (Video) TableName() string {
	return "course_videos"
}

// VideoCompletion 客户端标记已完成的视频，覆盖课程数据中的 isCompleted
type VideoCompletion struct {
	BaseModel
	ClientID    string    `gorm:"size:64;uniqueIndex:idx_client_video" json:"clientId"`
	VideoID     uint      `gorm:"uniqueIndex:idx_client_video" json:"videoId"`
	CompletedAt time.Time `json:"completedAt"`
}

func (VideoCompletion) TableName() string {
	return "video_completions"
}
