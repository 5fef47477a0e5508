package util

import "errors"

var (
	ErrCourseNotFound    = errors.New("course not found")
	ErrVideoNotFound     = errors.New("video not found")
	ErrSectionNotFound   = errors.New("section not found")
	ErrSessionNotFound   = errors.New("quiz session not found")
	ErrNoQuizForVideo    = errors.New("no quiz for this video")
	ErrFileNotFound      = errors.New("playground file not found")
	ErrInvalidPreference = errors.New("invalid theme or accent")
	ErrInvalidVideoFile  = errors.New("unsupported video file")
)
