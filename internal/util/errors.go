package util

import "errors"

var (
	// 请求校验
	ErrInvalidFileType = errors.New("invalid file or file type")
	ErrEmptyContent    = errors.New("could not extract readable content from file")
	ErrFileTooLarge    = errors.New("file exceeds the maximum upload size")

	// 资源不存在
	ErrRoadmapNotFound   = errors.New("roadmap not found")
	ErrMilestoneNotFound = errors.New("milestone not found in roadmap")

	// 外部依赖
	ErrGenerationFailed = errors.New("AI generation failed")
	ErrPersistence      = errors.New("persistence failure")
	ErrStorage          = errors.New("storage failure")
)
