package service

import (
	"context"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"

	"eduguide_backend/internal/model"
	"eduguide_backend/internal/util"
	"eduguide_backend/pkg/logger"

	"go.uber.org/zap"
)

// PaperSummaryResult 摘要结果，开启归档时附带归档地址
type PaperSummaryResult struct {
	model.PaperSummaryOutput
	ArchiveURL string `json:"archive_url,omitempty"`
}

type PaperService struct {
	FileService    *FileService
	AIService      *AIService
	StorageService *StorageService
	archive        bool
}

// NewPaperService storage 为 nil 时不归档
func NewPaperService(files *FileService, ai *AIService, storage *StorageService, archive bool) *PaperService {
	return &PaperService{
		FileService:    files,
		AIService:      ai,
		StorageService: storage,
		archive:        archive && storage != nil,
	}
}

// Summarize 落盘、提取文本、生成摘要；无论成功与否临时文件都会被删除
func (s *PaperService) Summarize(ctx context.Context, fh *multipart.FileHeader) (*PaperSummaryResult, error) {
	tmpPath, err := s.FileService.Accept(fh)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := s.FileService.Remove(tmpPath); err != nil {
			logger.Log.Warn("Failed to remove temporary upload", zap.String("path", tmpPath), zap.Error(err))
		}
	}()

	text, err := s.FileService.Extract(tmpPath)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, util.ErrEmptyContent
	}

	summary, err := s.AIService.GenerateSummary(ctx, text)
	if err != nil {
		return nil, err
	}

	result := &PaperSummaryResult{PaperSummaryOutput: *summary}
	if s.archive {
		result.ArchiveURL = s.archivePaper(ctx, tmpPath)
	}
	return result, nil
}

// archivePaper 归档失败只记录日志，不影响摘要结果
func (s *PaperService) archivePaper(ctx context.Context, tmpPath string) string {
	key := path.Join("papers", filepath.Base(tmpPath))
	url, err := s.StorageService.UploadFile(ctx, key, tmpPath, util.MimeTypeFor(tmpPath))
	if err != nil {
		logger.Log.Warn("Failed to archive paper", zap.String("key", key), zap.Error(err))
		return ""
	}
	return url
}
