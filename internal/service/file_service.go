package service

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf8"

	"eduguide_backend/internal/config"
	"eduguide_backend/internal/model"
	"eduguide_backend/internal/util"
	"eduguide_backend/pkg/logger"

	"go.uber.org/zap"
)

// FileService 上传文件的落盘、文本提取和清理
type FileService struct {
	mu      sync.RWMutex
	dir     string
	maxSize int64
	allowed []string
}

func NewFileService(cfg config.UploadConfig) *FileService {
	s := &FileService{}
	s.UpdateConfig(cfg)
	return s
}

// UpdateConfig 配置热更新时替换白名单和大小限制
func (s *FileService) UpdateConfig(cfg config.UploadConfig) {
	maxSize := cfg.MaxSize
	if maxSize <= 0 {
		maxSize = config.DefaultMaxUploadSize
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.dir = cfg.Dir
	s.maxSize = maxSize
	s.allowed = append([]string(nil), cfg.AllowedExtensions...)
}

// MaxSize 当前上传大小上限
func (s *FileService) MaxSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxSize
}

func (s *FileService) snapshot() (dir string, maxSize int64, allowed []string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dir, s.maxSize, s.allowed
}

// Accept 校验扩展名和大小后写入上传目录，返回文件路径。被拒绝的文件不会落盘
func (s *FileService) Accept(fh *multipart.FileHeader) (string, error) {
	dir, maxSize, allowed := s.snapshot()

	if fh == nil || !util.HasAllowedExtension(fh.Filename, allowed) {
		return "", util.ErrInvalidFileType
	}
	if fh.Size > maxSize {
		return "", fmt.Errorf("%w: %d bytes", util.ErrFileTooLarge, fh.Size)
	}

	base := filepath.Base(strings.ReplaceAll(fh.Filename, "\\", "/"))
	ext := util.FileExtension(base)
	stem := util.SanitizeFilename(strings.TrimSuffix(base, filepath.Ext(base)))
	if stem == "" {
		stem = "upload"
	}
	// UUID 前缀避免并发上传同名文件互相覆盖
	name := fmt.Sprintf("%s_%s.%s", model.GenerateUUID(), stem, ext)
	dst := filepath.Join(dir, name)

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %w", util.ErrInvalidFileType, err)
	}
	defer src.Close()

	if err := writeLimited(dst, src, maxSize); err != nil {
		os.Remove(dst)
		return "", err
	}

	logger.Log.Debug("Upload saved", zap.String("path", dst), zap.Int64("size", fh.Size))
	return dst, nil
}

func writeLimited(dst string, src io.Reader, maxSize int64) error {
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("%w: create upload file: %w", util.ErrStorage, err)
	}
	defer out.Close()

	n, err := io.Copy(out, io.LimitReader(src, maxSize+1))
	if err != nil {
		return fmt.Errorf("%w: write upload file: %w", util.ErrStorage, err)
	}
	// multipart 头部中的 Size 不可信，以实际写入量为准
	if n > maxSize {
		return fmt.Errorf("%w: more than %d bytes", util.ErrFileTooLarge, maxSize)
	}
	return nil
}

// Extract 提取文本：txt 按 UTF-8 读取，pdf 返回占位文本；读取失败视为无可用内容
func (s *FileService) Extract(path string) (string, error) {
	switch util.FileExtension(path) {
	case "txt":
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("%w: %w", util.ErrEmptyContent, err)
		}
		if !utf8.Valid(b) {
			return "", fmt.Errorf("%w: file is not valid UTF-8", util.ErrEmptyContent)
		}
		return strings.TrimPrefix(string(b), "\ufeff"), nil
	case "pdf":
		return util.PDFPlaceholderContent, nil
	default:
		return "", util.ErrEmptyContent
	}
}

// Remove 删除临时文件，文件已不存在不算错误
func (s *FileService) Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
