package util

import (
	"path/filepath"
	"regexp"
	"strings"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SanitizeFilename 去除路径穿越字符，只保留 ASCII 字母、数字、点、下划线和短横线
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = strings.ReplaceAll(name, "/", " ")
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	return strings.TrimLeft(name, "._")
}

// FileExtension 返回小写且不带点的扩展名
func FileExtension(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

// HasAllowedExtension 仅按扩展名校验，不做文件头嗅探
func HasAllowedExtension(name string, allowed []string) bool {
	ext := FileExtension(name)
	if ext == "" {
		return false
	}
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}

// MimeTypeFor 根据扩展名推断归档时使用的 Content-Type
func MimeTypeFor(name string) string {
	switch FileExtension(name) {
	case "pdf":
		return MimePDF
	case "txt":
		return MimeText
	default:
		return MimeOctetStream
	}
}
