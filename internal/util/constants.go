package util

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMongo    = "mongo"
)

// 文件上传相关常量
const (
	MimePDF         = "application/pdf"
	MimeText        = "text/plain; charset=utf-8"
	MimeOctetStream = "application/octet-stream"

	// PDF 解析尚未实现，返回固定占位文本
	PDFPlaceholderContent = "Placeholder content extracted from PDF..."
)
