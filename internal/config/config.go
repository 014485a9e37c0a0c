package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultMaxUploadSize int64 = 16 * 1024 * 1024 // 16 MiB
	DefaultAITimeout           = 60 * time.Second
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	AI       AIConfig       `mapstructure:"ai"`
	Upload   UploadConfig   `mapstructure:"upload"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Identity IdentityConfig `mapstructure:"identity"`
	Tracing  TracingConfig  `mapstructure:"tracing"`
	CORS     CORSConfig     `mapstructure:"cors"`

	// 运行时标志（非配置文件，通过命令行参数设置）
	ForceMigrate bool   `mapstructure:"-"`
	MigrateOnly  bool   `mapstructure:"-"`
	ConfigFile   string `mapstructure:"-"` // 实际加载的配置文件路径，供热更新监听
}

type ServerConfig struct {
	Port      string
	Mode      string
	SecretKey string `mapstructure:"secret_key"`
}

// DatabaseConfig 支持 mysql / postgres / sqlite（gorm）以及 mongo 四种驱动
type DatabaseConfig struct {
	Driver    string
	DSN       string `mapstructure:"dsn"`
	URI       string `mapstructure:"uri"`
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string `mapstructure:"dbname"`
	Charset   string
	ParseTime bool `mapstructure:"parse_time"`
	SSLMode   string `mapstructure:"ssl_mode"`
}

type AIConfig struct {
	Provider string        `mapstructure:"provider"`
	BaseURL  string        `mapstructure:"base_url"`
	APIKey   string        `mapstructure:"api_key"`
	Model    string        `mapstructure:"model"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type UploadConfig struct {
	Dir               string   `mapstructure:"dir"`
	MaxSize           int64    `mapstructure:"max_size"`
	AllowedExtensions []string `mapstructure:"allowed_extensions"`
}

type StorageConfig struct {
	Type          string `mapstructure:"type"`
	ArchivePapers bool   `mapstructure:"archive_papers"`
	LocalPath     string `mapstructure:"local_path"`
	MinioEndpoint string `mapstructure:"minio_endpoint"`
	MinioAccessID string `mapstructure:"minio_access_key"`
	MinioSecret   string `mapstructure:"minio_secret_key"`
	MinioBucket   string `mapstructure:"minio_bucket"`
	MinioSecure   bool   `mapstructure:"minio_secure"`
	OSSEndpoint   string `mapstructure:"oss_endpoint"`
	OSSAccessKey  string `mapstructure:"oss_access_key"`
	OSSSecretKey  string `mapstructure:"oss_secret_key"`
	OSSBucket     string `mapstructure:"oss_bucket"`
}

// IdentityConfig 固定的模拟用户，替代真实认证
type IdentityConfig struct {
	UserID   string `mapstructure:"user_id"`
	Username string `mapstructure:"username"`
	Email    string `mapstructure:"email"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "5000")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.secret_key", "default-secret-key-for-development")

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "eduguide.db")
	v.SetDefault("database.dbname", "EduGuide")
	v.SetDefault("database.charset", "utf8mb4")
	v.SetDefault("database.parse_time", true)
	v.SetDefault("database.ssl_mode", "disable")

	v.SetDefault("ai.provider", "gemini")
	v.SetDefault("ai.timeout", DefaultAITimeout)

	v.SetDefault("upload.dir", "uploads")
	v.SetDefault("upload.max_size", DefaultMaxUploadSize)
	v.SetDefault("upload.allowed_extensions", []string{"txt", "pdf"})

	v.SetDefault("storage.type", "local")
	v.SetDefault("storage.local_path", "archive")

	v.SetDefault("identity.user_id", "mock_user_1")
	v.SetDefault("identity.username", "test_mongo_user")
	v.SetDefault("identity.email", "test@mongo.com")

	v.SetDefault("cors.allowed_origins", []string{"*"})
}

func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix("EDUGUIDE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server
	v.BindEnv("server.port", "SERVER_PORT")
	v.BindEnv("server.mode", "SERVER_MODE")
	v.BindEnv("server.secret_key", "SECRET_KEY")

	// Database
	v.BindEnv("database.driver", "DATABASE_DRIVER")
	v.BindEnv("database.dsn", "DATABASE_DSN")
	v.BindEnv("database.uri", "MONGO_URI", "DATABASE_URI")
	v.BindEnv("database.host", "DATABASE_HOST")
	v.BindEnv("database.port", "DATABASE_PORT")
	v.BindEnv("database.user", "DATABASE_USER")
	v.BindEnv("database.password", "DATABASE_PASSWORD")
	v.BindEnv("database.dbname", "MONGO_DB_NAME", "DATABASE_NAME")

	// AI
	v.BindEnv("ai.provider", "AI_PROVIDER")
	v.BindEnv("ai.api_key", "GEMINI_API_KEY", "AI_API_KEY")
	v.BindEnv("ai.model", "GEMINI_MODEL", "AI_MODEL")
	v.BindEnv("ai.base_url", "AI_BASE_URL")
	v.BindEnv("ai.timeout", "AI_TIMEOUT")

	// Upload
	v.BindEnv("upload.dir", "UPLOAD_FOLDER")
	v.BindEnv("upload.max_size", "MAX_CONTENT_LENGTH")

	// Storage
	v.BindEnv("storage.type", "STORAGE_TYPE")
	v.BindEnv("storage.archive_papers", "ARCHIVE_PAPERS")
	v.BindEnv("storage.minio_endpoint", "MINIO_ENDPOINT")
	v.BindEnv("storage.minio_access_key", "MINIO_ACCESS_KEY")
	v.BindEnv("storage.minio_secret_key", "MINIO_SECRET_KEY")
	v.BindEnv("storage.minio_bucket", "MINIO_BUCKET")
	v.BindEnv("storage.oss_endpoint", "OSS_ENDPOINT")
	v.BindEnv("storage.oss_access_key", "OSS_ACCESS_KEY")
	v.BindEnv("storage.oss_secret_key", "OSS_SECRET_KEY")
	v.BindEnv("storage.oss_bucket", "OSS_BUCKET")

	// Tracing
	v.BindEnv("tracing.enabled", "TRACING_ENABLED")
	v.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")
}

// LoadConfig 从 path 目录读取 config.yaml，环境变量优先；配置文件缺失时仅使用默认值和环境变量
func LoadConfig(path string) (*Config, error) {
	// .env 先加载，已存在的环境变量不会被覆盖
	for _, f := range []string{".env", filepath.Join(path, "..", ".env")} {
		_ = godotenv.Load(f)
	}

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	setDefaults(v)
	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.ConfigFile = v.ConfigFileUsed()

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.Upload.Dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	if cfg.Storage.Type == "local" && cfg.Storage.ArchivePapers {
		if err := os.MkdirAll(cfg.Storage.LocalPath, 0755); err != nil {
			return nil, fmt.Errorf("create archive dir: %w", err)
		}
	}

	return &cfg, nil
}

func (c *Config) normalize() {
	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
	c.AI.Provider = strings.ToLower(strings.TrimSpace(c.AI.Provider))

	exts := make([]string, 0, len(c.Upload.AllowedExtensions))
	for _, e := range c.Upload.AllowedExtensions {
		e = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e), "."))
		if e != "" {
			exts = append(exts, e)
		}
	}
	c.Upload.AllowedExtensions = exts

	if c.Upload.MaxSize <= 0 {
		c.Upload.MaxSize = DefaultMaxUploadSize
	}
	if c.AI.Timeout <= 0 {
		c.AI.Timeout = DefaultAITimeout
	}
}

// Validate 启动前校验配置；AI 密钥缺失不在此处报错，而是在每次生成时返回生成失败
func (c *Config) Validate() error {
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unsupported server mode %q", c.Server.Mode)
	}

	switch c.Database.Driver {
	case "mysql", "postgres", "sqlite":
	case "mongo":
		if c.Database.URI == "" {
			return fmt.Errorf("database.uri (MONGO_URI) is required for the mongo driver")
		}
		if c.Database.DBName == "" {
			return fmt.Errorf("database.dbname (MONGO_DB_NAME) is required for the mongo driver")
		}
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	switch c.AI.Provider {
	case "gemini", "openai", "mock":
	default:
		return fmt.Errorf("unsupported ai provider %q", c.AI.Provider)
	}

	if c.Upload.Dir == "" {
		return fmt.Errorf("upload.dir (UPLOAD_FOLDER) is required")
	}
	if len(c.Upload.AllowedExtensions) == 0 {
		return fmt.Errorf("upload.allowed_extensions must not be empty")
	}

	if c.Identity.UserID == "" {
		return fmt.Errorf("identity.user_id is required")
	}

	// 生产环境校验密钥强度
	if c.Server.Mode == "release" && len(c.Server.SecretKey) < 32 {
		return fmt.Errorf("secret key is too short (%d chars), must be at least 32 characters in release mode", len(c.Server.SecretKey))
	}

	return nil
}
