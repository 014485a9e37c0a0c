package llm

import (
	"context"
	"fmt"
)

const (
	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultOpenAIModel = "gpt-4o-mini"
)

// Config 创建 Provider 所需的配置
type Config struct {
	Provider string // gemini / openai / mock
	APIKey   string
	Model    string
	BaseURL  string
}

// NewProvider 根据配置创建 Provider；凭证缺失时返回 ErrMissingAPIKey
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	switch cfg.Provider {
	case "gemini", "":
		p, err := NewGeminiProvider(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("initializing gemini provider: %w", err)
		}
		return p, nil
	case "openai":
		p, err := NewOpenAIProvider(cfg)
		if err != nil {
			return nil, fmt.Errorf("initializing openai provider: %w", err)
		}
		return p, nil
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
}
