// Package llm 封装结构化输出的大模型调用，屏蔽 Gemini / OpenAI 兼容接口之间的差异
package llm

import (
	"context"
	"encoding/json"
)

// Provider 大模型调用的统一抽象
type Provider interface {
	// Generate 发送单轮提示词。Schema 不为空时返回值已通过本地 JSON Schema 校验
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID 返回当前使用的模型标识
	ModelID() string
}

// Request 单轮生成请求
type Request struct {
	// System 系统提示词，设定角色和输出约束
	System string

	// Prompt 用户提示词
	Prompt string

	// Schema 不为空时要求模型按该 JSON Schema 输出
	Schema *Schema

	// MaxTokens 为 0 时使用模型默认值
	MaxTokens int

	Temperature float64
}

// Schema 描述期望的 JSON 结构
type Schema struct {
	// Name 结构标识，OpenAI json_schema 的 name 字段，同时作为编译缓存的 key
	Name string

	Description string

	// Definition JSON Schema 定义
	Definition map[string]any
}

// Response 模型输出
type Response struct {
	// Content 指定 Schema 时为校验通过的 JSON 对象
	Content json.RawMessage

	Usage Usage

	Model string

	// StopReason 统一为 "end" / "max_tokens"
	StopReason string
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
