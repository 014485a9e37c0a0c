package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse MockProvider 的预置响应
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider 按先进先出返回预置响应并记录所有请求，用于测试和本地联调
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	fallback  map[string]MockResponse
	Calls     []Request
}

func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// Generate 队列为空时按 Schema 名称使用 fallback，仍没有则返回 ErrProviderUnavailable。
// 预置内容同样经过 Schema 校验，与真实 Provider 行为一致
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	var resp MockResponse
	if len(m.responses) > 0 {
		resp = m.responses[0]
		m.responses = m.responses[1:]
	} else {
		fb, ok := m.fallback[schemaName(req.Schema)]
		if !ok {
			return nil, &ErrProviderUnavailable{}
		}
		resp = fb
	}

	if resp.Err != nil {
		return nil, resp.Err
	}

	if err := validateResponse(req.Schema, resp.Content); err != nil {
		return nil, err
	}

	return &Response{
		Content:    resp.Content,
		Usage:      resp.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse 追加一条预置响应
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// SetFallback 队列耗尽后，请求 Schema 名称为 name 时始终返回 resp；name 为空对应无 Schema 的请求
func (m *MockProvider) SetFallback(name string, resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fallback == nil {
		m.fallback = make(map[string]MockResponse)
	}
	m.fallback[name] = resp
}

func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// LastCall 返回最近一次请求
func (m *MockProvider) LastCall() (Request, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Calls) == 0 {
		return Request{}, false
	}
	return m.Calls[len(m.Calls)-1], true
}

func schemaName(s *Schema) string {
	if s == nil {
		return ""
	}
	return s.Name
}
