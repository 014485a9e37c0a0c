package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"eduguide_backend/internal/config"
	"eduguide_backend/internal/model"
	"eduguide_backend/internal/util"
	"eduguide_backend/pkg/llm"
	"eduguide_backend/pkg/logger"
	"eduguide_backend/pkg/monitoring"
	"eduguide_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const systemInstruction = "You are an expert AI Curriculum Designer named 'Pathfinder'. " +
	"Your only job is to generate output that strictly adheres to the requested JSON schema."

const (
	initialRoadmapPrompt = "Generate the full learning path, including all milestones, the %d-question quiz for Milestone 1, " +
		"%d flashcards, and the mini-project for Milestone 1. Skill: '%s', Level: '%s'."

	milestoneReportPrompt = "The user has successfully mastered the concept: '%s'.\n" +
		"Generate a summary of this concept, provide a suggestion for the next logical milestone, " +
		"and generate a new %d-question quiz and a new mini-project for that *next* milestone."

	paperSummaryPrompt = "Summarize the following research paper content into a concise, easy-to-understand explanation. " +
		"Also, extract between %d and %d key terms and their definitions for flashcards.\n\nCONTENT:\n---\n%s..."
)

// AIService 结构化生成的统一入口，所有失败都归为 util.ErrGenerationFailed
type AIService struct {
	provider llm.Provider
	timeout  time.Duration
}

// NewAIService provider 为 nil 表示未配置凭证，每次调用都会返回生成失败
func NewAIService(provider llm.Provider, cfg config.AIConfig) *AIService {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultAITimeout
	}
	return &AIService{provider: provider, timeout: timeout}
}

// Configured 是否已配置可用的模型
func (s *AIService) Configured() bool {
	return s.provider != nil
}

// Generate 按 id 对应的 Schema 生成并返回校验通过的 JSON，只尝试一次
func (s *AIService) Generate(ctx context.Context, prompt string, id SchemaID) (json.RawMessage, error) {
	schema, err := LookupSchema(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", util.ErrGenerationFailed, err)
	}
	if s.provider == nil {
		return nil, fmt.Errorf("%w: %w", util.ErrGenerationFailed, llm.ErrMissingAPIKey)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	ctx, span := tracing.StartSpan(ctx, "ai.generate",
		attribute.String("ai.schema", string(id)),
		attribute.String("ai.model", s.provider.ModelID()),
	)

	start := time.Now()
	resp, err := s.provider.Generate(ctx, llm.Request{
		System: systemInstruction,
		Prompt: prompt,
		Schema: schema,
	})
	elapsed := time.Since(start)

	monitoring.ObserveAIGeneration(string(id), err, elapsed)
	tracing.EndSpan(span, err)

	if err != nil {
		logger.Log.Warn("AI generation failed",
			zap.String("schema", string(id)),
			zap.String("model", s.provider.ModelID()),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", util.ErrGenerationFailed, err)
	}

	logger.Log.Info("AI generation completed",
		zap.String("schema", string(id)),
		zap.String("model", resp.Model),
		zap.Duration("elapsed", elapsed),
		zap.Int("input_tokens", resp.Usage.InputTokens),
		zap.Int("output_tokens", resp.Usage.OutputTokens),
	)

	return resp.Content, nil
}

// GenerateInitialRoadmap 生成完整学习路线和第一个里程碑的测验、闪卡、项目
func (s *AIService) GenerateInitialRoadmap(ctx context.Context, skill, level string) (*model.LearningPathOutput, json.RawMessage, error) {
	prompt := fmt.Sprintf(initialRoadmapPrompt, QuizQuestionCount, MilestoneFlashcards, skill, level)
	return generateInto[model.LearningPathOutput](ctx, s, prompt, SchemaLearningPath)
}

// GenerateMilestoneReport concepts 以逗号拼接后作为已掌握内容
func (s *AIService) GenerateMilestoneReport(ctx context.Context, concepts []string) (*model.MilestoneReportOutput, json.RawMessage, error) {
	prompt := fmt.Sprintf(milestoneReportPrompt, strings.Join(concepts, ", "), QuizQuestionCount)
	return generateInto[model.MilestoneReportOutput](ctx, s, prompt, SchemaMilestoneReport)
}

// GenerateSummary 正文超过 8000 字符时截断
func (s *AIService) GenerateSummary(ctx context.Context, text string) (*model.PaperSummaryOutput, error) {
	prompt := fmt.Sprintf(paperSummaryPrompt, PaperFlashcardsMin, PaperFlashcardsMax, truncateRunes(text, maxPaperContentLength))
	out, _, err := generateInto[model.PaperSummaryOutput](ctx, s, prompt, SchemaPaperSummary)
	return out, err
}

func generateInto[T any](ctx context.Context, s *AIService, prompt string, id SchemaID) (*T, json.RawMessage, error) {
	raw, err := s.Generate(ctx, prompt, id)
	if err != nil {
		return nil, nil, err
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, nil, fmt.Errorf("%w: decode %s: %w", util.ErrGenerationFailed, id, err)
	}
	return &out, raw, nil
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit])
}
