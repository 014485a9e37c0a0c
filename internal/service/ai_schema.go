package service

import (
	"fmt"

	"eduguide_backend/pkg/llm"
)

// SchemaID 结构化输出的固定标识
type SchemaID string

const (
	SchemaLearningPath    SchemaID = "learning_path"
	SchemaMilestoneReport SchemaID = "milestone_report"
	SchemaPaperSummary    SchemaID = "paper_summary"
	SchemaFlashcardSet    SchemaID = "flashcard_set"
)

// 数量约束
const (
	MilestoneCount        = 3
	QuizQuestionCount     = 5
	MilestoneFlashcards   = 5
	PaperFlashcardsMin    = 5
	PaperFlashcardsMax    = 10
	defaultQuestionType   = "multiple-choice"
	maxPaperContentLength = 8000
)

// object 生成 OpenAI strict 模式要求的对象定义：全部字段必填且不允许额外字段
func object(description string, order []string, props map[string]any) map[string]any {
	def := map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             order,
		"additionalProperties": false,
	}
	if description != "" {
		def["description"] = description
	}
	return def
}

func str(description string) map[string]any {
	def := map[string]any{"type": "string"}
	if description != "" {
		def["description"] = description
	}
	return def
}

func arrayOf(items map[string]any, minItems, maxItems int, description string) map[string]any {
	def := map[string]any{
		"type":  "array",
		"items": items,
	}
	if minItems > 0 {
		def["minItems"] = minItems
	}
	if maxItems > 0 {
		def["maxItems"] = maxItems
	}
	if description != "" {
		def["description"] = description
	}
	return def
}

func flashcardDef() map[string]any {
	return object("", []string{"front", "back"}, map[string]any{
		"front": str("The key term or question."),
		"back":  str("The detailed definition or answer."),
	})
}

func quizQuestionDef() map[string]any {
	return object("", []string{"id", "type", "question", "options", "answer", "explanation"}, map[string]any{
		"id":          map[string]any{"type": "integer"},
		"type":        str("Question type, always \"" + defaultQuestionType + "\"."),
		"question":    str(""),
		"options":     arrayOf(str(""), 2, 0, ""),
		"answer":      str("The correct option letter, e.g., 'B'"),
		"explanation": str(""),
	})
}

func milestoneDef() map[string]any {
	return object("", []string{"milestone_number", "title", "description", "concepts"}, map[string]any{
		"milestone_number": map[string]any{"type": "integer"},
		"title":            str(""),
		"description":      str(""),
		"concepts":         arrayOf(str(""), 0, 0, "Core concepts covered in this milestone."),
	})
}

func miniProjectDef(description string) map[string]any {
	return object(description, []string{"title", "difficulty", "instructions"}, map[string]any{
		"title":        str(""),
		"difficulty":   str(""),
		"instructions": str("A step-by-step list of tasks."),
	})
}

var schemas = map[SchemaID]*llm.Schema{
	SchemaLearningPath: {
		Name:        string(SchemaLearningPath),
		Description: "The full learning path with milestone 1 quiz, flashcards and mini project.",
		Definition: object("", []string{
			"skill_name", "level", "roadmap", "quiz_milestone_1", "flashcards_milestone_1", "mini_project_milestone_1",
		}, map[string]any{
			"skill_name":               str(""),
			"level":                    str(""),
			"roadmap":                  arrayOf(milestoneDef(), MilestoneCount, MilestoneCount, ""),
			"quiz_milestone_1":         arrayOf(quizQuestionDef(), QuizQuestionCount, QuizQuestionCount, ""),
			"flashcards_milestone_1":   arrayOf(flashcardDef(), MilestoneFlashcards, MilestoneFlashcards, ""),
			"mini_project_milestone_1": miniProjectDef(""),
		}),
	},
	SchemaMilestoneReport: {
		Name:        string(SchemaMilestoneReport),
		Description: "Report for a completed milestone with the quiz and project for the next one.",
		Definition: object("", []string{
			"learned_summary", "suggested_next_milestone_title", "new_quiz", "new_project",
		}, map[string]any{
			"learned_summary":                str("A summary of the learned concepts from the completed milestone."),
			"suggested_next_milestone_title": str(""),
			"new_quiz":                       arrayOf(quizQuestionDef(), QuizQuestionCount, QuizQuestionCount, "Quiz for the NEXT milestone."),
			"new_project":                    miniProjectDef("Project for the NEXT milestone."),
		}),
	},
	SchemaPaperSummary: {
		Name:        string(SchemaPaperSummary),
		Description: "Summary of a research paper with key-term flashcards.",
		Definition: object("", []string{"paper_summary", "flashcards"}, map[string]any{
			"paper_summary": str("A concise, easy-to-understand summary of the research paper text."),
			"flashcards":    arrayOf(flashcardDef(), PaperFlashcardsMin, PaperFlashcardsMax, ""),
		}),
	},
	SchemaFlashcardSet: {
		Name:        string(SchemaFlashcardSet),
		Description: "A standalone set of flashcards.",
		Definition: object("", []string{"flashcards"}, map[string]any{
			"flashcards": arrayOf(flashcardDef(), PaperFlashcardsMin, PaperFlashcardsMax, ""),
		}),
	},
}

// LookupSchema 返回 id 对应的 Schema
func LookupSchema(id SchemaID) (*llm.Schema, error) {
	s, ok := schemas[id]
	if !ok {
		return nil, fmt.Errorf("unknown schema %q", id)
	}
	return s, nil
}

// SchemaIDs 全部已注册的标识
func SchemaIDs() []SchemaID {
	return []SchemaID{SchemaLearningPath, SchemaMilestoneReport, SchemaPaperSummary, SchemaFlashcardSet}
}
