package service

import (
	"encoding/json"
	"fmt"

	"eduguide_backend/internal/model"
	"eduguide_backend/pkg/llm"
)

// 本地联调（ai.provider=mock）时返回的示例内容，均满足对应 Schema 的数量约束

func sampleQuiz(topic string) []model.QuizQuestion {
	quiz := make([]model.QuizQuestion, 0, QuizQuestionCount)
	for i := 1; i <= QuizQuestionCount; i++ {
		quiz = append(quiz, model.QuizQuestion{
			ID:          i,
			Type:        defaultQuestionType,
			Question:    fmt.Sprintf("Question %d about %s?", i, topic),
			Options:     []string{"A) first", "B) second", "C) third", "D) fourth"},
			Answer:      "B",
			Explanation: fmt.Sprintf("The second option best describes %s.", topic),
		})
	}
	return quiz
}

func sampleFlashcards(n int) []model.Flashcard {
	cards := make([]model.Flashcard, 0, n)
	for i := 1; i <= n; i++ {
		cards = append(cards, model.Flashcard{
			Front: fmt.Sprintf("Term %d", i),
			Back:  fmt.Sprintf("Definition of term %d", i),
		})
	}
	return cards
}

func sampleProject(title string) model.MiniProject {
	return model.MiniProject{
		Title:        title,
		Difficulty:   "easy",
		Instructions: "1. Set up the project. 2. Implement the core feature. 3. Write a short README.",
	}
}

// SampleLearningPath 示例学习路线
func SampleLearningPath(skill, level string) model.LearningPathOutput {
	milestones := make([]model.Milestone, 0, MilestoneCount)
	for i := 1; i <= MilestoneCount; i++ {
		milestones = append(milestones, model.Milestone{
			MilestoneNumber: i,
			Title:           fmt.Sprintf("%s milestone %d", skill, i),
			Description:     fmt.Sprintf("Stage %d of learning %s", i, skill),
			Concepts:        []string{fmt.Sprintf("concept %d.1", i), fmt.Sprintf("concept %d.2", i)},
		})
	}
	return model.LearningPathOutput{
		SkillName:             skill,
		Level:                 level,
		Roadmap:               milestones,
		QuizMilestone1:        sampleQuiz(skill),
		FlashcardsMilestone1:  sampleFlashcards(MilestoneFlashcards),
		MiniProjectMilestone1: sampleProject(skill + " starter project"),
	}
}

// SampleMilestoneReport 示例里程碑报告
func SampleMilestoneReport() model.MilestoneReportOutput {
	return model.MilestoneReportOutput{
		LearnedSummary:              "You covered the core ideas of this milestone.",
		SuggestedNextMilestoneTitle: "Going further",
		NewQuiz:                     sampleQuiz("the next milestone"),
		NewProject:                  sampleProject("Next milestone project"),
	}
}

// SamplePaperSummary 示例论文摘要
func SamplePaperSummary() model.PaperSummaryOutput {
	return model.PaperSummaryOutput{
		PaperSummary: "The paper proposes a method and evaluates it on several benchmarks.",
		Flashcards:   sampleFlashcards(PaperFlashcardsMin),
	}
}

// SeedMockProvider 为每个 Schema 设置示例响应
func SeedMockProvider(m *llm.MockProvider) {
	samples := map[SchemaID]any{
		SchemaLearningPath:    SampleLearningPath("Sample skill", "beginner"),
		SchemaMilestoneReport: SampleMilestoneReport(),
		SchemaPaperSummary:    SamplePaperSummary(),
		SchemaFlashcardSet:    model.FlashcardSet{Flashcards: sampleFlashcards(PaperFlashcardsMin)},
	}
	for id, v := range samples {
		b, err := json.Marshal(v)
		if err != nil {
			panic(fmt.Sprintf("marshal sample %s: %v", id, err))
		}
		m.SetFallback(string(id), llm.MockResponse{Content: b})
	}
}
