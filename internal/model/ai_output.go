package model

// 以下结构与 AI 结构化输出一一对应，对应的 JSON Schema 见 service/ai_schema.go

// swagger:model Flashcard
type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// swagger:model QuizQuestion
type QuizQuestion struct {
	ID          int      `json:"id"`
	Type        string   `json:"type"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

// swagger:model Milestone
type Milestone struct {
	MilestoneNumber int      `json:"milestone_number"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Concepts        []string `json:"concepts"`
}

// swagger:model MiniProject
type MiniProject struct {
	Title        string `json:"title"`
	Difficulty   string `json:"difficulty"`
	Instructions string `json:"instructions"`
}

// LearningPathOutput 创建学习路线时的生成结果
// swagger:model LearningPathOutput
type LearningPathOutput struct {
	SkillName             string         `json:"skill_name"`
	Level                 string         `json:"level"`
	Roadmap               []Milestone    `json:"roadmap"`
	QuizMilestone1        []QuizQuestion `json:"quiz_milestone_1"`
	FlashcardsMilestone1  []Flashcard    `json:"flashcards_milestone_1"`
	MiniProjectMilestone1 MiniProject    `json:"mini_project_milestone_1"`
}

// MilestoneReportOutput 完成里程碑后的报告
// swagger:model MilestoneReportOutput
type MilestoneReportOutput struct {
	LearnedSummary              string         `json:"learned_summary"`
	SuggestedNextMilestoneTitle string         `json:"suggested_next_milestone_title"`
	NewQuiz                     []QuizQuestion `json:"new_quiz"`
	NewProject                  MiniProject    `json:"new_project"`
}

// PaperSummaryOutput 论文摘要与闪卡
// swagger:model PaperSummaryOutput
type PaperSummaryOutput struct {
	PaperSummary string      `json:"paper_summary"`
	Flashcards   []Flashcard `json:"flashcards"`
}

// FlashcardSet 独立的闪卡集合
type FlashcardSet struct {
	Flashcards []Flashcard `json:"flashcards"`
}
