package controller

import (
	"errors"
	"net/http"
	"testing"

	"eduguide_backend/internal/model"
	"eduguide_backend/internal/service"
	"eduguide_backend/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRoadmap_Success(t *testing.T) {
	env := newTestEnv(t, llm.NewMockProvider(), 1024)

	env.mock.AddResponse(llm.MockResponse{Content: mustJSON(t, service.SampleLearningPath("Rust", "beginner"))})
	w := env.postJSON(t, "/api/learn/roadmap", map[string]string{"skill": " Rust ", "level": "beginner"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	assert.Equal(t, "success", body["status"])
	id, _ := body["roadmap_id"].(string)
	require.NotEmpty(t, id)

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Rust", data["skill_name"])
	assert.Len(t, data["roadmap"], service.MilestoneCount)
	assert.Len(t, data["quiz_milestone_1"], service.QuizQuestionCount)

	req, _ := env.mock.LastCall()
	assert.Contains(t, req.Prompt, "Rust")
	assert.NotContains(t, req.Prompt, " Rust ")

	var count int64
	require.NoError(t, env.db.Model(&model.Roadmap{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateRoadmap_Validation(t *testing.T) {
	env := newTestEnv(t, llm.NewMockProvider(), 1024)

	cases := map[string]any{
		"missing level": map[string]string{"skill": "Rust"},
		"blank skill":   map[string]string{"skill": "   ", "level": "beginner"},
		"empty object":  map[string]string{},
		"malformed":     "{not json",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := env.postJSON(t, "/api/learn/roadmap", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "Skill and level are required.", decode(t, w)["error"])
		})
	}
	assert.Zero(t, env.mock.CallCount())
}

func TestCreateRoadmap_GenerationFailure(t *testing.T) {
	env := newTestEnv(t, llm.NewMockProvider(llm.MockResponse{Err: errors.New("quota exceeded")}), 1024)

	w := env.postJSON(t, "/api/learn/roadmap", map[string]string{"skill": "Rust", "level": "beginner"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "AI generation failed", decode(t, w)["error"])

	var count int64
	require.NoError(t, env.db.Model(&model.Roadmap{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateRoadmap_MissingCredentials(t *testing.T) {
	env := newTestEnv(t, nil, 1024)

	w := env.postJSON(t, "/api/learn/roadmap", map[string]string{"skill": "Rust", "level": "beginner"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestCompleteMilestone_Success(t *testing.T) {
	env := newTestEnv(t, llm.NewMockProvider(), 1024)
	id := env.createRoadmap(t)

	env.mock.AddResponse(llm.MockResponse{Content: mustJSON(t, service.SampleMilestoneReport())})
	w := env.postJSON(t, "/api/learn/milestone-complete", map[string]any{"roadmap_id": id, "completed_milestone": 1})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	assert.Equal(t, "success", body["status"])
	report, ok := body["milestone_report"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, report["learned_summary"])
	assert.Len(t, report["new_quiz"], service.QuizQuestionCount)

	req, _ := env.mock.LastCall()
	assert.Contains(t, req.Prompt, "concept 1.1, concept 1.2")

	stored, err := env.roadmaps.FindByID(t.Context(), id)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.CurrentMilestone)
	assert.Contains(t, stored.FullPathData, model.MilestoneReportKey(1))
}

func TestCompleteMilestone_Validation(t *testing.T) {
	env := newTestEnv(t, llm.NewMockProvider(), 1024)

	cases := map[string]any{
		"missing roadmap id": map[string]any{"completed_milestone": 1},
		"missing milestone":  map[string]any{"roadmap_id": "abc"},
		"zero milestone":     map[string]any{"roadmap_id": "abc", "completed_milestone": 0},
		"string milestone":   map[string]any{"roadmap_id": "abc", "completed_milestone": "one"},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := env.postJSON(t, "/api/learn/milestone-complete", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
	assert.Zero(t, env.mock.CallCount())
}

func TestCompleteMilestone_UnknownRoadmap(t *testing.T) {
	env := newTestEnv(t, llm.NewMockProvider(), 1024)

	w := env.postJSON(t, "/api/learn/milestone-complete", map[string]any{"roadmap_id": "does-not-exist", "completed_milestone": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Roadmap not found.", decode(t, w)["error"])
	assert.Zero(t, env.mock.CallCount())
}

func TestCompleteMilestone_UnknownMilestone(t *testing.T) {
	env := newTestEnv(t, llm.NewMockProvider(), 1024)
	id := env.createRoadmap(t)

	w := env.postJSON(t, "/api/learn/milestone-complete", map[string]any{"roadmap_id": id, "completed_milestone": 7})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Milestone not found in roadmap.", decode(t, w)["error"])
	assert.Equal(t, 1, env.mock.CallCount())
}

func TestCompleteMilestone_GenerationFailureKeepsState(t *testing.T) {
	env := newTestEnv(t, llm.NewMockProvider(), 1024)
	id := env.createRoadmap(t)

	env.mock.AddResponse(llm.MockResponse{Err: errors.New("timeout")})
	w := env.postJSON(t, "/api/learn/milestone-complete", map[string]any{"roadmap_id": id, "completed_milestone": 1})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "AI generation failed", decode(t, w)["error"])

	stored, err := env.roadmaps.FindByID(t.Context(), id)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.CurrentMilestone)
	assert.NotContains(t, stored.FullPathData, model.MilestoneReportKey(1))
}

func TestGetRoadmap(t *testing.T) {
	env := newTestEnv(t, llm.NewMockProvider(), 1024)
	id := env.createRoadmap(t)

	w := env.get(t, "/api/learn/roadmap/"+id)
	require.Equal(t, http.StatusOK, w.Code)
	roadmap, ok := decode(t, w)["roadmap"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, id, roadmap["id"])
	assert.EqualValues(t, 1, roadmap["current_milestone"])

	w = env.get(t, "/api/learn/roadmap/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
