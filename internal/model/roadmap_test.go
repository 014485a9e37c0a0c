package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func testRoadmap() *Roadmap {
	return &Roadmap{
		CurrentMilestone: 1,
		FullPathData: datatypes.JSONMap{
			"skill_name": "Rust",
			"roadmap": []any{
				map[string]any{"milestone_number": 1, "title": "Basics", "description": "d", "concepts": []any{"ownership", "borrowing"}},
				map[string]any{"milestone_number": 2, "title": "Traits", "description": "d", "concepts": []any{}},
				map[string]any{"milestone_number": 3, "title": "Async", "description": "d", "concepts": []any{"futures"}},
			},
		},
	}
}

func TestRoadmap_FindMilestone(t *testing.T) {
	r := testRoadmap()

	m, ok := r.FindMilestone(1)
	require.True(t, ok)
	assert.Equal(t, "Basics", m.Title)
	assert.Equal(t, []string{"ownership", "borrowing"}, m.Concepts)

	_, ok = r.FindMilestone(7)
	assert.False(t, ok)
}

func TestRoadmap_FindMilestone_MalformedPayload(t *testing.T) {
	r := &Roadmap{FullPathData: datatypes.JSONMap{"roadmap": "not a list"}}
	_, ok := r.FindMilestone(1)
	assert.False(t, ok)

	r = &Roadmap{FullPathData: datatypes.JSONMap{}}
	_, err := r.Milestones()
	assert.Error(t, err)
}

func TestRoadmap_AdvanceTo(t *testing.T) {
	r := testRoadmap()

	r.AdvanceTo(1, 3)
	assert.Equal(t, 2, r.CurrentMilestone)
	assert.False(t, r.IsComplete)

	// 重复提交较早的里程碑不会回退
	r.AdvanceTo(2, 3)
	r.AdvanceTo(1, 3)
	assert.Equal(t, 3, r.CurrentMilestone)

	r.AdvanceTo(3, 3)
	assert.Equal(t, 4, r.CurrentMilestone)
	assert.True(t, r.IsComplete)
}

func TestMilestoneReportKey(t *testing.T) {
	assert.Equal(t, "milestone_2_report", MilestoneReportKey(2))
}
