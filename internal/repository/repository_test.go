package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"eduguide_backend/internal/model"
	"eduguide_backend/internal/util"
	"eduguide_backend/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 共享缓存模式下并发写会直接返回 locked，测试里串行化连接
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func newTestRoadmap() *model.Roadmap {
	return &model.Roadmap{
		UserID:    "mock_user_1",
		SkillName: "Go",
		Level:     "beginner",
		FullPathData: datatypes.JSONMap{
			"skill_name": "Go",
			"roadmap": []any{
				map[string]any{"milestone_number": 1, "title": "Syntax", "description": "d", "concepts": []any{"types"}},
				map[string]any{"milestone_number": 2, "title": "Concurrency", "description": "d", "concepts": []any{"channels"}},
				map[string]any{"milestone_number": 3, "title": "Tooling", "description": "d", "concepts": []any{"modules"}},
			},
		},
	}
}

func TestUserRepository_FindOrCreate(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.FindOrCreate(ctx, &model.User{ID: "mock_user_1", Username: "test_mongo_user", Email: "test@mongo.com"})
	require.NoError(t, err)
	assert.Equal(t, "test_mongo_user", created.Username)

	// 已存在的用户不会被覆盖
	again, err := repo.FindOrCreate(ctx, &model.User{ID: "mock_user_1", Username: "other", Email: "other@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "test_mongo_user", again.Username)
	assert.Equal(t, "test@mongo.com", again.Email)

	var count int64
	require.NoError(t, repo.DB.Model(&model.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRoadmapRepository_CreateAndFind(t *testing.T) {
	repo := NewRoadmapRepository(newTestDB(t))
	ctx := context.Background()

	roadmap := newTestRoadmap()
	require.NoError(t, repo.Create(ctx, roadmap))
	require.NotEmpty(t, roadmap.ID)

	found, err := repo.FindByID(ctx, roadmap.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, found.CurrentMilestone)
	assert.False(t, found.IsComplete)
	assert.Equal(t, "Go", found.FullPathData["skill_name"])

	m, ok := found.FindMilestone(2)
	require.True(t, ok)
	assert.Equal(t, "Concurrency", m.Title)
}

func TestRoadmapRepository_CreateRejectsNilPayload(t *testing.T) {
	repo := NewRoadmapRepository(newTestDB(t))

	err := repo.Create(context.Background(), &model.Roadmap{UserID: "u", SkillName: "Go", Level: "x"})
	assert.ErrorIs(t, err, util.ErrPersistence)
}

func TestRoadmapRepository_FindByID_NotFound(t *testing.T) {
	repo := NewRoadmapRepository(newTestDB(t))

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, util.ErrRoadmapNotFound)
}

func TestRoadmapRepository_RecordMilestoneReport(t *testing.T) {
	repo := NewRoadmapRepository(newTestDB(t))
	ctx := context.Background()

	roadmap := newTestRoadmap()
	require.NoError(t, repo.Create(ctx, roadmap))

	updated, err := repo.RecordMilestoneReport(ctx, roadmap.ID, 1, 3, map[string]any{"learned_summary": "first"})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.CurrentMilestone)
	assert.False(t, updated.IsComplete)

	_, err = repo.RecordMilestoneReport(ctx, roadmap.ID, 3, 3, map[string]any{"learned_summary": "third"})
	require.NoError(t, err)

	stored, err := repo.FindByID(ctx, roadmap.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, stored.CurrentMilestone)
	assert.True(t, stored.IsComplete)
	assert.Contains(t, stored.FullPathData, "milestone_1_report")
	assert.Contains(t, stored.FullPathData, "milestone_3_report")
	// 原有字段保持不变
	assert.Equal(t, "Go", stored.FullPathData["skill_name"])
	_, ok := stored.FindMilestone(1)
	assert.True(t, ok)

	// 重复提交较早的里程碑不回退进度
	again, err := repo.RecordMilestoneReport(ctx, roadmap.ID, 1, 3, map[string]any{"learned_summary": "again"})
	require.NoError(t, err)
	assert.Equal(t, 4, again.CurrentMilestone)
}

func TestRoadmapRepository_RecordMilestoneReport_NotFound(t *testing.T) {
	repo := NewRoadmapRepository(newTestDB(t))

	_, err := repo.RecordMilestoneReport(context.Background(), "missing", 1, 3, map[string]any{})
	assert.ErrorIs(t, err, util.ErrRoadmapNotFound)
}

func TestRoadmapRepository_RecordMilestoneReport_Concurrent(t *testing.T) {
	repo := NewRoadmapRepository(newTestDB(t))
	ctx := context.Background()

	roadmap := newTestRoadmap()
	require.NoError(t, repo.Create(ctx, roadmap))

	var wg sync.WaitGroup
	for n := 1; n <= 3; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := repo.RecordMilestoneReport(ctx, roadmap.ID, n, 3, map[string]any{"n": n})
			assert.NoError(t, err)
		}(n)
	}
	wg.Wait()

	stored, err := repo.FindByID(ctx, roadmap.ID)
	require.NoError(t, err)
	for n := 1; n <= 3; n++ {
		assert.Contains(t, stored.FullPathData, model.MilestoneReportKey(n))
	}
	assert.Equal(t, 4, stored.CurrentMilestone)
}

func TestSQLPinger(t *testing.T) {
	p := &SQLPinger{DB: newTestDB(t)}
	assert.NoError(t, p.Ping(context.Background()))
}
