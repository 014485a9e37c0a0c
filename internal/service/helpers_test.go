package service

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"eduguide_backend/internal/config"
	"eduguide_backend/internal/repository"
	"eduguide_backend/pkg/database"
	"eduguide_backend/pkg/llm"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func mustJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func newTestAIService(provider llm.Provider) *AIService {
	return NewAIService(provider, config.AIConfig{Timeout: 5 * time.Second})
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func newTestLearningService(t *testing.T, provider llm.Provider) (*LearningService, *repository.RoadmapRepository) {
	t.Helper()
	db := newTestDB(t)
	roadmaps := repository.NewRoadmapRepository(db)
	identity := NewStaticIdentityProvider(config.IdentityConfig{
		UserID:   "mock_user_1",
		Username: "test_mongo_user",
		Email:    "test@mongo.com",
	})
	svc := NewLearningService(repository.NewUserRepository(db), roadmaps, newTestAIService(provider), identity)
	return svc, roadmaps
}
