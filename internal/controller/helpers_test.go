package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"eduguide_backend/internal/config"
	"eduguide_backend/internal/repository"
	"eduguide_backend/internal/service"
	"eduguide_backend/pkg/database"
	"eduguide_backend/pkg/llm"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	router   *gin.Engine
	mock     *llm.MockProvider
	roadmaps *repository.RoadmapRepository
	db       *gorm.DB
	// 上传目录
	uploadDir string
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

// newTestEnv provider 为 nil 时模拟未配置凭证
func newTestEnv(t *testing.T, provider llm.Provider, maxSize int64) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newTestDB(t)
	roadmaps := repository.NewRoadmapRepository(db)
	ai := service.NewAIService(provider, config.AIConfig{Timeout: 5 * time.Second})
	learning := service.NewLearningService(
		repository.NewUserRepository(db),
		roadmaps,
		ai,
		service.NewStaticIdentityProvider(config.IdentityConfig{UserID: "mock_user_1", Username: "test_mongo_user"}),
	)

	uploadDir := t.TempDir()
	files := service.NewFileService(config.UploadConfig{
		Dir:               uploadDir,
		MaxSize:           maxSize,
		AllowedExtensions: []string{"txt", "pdf"},
	})
	paper := service.NewPaperService(files, ai, nil, false)

	lc := NewLearningController(learning)
	fc := NewFileController(paper)
	hc := NewHealthController(&repository.SQLPinger{DB: db}, "sqlite", ai.Configured())

	r := gin.New()
	r.GET("/api/health", hc.HealthCheck)
	r.POST("/api/learn/roadmap", lc.CreateRoadmap)
	r.GET("/api/learn/roadmap/:id", lc.GetRoadmap)
	r.POST("/api/learn/milestone-complete", lc.CompleteMilestone)
	r.POST("/api/files/upload-summary", fc.UploadSummary)

	env := &testEnv{router: r, roadmaps: roadmaps, db: db, uploadDir: uploadDir}
	if m, ok := provider.(*llm.MockProvider); ok {
		env.mock = m
	}
	return env
}

func (e *testEnv) postJSON(t *testing.T, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var raw []byte
	switch v := body.(type) {
	case string:
		raw = []byte(v)
	default:
		var err error
		raw, err = json.Marshal(v)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// upload field 为空时不附带文件
func (e *testEnv) upload(t *testing.T, field, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	if field != "" {
		part, err := w.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	} else {
		require.NoError(t, w.WriteField("note", "no file"))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/files/upload-summary", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func mustJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

// createRoadmap 通过接口创建一条学习路线并返回 ID
func (e *testEnv) createRoadmap(t *testing.T) string {
	t.Helper()
	e.mock.AddResponse(llm.MockResponse{Content: mustJSON(t, service.SampleLearningPath("Rust", "beginner"))})
	w := e.postJSON(t, "/api/learn/roadmap", map[string]string{"skill": "Rust", "level": "beginner"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	id, _ := decode(t, w)["roadmap_id"].(string)
	require.NotEmpty(t, id)
	return id
}

