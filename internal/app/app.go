package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"eduguide_backend/internal/config"
	"eduguide_backend/internal/controller"
	"eduguide_backend/internal/repository"
	"eduguide_backend/internal/service"
	"eduguide_backend/internal/util"
	"eduguide_backend/pkg/configwatcher"
	"eduguide_backend/pkg/database"
	"eduguide_backend/pkg/llm"
	"eduguide_backend/pkg/logger"
	"eduguide_backend/pkg/monitoring"
	"eduguide_backend/pkg/security"
	"eduguide_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/mongo"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Mongo           *mongo.Client
	tracer          *sdktrace.TracerProvider
	services        *services
	configCallbacks []func(*config.Config)
}

// repositories gorm 与 mongo 两套实现共用同一组接口
type repositories struct {
	user    service.UserStore
	roadmap service.RoadmapStore
	pinger  controller.Pinger
}

type services struct {
	ai       *service.AIService
	storage  *service.StorageService
	file     *service.FileService
	learning *service.LearningService
	paper    *service.PaperService
}

type controllers struct {
	learning *controller.LearningController
	file     *controller.FileController
	health   *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) applyConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	if cfg.Database.Driver == util.DriverMongo {
		client, db, err := database.InitMongo(ctx, &cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("initialize mongo: %w", err)
		}
		a.Mongo = client
		return &repositories{
			user:    repository.NewMongoUserRepository(db),
			roadmap: repository.NewMongoRoadmapRepository(db),
			pinger:  &repository.MongoPinger{Client: client},
		}, nil
	}

	// 非 release 模式或显式指定时同步表结构
	migrate := cfg.ForceMigrate || cfg.Server.Mode != "release"
	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode, migrate)
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}
	a.DB = db
	return &repositories{
		user:    repository.NewUserRepository(db),
		roadmap: repository.NewRoadmapRepository(db),
		pinger:  &repository.SQLPinger{DB: db},
	}, nil
}

// initProvider 凭证缺失时返回 nil，服务仍可启动
func initProvider(ctx context.Context, cfg *config.Config) (llm.Provider, error) {
	provider, err := llm.NewProvider(ctx, llm.Config{
		Provider: cfg.AI.Provider,
		APIKey:   cfg.AI.APIKey,
		Model:    cfg.AI.Model,
		BaseURL:  cfg.AI.BaseURL,
	})
	if errors.Is(err, llm.ErrMissingAPIKey) {
		logger.Log.Warn("AI credentials missing, generation endpoints will fail",
			zap.String("provider", cfg.AI.Provider),
		)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	// 本地开发使用内置示例数据
	if mock, ok := provider.(*llm.MockProvider); ok {
		service.SeedMockProvider(mock)
		logger.Log.Warn("Using mock AI provider")
	}

	logger.Log.Info("AI provider initialized",
		zap.String("provider", cfg.AI.Provider),
		zap.String("model", provider.ModelID()),
	)
	return provider, nil
}

func (a *App) initServices(ctx context.Context, repos *repositories, cfg *config.Config) (*services, error) {
	provider, err := initProvider(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("initialize AI provider: %w", err)
	}

	s := &services{}
	s.ai = service.NewAIService(provider, cfg.AI)
	s.file = service.NewFileService(cfg.Upload)
	s.learning = service.NewLearningService(
		repos.user,
		repos.roadmap,
		s.ai,
		service.NewStaticIdentityProvider(cfg.Identity),
	)

	if cfg.Storage.ArchivePapers {
		s.storage = service.NewStorageService(ctx, cfg)
	}
	s.paper = service.NewPaperService(s.file, s.ai, s.storage, cfg.Storage.ArchivePapers)

	// 上传限制支持热更新
	a.RegisterConfigCallback(func(newCfg *config.Config) {
		s.file.UpdateConfig(newCfg.Upload)
	})

	return s, nil
}

func (a *App) initControllers(s *services, repos *repositories) *controllers {
	return &controllers{
		learning: controller.NewLearningController(s.learning),
		file:     controller.NewFileController(s.paper),
		health:   controller.NewHealthController(repos.pinger, a.Config.Database.Driver, s.ai.Configured()),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// build 组装应用，不初始化日志和追踪，便于测试
func build(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	repos, err := app.initRepositories(ctx, cfg)
	if err != nil {
		return nil, err
	}

	services, err := app.initServices(ctx, repos, cfg)
	if err != nil {
		app.closeStores(ctx)
		return nil, err
	}
	app.services = services
	controllers := app.initControllers(services, repos)

	// 监控初始化
	monitoring.Init()

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	app.RegisterConfigCallback(func(newCfg *config.Config) {
		logger.SetMode(newCfg.Server.Mode)
	})

	return app, nil
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	gin.SetMode(cfg.Server.Mode)

	var tp *sdktrace.TracerProvider
	if cfg.Tracing.Enabled {
		var err error
		tp, err = tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app, err := build(context.Background(), cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize application", zap.Error(err))
		log.Fatalf("Failed to initialize application: %v", err)
	}
	app.tracer = tp

	return app
}

func (a *App) closeStores(ctx context.Context) {
	if a.Mongo != nil {
		if err := a.Mongo.Disconnect(ctx); err != nil {
			logger.Log.Error("Failed to disconnect mongo", zap.Error(err))
		}
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
}

// Close 释放数据库连接和追踪资源
func (a *App) Close(ctx context.Context) {
	a.closeStores(ctx)
	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 配置热更新
	if a.Config.ConfigFile != "" {
		go func() {
			if err := configwatcher.WatchConfig(ctx, a.Config.ConfigFile, a.applyConfig); err != nil {
				logger.Log.Error("Config watcher stopped", zap.Error(err))
			}
		}()
	}

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	<-ctx.Done()
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}
	a.Close(shutdownCtx)

	logger.Log.Info("Server exiting")
}
