package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quiz_prep_backend/internal/config"
	"quiz_prep_backend/internal/controller"
	"quiz_prep_backend/internal/repository"
	"quiz_prep_backend/internal/service"
	"quiz_prep_backend/pkg/database"
	"quiz_prep_backend/pkg/logger"
	"quiz_prep_backend/pkg/monitoring"
	"quiz_prep_backend/pkg/security"
	"quiz_prep_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
}

type repositories struct {
	question *repository.QuestionRepository
	attempt  *repository.AttemptRepository
	answer   *repository.AnswerRepository
}

type services struct {
	retention *service.RetentionPolicy
	question  *service.QuestionService
	attempt   *service.AttemptService
	history   *service.HistoryService
	review    *service.ReviewService
}

type controllers struct {
	question *controller.QuestionController
	attempt  *controller.AttemptController
	history  *controller.HistoryController
	review   *controller.ReviewController
	health   *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		question: repository.NewQuestionRepository(db),
		attempt:  repository.NewAttemptRepository(db),
		answer:   repository.NewAnswerRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.retention = service.NewRetentionPolicy(cfg.Retention.MaxAttemptsPerLevel)
	s.question = service.NewQuestionService(
		repos.question,
		rdb,
		time.Duration(cfg.Cache.QuestionTTLMinutes)*time.Minute,
	)
	s.attempt = service.NewAttemptService(repos.attempt, repos.answer, s.retention)
	s.history = service.NewHistoryService(repos.attempt, repos.answer, repos.question, s.retention)
	s.review = service.NewReviewService(repos.attempt, repos.answer, repos.question, cfg.Review.Strategy)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		question: controller.NewQuestionController(s.question),
		attempt:  controller.NewAttemptController(s.attempt, s.attempt),
		history:  controller.NewHistoryController(s.history),
		review:   controller.NewReviewController(s.review),
		health:   controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RequestID())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) startBackgroundTasks(s *services, cfg *config.Config) {
	// 保留清扫兜底：补偿创建时异步清理的局部失败
	go func() {
		ticker := time.NewTicker(time.Duration(cfg.Retention.SweepMinutes) * time.Minute)
		for range ticker.C {
			if err := s.attempt.SweepRetention(); err != nil {
				logger.Log.Error("retention sweep error", zap.Error(err))
			}
		}
	}()
}

// ApplyConfig 配置热更新回调：保留上限和错题策略可以在线切换
func (a *App) ApplyConfig(cfg *config.Config) {
	a.services.retention.SetMax(cfg.Retention.MaxAttemptsPerLevel)
	a.services.review.SetStrategy(cfg.Review.Strategy)
	logger.Log.Info("config reloaded",
		zap.Int("retention_max", cfg.Retention.MaxAttemptsPerLevel),
		zap.String("review_strategy", cfg.Review.Strategy))
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("quiz-prep", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	app.startBackgroundTasks(services, cfg)

	return app
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
