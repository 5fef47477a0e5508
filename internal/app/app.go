package app

import (
	"context"
	"cybit_edu/internal/config"
	"cybit_edu/internal/controller"
	"cybit_edu/internal/quiz"
	"cybit_edu/internal/repository"
	"cybit_edu/internal/runner"
	"cybit_edu/internal/service"
	"cybit_edu/internal/util"
	"cybit_edu/pkg/configwatcher"
	"cybit_edu/pkg/database"
	"cybit_edu/pkg/logger"
	"cybit_edu/pkg/monitoring"
	"cybit_edu/pkg/security"
	"cybit_edu/pkg/tracing"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
	// ConfigFile 非空时监听该文件并热加载
	ConfigFile string

	services        *services
	configCallbacks []func(*config.Config)
	tracer          *sdktrace.TracerProvider
	ctx             context.Context
	cancel          context.CancelFunc
}

type repositories struct {
	course     *repository.CourseRepository
	quiz       *repository.QuizRepository
	completion *repository.VideoCompletionRepository
	preference *repository.PreferenceRepository
	playground *repository.PlaygroundFileRepository
	sessions   repository.SessionStore
}

type services struct {
	storage    service.StorageProvider
	course     *service.CourseService
	quiz       *service.QuizService
	code       *service.CodeService
	playground *service.PlaygroundService
	preference *service.PreferenceService
	admin      *service.AdminService
}

type controllers struct {
	course     *controller.CourseController
	quiz       *controller.QuizController
	code       *controller.CodeController
	playground *controller.PlaygroundController
	preference *controller.PreferenceController
	admin      *controller.AdminController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client, cfg *config.Config) (*repositories, error) {
	repos := &repositories{
		course:     repository.NewCourseRepository(db),
		quiz:       repository.NewQuizRepository(db),
		completion: repository.NewVideoCompletionRepository(db),
		preference: repository.NewPreferenceRepository(db),
		playground: repository.NewPlaygroundFileRepository(db),
	}

	switch cfg.Quiz.SessionStore {
	case "redis":
		if rdb == nil {
			return nil, errors.New("quiz session store redis requires redis.enabled")
		}
		repos.sessions = repository.NewRedisSessionStore(rdb, cfg.Quiz.SessionTTL())
	case "", "memory":
		repos.sessions = repository.NewMemorySessionStore(cfg.Quiz.SessionTTL())
	default:
		return nil, fmt.Errorf("unsupported quiz session store %q", cfg.Quiz.SessionStore)
	}
	return repos, nil
}

func (a *App) initServices(repos *repositories, cfg *config.Config) (*services, error) {
	policy, err := quiz.ParseCodingPolicy(cfg.Quiz.CodingPolicy)
	if err != nil {
		return nil, err
	}
	storage, err := service.NewStorageProvider(&cfg.Storage)
	if err != nil {
		return nil, err
	}

	s := &services{storage: storage}
	s.course = service.NewCourseService(repos.course, repos.completion)
	s.quiz = service.NewQuizService(repos.quiz, repos.course, repos.sessions, policy)
	s.code = service.NewCodeService(runner.New(cfg.Runner.Delay()))
	s.playground = service.NewPlaygroundService(repos.playground, storage)
	s.preference = service.NewPreferenceService(repos.preference, cfg.Preferences.DefaultTheme, cfg.Preferences.DefaultAccent)
	s.admin = service.NewAdminService(repos.course, repos.quiz, repos.completion, storage, util.DefaultProbe)
	return s, nil
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		course:     controller.NewCourseController(s.course),
		quiz:       controller.NewQuizController(s.quiz),
		code:       controller.NewCodeController(s.code),
		playground: controller.NewPlaygroundController(s.playground),
		preference: controller.NewPreferenceController(s.preference),
		admin:      controller.NewAdminController(s.admin),
		health:     controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(a.ctx, cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware(cfg.Tracing.ServiceName))
	}

	router.Use(monitoring.MetricsMiddleware())
}

// registerConfigCallbacks 热加载时可以直接生效的配置项
func (a *App) registerConfigCallbacks(s *services) {
	a.RegisterConfigCallback(func(cfg *config.Config) {
		policy, err := quiz.ParseCodingPolicy(cfg.Quiz.CodingPolicy)
		if err != nil {
			logger.Log.Warn("Ignoring invalid coding policy", zap.Error(err))
			return
		}
		if policy != s.quiz.CodingPolicy() {
			s.quiz.SetCodingPolicy(policy)
			logger.Log.Info("Quiz coding policy updated", zap.String("policy", string(policy)))
		}
	})
	a.RegisterConfigCallback(func(cfg *config.Config) {
		s.code.Runner.SetDelay(cfg.Runner.Delay())
	})
	a.RegisterConfigCallback(func(cfg *config.Config) {
		s.preference.SetDefaults(cfg.Preferences.DefaultTheme, cfg.Preferences.DefaultAccent)
	})
}

func (a *App) reloadConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) startBackgroundTasks(repos *repositories) {
	store, ok := repos.sessions.(*repository.MemorySessionStore)
	if !ok {
		return
	}
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-a.ctx.Done():
				return
			case <-ticker.C:
				if n := store.Sweep(); n > 0 {
					logger.Log.Debug("Expired quiz sessions removed", zap.Int("count", n))
				}
			}
		}
	}()
}

// New 使用已打开的数据库组装应用，rdb 可以为 nil
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*App, error) {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
		ctx:    ctx,
		cancel: cancel,
	}

	repos, err := app.initRepositories(db, rdb, cfg)
	if err != nil {
		cancel()
		return nil, err
	}
	services, err := app.initServices(repos, cfg)
	if err != nil {
		cancel()
		return nil, err
	}
	app.services = services
	controllers := app.initControllers(services, db, rdb)
	app.registerConfigCallbacks(services)

	// 监控初始化
	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startBackgroundTasks(repos)
	return app, nil
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if _, err := database.SeedCatalog(db, cfg.Database.SeedFile, cfg.ForceSeed); err != nil {
		logger.Log.Fatal("Failed to seed catalog", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app, err := New(cfg, db, rdb)
	if err != nil {
		logger.Log.Fatal("Failed to initialize application", zap.Error(err))
	}

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(app.ctx, &cfg.Tracing)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}
	return app
}

// Close 停止后台任务并释放连接
func (a *App) Close() {
	a.cancel()

	if a.tracer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			logger.Log.Error("Failed to close redis", zap.Error(err))
		}
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Log.Error("Failed to close database", zap.Error(err))
		}
	}
}

// Run 启动 HTTP 服务和配置监听，收到 SIGINT/SIGTERM 后优雅退出
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(a.ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	defer a.Close()

	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if a.ConfigFile != "" {
		g.Go(func() error {
			// 配置监听失败不影响服务
			if err := configwatcher.WatchConfig(gctx, a.ConfigFile, a.reloadConfig); err != nil {
				logger.Log.Error("Config watcher stopped", zap.Error(err))
			}
			return nil
		})
	}

	err := g.Wait()
	logger.Log.Info("Server exiting")
	return err
}
