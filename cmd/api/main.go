package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/youthbridge/portal-service/internal/api/http"
	"github.com/youthbridge/portal-service/internal/api/http/handlers"
	"github.com/youthbridge/portal-service/internal/auth"
	"github.com/youthbridge/portal-service/internal/cache"
	"github.com/youthbridge/portal-service/internal/config"
	"github.com/youthbridge/portal-service/internal/events"
	"github.com/youthbridge/portal-service/internal/observability"
	"github.com/youthbridge/portal-service/internal/persistence"
	"github.com/youthbridge/portal-service/internal/repository"
	"github.com/youthbridge/portal-service/internal/service"
	"github.com/youthbridge/portal-service/internal/storage"
	"github.com/youthbridge/portal-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	files, err := storage.NewLocalStore(cfg.Storage.UploadDir)
	if err != nil {
		logger.Fatal("failed to init upload store", zap.Error(err))
	}

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	applicationRepo := repository.NewApplicationRepository(pool)
	storyRepo := repository.NewStoryRepository(pool)
	activityRepo := repository.NewActivityRepository(pool)
	galleryRepo := repository.NewGalleryRepository(pool)
	resourceRepo := repository.NewResourceRepository(pool)
	teamRepo := repository.NewTeamRepository(pool)
	supporterRepo := repository.NewSupporterRepository(pool)
	contactRepo := repository.NewContactRepository(pool)
	memberRepo := repository.NewMemberRepository(pool)
	txManager := repository.NewTxManager(pool)

	contentCache := cache.NewContentCache(redis.Client, logger, cfg.Cache.TTL(), cfg.Cache.Enabled)
	dispatcher := events.NewInMemoryDispatcher()
	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)

	notificationWorker := worker.NewNotificationWorker(logger, 2, 128)
	notificationWorker.Start(ctx)
	defer notificationWorker.Stop()
	service.NewNotificationService(notificationWorker, logger).Register(dispatcher)

	authService := service.NewAuthService(service.AuthDependencies{
		UserRepo:     userRepo,
		TokenManager: tokenManager,
		BcryptCost:   cfg.Auth.BcryptCost,
	})
	applicationService := service.NewApplicationService(service.ApplicationDependencies{
		ApplicationRepo: applicationRepo,
		Dispatcher:      dispatcher,
	})
	reviewService := service.NewReviewService(service.ReviewDependencies{
		ApplicationRepo: applicationRepo,
		UserRepo:        userRepo,
		TxManager:       txManager,
		Dispatcher:      dispatcher,
	})
	storyService := service.NewStoryService(service.StoryDependencies{
		StoryRepo:  storyRepo,
		Dispatcher: dispatcher,
		Cache:      contentCache,
	})
	activityService := service.NewActivityService(service.ActivityDependencies{
		ActivityRepo: activityRepo,
		Cache:        contentCache,
	})
	galleryService := service.NewGalleryService(service.GalleryDependencies{
		GalleryRepo: galleryRepo,
		Files:       files,
		Logger:      logger,
	})
	resourceService := service.NewResourceService(service.ResourceDependencies{
		ResourceRepo: resourceRepo,
		Files:        files,
		Logger:       logger,
	})
	orgService := service.NewOrgService(service.OrgDependencies{
		TeamRepo:      teamRepo,
		SupporterRepo: supporterRepo,
	})
	contactService := service.NewContactService(service.ContactDependencies{
		ContactRepo: contactRepo,
		Dispatcher:  dispatcher,
	})
	userService := service.NewUserService(service.UserDependencies{
		UserRepo:   userRepo,
		BcryptCost: cfg.Auth.BcryptCost,
	})
	memberService := service.NewMemberService(service.MemberDependencies{
		MemberRepo: memberRepo,
	})

	authMiddleware := auth.NewAuthMiddleware(tokenManager, userRepo)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{
		AppName:   cfg.App.Name,
		BodyLimit: int(cfg.Storage.MaxUploadMB) * 1024 * 1024,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Applications:   handlers.NewApplicationsHandler(applicationService),
		AdminApps:      handlers.NewAdminApplicationsHandler(applicationService, reviewService),
		Stories:        handlers.NewStoriesHandler(storyService),
		Content:        handlers.NewContentHandler(activityService, galleryService, resourceService, orgService),
		AdminContent:   handlers.NewAdminContentHandler(activityService, galleryService, resourceService),
		AdminOrg:       handlers.NewAdminOrgHandler(orgService),
		AdminUsers:     handlers.NewAdminUsersHandler(userService),
		Members:        handlers.NewMembersHandler(memberService),
		Contact:        handlers.NewContactHandler(contactService),
		AuthMiddleware: authMiddleware,
		UploadsDir:     files.BaseDir(),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
