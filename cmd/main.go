package main

import (
	"context"
	"flag"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jamstream/server/internal/cron"
	"github.com/jamstream/server/internal/geoip"
	"github.com/jamstream/server/internal/handler"
	"github.com/jamstream/server/internal/middleware"
	"github.com/jamstream/server/internal/repository"
	"github.com/jamstream/server/internal/service"
	"github.com/jamstream/server/migrations"
	"github.com/jamstream/server/pkg/config"
	"github.com/jamstream/server/pkg/crypto"
	"github.com/jamstream/server/pkg/db"
	"github.com/jamstream/server/pkg/httputil"
	"github.com/jamstream/server/pkg/jwt"
	"github.com/jamstream/server/pkg/logger"
	"github.com/jamstream/server/pkg/redis"
	"github.com/jamstream/server/web"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	log := logger.New(logger.DefaultConfig())

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("failed to load config", logger.Err(err))
	}

	log.Info("starting jamstream server")

	if err := runMigrations(cfg, log); err != nil {
		log.Fatal("failed to run migrations", logger.Err(err))
	}

	pool, err := db.NewPool(context.Background(), &db.PoolConfig{
		DSN:             cfg.Postgres.DSN(),
		MaxConns:        cfg.Postgres.MaxConns,
		MinConns:        cfg.Postgres.MinConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		log.Fatal("failed to connect to postgres", logger.Err(err))
	}
	defer pool.Close()

	cache, err := redis.NewClient(&redis.Config{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		// Rankings degrade to database reads without the cache.
		log.Warn("redis unavailable, ranking cache disabled", logger.Err(err))
		cache = nil
	} else {
		defer cache.Close()
	}

	resolver, err := geoip.Open(cfg.GeoIP.DatabasePath)
	if err != nil {
		log.Fatal("failed to open geoip database", logger.Err(err))
	}
	defer resolver.Close()

	tokens := jwt.NewManager(&jwt.Config{
		Secret:      cfg.Auth.JWTSecret,
		Issuer:      cfg.Auth.JWTIssuer,
		TokenExpiry: cfg.Auth.TokenExpiry,
	})

	services := buildServices(pool, cache, resolver, tokens, cfg, log)

	cronManager := cron.NewManager(services.ranking, log)
	if err := cronManager.Start(); err != nil {
		log.Fatal("failed to start cron manager", logger.Err(err))
	}
	defer cronManager.Stop()

	router := buildRouter(services, tokens, cfg, log)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("http server listening", logger.Int("port", cfg.Server.HTTPPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("http server failed", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("http server forced to shutdown", logger.Err(err))
	}

	log.Info("server stopped")
}

func runMigrations(cfg *config.Config, log logger.Logger) error {
	migrator, err := db.NewMigrator(cfg.Postgres.DSN(), migrations.FS, ".")
	if err != nil {
		return err
	}
	defer migrator.Close()

	if err := migrator.Up(); err != nil {
		return err
	}
	log.Info("migrations applied")
	return nil
}

type appServices struct {
	registration *service.RegistrationService
	auth         *service.AuthService
	music        *service.MusicService
	playlist     *service.PlaylistService
	catalog      *service.CatalogService
	search       *service.SearchService
	ranking      *service.RankingService
}

func buildServices(
	pool *pgxpool.Pool,
	cache *redis.Client,
	resolver geoip.Resolver,
	tokens *jwt.Manager,
	cfg *config.Config,
	log logger.Logger,
) *appServices {
	profileRepo := repository.NewProfileRepository(pool)
	musicRepo := repository.NewMusicRepository(pool)
	playlistRepo := repository.NewPlaylistRepository(pool)
	albumRepo := repository.NewAlbumRepository(pool)
	genreRepo := repository.NewGenreRepository(pool)
	chartRepo := repository.NewChartRepository(pool)
	performerRepo := repository.NewPerformerRepository(pool)

	hasher := crypto.NewPasswordHasher()

	return &appServices{
		registration: service.NewRegistrationService(profileRepo, resolver, hasher, cfg.Registration.AllowedCountries),
		auth:         service.NewAuthService(profileRepo, hasher, tokens),
		music:        service.NewMusicService(musicRepo),
		playlist:     service.NewPlaylistService(playlistRepo, musicRepo),
		catalog:      service.NewCatalogService(albumRepo, genreRepo, musicRepo),
		search:       service.NewSearchService(musicRepo, albumRepo, playlistRepo, profileRepo, chartRepo, performerRepo),
		ranking:      service.NewRankingService(playlistRepo, albumRepo, cache, log),
	}
}

func buildRouter(services *appServices, tokens *jwt.Manager, cfg *config.Config, log logger.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logging(log))
	router.Use(middleware.CORS())

	templates := template.Must(template.ParseFS(web.TemplatesFS, "templates/*.html"))
	router.SetHTMLTemplate(templates)

	registerHandler := handler.NewRegisterHandler(services.registration, cfg.Registration.SuccessRoute, log)
	authHandler := handler.NewAuthHandler(services.auth, log)
	musicHandler := handler.NewMusicHandler(services.music, log)
	playlistHandler := handler.NewPlaylistHandler(services.playlist, services.ranking, log)
	catalogHandler := handler.NewCatalogHandler(services.catalog, services.ranking, log)
	searchHandler := handler.NewSearchHandler(services.search, log)

	router.GET("/health", func(c *gin.Context) {
		httputil.SuccessResponse(c, gin.H{"status": "ok"})
	})

	router.GET("/", registerHandler.Index)
	router.GET("/register", registerHandler.ShowForm)
	router.POST("/register", registerHandler.Submit)
	router.GET(handler.DisallowedCountryRoute, registerHandler.Disallowed)
	router.POST("/auth/login", authHandler.Login)

	api := router.Group("/api/v1")
	api.Use(middleware.Auth(tokens, log))
	{
		api.POST("/search", searchHandler.Search)

		api.GET("/music", musicHandler.Get)
		api.GET("/music/liked", musicHandler.Liked)
		api.POST("/music/like", musicHandler.Like)

		api.POST("/playlists/create", playlistHandler.Create)
		api.POST("/playlists/delete", playlistHandler.Delete)
		api.POST("/playlists/follow", playlistHandler.Follow)
		api.POST("/playlists/add-music", playlistHandler.AddMusic)
		api.POST("/playlists/detail", playlistHandler.Detail)
		api.POST("/playlists/top", playlistHandler.Top)
		api.GET("/playlists/mine", playlistHandler.Mine)
		api.GET("/playlists/followed", playlistHandler.Followed)

		api.POST("/albums/detail", catalogHandler.AlbumDetail)
		api.GET("/albums/top", catalogHandler.AlbumsTop)
		api.POST("/genres/detail", catalogHandler.GenreDetail)
		api.POST("/genres/top", catalogHandler.GenresTop)
	}

	return router
}
