package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/otakudev/anicat/internal/auth"
	appdb "github.com/otakudev/anicat/internal/db"
	"github.com/otakudev/anicat/internal/domain"
	apihttp "github.com/otakudev/anicat/internal/http"
	"github.com/otakudev/anicat/internal/ratelimit"
	"github.com/otakudev/anicat/internal/storage"
	"github.com/redis/go-redis/v9"
)

func Run(ctx context.Context, cfg Config) error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Port))
	if err != nil {
		return fmt.Errorf("listen on port %s: %w", cfg.Port, err)
	}
	return Serve(ctx, cfg, listener)
}

// Serve runs the API on an already-bound listener. Tests use it to pick
// an ephemeral port.
func Serve(ctx context.Context, cfg Config, listener net.Listener) error {
	logger := slog.Default()

	if err := appdb.RunMigrations(ctx, cfg.DSN); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	pool, err := appdb.NewPool(ctx, cfg.DSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	users := appdb.NewUserRepository(pool)
	sessions := appdb.NewRefreshTokenRepository(pool)

	api := apihttp.NewAPI(logger, pool)
	api.TrustProxy = cfg.TrustProxy
	api.Accounts = domain.NewLoggingAccountService(logger, domain.NewAccountService(users))
	api.Animes = domain.NewAnimeService(appdb.NewAnimeRepository(pool))
	api.Characters = domain.NewCharacterService(appdb.NewCharacterRepository(pool))
	api.Authors = domain.NewAuthorService(appdb.NewAuthorRepository(pool))
	api.Tags = domain.NewTagService(appdb.NewTagRepository(pool))
	api.TypeAnimes = domain.NewTypeAnimeService(appdb.NewTypeAnimeRepository(pool))

	if cfg.JWKSURL != "" {
		authenticator, err := auth.NewJWKSAuthenticator(ctx, auth.JWKSConfig{
			JWKSURL:  cfg.JWKSURL,
			Issuer:   cfg.JWKSIssuer,
			Audience: cfg.JWKSAudience,
		}, users)
		if err != nil {
			return fmt.Errorf("init jwks authenticator: %w", err)
		}
		api.Authenticator = authenticator
		logger.InfoContext(ctx, "external issuer mode", "jwks_url", cfg.JWKSURL, "issuer", cfg.JWKSIssuer)
	} else {
		tokens := auth.NewTokenService([]byte(cfg.JWTSecret), cfg.JWTIssuer, cfg.AccessTTL)
		api.Authenticator = auth.NewLocalAuthenticator(tokens, users)
		api.Sessions = auth.NewSessionService(tokens, users, sessions, cfg.RefreshTTL)
		logger.InfoContext(ctx, "local issuer mode", "issuer", cfg.JWTIssuer, "access_ttl", cfg.AccessTTL)
	}

	if cfg.S3AccessKey != "" {
		portraits, err := storage.NewPortraitStore(ctx, storage.Config{
			Region:       cfg.S3Region,
			Endpoint:     cfg.S3Endpoint,
			Bucket:       cfg.S3Bucket,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
			PublicURL:    cfg.S3PublicURL,
			UsePathStyle: cfg.S3PathStyle,
		})
		if err != nil {
			return fmt.Errorf("init portrait store: %w", err)
		}
		api.Portraits = portraits
	} else {
		logger.WarnContext(ctx, "portrait storage disabled: S3_ACCESS_KEY not set")
	}

	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       1,
		})
		defer client.Close()
		api.LoginLimiter = ratelimit.NewLimiter(client, logger, cfg.LoginRateMax, cfg.LoginRateWindow)
	}

	server := &http.Server{
		Handler:      api.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.InfoContext(ctx, "serving", "addr", listener.Addr().String())
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Error("serve", "err", err.Error())
		}
	}()

	<-ctx.Done()

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
