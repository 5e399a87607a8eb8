package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"warbler/internal/config"
	"warbler/internal/core"
	"warbler/internal/db"
	"warbler/internal/http/handler"
	"warbler/internal/http/handler/middleware"
	"warbler/internal/http/payload"
	"warbler/internal/http/server"
	"warbler/internal/repository"
	"warbler/internal/session"
	"warbler/pkg/log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("warbler", zapcore.InfoLevel)

	config, err := config.NewAppConfig()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionString)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewWarbleRepository(dbConn)

	if err := repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// session store
	rdb := redis.NewClient(&redis.Options{Addr: config.RedisAddr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logger.Errorw("failed to connect to redis", "error", err)
		return err
	}
	sessions := session.NewStore(rdb, config.SessionTTL)

	// warbler
	warbler := core.NewWarbler(logger, repo, config.BcryptCost)

	if err := seedDemoUsers(context.Background(), warbler); err != nil {
		logger.Errorw("failed to seed demo users", "error", err)
		return err
	}

	// handler
	warbleHlr := handler.NewWarbleHandler(
		logger,
		payload.Decoder{},
		warbler,
		sessions)

	// register routes
	mux := http.NewServeMux()
	warbleHlr.Register(mux)

	// middleware
	hdlr := middleware.NewSessionMiddleware(sessions).WithUser(mux)
	hdlr = middleware.NewNoCacheMiddleware().NoCache(hdlr)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

// seedDemoUsers creates a handful of accounts so a fresh instance is not
// empty. Conflicts mean the data is already there.
func seedDemoUsers(ctx context.Context, warbler *core.Warbler) error {
	demo := []core.SignupMessage{
		{Username: "alice", Email: "alice@warbler.local", Password: "alice-password"},
		{Username: "bob", Email: "bob@warbler.local", Password: "bob-password"},
		{Username: "carol", Email: "carol@warbler.local", Password: "carol-password"},
		{Username: "dave", Email: "dave@warbler.local", Password: "dave-password"},
	}

	for _, msg := range demo {
		if _, err := warbler.Signup(ctx, msg); err != nil {
			if errors.Is(err, core.ErrCredentialsTaken) {
				continue
			}
			return fmt.Errorf("seed user %q: %w", msg.Username, err)
		}
	}
	return nil
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
