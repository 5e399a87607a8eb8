package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey    = "API_PORT"
	dbConnEnvKey     = "DB_CONNECTION_URL"
	redisAddrEnvKey  = "REDIS_ADDR"
	sessionTTLEnvKey = "SESSION_TTL"
	bcryptCostEnvKey = "BCRYPT_COST"
)

const (
	defaultSessionTTL = 24 * time.Hour
	// minimum work factor considered resistant to offline brute force
	defaultBcryptCost = 12
)

type App struct {
	Port               string
	DBConnectionString string
	RedisAddr          string
	SessionTTL         time.Duration
	BcryptCost         int
}

func NewAppConfig() (App, error) {

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	redisAddr, ok := os.LookupEnv(redisAddrEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, redisAddrEnvKey)
	}

	sessionTTL := defaultSessionTTL
	if raw, ok := os.LookupEnv(sessionTTLEnvKey); ok {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return App{}, fmt.Errorf("parse %s: %w", sessionTTLEnvKey, err)
		}
		sessionTTL = ttl
	}

	bcryptCost := defaultBcryptCost
	if raw, ok := os.LookupEnv(bcryptCostEnvKey); ok {
		cost, err := strconv.Atoi(raw)
		if err != nil {
			return App{}, fmt.Errorf("parse %s: %w", bcryptCostEnvKey, err)
		}
		if cost < defaultBcryptCost {
			return App{}, fmt.Errorf("%s must be at least %d", bcryptCostEnvKey, defaultBcryptCost)
		}
		bcryptCost = cost
	}

	return App{
		Port:               port,
		DBConnectionString: dbConn,
		RedisAddr:          redisAddr,
		SessionTTL:         sessionTTL,
		BcryptCost:         bcryptCost,
	}, nil
}
