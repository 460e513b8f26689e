package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/playforge/bangate/internal/background"
	"github.com/playforge/bangate/internal/cache"
	cachememory "github.com/playforge/bangate/internal/cache/memory"
	cacheredis "github.com/playforge/bangate/internal/cache/redis"
	"github.com/playforge/bangate/internal/dependencies/clock"
	"github.com/playforge/bangate/internal/services/audit"
	"github.com/playforge/bangate/internal/services/match"
	"github.com/playforge/bangate/internal/services/verdict"
	"github.com/playforge/bangate/internal/storage"
	"github.com/playforge/bangate/internal/storage/memory"
	"github.com/playforge/bangate/internal/storage/sqlite"
)

// Cache type constants
const (
	CacheTypeMemory = "memory"
	CacheTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Store storage.Store

	// External dependencies
	Clock clock.Clock
	Cache cache.Cache

	// Services
	MatchService   *match.Service
	AuditService   *audit.Service
	VerdictService *verdict.Service
	Tasks          *background.Runner
}

// Config holds configuration for the application factory
type Config struct {
	// DBPath is the SQLite database path. If empty, an in-memory store
	// is used (single-process development and tests).
	DBPath string
	// CacheType selects the cache backend ("memory" or "redis")
	// If empty, defaults to "memory"
	CacheType string
	// RedisConfig holds Redis connection settings (required if CacheType is "redis")
	RedisConfig *cacheredis.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Store
	if cfg.DBPath == "" {
		store = memory.New()
	} else {
		sqliteStore, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		store = sqliteStore
	}

	clk := clock.New()

	cacheType := cfg.CacheType
	if cacheType == "" {
		cacheType = CacheTypeMemory
	}

	var verdictCache cache.Cache
	switch cacheType {
	case CacheTypeMemory:
		verdictCache = cachememory.New(clk)
	case CacheTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when CacheType is redis")
		}
		redisCache, err := cacheredis.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		verdictCache = redisCache
	default:
		return nil, errors.New("invalid CacheType: must be 'memory' or 'redis'")
	}

	return newWithDependencies(store, verdictCache, clk, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Store, verdictCache cache.Cache, clk clock.Clock, logger *slog.Logger) *App {
	tasks := background.New(logger)
	matchService := match.New(store, logger)
	auditService := audit.New(store, clk, logger)
	verdictService := verdict.New(verdictCache, matchService, auditService, tasks, logger)

	return &App{
		Store:          store,
		Clock:          clk,
		Cache:          verdictCache,
		MatchService:   matchService,
		AuditService:   auditService,
		VerdictService: verdictService,
		Tasks:          tasks,
	}
}
