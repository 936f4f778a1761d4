package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/mafl/internal/logger"
	"github.com/MrSnakeDoc/mafl/internal/store"
)

type Deps struct {
	Logger        logger.Logger
	StartTime     time.Time
	Version       string
	Commit        string
	BuildDate     string
	GoVersion     string
	TimeNow       func() time.Time // for testing, defaults to time.Now
	AllowedHosts  []string         // Host headers allowed on mutating endpoints
	AllowedCIDRS  []string         // IPs/CIDRs allowed on mutating endpoints
	TrustProxy    bool             // true if running behind a trusted reverse proxy
	RedisClient   *redis.Client    // Redis client connection (readiness checks)
	Store         *store.Store     // Persisted configuration + service index
	ReloadTrigger chan struct{}    // Channel to trigger a manual configuration reload
}
