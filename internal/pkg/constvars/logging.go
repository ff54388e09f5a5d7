package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingRunIDKey      = "run_id"
	LoggingTeamURLKey    = "team_url"
	LoggingLevelKey      = "level"
	LoggingScoreKey      = "score"
	LoggingUserKey       = "user"
	LoggingDataKey       = "data"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"

	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingObjectNameKey         = "object_name"
	LoggingQueueNameKey          = "queue_name"
)
