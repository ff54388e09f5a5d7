package config

import (
	"mailtime-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "mailtime"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "mailtime-artifacts"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", ""),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUESTS", 100),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 10),
			ShutdownTimeoutInSeconds:  utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),

			TeamEndpointSuffix:         utils.GetEnvString("APP_TEAM_ENDPOINT_SUFFIX", "/mailtime"),
			TeamCallTimeoutInSeconds:   utils.GetEnvInt("APP_TEAM_CALL_TIMEOUT_IN_SECONDS", 30),
			TeamRequestsPerSecond:      utils.GetEnvInt("APP_TEAM_REQUESTS_PER_SECOND", 2),
			CallbackTimeoutInSeconds:   utils.GetEnvInt("APP_CALLBACK_TIMEOUT_IN_SECONDS", 10),
			CoordinatorAuthToken:       utils.GetEnvString("APP_COORDINATOR_AUTH_TOKEN", ""),
			EvaluationLockTTLInMinutes: utils.GetEnvInt("APP_EVALUATION_LOCK_TTL_IN_MINUTES", 15),
		},
	}
}
