package constvars

// Validation messages, mapped by validator tag
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"url":      "must be a valid URL",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientInvalidOfficeHours            = "office hours configuration is invalid"
	ErrClientUnknownUser                   = "input references a user that does not exist"
	ErrClientRunNotFound                   = "evaluation run not found"
	ErrClientEvaluationInProgress          = "an evaluation for this team is already running"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevValidationFailed       = "validation failed"
	ErrDevInvalidRequestPayload  = "invalid request payload"
	ErrDevCreateHTTPRequest      = "failed to create HTTP request"
	ErrDevSendHTTPRequest        = "failed to send HTTP request"
	ErrDevServerDeadlineExceeded = "deadline exceeded"

	// Core messages
	ErrDevOfficeHoursOutOfRange = "office hours out of range: start=%d end=%d"
	ErrDevOfficeHoursTimezone   = "cannot resolve office hours timezone %q"
	ErrDevUnknownUser           = "message references unknown user %q"

	// Evaluation messages
	ErrDevRunNotFound          = "evaluation run not found"
	ErrDevTeamCallFailed       = "failed to call team solver endpoint"
	ErrDevTeamResponseDecoding = "failed to decode team solver response"
	ErrDevCallbackFailed       = "failed to notify coordinator callback"
	ErrDevLockNotAcquired      = "evaluation lock not acquired"

	// Redis messages
	ErrDevRedisSet    = "failed to set redis key"
	ErrDevRedisGet    = "failed to get redis key %s"
	ErrDevRedisDelete = "failed to delete redis key"
	ErrDevRedisSetNX  = "failed to setnx redis key"

	// Mongo messages
	ErrDevMongoDBInsertDocument   = "failed to insert document to mongodb"
	ErrDevMongoDBFindDocument     = "failed to find document in mongodb"
	ErrDevMongoDBIterateDocuments = "failed to iterate mongodb documents"

	// Minio messages
	ErrDevMinioCreateObject = "failed to create object in bucket %s"

	// RabbitMQ messages
	ErrDevRabbitMQPublish = "failed to publish message to rabbitmq"
	ErrDevRabbitMQConsume = "failed to consume messages from rabbitmq"
)

const (
	ErrFileLocationUnknown = "file location unknown"
	ErrLineLocationUnknown = "line location unknown"
	ErrFunctionNameUnknown = "function name unknown"
)
