package exceptions

import (
	"fmt"
	"mailtime-service/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrBuildRequest = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendRequest = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadGateway, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSendHTTPRequest)
	}

	// Core errors
	ErrInvalidOfficeHours = func(start, end int) *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientInvalidOfficeHours, fmt.Sprintf(constvars.ErrDevOfficeHoursOutOfRange, start, end))
	}
	ErrInvalidTimezone = func(err error, timezone string) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidOfficeHours, fmt.Sprintf(constvars.ErrDevOfficeHoursTimezone, timezone))
	}
	ErrUnknownUser = func(name string) *CustomError {
		return WrapWithoutError(constvars.StatusUnprocessableEntity, constvars.ErrClientUnknownUser, fmt.Sprintf(constvars.ErrDevUnknownUser, name))
	}

	// Evaluation errors
	ErrRunNotFound = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusNotFound, constvars.ErrClientRunNotFound, constvars.ErrDevRunNotFound)
	}
	ErrEvaluationLocked = func() *CustomError {
		return WrapWithoutError(constvars.StatusConflict, constvars.ErrClientEvaluationInProgress, constvars.ErrDevLockNotAcquired)
	}
	ErrTeamCall = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadGateway, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevTeamCallFailed)
	}
	ErrTeamResponseDecoding = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadGateway, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevTeamResponseDecoding)
	}
	ErrCallback = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadGateway, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCallbackFailed)
	}

	// Redis errors
	ErrRedisSet = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSet)
	}
	ErrRedisGet = func(err error, key string) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisGet, key))
	}
	ErrRedisDelete = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDelete)
	}
	ErrRedisSetNX = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetNX)
	}

	// Mongo errors
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBInsertDocument)
	}
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBFindDocument)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBIterateDocuments)
	}

	// Minio errors
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioCreateObject, bucketName))
	}

	// RabbitMQ errors
	ErrRabbitMQPublish = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRabbitMQPublish)
	}
	ErrRabbitMQConsume = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRabbitMQConsume)
	}
)
