package main

import (
	"context"
	"mailtime-service/internal/app/config"
	"mailtime-service/internal/app/delivery/http/middlewares"
	"mailtime-service/internal/app/delivery/http/routers"
	"mailtime-service/internal/app/drivers/database"
	"mailtime-service/internal/app/drivers/logger"
	"mailtime-service/internal/app/drivers/messaging"
	"mailtime-service/internal/app/drivers/storage"
	"mailtime-service/internal/app/services/core/evaluations"
	"mailtime-service/internal/app/services/core/mailtime"
	"mailtime-service/internal/app/services/shared/artifacts"
	"mailtime-service/internal/app/services/shared/evalqueue"
	"mailtime-service/internal/app/services/shared/locker"
	"mailtime-service/internal/app/services/shared/redis"
	"mailtime-service/internal/pkg/dto/requests"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConn := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQConn,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	consumerStop, err := bootstrapingTheApp(&bootstrap, minioClient)
	if err != nil {
		log.Fatalf("Failed to bootstrap application: %v", err)
	}
	bootstrap.ConsumerStop = consumerStop

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Failed to shutdown gracefully: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap, minioClient *minio.Client) (func(), error) {
	appConfig := bootstrap.InternalConfig.App

	newRand := func() *rand.Rand {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.Logger)
	artifactStorage := artifacts.NewMinioStorage(minioClient, bootstrap.DriverConfig.Minio.BucketName, bootstrap.Logger)
	evaluationQueue, err := evalqueue.NewEvaluationQueue(bootstrap.RabbitMQ, bootstrap.Logger)
	if err != nil {
		return nil, err
	}

	// Middlewares
	mw := &middlewares.Middlewares{
		Log:            bootstrap.Logger,
		InternalConfig: bootstrap.InternalConfig,
	}

	// Mailtime
	mailtimeUsecase := mailtime.NewMailtimeUsecase(bootstrap.Logger, newRand)
	mailtimeController := mailtime.NewMailtimeController(bootstrap.Logger, mailtimeUsecase)

	// Evaluations
	runRepository := evaluations.NewRunMongoRepository(bootstrap.MongoClient, bootstrap.DriverConfig.MongoDB.DbName)
	teamClient := evaluations.NewTeamClient(
		time.Duration(appConfig.TeamCallTimeoutInSeconds)*time.Second,
		appConfig.TeamRequestsPerSecond,
		appConfig.TeamEndpointSuffix,
		bootstrap.Logger,
	)
	coordinatorClient := evaluations.NewCoordinatorClient(
		time.Duration(appConfig.CallbackTimeoutInSeconds)*time.Second,
		appConfig.CoordinatorAuthToken,
		bootstrap.Logger,
	)
	evaluationUsecase := evaluations.NewEvaluationUsecase(
		bootstrap.Logger,
		newRand,
		evaluationQueue,
		lockService,
		runRepository,
		artifactStorage,
		teamClient,
		coordinatorClient,
		time.Duration(appConfig.EvaluationLockTTLInMinutes)*time.Minute,
	)
	evaluationController := evaluations.NewEvaluationController(bootstrap.Logger, evaluationUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, mw, mailtimeController, evaluationController)

	consumerCtx, consumerCancel := context.WithCancel(context.Background())
	go func() {
		err := evaluationQueue.Consume(consumerCtx, func(ctx context.Context, evaluation requests.Evaluation) {
			if err := evaluationUsecase.Evaluate(ctx, evaluation); err != nil {
				bootstrap.Logger.Error("evaluation run failed", zap.Error(err))
			}
		})
		if err != nil && consumerCtx.Err() == nil {
			bootstrap.Logger.Error("evaluation consumer stopped", zap.Error(err))
		}
	}()

	return consumerCancel, nil
}
