package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	MongoClient    *mongo.Client
	Redis          *redis.Client
	RabbitMQ       *amqp091.Connection
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// ConsumerStop if set will be called during Shutdown to stop the
	// evaluation queue consumer.
	ConsumerStop func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.ConsumerStop != nil {
		b.ConsumerStop()
		log.Println("Successfully stopped evaluation consumer")
	}

	if err := b.Redis.Close(); err != nil {
		return err
	}
	log.Println("Successfully closing Redis")

	if err := b.RabbitMQ.Close(); err != nil {
		return err
	}
	log.Println("Successfully closing RabbitMQ")

	if err := b.MongoClient.Disconnect(ctx); err != nil {
		return err
	}
	log.Println("Successfully closing MongoDB")

	if err := b.Logger.Sync(); err != nil {
		return err
	}
	log.Println("Successfully closing Logger")

	return nil
}
