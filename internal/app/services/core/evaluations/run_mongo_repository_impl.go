package evaluations

import (
	"context"
	"mailtime-service/internal/app/contracts"
	"mailtime-service/internal/app/models"
	"mailtime-service/internal/pkg/constvars"
	"mailtime-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RunMongoRepository struct {
	Collection *mongo.Collection
}

func NewRunMongoRepository(db *mongo.Client, dbName string) contracts.RunRepository {
	return &RunMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionRuns),
	}
}

func (repo *RunMongoRepository) Save(ctx context.Context, run models.EvaluationRun) error {
	opts := options.Replace().SetUpsert(true)
	_, err := repo.Collection.ReplaceOne(ctx, bson.M{"runId": run.RunID}, run, opts)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *RunMongoRepository) FindByRunID(ctx context.Context, runID string) (*models.EvaluationRun, error) {
	var run models.EvaluationRun
	err := repo.Collection.FindOne(ctx, bson.M{"runId": runID}).Decode(&run)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &run, nil
}
