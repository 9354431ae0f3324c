package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"valentine_week/internal/middleware"
	"valentine_week/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDB のコレクション名 (旧バックエンドと同じ)
const (
	mongoProgressCollection = "valentine_progress"
	mongoStatusCollection   = "status_checks"
)

// mongoProgressDocument は _id を固定して唯一のドキュメントを保証するためのラッパー
type mongoProgressDocument struct {
	ID                 string `bson:"_id"`
	model.UserProgress `bson:",inline"`
}

// NewMongoClient は接続を確立し、Ping で疎通確認したクライアントを返します
func NewMongoClient(ctx context.Context, uri string, appLogger *slog.Logger) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		appLogger.Error("Failed to connect to MongoDB", slog.Any("error", err))
		return nil, wrapStoreError("repository.NewMongoClient", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		appLogger.Error("Error pinging MongoDB", slog.Any("error", err))
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("repository.NewMongoClient: %w: %w", model.ErrStoreUnavailable, err)
	}
	appLogger.Info("MongoDB connection established")
	return client, nil
}

type mongoProgressRepository struct {
	coll *mongo.Collection
}

func NewMongoProgressRepository(db *mongo.Database) ProgressRepository {
	return &mongoProgressRepository{coll: db.Collection(mongoProgressCollection)}
}

func (r *mongoProgressRepository) Fetch(ctx context.Context) (*model.UserProgress, error) {
	logger := middleware.GetLogger(ctx)
	var doc mongoProgressDocument
	err := r.coll.FindOne(ctx, bson.M{"_id": progressSingletonKey}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		logger.Error("Error fetching progress from MongoDB", "error", err)
		return nil, wrapStoreError("mongoProgressRepository.Fetch", err)
	}
	progress := doc.UserProgress
	return &progress, nil
}

func (r *mongoProgressRepository) Create(ctx context.Context, progress *model.UserProgress) error {
	logger := middleware.GetLogger(ctx)
	if progress.Version == 0 {
		progress.Version = 1
	}
	_, err := r.coll.InsertOne(ctx, mongoProgressDocument{ID: progressSingletonKey, UserProgress: *progress})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			logger.Warn("Progress already exists, create rejected", "user_id", progress.UserID)
			return model.ErrConflict
		}
		logger.Error("Error creating progress in MongoDB", "error", err, "user_id", progress.UserID)
		return wrapStoreError("mongoProgressRepository.Create", err)
	}
	return nil
}

func (r *mongoProgressRepository) Replace(ctx context.Context, progress *model.UserProgress) error {
	logger := middleware.GetLogger(ctx)
	expected := progress.Version

	next := *progress
	next.Version = expected + 1
	result, err := r.coll.ReplaceOne(ctx,
		bson.M{"_id": progressSingletonKey, "version": expected},
		mongoProgressDocument{ID: progressSingletonKey, UserProgress: next},
	)
	if err != nil {
		logger.Error("Error replacing progress in MongoDB", "error", err, "version", expected)
		return wrapStoreError("mongoProgressRepository.Replace", err)
	}
	if result.MatchedCount == 0 {
		count, err := r.coll.CountDocuments(ctx, bson.M{"_id": progressSingletonKey})
		if err != nil {
			logger.Error("Error checking progress existence in MongoDB", "error", err)
			return wrapStoreError("mongoProgressRepository.Replace", err)
		}
		if count == 0 {
			return model.ErrNotFound
		}
		logger.Warn("Progress version mismatch on replace", "version", expected)
		return model.ErrConflict
	}

	progress.Version = next.Version
	return nil
}

func (r *mongoProgressRepository) DeleteAll(ctx context.Context) error {
	logger := middleware.GetLogger(ctx)
	result, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		logger.Error("Error deleting progress in MongoDB", "error", err)
		return wrapStoreError("mongoProgressRepository.DeleteAll", err)
	}
	logger.Debug("Progress deleted", "rows", result.DeletedCount)
	return nil
}

type mongoStatusRepository struct {
	coll *mongo.Collection
}

func NewMongoStatusRepository(db *mongo.Database) StatusRepository {
	return &mongoStatusRepository{coll: db.Collection(mongoStatusCollection)}
}

func (r *mongoStatusRepository) Create(ctx context.Context, status *model.StatusCheck) error {
	logger := middleware.GetLogger(ctx)
	if _, err := r.coll.InsertOne(ctx, status); err != nil {
		logger.Error("Error creating status check in MongoDB", "error", err, "client_name", status.ClientName)
		return wrapStoreError("mongoStatusRepository.Create", err)
	}
	return nil
}

func (r *mongoStatusRepository) List(ctx context.Context, limit int) ([]*model.StatusCheck, error) {
	logger := middleware.GetLogger(ctx)
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: 1}}).
		SetLimit(int64(limit))
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		logger.Error("Error listing status checks in MongoDB", "error", err)
		return nil, wrapStoreError("mongoStatusRepository.List", err)
	}
	defer cursor.Close(ctx)

	statuses := make([]*model.StatusCheck, 0)
	if err := cursor.All(ctx, &statuses); err != nil {
		logger.Error("Error decoding status checks from MongoDB", "error", err)
		return nil, wrapStoreError("mongoStatusRepository.List", err)
	}
	return statuses, nil
}
