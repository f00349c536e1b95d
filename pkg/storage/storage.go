package storage

import (
	"context"
	"fmt"
	"strconv"

	"moviehub/comment"
	"moviehub/dynamodb"
	"moviehub/mongodb"
	"moviehub/pkg/config"
	"moviehub/postgres"
)

// NewCommentRepository opens the comment store selected by DB_DRIVER. The
// returned close function releases the underlying connection.
func NewCommentRepository(ctx context.Context, cfg *config.Config) (comment.Repository, func(), error) {
	noop := func() {}

	switch cfg.DB.Driver {
	case config.DriverPostgres:
		db, err := postgres.NewConnection(postgres.Options{
			DBName:   cfg.DB.Name,
			DBUser:   cfg.DB.User,
			Password: cfg.DB.Pass,
			Host:     cfg.DB.Host,
			Port:     strconv.Itoa(cfg.DB.Port),
			SSLMode:  cfg.DB.EnableSSL,
		})
		if err != nil {
			return nil, noop, fmt.Errorf("open postgres connection: %w", err)
		}
		closeFn := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return comment.Instrument(postgres.NewCommentRepository(db), config.DriverPostgres), closeFn, nil

	case config.DriverDynamoDB:
		client, err := dynamodb.NewClient(ctx, dynamodb.Options{
			Region:       cfg.DynamoDB.Region,
			Endpoint:     cfg.DynamoDB.Endpoint,
			AccessKey:    cfg.DynamoDB.AccessKey,
			SecretKey:    cfg.DynamoDB.SecretKey,
			SessionToken: cfg.DynamoDB.SessionToken,
		})
		if err != nil {
			return nil, noop, err
		}
		if err := dynamodb.CreateCommentsTable(ctx, client, cfg.DynamoDB.CommentsTable); err != nil {
			return nil, noop, err
		}
		repo := dynamodb.NewCommentRepository(client, cfg.DynamoDB.CommentsTable)
		return comment.Instrument(repo, config.DriverDynamoDB), noop, nil

	case config.DriverMongoDB:
		db, err := mongodb.NewConnection(ctx, mongodb.Options{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return nil, noop, err
		}
		closeFn := func() {
			_ = db.Client().Disconnect(context.Background())
		}
		repo := mongodb.NewCommentRepository(db, cfg.Mongo.Collection)
		if err := repo.EnsureIndexes(ctx); err != nil {
			closeFn()
			return nil, noop, err
		}
		return comment.Instrument(repo, config.DriverMongoDB), closeFn, nil
	}

	return nil, noop, fmt.Errorf("unsupported comment store driver %q", cfg.DB.Driver)
}
