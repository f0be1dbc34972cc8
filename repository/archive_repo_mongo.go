package repository

import (
	"context"
	"time"

	"saisolaredge/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoDatabase = "saisolaredge"

type MongoArchiveRepo struct {
	DB *mongo.Client
}

func NewMongoArchiveRepo(db *mongo.Client) *MongoArchiveRepo {
	return &MongoArchiveRepo{DB: db}
}

func (r *MongoArchiveRepo) SaveExport(rec *models.ExportRecord) error {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)

	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	if rec.ID == 0 {
		rec.ID = time.Now().UnixNano()
	}

	_, err := db.Collection("export_record").InsertOne(ctx, rec)
	return err
}

func (r *MongoArchiveRepo) ListExports() ([]*models.ExportRecord, error) {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := db.Collection("export_record").Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*models.ExportRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
