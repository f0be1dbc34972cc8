package repository

import (
	"context"
	"time"

	"saisolaredge/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoProfileRepo struct {
	DB *mongo.Client
}

func NewMongoProfileRepo(db *mongo.Client) *MongoProfileRepo {
	return &MongoProfileRepo{DB: db}
}

func (r *MongoProfileRepo) SaveProfile(profile *models.IssuerProfile) error {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)

	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now().UTC()
	}
	if profile.ID == 0 {
		profile.ID = time.Now().UnixNano()
	}

	_, err := db.Collection("issuer_profile").InsertOne(ctx, profile)
	return err
}

func (r *MongoProfileRepo) GetProfile() (*models.IssuerProfile, error) {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)

	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var profile models.IssuerProfile
	err := db.Collection("issuer_profile").FindOne(ctx, bson.M{}, opts).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}
