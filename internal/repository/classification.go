package repository

import (
	"context"
	"time"

	"waste-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ClassificationRepository struct {
	collection *mongo.Collection
}

func NewClassificationRepository(db *mongo.Database) *ClassificationRepository {
	return &ClassificationRepository{
		collection: db.Collection("waste_classifications"),
	}
}

func (r *ClassificationRepository) Create(classification *models.WasteClassification) (*models.WasteClassification, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := r.collection.InsertOne(ctx, classification)
	if err != nil {
		return nil, err
	}

	classification.ID = result.InsertedID.(primitive.ObjectID)
	return classification, nil
}

func (r *ClassificationRepository) FindAll() ([]*models.WasteClassification, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Newest detections first
	opts := options.Find().SetSort(bson.D{{Key: "detection_time", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var classifications []*models.WasteClassification
	for cursor.Next(ctx) {
		var classification models.WasteClassification
		if err := cursor.Decode(&classification); err != nil {
			return nil, err
		}
		classifications = append(classifications, &classification)
	}

	return classifications, nil
}

func (r *ClassificationRepository) FindRecent(limit int64) ([]*models.WasteClassification, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "detection_time", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var classifications []*models.WasteClassification
	for cursor.Next(ctx) {
		var classification models.WasteClassification
		if err := cursor.Decode(&classification); err != nil {
			return nil, err
		}
		classifications = append(classifications, &classification)
	}

	return classifications, nil
}

// FindAllWasteTypes projects just the waste_type column, which is all the
// aggregation engine needs.
func (r *ClassificationRepository) FindAllWasteTypes() ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"waste_type": 1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var wasteTypes []string
	for cursor.Next(ctx) {
		var row struct {
			WasteType string `bson:"waste_type"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, err
		}
		wasteTypes = append(wasteTypes, row.WasteType)
	}

	return wasteTypes, nil
}

func (r *ClassificationRepository) Count() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return r.collection.CountDocuments(ctx, bson.M{})
}

// CreateIndexes creates necessary indexes for the waste_classifications collection
func (r *ClassificationRepository) CreateIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "detection_time", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "waste_type", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "camera_id", Value: 1}},
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}
