package repository

import (
	"context"
	"errors"
	"time"

	"waste-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DustbinRepository struct {
	collection *mongo.Collection
}

func NewDustbinRepository(db *mongo.Database) *DustbinRepository {
	return &DustbinRepository{
		collection: db.Collection("dustbins"),
	}
}

func (r *DustbinRepository) Create(dustbin *models.Dustbin) (*models.Dustbin, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := r.collection.InsertOne(ctx, dustbin)
	if err != nil {
		return nil, err
	}

	dustbin.ID = result.InsertedID.(primitive.ObjectID)
	return dustbin, nil
}

func (r *DustbinRepository) FindByID(id string) (*models.Dustbin, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid dustbin ID")
	}

	var dustbin models.Dustbin
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&dustbin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("dustbin not found")
		}
		return nil, err
	}

	return &dustbin, nil
}

func (r *DustbinRepository) FindByDustbinNumber(dustbinNumber string) (*models.Dustbin, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var dustbin models.Dustbin
	err := r.collection.FindOne(ctx, bson.M{"dustbin_number": dustbinNumber}).Decode(&dustbin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("dustbin not found")
		}
		return nil, err
	}

	return &dustbin, nil
}

func (r *DustbinRepository) FindAll() ([]*models.Dustbin, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var dustbins []*models.Dustbin
	for cursor.Next(ctx) {
		var dustbin models.Dustbin
		if err := cursor.Decode(&dustbin); err != nil {
			return nil, err
		}
		dustbins = append(dustbins, &dustbin)
	}

	return dustbins, nil
}

func (r *DustbinRepository) UpdateFill(id string, fillPct float64) (*models.Dustbin, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid dustbin ID")
	}

	update := bson.M{
		"$set": bson.M{
			"fill_pct":   fillPct,
			"updated_at": time.Now(),
		},
	}

	result := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var updatedDustbin models.Dustbin
	if err := result.Decode(&updatedDustbin); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("dustbin not found")
		}
		return nil, err
	}

	return &updatedDustbin, nil
}

// CreateIndexes creates necessary indexes for the dustbins collection
func (r *DustbinRepository) CreateIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "dustbin_number", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}
