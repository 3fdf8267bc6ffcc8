package repository

import (
	"context"
	"errors"
	"time"

	"waste-backend/internal/models"
	"waste-backend/internal/waste"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RequestRepository struct {
	collection *mongo.Collection
}

func NewRequestRepository(db *mongo.Database) *RequestRepository {
	return &RequestRepository{
		collection: db.Collection("collection_requests"),
	}
}

func (r *RequestRepository) Create(request *models.CollectionRequest) (*models.CollectionRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := r.collection.InsertOne(ctx, request)
	if err != nil {
		return nil, err
	}

	request.ID = result.InsertedID.(primitive.ObjectID)
	return request, nil
}

func (r *RequestRepository) FindByID(id string) (*models.CollectionRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid request ID")
	}

	var request models.CollectionRequest
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("request not found")
		}
		return nil, err
	}

	return &request, nil
}

// FindAllWithRefs returns requests newest first with the referenced dustbin
// and vehicle joined in, mirroring what the request list displays.
func (r *RequestRepository) FindAllWithRefs() ([]*models.CollectionRequestView, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{
			"$lookup": bson.M{
				"from":         "dustbins",
				"localField":   "dustbin_id",
				"foreignField": "_id",
				"as":           "dustbin",
			},
		},
		{
			"$unwind": bson.M{
				"path":                       "$dustbin",
				"preserveNullAndEmptyArrays": true,
			},
		},
		{
			"$lookup": bson.M{
				"from":         "vehicles",
				"localField":   "vehicle_id",
				"foreignField": "_id",
				"as":           "vehicle",
			},
		},
		{
			"$unwind": bson.M{
				"path":                       "$vehicle",
				"preserveNullAndEmptyArrays": true,
			},
		},
		{
			"$sort": bson.M{"requested_at": -1},
		},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var requests []*models.CollectionRequestView
	for cursor.Next(ctx) {
		var request models.CollectionRequestView
		if err := cursor.Decode(&request); err != nil {
			return nil, err
		}
		requests = append(requests, &request)
	}

	return requests, nil
}

// FindOpenByDustbin returns the Pending or In Progress request for a dustbin,
// if any. Used to avoid opening duplicate requests for the same bin.
func (r *RequestRepository) FindOpenByDustbin(dustbinID primitive.ObjectID) (*models.CollectionRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{
		"dustbin_id": dustbinID,
		"status":     bson.M{"$in": []string{waste.RequestPending, waste.RequestInProgress}},
	}

	var request models.CollectionRequest
	err := r.collection.FindOne(ctx, filter).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &request, nil
}

// UpdateStatus applies a validated status change. CompletedAt is only
// written when the change carries a completion time.
func (r *RequestRepository) UpdateStatus(id string, change waste.StatusChange) (*models.CollectionRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid request ID")
	}

	fields := bson.M{"status": change.Status}
	if change.CompletedAt != nil {
		fields["completed_at"] = *change.CompletedAt
	}

	result := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var updatedRequest models.CollectionRequest
	if err := result.Decode(&updatedRequest); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("request not found")
		}
		return nil, err
	}

	return &updatedRequest, nil
}

// CreateIndexes creates necessary indexes for the collection_requests collection
func (r *RequestRepository) CreateIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "requested_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}},
		},
		{
			Keys: bson.D{
				{Key: "dustbin_id", Value: 1},
				{Key: "status", Value: 1},
			},
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}
