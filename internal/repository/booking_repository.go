package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"scoopo-app/booking-service/internal/models"
)

const collectionName = "bookings"

// MongoBookingRepository stores bookings in MongoDB.
type MongoBookingRepository struct {
	db *mongo.Database
}

func NewMongoBookingRepository(db *mongo.Database) *MongoBookingRepository {
	return &MongoBookingRepository{db: db}
}

func (r *MongoBookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	collection := r.db.Collection(collectionName)

	booking.CreatedAt = time.Now()

	result, err := collection.InsertOne(ctx, booking)
	if err != nil {
		return err
	}

	booking.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoBookingRepository) List(ctx context.Context) ([]models.Booking, error) {
	collection := r.db.Collection(collectionName)

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}

	if bookings == nil {
		bookings = []models.Booking{}
	}

	return bookings, nil
}

// UpdateStatus sets the lifecycle status of a booking. An absent id is a
// no-op, mirroring the admin dashboard's lenient semantics.
func (r *MongoBookingRepository) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	collection := r.db.Collection(collectionName)
	_, err = collection.UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"status": status}},
	)
	return err
}

// Delete removes a booking. Idempotent: deleting an absent id succeeds.
func (r *MongoBookingRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	collection := r.db.Collection(collectionName)
	_, err = collection.DeleteOne(ctx, bson.M{"_id": objID})
	return err
}
