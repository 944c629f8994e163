package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"QR-Code-Tracker/config"
	"QR-Code-Tracker/models"
)

type MongoQRCodeRepository struct {
	collection *mongo.Collection
}

func NewQRCodeRepository(db *mongo.Database) *MongoQRCodeRepository {
	return &MongoQRCodeRepository{
		collection: db.Collection(config.QRCodeCollection),
	}
}

func (r *MongoQRCodeRepository) SaveQRCode(ctx context.Context, qrCode *models.QRCode) (models.ID, error) {
	qrCode.ID = models.NewID()
	qrCode.CreatedAt = time.Now().UTC()

	if _, err := r.collection.InsertOne(ctx, qrCode); err != nil {
		return models.ID{}, fmt.Errorf("failed to save qr code: %w", err)
	}
	return qrCode.ID, nil
}

// FindQRCodesByOwner lists the owner's codes, newest first.
func (r *MongoQRCodeRepository) FindQRCodesByOwner(ctx context.Context, ownerID models.ID) ([]models.QRCode, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": ownerID}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to find qr codes: %w", err)
	}
	defer cursor.Close(ctx)

	qrCodes := []models.QRCode{}
	if err = cursor.All(ctx, &qrCodes); err != nil {
		return nil, fmt.Errorf("failed to decode qr codes: %w", err)
	}
	return qrCodes, nil
}

func (r *MongoQRCodeRepository) DeleteQRCode(ctx context.Context, id, ownerID models.ID) (int64, error) {
	filter := bson.M{"_id": id, "user_id": ownerID}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete qr code: %w", err)
	}
	return result.DeletedCount, nil
}
