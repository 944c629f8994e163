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

type MongoScanRepository struct {
	collection *mongo.Collection
}

func NewScanRepository(db *mongo.Database) *MongoScanRepository {
	return &MongoScanRepository{
		collection: db.Collection(config.ScanCollection),
	}
}

// RecordScan inserts unconditionally; the referenced QR code may not exist.
func (r *MongoScanRepository) RecordScan(ctx context.Context, scan *models.Scan) (models.ID, error) {
	scan.ID = models.NewID()
	if scan.Timestamp.IsZero() {
		scan.Timestamp = time.Now().UTC()
	}

	if _, err := r.collection.InsertOne(ctx, scan); err != nil {
		return models.ID{}, fmt.Errorf("failed to record scan: %w", err)
	}
	return scan.ID, nil
}

func (r *MongoScanRepository) FindScansByQRCode(ctx context.Context, qrCodeID models.ID) ([]models.Scan, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"qr_code_id": qrCodeID}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to find scans: %w", err)
	}
	defer cursor.Close(ctx)

	scans := []models.Scan{}
	if err = cursor.All(ctx, &scans); err != nil {
		return nil, fmt.Errorf("failed to decode scans: %w", err)
	}
	return scans, nil
}

// CountScansByOwner joins scans to their QR codes and counts those owned
// by ownerID. Scans of deleted or unknown codes drop out of the join.
func (r *MongoScanRepository) CountScansByOwner(ctx context.Context, ownerID models.ID) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: config.QRCodeCollection},
			{Key: "localField", Value: "qr_code_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "qr_code"},
		}}},
		{{Key: "$unwind", Value: "$qr_code"}},
		{{Key: "$match", Value: bson.D{{Key: "qr_code.user_id", Value: ownerID}}}},
		{{Key: "$count", Value: "total_scans"}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate scans: %w", err)
	}
	defer cursor.Close(ctx)

	var totals []models.ScanTotal
	if err = cursor.All(ctx, &totals); err != nil {
		return 0, fmt.Errorf("failed to decode scan totals: %w", err)
	}
	if len(totals) == 0 {
		return 0, nil
	}
	return totals[0].TotalScans, nil
}
