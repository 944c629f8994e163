package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"QR-Code-Tracker/config"
	"QR-Code-Tracker/models"
)

// MongoLogoRepository keeps uploaded logos in a GridFS bucket.
type MongoLogoRepository struct {
	db *mongo.Database
}

func NewLogoRepository(db *mongo.Database) *MongoLogoRepository {
	return &MongoLogoRepository{db: db}
}

// bucket is built per call because GridFS deadlines are bucket state.
func (r *MongoLogoRepository) bucket(ctx context.Context) (*gridfs.Bucket, error) {
	bucket, err := gridfs.NewBucket(r.db, options.GridFSBucket().SetName(config.LogoBucket))
	if err != nil {
		return nil, fmt.Errorf("failed to open logo bucket: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := bucket.SetReadDeadline(deadline); err != nil {
			return nil, err
		}
		if err := bucket.SetWriteDeadline(deadline); err != nil {
			return nil, err
		}
	}
	return bucket, nil
}

func (r *MongoLogoRepository) UploadLogo(ctx context.Context, filename, contentType string, src io.Reader) (models.ID, error) {
	bucket, err := r.bucket(ctx)
	if err != nil {
		return models.ID{}, err
	}

	uploadOptions := options.GridFSUpload().SetMetadata(bson.D{{Key: "content_type", Value: contentType}})
	fileID, err := bucket.UploadFromStream(filename, src, uploadOptions)
	if err != nil {
		return models.ID{}, fmt.Errorf("failed to upload logo: %w", err)
	}
	return models.IDFromObjectID(fileID), nil
}

func (r *MongoLogoRepository) OpenLogo(ctx context.Context, id models.ID) (*LogoFile, error) {
	bucket, err := r.bucket(ctx)
	if err != nil {
		return nil, err
	}

	downloadStream, err := bucket.OpenDownloadStream(id)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to open logo: %w", err)
	}
	defer downloadStream.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, downloadStream); err != nil {
		return nil, fmt.Errorf("failed to read logo: %w", err)
	}

	fileInfo := downloadStream.GetFile()
	file := &LogoFile{Name: fileInfo.Name, Data: buf.Bytes()}
	if len(fileInfo.Metadata) > 0 {
		if ct, ok := fileInfo.Metadata.Lookup("content_type").StringValueOK(); ok {
			file.ContentType = ct
		}
	}
	if file.ContentType == "" {
		file.ContentType = http.DetectContentType(file.Data)
	}
	return file, nil
}

func (r *MongoLogoRepository) DeleteLogo(ctx context.Context, id models.ID) error {
	bucket, err := r.bucket(ctx)
	if err != nil {
		return err
	}

	if err := bucket.Delete(id); err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete logo: %w", err)
	}
	return nil
}
