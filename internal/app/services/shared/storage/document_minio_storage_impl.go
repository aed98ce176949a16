package storage

import (
	"context"
	"fmt"
	"path"

	"modifications-service/internal/app/contracts"
	"modifications-service/internal/app/models"
	"modifications-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type documentMinioStorage struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewDocumentMinioStorage(minioClient *minio.Client, bucketName string) contracts.DocumentStorage {
	return &documentMinioStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
	}
}

// FetchUploadedDocuments lists every object uploaded for the modification.
// Objects are keyed <project record>/<modification>/<file name>; the file
// name is the last path segment.
func (s *documentMinioStorage) FetchUploadedDocuments(ctx context.Context, modificationID, projectRecordID string) ([]models.DocumentRef, error) {
	prefix := fmt.Sprintf("%s/%s/", projectRecordID, modificationID)

	documents := make([]models.DocumentRef, 0)
	for object := range s.MinioClient.ListObjects(ctx, s.BucketName, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if object.Err != nil {
			return nil, exceptions.ErrMinioListObjects(object.Err, s.BucketName)
		}
		documents = append(documents, models.DocumentRef{
			FileName:  path.Base(object.Key),
			ObjectKey: object.Key,
			Size:      object.Size,
		})
	}

	return documents, nil
}
