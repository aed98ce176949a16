package modifications

import (
	"context"
	"errors"
	"time"

	"modifications-service/internal/app/contracts"
	"modifications-service/internal/app/models"
	"modifications-service/internal/pkg/constvars"
	"modifications-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ModificationMongoRepository struct {
	Collection *mongo.Collection
}

func NewModificationMongoRepository(db *mongo.Client, dbName string) contracts.ModificationRepository {
	return &ModificationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionModifications),
	}
}

func (repo *ModificationMongoRepository) CreateModification(ctx context.Context, modification *models.Modification) (*models.Modification, error) {
	result, err := repo.Collection.InsertOne(ctx, modification)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	modification.ID = result.InsertedID.(primitive.ObjectID)
	return modification, nil
}

func (repo *ModificationMongoRepository) FindModificationByID(ctx context.Context, modificationID string) (*models.Modification, error) {
	var modification models.Modification
	err := repo.Collection.FindOne(ctx, bson.M{"modification_id": modificationID}).Decode(&modification)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &modification, nil
}

func (repo *ModificationMongoRepository) FindModificationsByProjectRecord(ctx context.Context, projectRecordID string) ([]models.Modification, error) {
	cursor, err := repo.Collection.Find(
		ctx,
		bson.M{"project_record_id": projectRecordID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}),
	)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	modifications := make([]models.Modification, 0)
	if err := cursor.All(ctx, &modifications); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return modifications, nil
}

func (repo *ModificationMongoRepository) UpdateModification(ctx context.Context, modification *models.Modification) error {
	modification.UpdatedAt = time.Now().UTC()
	filter := bson.M{"modification_id": modification.ModificationID}
	update := bson.M{"$set": modification}

	_, err := repo.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *ModificationMongoRepository) UpdateModificationStatus(ctx context.Context, modificationID string, status models.ModificationStatus, reasonOrDescription string) error {
	fields := bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}
	switch status {
	case models.ModificationStatusNotApproved:
		fields["reason"] = reasonOrDescription
	case models.ModificationStatusRequestRevisions:
		fields["revision_description"] = reasonOrDescription
	case models.ModificationStatusApproved:
		fields["reason"] = ""
	case models.ModificationStatusInDraft:
		fields["revision_description"] = ""
	}

	_, err := repo.Collection.UpdateOne(ctx, bson.M{"modification_id": modificationID}, bson.M{"$set": fields})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
