package repository

import (
	"context"
	"errors"
	"time"

	"moneybrief/internal/advice"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CatalogCollection holds the advisory content document
const CatalogCollection = "advice_catalog"

// catalogID is the single document the service reads
const catalogID = "current"

// CatalogRepo handles MongoDB operations for the advice catalog
type CatalogRepo interface {
	Load(ctx context.Context) (*advice.Catalog, error)
	Save(ctx context.Context, catalog *advice.Catalog) error
}

type catalogDocument struct {
	ID             string    `bson:"_id"`
	advice.Catalog `bson:",inline"`
	UpdatedAt      time.Time `bson:"updatedAt"`
}

type catalogRepo struct {
	coll *mongo.Collection
}

// NewCatalogRepo creates a new catalog repository
func NewCatalogRepo(db *mongo.Database) CatalogRepo {
	return &catalogRepo{
		coll: db.Collection(CatalogCollection),
	}
}

// Load returns the stored catalog, or nil when none has been seeded
func (r *catalogRepo) Load(ctx context.Context) (*advice.Catalog, error) {
	var doc catalogDocument
	err := r.coll.FindOne(ctx, bson.M{"_id": catalogID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc.Catalog, nil
}

func (r *catalogRepo) Save(ctx context.Context, catalog *advice.Catalog) error {
	if err := catalog.Validate(); err != nil {
		return err
	}
	doc := catalogDocument{ID: catalogID, Catalog: *catalog, UpdatedAt: time.Now().UTC()}
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": catalogID}, doc, opts)
	return err
}
