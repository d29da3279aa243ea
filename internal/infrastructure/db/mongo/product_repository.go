package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tradeconnect/marketplace-api/internal/core/domain"
	"github.com/tradeconnect/marketplace-api/internal/core/ports"
)

const collectionProducts = "products"

type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{col: db.Collection(collectionProducts)}
}

type productDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	ProductName string             `bson:"product_name"`
	Description string             `bson:"description,omitempty"`
	Category    string             `bson:"category"`
	Price       float64            `bson:"price"`
	Features    []string           `bson:"features,omitempty"`
	Quantity    int64              `bson:"quantity"`
	CompanyID   string             `bson:"company_id"`
	CreatedAt   time.Time          `bson:"created_at"`
}

// CreateOrIncrement upserts on (product_name, company_id): when the company
// already lists the product, a single $inc merges the quantity; otherwise the
// remaining fields are written via $setOnInsert. The upsert makes concurrent
// restocks lose no updates and the unique index makes races insert-once.
func (r *ProductRepository) CreateOrIncrement(ctx context.Context, p *domain.Product) (*domain.Product, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"product_name": p.ProductName, "company_id": p.CompanyID}
	update := bson.M{
		"$inc": bson.M{"quantity": p.Quantity},
		"$setOnInsert": bson.M{
			"product_name": p.ProductName,
			"description":  p.Description,
			"category":     p.Category,
			"price":        p.Price,
			"features":     p.Features,
			"company_id":   p.CompanyID,
			"created_at":   time.Now().UTC(),
		},
	}

	res, err := r.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, false, fmt.Errorf("upsert product: %w", err)
	}
	merged := res.MatchedCount > 0

	var doc productDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, false, fmt.Errorf("fetch upserted product: %w", err)
	}
	return docToProduct(&doc), merged, nil
}

// SearchByName returns products whose name contains the substring,
// case-insensitively.
func (r *ProductRepository) SearchByName(ctx context.Context, substring string) ([]domain.Product, error) {
	filter := bson.M{"product_name": primitive.Regex{
		Pattern: regexp.QuoteMeta(substring),
		Options: "i",
	}}
	return r.find(ctx, filter)
}

// FindByName returns the product with the exact name, across companies.
func (r *ProductRepository) FindByName(ctx context.Context, name string) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc productDoc
	if err := r.col.FindOne(ctx, bson.M{"product_name": name}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return docToProduct(&doc), nil
}

func (r *ProductRepository) ListByCompany(ctx context.Context, companyID string) ([]domain.Product, error) {
	return r.find(ctx, bson.M{"company_id": companyID})
}

// EnsureIndexes creates necessary indexes on the products collection. The
// compound unique index backs the create-or-merge upsert.
func (r *ProductRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "product_name", Value: 1}, {Key: "company_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "company_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *ProductRepository) find(ctx context.Context, filter bson.M) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []domain.Product
	for cursor.Next(ctx) {
		var doc productDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		products = append(products, *docToProduct(&doc))
	}
	return products, cursor.Err()
}

func docToProduct(doc *productDoc) *domain.Product {
	return &domain.Product{
		ID:          doc.ID.Hex(),
		ProductName: doc.ProductName,
		Description: doc.Description,
		Category:    doc.Category,
		Price:       doc.Price,
		Features:    doc.Features,
		Quantity:    doc.Quantity,
		CompanyID:   doc.CompanyID,
	}
}

var _ ports.ProductRepository = (*ProductRepository)(nil)
