package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tradeconnect/marketplace-api/internal/core/domain"
	"github.com/tradeconnect/marketplace-api/internal/core/ports"
)

const collectionInquiries = "inquiries"

type InquiryRepository struct {
	col *mongo.Collection
}

func NewInquiryRepository(db *mongo.Database) *InquiryRepository {
	return &InquiryRepository{col: db.Collection(collectionInquiries)}
}

type inquiryDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	CompanyID  string             `bson:"company_id"`
	CustomerID string             `bson:"customer_id"`
	Name       string             `bson:"name"`
	Email      string             `bson:"email"`
	Message    string             `bson:"message"`
	CreatedAt  time.Time          `bson:"created_at"`
}

func (r *InquiryRepository) Create(ctx context.Context, i *domain.Inquiry) (*domain.Inquiry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := inquiryDoc{
		ID:         primitive.NewObjectID(),
		CompanyID:  i.CompanyID,
		CustomerID: i.CustomerID,
		Name:       i.Name,
		Email:      i.Email,
		Message:    i.Message,
		CreatedAt:  i.CreatedAt,
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert inquiry: %w", err)
	}
	return docToInquiry(&doc), nil
}

func (r *InquiryRepository) ListByCompany(ctx context.Context, companyID string) ([]domain.Inquiry, error) {
	return r.find(ctx, bson.M{"company_id": companyID})
}

func (r *InquiryRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.Inquiry, error) {
	return r.find(ctx, bson.M{"customer_id": customerID})
}

// EnsureIndexes creates necessary indexes on the inquiries collection.
func (r *InquiryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "company_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "customer_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *InquiryRepository) find(ctx context.Context, filter bson.M) ([]domain.Inquiry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find inquiries: %w", err)
	}
	defer cursor.Close(ctx)

	var inquiries []domain.Inquiry
	for cursor.Next(ctx) {
		var doc inquiryDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode inquiry: %w", err)
		}
		inquiries = append(inquiries, *docToInquiry(&doc))
	}
	return inquiries, cursor.Err()
}

func docToInquiry(doc *inquiryDoc) *domain.Inquiry {
	return &domain.Inquiry{
		ID:         doc.ID.Hex(),
		CompanyID:  doc.CompanyID,
		CustomerID: doc.CustomerID,
		Name:       doc.Name,
		Email:      doc.Email,
		Message:    doc.Message,
		CreatedAt:  doc.CreatedAt,
	}
}

var _ ports.InquiryRepository = (*InquiryRepository)(nil)
