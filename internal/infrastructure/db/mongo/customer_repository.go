package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tradeconnect/marketplace-api/internal/core/domain"
	"github.com/tradeconnect/marketplace-api/internal/core/ports"
)

const collectionCustomers = "customers"

type CustomerRepository struct {
	col *mongo.Collection
}

func NewCustomerRepository(db *mongo.Database) *CustomerRepository {
	return &CustomerRepository{col: db.Collection(collectionCustomers)}
}

type customerDoc struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty"`
	Name                string             `bson:"name"`
	MobileNumber        string             `bson:"mobile_number"`
	Email               string             `bson:"email"`
	Pincode             string             `bson:"pincode"`
	District            string             `bson:"district"`
	Country             string             `bson:"country"`
	AreaOrStreet        string             `bson:"area_or_street,omitempty"`
	Landmark            string             `bson:"landmark,omitempty"`
	PasswordHash        string             `bson:"password_hash"`
	ResetPasswordToken  string             `bson:"reset_password_token,omitempty"`
	ResetPasswordExpire time.Time          `bson:"reset_password_expire,omitempty"`
	CreatedAt           time.Time          `bson:"created_at"`
}

// Type tags principals resolved through this store as customers.
func (r *CustomerRepository) Type() domain.PrincipalType {
	return domain.PrincipalCustomer
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := customerDoc{
		ID:           primitive.NewObjectID(),
		Name:         c.Name,
		MobileNumber: c.MobileNumber,
		Email:        c.Email,
		Pincode:      c.Pincode,
		District:     c.District,
		Country:      c.Country,
		AreaOrStreet: c.AreaOrStreet,
		Landmark:     c.Landmark,
		PasswordHash: c.PasswordHash,
		CreatedAt:    c.CreatedAt,
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert customer: %w", err)
	}
	return docToCustomer(&doc), nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCustomerNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// UpdateProfile applies only the fields present in the patch; nil fields keep
// their stored values.
func (r *CustomerRepository) UpdateProfile(ctx context.Context, id string, patch ports.CustomerProfilePatch) (*domain.Customer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCustomerNotFound
	}

	set := bson.M{}
	setIf := func(key string, val *string) {
		if val != nil {
			set[key] = *val
		}
	}
	setIf("name", patch.Name)
	setIf("mobile_number", patch.MobileNumber)
	setIf("email", patch.Email)
	setIf("pincode", patch.Pincode)
	setIf("district", patch.District)
	setIf("country", patch.Country)
	setIf("area_or_street", patch.AreaOrStreet)
	setIf("landmark", patch.Landmark)

	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc customerDoc
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCustomerNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return docToCustomer(&doc), nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCustomerNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepository) FindCredentialsByID(ctx context.Context, id string) (*domain.Credentials, error) {
	customer, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.Credentials{ID: customer.ID, Email: customer.Email, PasswordHash: customer.PasswordHash}, nil
}

func (r *CustomerRepository) FindCredentialsByEmail(ctx context.Context, email string) (*domain.Credentials, error) {
	customer, err := r.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return &domain.Credentials{ID: customer.ID, Email: customer.Email, PasswordHash: customer.PasswordHash}, nil
}

func (r *CustomerRepository) SetPassword(ctx context.Context, id, passwordHash string) error {
	return r.updateCredentials(ctx, id, bson.M{"$set": bson.M{"password_hash": passwordHash}})
}

func (r *CustomerRepository) SetResetToken(ctx context.Context, id, tokenHash string, expiresAt time.Time) error {
	return r.updateCredentials(ctx, id, bson.M{"$set": bson.M{
		"reset_password_token":  tokenHash,
		"reset_password_expire": expiresAt,
	}})
}

// RedeemResetToken matches an unexpired ticket hash and, in the same update,
// replaces the password and clears both reset fields.
func (r *CustomerRepository) RedeemResetToken(ctx context.Context, tokenHash string, now time.Time, passwordHash string) (*domain.Credentials, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"reset_password_token":  tokenHash,
		"reset_password_expire": bson.M{"$gt": now},
	}
	update := bson.M{
		"$set":   bson.M{"password_hash": passwordHash},
		"$unset": bson.M{"reset_password_token": "", "reset_password_expire": ""},
	}

	var doc customerDoc
	err := r.col.FindOneAndUpdate(ctx, filter, update).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInvalidResetToken
		}
		return nil, fmt.Errorf("redeem reset token: %w", err)
	}
	return &domain.Credentials{ID: doc.ID.Hex(), Email: doc.Email, PasswordHash: passwordHash}, nil
}

// EnsureIndexes creates necessary indexes on the customers collection.
func (r *CustomerRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "reset_password_token", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *CustomerRepository) findOne(ctx context.Context, filter bson.M) (*domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc customerDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	return docToCustomer(&doc), nil
}

func (r *CustomerRepository) updateCredentials(ctx context.Context, id string, update bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCustomerNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update customer credentials: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func docToCustomer(doc *customerDoc) *domain.Customer {
	return &domain.Customer{
		ID:                  doc.ID.Hex(),
		Name:                doc.Name,
		MobileNumber:        doc.MobileNumber,
		Email:               doc.Email,
		Pincode:             doc.Pincode,
		District:            doc.District,
		Country:             doc.Country,
		AreaOrStreet:        doc.AreaOrStreet,
		Landmark:            doc.Landmark,
		PasswordHash:        doc.PasswordHash,
		ResetPasswordToken:  doc.ResetPasswordToken,
		ResetPasswordExpire: doc.ResetPasswordExpire,
		CreatedAt:           doc.CreatedAt,
	}
}

var _ ports.CustomerRepository = (*CustomerRepository)(nil)
