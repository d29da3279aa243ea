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

const collectionCompanies = "companies"

type CompanyRepository struct {
	col *mongo.Collection
}

func NewCompanyRepository(db *mongo.Database) *CompanyRepository {
	return &CompanyRepository{col: db.Collection(collectionCompanies)}
}

type companyDoc struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty"`
	CompanyName           string             `bson:"company_name"`
	ContactPersonName     string             `bson:"contact_person_name"`
	PrimaryMobileNumber   string             `bson:"primary_mobile_number"`
	Email                 string             `bson:"email"`
	Pincode               string             `bson:"pincode"`
	District              string             `bson:"district"`
	Country               string             `bson:"country"`
	City                  string             `bson:"city"`
	State                 string             `bson:"state"`
	BuildingNumberOrFloor string             `bson:"building_number_or_floor"`
	GSTIN                 string             `bson:"gstin"`
	PrimaryBusinessType   string             `bson:"primary_business_type"`
	CEOName               string             `bson:"ceo_name"`
	GSTRegistrationDate   string             `bson:"gst_registration_date"`
	OwnershipType         string             `bson:"ownership_type"`
	AreaOrStreet          string             `bson:"area_or_street,omitempty"`
	Landmark              string             `bson:"landmark,omitempty"`
	Locality              string             `bson:"locality,omitempty"`
	Designation           string             `bson:"designation,omitempty"`
	AlternateMobileNumber string             `bson:"alternate_mobile_number,omitempty"`
	AlternateEmail        string             `bson:"alternate_email,omitempty"`
	WebsiteURL            string             `bson:"website_url,omitempty"`
	GoogleBusinessURL     string             `bson:"google_business_url,omitempty"`
	InstagramBusinessURL  string             `bson:"instagram_business_url,omitempty"`
	FacebookBusinessURL   string             `bson:"facebook_business_url,omitempty"`
	SecondaryBusiness     string             `bson:"secondary_business,omitempty"`
	NumberOfEmployees     string             `bson:"number_of_employees,omitempty"`
	AnnualTurnover        string             `bson:"annual_turnover,omitempty"`
	PasswordHash          string             `bson:"password_hash"`
	ResetPasswordToken    string             `bson:"reset_password_token,omitempty"`
	ResetPasswordExpire   time.Time          `bson:"reset_password_expire,omitempty"`
	CreatedAt             time.Time          `bson:"created_at"`
}

// Type tags principals resolved through this store as companies.
func (r *CompanyRepository) Type() domain.PrincipalType {
	return domain.PrincipalCompany
}

func (r *CompanyRepository) Create(ctx context.Context, c *domain.Company) (*domain.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := companyToDoc(c)
	doc.ID = primitive.NewObjectID()

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert company: %w", err)
	}
	return docToCompany(&doc), nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id string) (*domain.Company, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCompanyNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *CompanyRepository) FindByEmail(ctx context.Context, email string) (*domain.Company, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *CompanyRepository) FindAll(ctx context.Context) ([]domain.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find companies: %w", err)
	}
	defer cursor.Close(ctx)

	var companies []domain.Company
	for cursor.Next(ctx) {
		var doc companyDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode company: %w", err)
		}
		companies = append(companies, *docToCompany(&doc))
	}
	return companies, cursor.Err()
}

// UpdateProfile replaces the profile field set. Password and reset fields are
// never part of the update document.
func (r *CompanyRepository) UpdateProfile(ctx context.Context, id string, c *domain.Company) (*domain.Company, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCompanyNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"company_name":             c.CompanyName,
		"contact_person_name":      c.ContactPersonName,
		"primary_mobile_number":    c.PrimaryMobileNumber,
		"email":                    c.Email,
		"pincode":                  c.Pincode,
		"district":                 c.District,
		"country":                  c.Country,
		"city":                     c.City,
		"state":                    c.State,
		"building_number_or_floor": c.BuildingNumberOrFloor,
		"gstin":                    c.GSTIN,
		"primary_business_type":    c.PrimaryBusinessType,
		"ceo_name":                 c.CEOName,
		"gst_registration_date":    c.GSTRegistrationDate,
		"ownership_type":           c.OwnershipType,
		"area_or_street":           c.AreaOrStreet,
		"landmark":                 c.Landmark,
		"locality":                 c.Locality,
		"designation":              c.Designation,
		"alternate_mobile_number":  c.AlternateMobileNumber,
		"alternate_email":          c.AlternateEmail,
		"website_url":              c.WebsiteURL,
		"google_business_url":      c.GoogleBusinessURL,
		"instagram_business_url":   c.InstagramBusinessURL,
		"facebook_business_url":    c.FacebookBusinessURL,
		"secondary_business":       c.SecondaryBusiness,
		"number_of_employees":      c.NumberOfEmployees,
		"annual_turnover":          c.AnnualTurnover,
	}}

	var doc companyDoc
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCompanyNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("update company: %w", err)
	}
	return docToCompany(&doc), nil
}

func (r *CompanyRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCompanyNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCompanyNotFound
	}
	return nil
}

func (r *CompanyRepository) FindCredentialsByID(ctx context.Context, id string) (*domain.Credentials, error) {
	company, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.Credentials{ID: company.ID, Email: company.Email, PasswordHash: company.PasswordHash}, nil
}

func (r *CompanyRepository) FindCredentialsByEmail(ctx context.Context, email string) (*domain.Credentials, error) {
	company, err := r.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return &domain.Credentials{ID: company.ID, Email: company.Email, PasswordHash: company.PasswordHash}, nil
}

func (r *CompanyRepository) SetPassword(ctx context.Context, id, passwordHash string) error {
	return r.updateCredentials(ctx, id, bson.M{"$set": bson.M{"password_hash": passwordHash}})
}

func (r *CompanyRepository) SetResetToken(ctx context.Context, id, tokenHash string, expiresAt time.Time) error {
	return r.updateCredentials(ctx, id, bson.M{"$set": bson.M{
		"reset_password_token":  tokenHash,
		"reset_password_expire": expiresAt,
	}})
}

// RedeemResetToken matches an unexpired ticket hash and, in the same update,
// replaces the password and clears both reset fields. The conditional filter
// makes redemption single-use even under concurrent attempts.
func (r *CompanyRepository) RedeemResetToken(ctx context.Context, tokenHash string, now time.Time, passwordHash string) (*domain.Credentials, error) {
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

	var doc companyDoc
	err := r.col.FindOneAndUpdate(ctx, filter, update).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInvalidResetToken
		}
		return nil, fmt.Errorf("redeem reset token: %w", err)
	}
	return &domain.Credentials{ID: doc.ID.Hex(), Email: doc.Email, PasswordHash: passwordHash}, nil
}

// EnsureIndexes creates necessary indexes on the companies collection.
func (r *CompanyRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "reset_password_token", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *CompanyRepository) findOne(ctx context.Context, filter bson.M) (*domain.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc companyDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("find company: %w", err)
	}
	return docToCompany(&doc), nil
}

func (r *CompanyRepository) updateCredentials(ctx context.Context, id string, update bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCompanyNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update company credentials: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCompanyNotFound
	}
	return nil
}

func companyToDoc(c *domain.Company) companyDoc {
	return companyDoc{
		CompanyName:           c.CompanyName,
		ContactPersonName:     c.ContactPersonName,
		PrimaryMobileNumber:   c.PrimaryMobileNumber,
		Email:                 c.Email,
		Pincode:               c.Pincode,
		District:              c.District,
		Country:               c.Country,
		City:                  c.City,
		State:                 c.State,
		BuildingNumberOrFloor: c.BuildingNumberOrFloor,
		GSTIN:                 c.GSTIN,
		PrimaryBusinessType:   c.PrimaryBusinessType,
		CEOName:               c.CEOName,
		GSTRegistrationDate:   c.GSTRegistrationDate,
		OwnershipType:         c.OwnershipType,
		AreaOrStreet:          c.AreaOrStreet,
		Landmark:              c.Landmark,
		Locality:              c.Locality,
		Designation:           c.Designation,
		AlternateMobileNumber: c.AlternateMobileNumber,
		AlternateEmail:        c.AlternateEmail,
		WebsiteURL:            c.WebsiteURL,
		GoogleBusinessURL:     c.GoogleBusinessURL,
		InstagramBusinessURL:  c.InstagramBusinessURL,
		FacebookBusinessURL:   c.FacebookBusinessURL,
		SecondaryBusiness:     c.SecondaryBusiness,
		NumberOfEmployees:     c.NumberOfEmployees,
		AnnualTurnover:        c.AnnualTurnover,
		PasswordHash:          c.PasswordHash,
		ResetPasswordToken:    c.ResetPasswordToken,
		ResetPasswordExpire:   c.ResetPasswordExpire,
		CreatedAt:             c.CreatedAt,
	}
}

func docToCompany(doc *companyDoc) *domain.Company {
	return &domain.Company{
		ID:                    doc.ID.Hex(),
		CompanyName:           doc.CompanyName,
		ContactPersonName:     doc.ContactPersonName,
		PrimaryMobileNumber:   doc.PrimaryMobileNumber,
		Email:                 doc.Email,
		Pincode:               doc.Pincode,
		District:              doc.District,
		Country:               doc.Country,
		City:                  doc.City,
		State:                 doc.State,
		BuildingNumberOrFloor: doc.BuildingNumberOrFloor,
		GSTIN:                 doc.GSTIN,
		PrimaryBusinessType:   doc.PrimaryBusinessType,
		CEOName:               doc.CEOName,
		GSTRegistrationDate:   doc.GSTRegistrationDate,
		OwnershipType:         doc.OwnershipType,
		AreaOrStreet:          doc.AreaOrStreet,
		Landmark:              doc.Landmark,
		Locality:              doc.Locality,
		Designation:           doc.Designation,
		AlternateMobileNumber: doc.AlternateMobileNumber,
		AlternateEmail:        doc.AlternateEmail,
		WebsiteURL:            doc.WebsiteURL,
		GoogleBusinessURL:     doc.GoogleBusinessURL,
		InstagramBusinessURL:  doc.InstagramBusinessURL,
		FacebookBusinessURL:   doc.FacebookBusinessURL,
		SecondaryBusiness:     doc.SecondaryBusiness,
		NumberOfEmployees:     doc.NumberOfEmployees,
		AnnualTurnover:        doc.AnnualTurnover,
		PasswordHash:          doc.PasswordHash,
		ResetPasswordToken:    doc.ResetPasswordToken,
		ResetPasswordExpire:   doc.ResetPasswordExpire,
		CreatedAt:             doc.CreatedAt,
	}
}

var _ ports.CompanyRepository = (*CompanyRepository)(nil)
