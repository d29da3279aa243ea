package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/tradeconnect/marketplace-api/internal/core/domain"
	"github.com/tradeconnect/marketplace-api/internal/core/ports"
)

type stubCustomerRepo struct {
	customers map[string]*domain.Customer
	nextID    int
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[string]*domain.Customer)}
}

func cloneCustomer(c *domain.Customer) *domain.Customer {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *stubCustomerRepo) Type() domain.PrincipalType { return domain.PrincipalCustomer }

func (r *stubCustomerRepo) Create(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	for _, existing := range r.customers {
		if existing.Email == c.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}
	r.nextID++
	copy := cloneCustomer(c)
	copy.ID = "customer-" + strconv.Itoa(r.nextID)
	r.customers[copy.ID] = cloneCustomer(copy)
	return copy, nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id string) (*domain.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	return cloneCustomer(c), nil
}

func (r *stubCustomerRepo) FindByEmail(_ context.Context, email string) (*domain.Customer, error) {
	for _, c := range r.customers {
		if c.Email == email {
			return cloneCustomer(c), nil
		}
	}
	return nil, domain.ErrCustomerNotFound
}

func (r *stubCustomerRepo) UpdateProfile(_ context.Context, id string, patch ports.CustomerProfilePatch) (*domain.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.MobileNumber != nil {
		c.MobileNumber = *patch.MobileNumber
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	if patch.Pincode != nil {
		c.Pincode = *patch.Pincode
	}
	if patch.District != nil {
		c.District = *patch.District
	}
	if patch.Country != nil {
		c.Country = *patch.Country
	}
	if patch.AreaOrStreet != nil {
		c.AreaOrStreet = *patch.AreaOrStreet
	}
	if patch.Landmark != nil {
		c.Landmark = *patch.Landmark
	}
	return cloneCustomer(c), nil
}

func (r *stubCustomerRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.customers[id]; !ok {
		return domain.ErrCustomerNotFound
	}
	delete(r.customers, id)
	return nil
}

func (r *stubCustomerRepo) FindCredentialsByID(ctx context.Context, id string) (*domain.Credentials, error) {
	c, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.Credentials{ID: c.ID, Email: c.Email, PasswordHash: c.PasswordHash}, nil
}

func (r *stubCustomerRepo) FindCredentialsByEmail(ctx context.Context, email string) (*domain.Credentials, error) {
	c, err := r.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return &domain.Credentials{ID: c.ID, Email: c.Email, PasswordHash: c.PasswordHash}, nil
}

func (r *stubCustomerRepo) SetPassword(_ context.Context, id, passwordHash string) error {
	c, ok := r.customers[id]
	if !ok {
		return domain.ErrCustomerNotFound
	}
	c.PasswordHash = passwordHash
	return nil
}

func (r *stubCustomerRepo) SetResetToken(_ context.Context, id, tokenHash string, expiresAt time.Time) error {
	c, ok := r.customers[id]
	if !ok {
		return domain.ErrCustomerNotFound
	}
	c.ResetPasswordToken = tokenHash
	c.ResetPasswordExpire = expiresAt
	return nil
}

func (r *stubCustomerRepo) RedeemResetToken(_ context.Context, tokenHash string, now time.Time, passwordHash string) (*domain.Credentials, error) {
	for _, c := range r.customers {
		if c.ResetPasswordToken == tokenHash && c.ResetPasswordExpire.After(now) {
			c.PasswordHash = passwordHash
			c.ResetPasswordToken = ""
			c.ResetPasswordExpire = time.Time{}
			return &domain.Credentials{ID: c.ID, Email: c.Email, PasswordHash: c.PasswordHash}, nil
		}
	}
	return nil, domain.ErrInvalidResetToken
}

var _ ports.CustomerRepository = (*stubCustomerRepo)(nil)

func newTestCustomerService(repo ports.CustomerRepository) *CustomerService {
	hasher := NewPasswordHasher(bcrypt.MinCost)
	tokens := NewTokenService("secret", time.Hour)
	accounts := NewAccounts(repo, hasher, tokens, &stubMailer{}, "http://localhost:3000", 0, zerolog.Nop())
	return NewCustomerService(repo, accounts, hasher, tokens, zerolog.Nop())
}

func customerSignupInput(email string) ports.CustomerSignupInput {
	return ports.CustomerSignupInput{
		Name:         "Bob",
		MobileNumber: "9123456780",
		Email:        email,
		Pincode:      "110001",
		District:     "New Delhi",
		Country:      "India",
		Password:     "s3cret",
	}
}

func TestCustomerService_Signup(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := newTestCustomerService(repo)

	token, err := svc.Signup(context.Background(), customerSignupInput("bob@example.com"))
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected session token, got empty")
	}

	stored, err := repo.FindByEmail(context.Background(), "bob@example.com")
	if err != nil {
		t.Fatalf("customer not persisted: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestCustomerService_Signup_DuplicateEmail(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := newTestCustomerService(repo)

	if _, err := svc.Signup(context.Background(), customerSignupInput("bob@example.com")); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	if _, err := svc.Signup(context.Background(), customerSignupInput("bob@example.com")); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestCustomerService_UpdateProfile_Partial(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := newTestCustomerService(repo)

	if _, err := svc.Signup(context.Background(), customerSignupInput("bob@example.com")); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	stored, _ := repo.FindByEmail(context.Background(), "bob@example.com")

	newPincode := "110002"
	updated, err := svc.UpdateProfile(context.Background(), stored.ID, ports.CustomerProfilePatch{
		Pincode: &newPincode,
	})
	if err != nil {
		t.Fatalf("update profile failed: %v", err)
	}
	if updated.Pincode != "110002" {
		t.Fatalf("pincode not updated: %s", updated.Pincode)
	}
	// untouched fields keep their values
	if updated.Name != "Bob" || updated.Email != "bob@example.com" {
		t.Fatalf("unrelated fields changed: %+v", updated)
	}
}

func TestCustomerService_DeleteProfile(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := newTestCustomerService(repo)

	if _, err := svc.Signup(context.Background(), customerSignupInput("bob@example.com")); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	stored, _ := repo.FindByEmail(context.Background(), "bob@example.com")

	if err := svc.DeleteProfile(context.Background(), stored.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.Login(context.Background(), "bob@example.com", "s3cret"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected login to fail after delete, got %v", err)
	}
}
