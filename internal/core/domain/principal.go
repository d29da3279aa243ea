package domain

import "time"

// PrincipalType distinguishes the two disjoint account classes. A token issued
// to one type never resolves against the other type's store.
type PrincipalType string

const (
	PrincipalCompany  PrincipalType = "company"
	PrincipalCustomer PrincipalType = "customer"
)

// Principal is the authenticated identity attached to a request after the
// guard has verified the session token and loaded the account.
type Principal struct {
	ID    string        `json:"id"`
	Email string        `json:"email"`
	Type  PrincipalType `json:"type"`
}

// Credentials is the store-agnostic view of an account used by the generic
// credential flows (login, password update, reset). The password field always
// holds a bcrypt digest once persisted, never plaintext.
type Credentials struct {
	ID           string
	Email        string
	PasswordHash string
}

// Company is a seller account. Required signup fields mirror the registration
// form; the remaining fields are optional profile data.
type Company struct {
	ID                    string    `json:"id"`
	CompanyName           string    `json:"CompanyName"`
	ContactPersonName     string    `json:"ContactPersonName"`
	PrimaryMobileNumber   string    `json:"PrimaryMobileNumber"`
	Email                 string    `json:"Email"`
	Pincode               string    `json:"Pincode"`
	District              string    `json:"District"`
	Country               string    `json:"Country"`
	City                  string    `json:"City"`
	State                 string    `json:"State"`
	BuildingNumberOrFloor string    `json:"BuildingNumberOrFloor"`
	GSTIN                 string    `json:"GSTIN"`
	PrimaryBusinessType   string    `json:"PrimaryBusinessType"`
	CEOName               string    `json:"CEOName"`
	GSTRegistrationDate   string    `json:"GSTRegistrationDate"`
	OwnershipType         string    `json:"OwnershipType"`
	AreaOrStreet          string    `json:"AreaOrStreet,omitempty"`
	Landmark              string    `json:"Landmark,omitempty"`
	Locality              string    `json:"Locality,omitempty"`
	Designation           string    `json:"Designation,omitempty"`
	AlternateMobileNumber string    `json:"AlternateMobileNumber,omitempty"`
	AlternateEmail        string    `json:"AlternateEmail,omitempty"`
	WebsiteURL            string    `json:"WebsiteURL,omitempty"`
	GoogleBusinessURL     string    `json:"GoogleBusinessURL,omitempty"`
	InstagramBusinessURL  string    `json:"InstagramBusinessURL,omitempty"`
	FacebookBusinessURL   string    `json:"FacebookBusinessURL,omitempty"`
	SecondaryBusiness     string    `json:"SecondaryBusiness,omitempty"`
	NumberOfEmployees     string    `json:"NumberOfEmployees,omitempty"`
	AnnualTurnover        string    `json:"AnnualTurnover,omitempty"`
	PasswordHash          string    `json:"-"`
	ResetPasswordToken    string    `json:"-"`
	ResetPasswordExpire   time.Time `json:"-"`
	CreatedAt             time.Time `json:"createdAt"`
}

// Customer is a buyer account.
type Customer struct {
	ID                  string    `json:"id"`
	Name                string    `json:"Name"`
	MobileNumber        string    `json:"MobileNumber"`
	Email               string    `json:"Email"`
	Pincode             string    `json:"Pincode"`
	District            string    `json:"District"`
	Country             string    `json:"Country"`
	AreaOrStreet        string    `json:"AreaOrStreet,omitempty"`
	Landmark            string    `json:"Landmark,omitempty"`
	PasswordHash        string    `json:"-"`
	ResetPasswordToken  string    `json:"-"`
	ResetPasswordExpire time.Time `json:"-"`
	CreatedAt           time.Time `json:"createdAt"`
}
