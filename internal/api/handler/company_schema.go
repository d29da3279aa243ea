package handler

// companySignupRequest mirrors the registration form. The 16 required fields
// include the tax and business identifiers; everything else is optional
// profile data.
type companySignupRequest struct {
	CompanyName           string `json:"CompanyName"           validate:"required"`
	ContactPersonName     string `json:"ContactPersonName"     validate:"required"`
	PrimaryMobileNumber   string `json:"PrimaryMobileNumber"   validate:"required"`
	Email                 string `json:"Email"                 validate:"required,email"`
	Pincode               string `json:"Pincode"               validate:"required"`
	District              string `json:"District"              validate:"required"`
	Country               string `json:"Country"               validate:"required"`
	City                  string `json:"City"                  validate:"required"`
	State                 string `json:"State"                 validate:"required"`
	BuildingNumberOrFloor string `json:"BuildingNumberOrFloor" validate:"required"`
	GSTIN                 string `json:"GSTIN"                 validate:"required"`
	PrimaryBusinessType   string `json:"PrimaryBusinessType"   validate:"required"`
	CEOName               string `json:"CEOName"               validate:"required"`
	GSTRegistrationDate   string `json:"GSTRegistrationDate"   validate:"required"`
	OwnershipType         string `json:"OwnershipType"         validate:"required"`
	Password              string `json:"password"              validate:"required"`

	AreaOrStreet          string `json:"AreaOrStreet"`
	Landmark              string `json:"Landmark"`
	Locality              string `json:"Locality"`
	Designation           string `json:"Designation"`
	AlternateMobileNumber string `json:"AlternateMobileNumber"`
	AlternateEmail        string `json:"AlternateEmail"`
	WebsiteURL            string `json:"WebsiteURL"`
	GoogleBusinessURL     string `json:"GoogleBusinessURL"`
	InstagramBusinessURL  string `json:"InstagramBusinessURL"`
	FacebookBusinessURL   string `json:"FacebookBusinessURL"`
	SecondaryBusiness     string `json:"SecondaryBusiness"`
	NumberOfEmployees     string `json:"NumberOfEmployees"`
	AnnualTurnover        string `json:"AnnualTurnover"`
}

// companyProfileRequest is the same required set minus the password; profile
// updates revalidate every required field.
type companyProfileRequest struct {
	CompanyName           string `json:"CompanyName"           validate:"required"`
	ContactPersonName     string `json:"ContactPersonName"     validate:"required"`
	PrimaryMobileNumber   string `json:"PrimaryMobileNumber"   validate:"required"`
	Email                 string `json:"Email"                 validate:"required,email"`
	Pincode               string `json:"Pincode"               validate:"required"`
	District              string `json:"District"              validate:"required"`
	Country               string `json:"Country"               validate:"required"`
	City                  string `json:"City"                  validate:"required"`
	State                 string `json:"State"                 validate:"required"`
	BuildingNumberOrFloor string `json:"BuildingNumberOrFloor" validate:"required"`
	GSTIN                 string `json:"GSTIN"                 validate:"required"`
	PrimaryBusinessType   string `json:"PrimaryBusinessType"   validate:"required"`
	CEOName               string `json:"CEOName"               validate:"required"`
	GSTRegistrationDate   string `json:"GSTRegistrationDate"   validate:"required"`
	OwnershipType         string `json:"OwnershipType"         validate:"required"`

	AreaOrStreet          string `json:"AreaOrStreet"`
	Landmark              string `json:"Landmark"`
	Locality              string `json:"Locality"`
	Designation           string `json:"Designation"`
	AlternateMobileNumber string `json:"AlternateMobileNumber"`
	AlternateEmail        string `json:"AlternateEmail"`
	WebsiteURL            string `json:"WebsiteURL"`
	GoogleBusinessURL     string `json:"GoogleBusinessURL"`
	InstagramBusinessURL  string `json:"InstagramBusinessURL"`
	FacebookBusinessURL   string `json:"FacebookBusinessURL"`
	SecondaryBusiness     string `json:"SecondaryBusiness"`
	NumberOfEmployees     string `json:"NumberOfEmployees"`
	AnnualTurnover        string `json:"AnnualTurnover"`
}

type loginRequest struct {
	Email    string `json:"Email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"Email" validate:"required"`
}

type resetPasswordRequest struct {
	Password        string `json:"password"        validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type updatePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}
