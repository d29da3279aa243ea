package domain

import "time"

// Inquiry is a buyer-to-seller message referencing both principals. Deleting
// either principal leaves the inquiry in place (accepted orphan policy).
type Inquiry struct {
	ID         string    `json:"id"`
	CompanyID  string    `json:"companyId"`
	CustomerID string    `json:"customerId"`
	Name       string    `json:"name"`
	Email      string    `json:"Email"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}
