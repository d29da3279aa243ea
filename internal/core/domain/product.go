package domain

// Product is a catalog entry owned by a single company. The pair
// (ProductName, CompanyID) is unique; re-creating an existing product merges
// quantities instead of inserting a duplicate.
type Product struct {
	ID          string   `json:"id"`
	ProductName string   `json:"productName"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Features    []string `json:"features,omitempty"`
	Quantity    int64    `json:"quantity"`
	CompanyID   string   `json:"companyId"`
}
