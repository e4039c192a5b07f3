package models

import "strings"

// Upstream response envelope. The nested pointers matter: a body like
// {"data":{}} decodes with Data set but Leads nil, which lets the client
// tell a missing lead list apart from an empty one.
type LeadsEnvelope struct {
	Data *LeadsData `json:"data"`
}

type LeadsData struct {
	Leads *[]Lead `json:"leads"`
}

// Lead is one customer-interaction record from the affiliate API. The
// nested objects are optional in upstream responses, hence pointers.
type Lead struct {
	CreatedAt           string               `json:"created_at"`
	ProcessedAt         string               `json:"processed_at"`
	ClickedAt           string               `json:"clicked_at"`
	Status              string               `json:"status"`
	AddedLater          bool                 `json:"added_later"`
	Customer            *Customer            `json:"customer"`
	Order               *Order               `json:"order"`
	Affiliate           *Affiliate           `json:"affiliate"`
	Adspace             *Adspace             `json:"adspace"`
	AdvertisingMaterial *AdvertisingMaterial `json:"advertising_material"`
	Commission          *Commission          `json:"commission"`
}

type Customer struct {
	PhoneNumber  string `json:"phone_number"`
	EmailAddress string `json:"email_address"`
	Browser      string `json:"browser"`
}

type Order struct {
	ID    string  `json:"id"`
	Value float64 `json:"value"`
}

type Affiliate struct {
	ID          int64  `json:"id"`
	CompanyName string `json:"company_name"`
	SubID       string `json:"sub_id"`
}

type Adspace struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type AdvertisingMaterial struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

type Commission struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
	Type     string  `json:"type"`
}

// CustomerPhone returns the customer phone number, empty when the customer
// object is absent.
func (l Lead) CustomerPhone() string {
	if l.Customer == nil {
		return ""
	}
	return l.Customer.PhoneNumber
}

// CustomerEmail returns the trimmed customer email address, empty when the
// customer object is absent.
func (l Lead) CustomerEmail() string {
	if l.Customer == nil {
		return ""
	}
	return strings.TrimSpace(l.Customer.EmailAddress)
}

// Contact is one row of the uploaded spreadsheet. It lives only for the
// duration of a single match request.
type Contact struct {
	PhoneRaw string
	Phone    string // E.164, empty when absent or invalid
	Email    string // trimmed, empty when absent
}

// QueryFilter carries the validated request parameters for one match run.
type QueryFilter struct {
	DateFrom              string
	DateTo                string
	DateType              string // created_at | processed_at
	Status                string // open | confirmed | cancelled | all
	AdvertisingMaterialID string
	UsePhone              bool
	UseEmail              bool
}

// MatchedLeadRecord is the flat projection of a matched lead into the
// report schema, one per unique match key.
type MatchedLeadRecord struct {
	CustomerPhoneNumber     string
	CustomerEmailAddress    string
	CreatedAt               string
	ProcessedAt             string
	ClickedAt               string
	CustomerBrowser         string
	OrderID                 string
	OrderValue              float64
	AffiliateID             int64
	AffiliateCompany        string
	SubID                   string
	AdspaceID               int64
	AdspaceName             string
	AdvertisingMaterialID   int64
	AdvertisingMaterialType string
	AddedLater              bool
	CommissionValue         float64
	CommissionCurrency      string
	CommissionType          string
	Status                  string
}

// API response structures
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
