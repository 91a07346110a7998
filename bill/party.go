package bill

import "github.com/invopop/validation"

// Party identifies a seller or buyer. It is an immutable value type
// embedded by value in documents.
type Party struct {
	Name       string `json:"name"`
	Street     string `json:"street"`
	Street2    string `json:"street2,omitempty"`
	City       string `json:"city"`
	PostalZone string `json:"postalZone"`
	// CountryCode is the ISO 3166-1 alpha-2 country code.
	CountryCode string `json:"countryCode"`
	// VATNumber is the party's VAT identifier, including country prefix.
	VATNumber string `json:"vatNumber,omitempty"`
	// EnterpriseNumber is the company registration number, mapped to
	// PartyLegalEntity/CompanyID on the wire.
	EnterpriseNumber string `json:"enterpriseNumber,omitempty"`
}

// Validate checks the party's field shapes.
func (p Party) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Street, validation.Required),
		validation.Field(&p.City, validation.Required),
		validation.Field(&p.PostalZone, validation.Required),
		validation.Field(&p.CountryCode, validation.Required, isCountryCode),
	)
}

// Delivery describes where and when the goods or services were delivered.
type Delivery struct {
	Date        string `json:"date,omitempty"`
	Street      string `json:"street,omitempty"`
	Street2     string `json:"street2,omitempty"`
	City        string `json:"city,omitempty"`
	PostalZone  string `json:"postalZone,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
}

// Validate checks the delivery block's field shapes.
func (d Delivery) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Date, validation.Date(DateLayout)),
		validation.Field(&d.CountryCode, isCountryCode),
	)
}

// PaymentMeans describes one way the document can be settled.
type PaymentMeans struct {
	// Code is the UNCL4461 payment means code, e.g. "30" for credit
	// transfer or "58" for SEPA credit transfer.
	Code string `json:"code"`
	// PaymentID is the remittance reference the payer should quote.
	PaymentID   string `json:"paymentId,omitempty"`
	IBAN        string `json:"iban,omitempty"`
	BIC         string `json:"bic,omitempty"`
	AccountName string `json:"accountName,omitempty"`
}

// Validate checks the payment means' field shapes.
func (pm PaymentMeans) Validate() error {
	return validation.ValidateStruct(&pm,
		validation.Field(&pm.Code, validation.Required),
	)
}

// Attachment is a supporting document, either embedded as base64 data
// with a mime type and filename, or referenced by URI.
type Attachment struct {
	ID          string `json:"id,omitempty"`
	Description string `json:"description,omitempty"`
	// Data is the base64-encoded content of an embedded attachment.
	Data     string `json:"data,omitempty"`
	MimeCode string `json:"mimeCode,omitempty"`
	Filename string `json:"filename,omitempty"`
	// URI references an external document instead of embedding it.
	URI string `json:"uri,omitempty"`
}

// Validate requires either embedded content or an external URI.
func (a Attachment) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Data,
			validation.Required.When(a.URI == "").Error("either data or uri is required"),
		),
		validation.Field(&a.MimeCode,
			validation.Required.When(a.Data != "").Error("required for embedded attachments"),
		),
		validation.Field(&a.Filename,
			validation.Required.When(a.Data != "").Error("required for embedded attachments"),
		),
	)
}
