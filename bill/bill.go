// Package bill defines the billing document model used for Peppol BIS
// Billing 3.0 exchanges, together with the calculation engine that derives
// line net amounts, VAT subtotals and document totals from caller input.
package bill

import (
	"regexp"

	"github.com/invopop/validation"
)

// DocumentType discriminates between the four billing document variants.
type DocumentType string

// Supported document types. A dispatcher may additionally report
// DocumentTypeUnknown for payloads it does not recognize.
const (
	DocumentTypeInvoice               DocumentType = "invoice"
	DocumentTypeCreditNote            DocumentType = "credit-note"
	DocumentTypeSelfBillingInvoice    DocumentType = "self-billing-invoice"
	DocumentTypeSelfBillingCreditNote DocumentType = "self-billing-credit-note"
	DocumentTypeUnknown               DocumentType = "unknown"
)

// Document is implemented by the four billing document variants: Invoice,
// CreditNote, SelfBillingInvoice and SelfBillingCreditNote.
type Document interface {
	// Type returns the variant discriminant.
	Type() DocumentType
	// Validate checks field shapes and returns a validation.Errors map
	// keyed by field name when anything is off.
	Validate() error
	// Resolved reports whether every derived field has been filled in by
	// the calculation engine, making the document ready for encoding.
	Resolved() bool
}

// DateLayout is the wire format used for all dates in the model.
const DateLayout = "2006-01-02"

var (
	isDecimal = validation.Match(regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)).
			Error("must be a decimal string")
	isPositiveDecimal = validation.Match(regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)).
				Error("must be a non-negative decimal string")
	isCountryCode = validation.Match(regexp.MustCompile(`^[A-Z]{2}$`)).
			Error("must be a 2-letter country code")
	isCurrencyCode = validation.Match(regexp.MustCompile(`^[A-Z]{3}$`)).
			Error("must be a 3-letter currency code")
)

// Invoice is a commercial invoice requesting payment from the buyer.
type Invoice struct {
	// Number is the sequential document number assigned by the issuer.
	Number    string `json:"number"`
	IssueDate string `json:"issueDate"`
	DueDate   string `json:"dueDate,omitempty"`
	Currency  string `json:"currency"`

	Note              string `json:"note,omitempty"`
	BuyerReference    string `json:"buyerReference,omitempty"`
	OrderReference    string `json:"orderReference,omitempty"`
	DespatchReference string `json:"despatchReference,omitempty"`

	Seller Party `json:"seller"`
	Buyer  Party `json:"buyer"`

	Delivery         *Delivery       `json:"delivery,omitempty"`
	PaymentMeans     []*PaymentMeans `json:"paymentMeans,omitempty"`
	PaymentTermsNote string          `json:"paymentTermsNote,omitempty"`

	Lines     []*Line     `json:"lines"`
	Discounts []*Discount `json:"discounts,omitempty"`
	Charges   []*Charge   `json:"charges,omitempty"`

	// Totals and Tax may be left nil; Resolve computes them. When set,
	// the supplied values take precedence over computed ones.
	Totals *Totals   `json:"totals,omitempty"`
	Tax    *TaxTotal `json:"tax,omitempty"`

	Attachments []*Attachment `json:"attachments,omitempty"`
}

// CreditNote is issued to correct or cancel a previously issued invoice.
// Unlike an invoice it carries references to the invoices it amends and
// has no due date.
type CreditNote struct {
	Number            string              `json:"number"`
	IssueDate         string              `json:"issueDate"`
	InvoiceReferences []*InvoiceReference `json:"invoiceReferences,omitempty"`
	Currency          string              `json:"currency"`

	Note              string `json:"note,omitempty"`
	BuyerReference    string `json:"buyerReference,omitempty"`
	OrderReference    string `json:"orderReference,omitempty"`
	DespatchReference string `json:"despatchReference,omitempty"`

	Seller Party `json:"seller"`
	Buyer  Party `json:"buyer"`

	Delivery         *Delivery       `json:"delivery,omitempty"`
	PaymentMeans     []*PaymentMeans `json:"paymentMeans,omitempty"`
	PaymentTermsNote string          `json:"paymentTermsNote,omitempty"`

	Lines     []*Line     `json:"lines"`
	Discounts []*Discount `json:"discounts,omitempty"`
	Charges   []*Charge   `json:"charges,omitempty"`

	Totals *Totals   `json:"totals,omitempty"`
	Tax    *TaxTotal `json:"tax,omitempty"`

	Attachments []*Attachment `json:"attachments,omitempty"`
}

// SelfBillingInvoice is an invoice issued by the buyer on the seller's
// behalf. The document shape is identical to Invoice; only the wire
// profile, type code and party-to-endpoint mapping differ.
type SelfBillingInvoice struct {
	Invoice
}

// SelfBillingCreditNote is a credit note issued by the buyer on the
// seller's behalf.
type SelfBillingCreditNote struct {
	CreditNote
}

// InvoiceReference points a credit note at the invoice it amends.
type InvoiceReference struct {
	Number    string `json:"number"`
	IssueDate string `json:"issueDate,omitempty"`
}

// Validate checks the reference's field shapes.
func (r InvoiceReference) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Number, validation.Required),
		validation.Field(&r.IssueDate, validation.Date(DateLayout)),
	)
}

// Type returns DocumentTypeInvoice.
func (inv *Invoice) Type() DocumentType { return DocumentTypeInvoice }

// Type returns DocumentTypeCreditNote.
func (cn *CreditNote) Type() DocumentType { return DocumentTypeCreditNote }

// Type returns DocumentTypeSelfBillingInvoice.
func (si *SelfBillingInvoice) Type() DocumentType { return DocumentTypeSelfBillingInvoice }

// Type returns DocumentTypeSelfBillingCreditNote.
func (sc *SelfBillingCreditNote) Type() DocumentType { return DocumentTypeSelfBillingCreditNote }

// Validate checks field shapes: required strings, date formats, country
// and currency codes, decimal strings and VAT categories. Nested types
// are validated recursively; errors carry the offending field path.
func (inv *Invoice) Validate() error {
	return validation.ValidateStruct(inv,
		validation.Field(&inv.Number, validation.Required),
		validation.Field(&inv.IssueDate, validation.Required, validation.Date(DateLayout)),
		validation.Field(&inv.DueDate, validation.Date(DateLayout)),
		validation.Field(&inv.Currency, validation.Required, isCurrencyCode),
		validation.Field(&inv.Seller),
		validation.Field(&inv.Buyer),
		validation.Field(&inv.Delivery),
		validation.Field(&inv.PaymentMeans),
		validation.Field(&inv.Lines),
		validation.Field(&inv.Discounts),
		validation.Field(&inv.Charges),
		validation.Field(&inv.Totals),
		validation.Field(&inv.Tax),
		validation.Field(&inv.Attachments),
	)
}

// Validate checks field shapes, including the invoice references.
func (cn *CreditNote) Validate() error {
	return validation.ValidateStruct(cn,
		validation.Field(&cn.Number, validation.Required),
		validation.Field(&cn.IssueDate, validation.Required, validation.Date(DateLayout)),
		validation.Field(&cn.InvoiceReferences),
		validation.Field(&cn.Currency, validation.Required, isCurrencyCode),
		validation.Field(&cn.Seller),
		validation.Field(&cn.Buyer),
		validation.Field(&cn.Delivery),
		validation.Field(&cn.PaymentMeans),
		validation.Field(&cn.Lines),
		validation.Field(&cn.Discounts),
		validation.Field(&cn.Charges),
		validation.Field(&cn.Totals),
		validation.Field(&cn.Tax),
		validation.Field(&cn.Attachments),
	)
}
