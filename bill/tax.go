package bill

import "github.com/invopop/validation"

// TaxCategory is the UNCL5305 VAT category code assigned to a line or
// document-level discount or charge.
type TaxCategory string

// VAT categories accepted by the EN16931 model.
const (
	TaxCategoryStandard       TaxCategory = "S"  // standard rate
	TaxCategoryZeroRated      TaxCategory = "Z"  // zero-rated goods
	TaxCategoryReverseCharge  TaxCategory = "AE" // VAT reverse charge
	TaxCategoryExempt         TaxCategory = "E"  // exempt from tax
	TaxCategoryExport         TaxCategory = "G"  // free export, tax not charged
	TaxCategoryOutsideScope   TaxCategory = "O"  // services outside scope of tax
	TaxCategoryIntraCommunity TaxCategory = "K"  // intra-community exempt supply
	TaxCategoryCanaryIslands  TaxCategory = "L"  // Canary Islands indirect tax
	TaxCategoryCeutaMelilla   TaxCategory = "M"  // Ceuta and Melilla tax
	TaxCategoryItalySplit     TaxCategory = "B"  // transferred VAT, Italy
)

var taxCategories = []any{
	TaxCategoryStandard,
	TaxCategoryZeroRated,
	TaxCategoryReverseCharge,
	TaxCategoryExempt,
	TaxCategoryExport,
	TaxCategoryOutsideScope,
	TaxCategoryIntraCommunity,
	TaxCategoryCanaryIslands,
	TaxCategoryCeutaMelilla,
	TaxCategoryItalySplit,
}

// ExemptionReasonRequired reports whether subtotals of this category must
// carry a tax exemption reason or reason code. Per the VATEX codelist,
// every category except standard-rate and zero-rated demands one.
func (c TaxCategory) ExemptionReasonRequired() bool {
	switch c {
	case TaxCategoryStandard, TaxCategoryZeroRated:
		return false
	}
	return true
}

// Tax assigns a VAT category and percentage to a line or to a
// document-level discount or charge.
type Tax struct {
	Category TaxCategory `json:"category"`
	// Percent is the VAT rate as a decimal string, e.g. "21.00".
	Percent string `json:"percent"`
}

// Validate checks the category code and percentage format.
func (t Tax) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Category, validation.Required, validation.In(taxCategories...)),
		validation.Field(&t.Percent,
			validation.Required.When(t.Category != TaxCategoryOutsideScope),
			isPositiveDecimal,
		),
	)
}

// TaxSubtotal accumulates the taxable base and VAT amount of one
// (category, percentage) pair present in the document.
type TaxSubtotal struct {
	TaxableAmount string      `json:"taxableAmount"`
	TaxAmount     string      `json:"taxAmount"`
	Category      TaxCategory `json:"category"`
	Percent       string      `json:"percent"`
	// ExemptionReason explains why no (or reduced) VAT applies; required
	// for most non-standard categories.
	ExemptionReason     string `json:"exemptionReason,omitempty"`
	ExemptionReasonCode string `json:"exemptionReasonCode,omitempty"`
}

// Validate checks the subtotal's field shapes.
func (ts TaxSubtotal) Validate() error {
	return validation.ValidateStruct(&ts,
		validation.Field(&ts.TaxableAmount, validation.Required, isDecimal),
		validation.Field(&ts.TaxAmount, validation.Required, isDecimal),
		validation.Field(&ts.Category, validation.Required, validation.In(taxCategories...)),
		validation.Field(&ts.Percent,
			validation.Required.When(ts.Category != TaxCategoryOutsideScope),
			isPositiveDecimal,
		),
	)
}

// TaxTotal is the document-level VAT summary. Callers may supply only an
// exemption reason (leaving Subtotals empty); Resolve then computes the
// subtotals and attaches the reason to every category that requires one.
type TaxTotal struct {
	// Amount is the total VAT amount, the sum of all subtotal amounts.
	Amount              string         `json:"amount,omitempty"`
	Subtotals           []*TaxSubtotal `json:"subtotals,omitempty"`
	ExemptionReason     string         `json:"exemptionReason,omitempty"`
	ExemptionReasonCode string         `json:"exemptionReasonCode,omitempty"`
}

// Validate checks the tax total's field shapes.
func (tt TaxTotal) Validate() error {
	return validation.ValidateStruct(&tt,
		validation.Field(&tt.Amount, isDecimal),
		validation.Field(&tt.Subtotals),
	)
}
