package bill

import "github.com/invopop/validation"

// Totals holds the document's monetary summary. All fields are decimal
// strings with exactly two fraction digits once resolved. On input any
// non-empty field overrides the value that would otherwise be
// calculated, which lets decoded documents round-trip without loss.
type Totals struct {
	// LinesAmount is the sum of all rounded line net amounts.
	LinesAmount string `json:"linesAmount,omitempty"`
	// DiscountAmount is the sum of document-level discounts.
	DiscountAmount string `json:"discountAmount,omitempty"`
	// ChargeAmount is the sum of document-level charges.
	ChargeAmount string `json:"chargeAmount,omitempty"`
	// TaxExclusiveAmount is lines minus discounts plus charges.
	TaxExclusiveAmount string `json:"taxExclusiveAmount,omitempty"`
	// TaxInclusiveAmount adds the total VAT.
	TaxInclusiveAmount string `json:"taxInclusiveAmount,omitempty"`
	// PayableAmount is what remains to be paid.
	PayableAmount string `json:"payableAmount,omitempty"`
	// PaidAmount is any prepaid portion.
	PaidAmount string `json:"paidAmount,omitempty"`
	// RoundingAmount reconciles payable plus paid against the tax
	// inclusive amount. It may be negative.
	RoundingAmount string `json:"roundingAmount,omitempty"`
}

// Validate checks the totals' field shapes.
func (t Totals) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.LinesAmount, isDecimal),
		validation.Field(&t.DiscountAmount, isDecimal),
		validation.Field(&t.ChargeAmount, isDecimal),
		validation.Field(&t.TaxExclusiveAmount, isDecimal),
		validation.Field(&t.TaxInclusiveAmount, isDecimal),
		validation.Field(&t.PayableAmount, isDecimal),
		validation.Field(&t.PaidAmount, isDecimal),
		validation.Field(&t.RoundingAmount, isDecimal),
	)
}
