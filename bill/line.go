package bill

import "github.com/invopop/validation"

// Line is a single invoiced item. Quantity and Price are
// unlimited-precision decimal strings; NetAmount may be supplied
// explicitly to override calculation, which preserves round-trip
// fidelity for decoded documents.
type Line struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	BuyerItemID    string `json:"buyerItemId,omitempty"`
	SellerItemID   string `json:"sellerItemId,omitempty"`
	StandardItemID string `json:"standardItemId,omitempty"`
	OriginCountry  string `json:"originCountry,omitempty"`

	Quantity string `json:"quantity"`
	// UnitCode is the UN/ECE Recommendation 20 unit of measure, e.g.
	// "C62" for piece or "HUR" for hour.
	UnitCode string `json:"unitCode"`
	// Price is the net price of a single unit.
	Price string `json:"price"`
	// NetAmount, when set, is used verbatim instead of computing
	// quantity x price with discounts and charges applied.
	NetAmount string `json:"netAmount,omitempty"`

	Tax Tax `json:"tax"`

	// Discounts and Charges apply to this line only and inherit the
	// line's VAT assignment.
	Discounts []*LineDiscount `json:"discounts,omitempty"`
	Charges   []*LineCharge   `json:"charges,omitempty"`
}

// Validate checks the line's field shapes.
func (l Line) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Name, validation.Required),
		validation.Field(&l.OriginCountry, isCountryCode),
		validation.Field(&l.Quantity, validation.Required, isDecimal),
		validation.Field(&l.UnitCode, validation.Required),
		validation.Field(&l.Price, validation.Required, isDecimal),
		validation.Field(&l.NetAmount, isDecimal),
		validation.Field(&l.Tax),
		validation.Field(&l.Discounts),
		validation.Field(&l.Charges),
	)
}

// LineDiscount reduces a line's net amount. It has no VAT assignment of
// its own; the line's assignment applies.
type LineDiscount struct {
	Amount     string `json:"amount"`
	Reason     string `json:"reason,omitempty"`
	ReasonCode string `json:"reasonCode,omitempty"`
}

// Validate checks the discount's field shapes.
func (d LineDiscount) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Amount, validation.Required, isDecimal),
	)
}

// LineCharge increases a line's net amount. Like LineDiscount it
// inherits the line's VAT assignment.
type LineCharge struct {
	Amount     string `json:"amount"`
	Reason     string `json:"reason,omitempty"`
	ReasonCode string `json:"reasonCode,omitempty"`
}

// Validate checks the charge's field shapes.
func (c LineCharge) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Amount, validation.Required, isDecimal),
	)
}

// Discount is a document-level allowance with its own VAT assignment,
// shifting taxable base out of the matching VAT group.
type Discount struct {
	Amount     string `json:"amount"`
	Reason     string `json:"reason,omitempty"`
	ReasonCode string `json:"reasonCode,omitempty"`
	Tax        Tax    `json:"tax"`
}

// Validate checks the discount's field shapes.
func (d Discount) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Amount, validation.Required, isDecimal),
		validation.Field(&d.Tax),
	)
}

// Charge is a document-level surcharge with its own VAT assignment,
// adding taxable base to the matching VAT group.
type Charge struct {
	Amount     string `json:"amount"`
	Reason     string `json:"reason,omitempty"`
	ReasonCode string `json:"reasonCode,omitempty"`
	Tax        Tax    `json:"tax"`
}

// Validate checks the charge's field shapes.
func (c Charge) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Amount, validation.Required, isDecimal),
		validation.Field(&c.Tax),
	)
}
