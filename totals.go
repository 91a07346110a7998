package bis

import "github.com/worksome/peppol.bis/bill"

// TaxTotal represents a tax total
type TaxTotal struct {
	TaxAmount   Amount        `xml:"cbc:TaxAmount"`
	TaxSubtotal []TaxSubtotal `xml:"cac:TaxSubtotal"`
}

// TaxSubtotal represents a tax subtotal
type TaxSubtotal struct {
	TaxableAmount Amount      `xml:"cbc:TaxableAmount"`
	TaxAmount     Amount      `xml:"cbc:TaxAmount"`
	TaxCategory   TaxCategory `xml:"cac:TaxCategory"`
}

// TaxCategory represents a tax category
type TaxCategory struct {
	ID                     *IDType    `xml:"cbc:ID,omitempty"`
	Percent                *string    `xml:"cbc:Percent,omitempty"`
	TaxExemptionReasonCode *string    `xml:"cbc:TaxExemptionReasonCode,omitempty"`
	TaxExemptionReason     *string    `xml:"cbc:TaxExemptionReason,omitempty"`
	TaxScheme              *TaxScheme `xml:"cac:TaxScheme,omitempty"`
}

// MonetaryTotal represents the monetary totals of the invoice
type MonetaryTotal struct {
	LineExtensionAmount   Amount  `xml:"cbc:LineExtensionAmount"`
	TaxExclusiveAmount    Amount  `xml:"cbc:TaxExclusiveAmount"`
	TaxInclusiveAmount    Amount  `xml:"cbc:TaxInclusiveAmount"`
	AllowanceTotalAmount  *Amount `xml:"cbc:AllowanceTotalAmount,omitempty"`
	ChargeTotalAmount     *Amount `xml:"cbc:ChargeTotalAmount,omitempty"`
	PrepaidAmount         *Amount `xml:"cbc:PrepaidAmount,omitempty"`
	PayableRoundingAmount *Amount `xml:"cbc:PayableRoundingAmount,omitempty"`
	PayableAmount         Amount  `xml:"cbc:PayableAmount"`
}

func (ui *Invoice) addTotals(t *bill.Totals, tax *bill.TaxTotal) {
	if t != nil {
		ui.LegalMonetaryTotal = &MonetaryTotal{
			LineExtensionAmount: amount(t.LinesAmount),
			TaxExclusiveAmount:  amount(t.TaxExclusiveAmount),
			TaxInclusiveAmount:  amount(t.TaxInclusiveAmount),
			PayableAmount:       amount(t.PayableAmount),
		}
		if t.DiscountAmount != "" {
			ui.LegalMonetaryTotal.AllowanceTotalAmount = amountPtr(t.DiscountAmount)
		}
		if t.ChargeAmount != "" {
			ui.LegalMonetaryTotal.ChargeTotalAmount = amountPtr(t.ChargeAmount)
		}
		if t.PaidAmount != "" && t.PaidAmount != "0.00" {
			ui.LegalMonetaryTotal.PrepaidAmount = amountPtr(t.PaidAmount)
		}
		if t.RoundingAmount != "" {
			ui.LegalMonetaryTotal.PayableRoundingAmount = amountPtr(t.RoundingAmount)
		}
	}

	if tax == nil {
		return
	}
	out := TaxTotal{
		TaxAmount: amount(tax.Amount),
	}
	for _, st := range tax.Subtotals {
		out.TaxSubtotal = append(out.TaxSubtotal, TaxSubtotal{
			TaxableAmount: amount(st.TaxableAmount),
			TaxAmount:     amount(st.TaxAmount),
			TaxCategory:   newTaxCategory(st.Category, st.Percent, st.ExemptionReason, st.ExemptionReasonCode),
		})
	}
	ui.TaxTotal = []TaxTotal{out}
}

func newTaxCategory(category bill.TaxCategory, percent, reason, reasonCode string) TaxCategory {
	out := TaxCategory{
		ID:        &IDType{Value: string(category)},
		TaxScheme: &TaxScheme{ID: IDType{Value: TaxSchemeVAT}},
	}
	// Percent is required unless the category is outside the scope of
	// tax.
	if percent != "" {
		p := percent
		out.Percent = &p
	} else if category != bill.TaxCategoryOutsideScope {
		zero := "0"
		out.Percent = &zero
	}
	if reason != "" {
		r := reason
		out.TaxExemptionReason = &r
	}
	if reasonCode != "" {
		rc := reasonCode
		out.TaxExemptionReasonCode = &rc
	}
	return out
}
