package bis

import "github.com/worksome/peppol.bis/bill"

// AllowanceCharge represents an allowance or charge
type AllowanceCharge struct {
	ChargeIndicator           bool           `xml:"cbc:ChargeIndicator"`
	AllowanceChargeReasonCode *string        `xml:"cbc:AllowanceChargeReasonCode"`
	AllowanceChargeReason     *string        `xml:"cbc:AllowanceChargeReason"`
	Amount                    Amount         `xml:"cbc:Amount"`
	TaxCategory               []*TaxCategory `xml:"cac:TaxCategory"`
}

func (ui *Invoice) addCharges(discounts []*bill.Discount, charges []*bill.Charge) {
	if len(discounts) == 0 && len(charges) == 0 {
		return
	}
	ui.AllowanceCharge = make([]AllowanceCharge, 0, len(discounts)+len(charges))
	for _, ch := range charges {
		ui.AllowanceCharge = append(ui.AllowanceCharge, makeCharge(ch))
	}
	for _, d := range discounts {
		ui.AllowanceCharge = append(ui.AllowanceCharge, makeDiscount(d))
	}
}

func makeCharge(ch *bill.Charge) AllowanceCharge {
	c := AllowanceCharge{
		ChargeIndicator: true,
		Amount:          amount(ch.Amount),
	}
	if ch.Reason != "" {
		c.AllowanceChargeReason = &ch.Reason
	}
	if ch.ReasonCode != "" {
		c.AllowanceChargeReasonCode = &ch.ReasonCode
	}
	cat := newTaxCategory(ch.Tax.Category, ch.Tax.Percent, "", "")
	c.TaxCategory = []*TaxCategory{&cat}
	return c
}

func makeDiscount(d *bill.Discount) AllowanceCharge {
	c := AllowanceCharge{
		ChargeIndicator: false,
		Amount:          amount(d.Amount),
	}
	if d.Reason != "" {
		c.AllowanceChargeReason = &d.Reason
	}
	if d.ReasonCode != "" {
		c.AllowanceChargeReasonCode = &d.ReasonCode
	}
	cat := newTaxCategory(d.Tax.Category, d.Tax.Percent, "", "")
	c.TaxCategory = []*TaxCategory{&cat}
	return c
}
