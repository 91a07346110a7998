package bis

import "github.com/worksome/peppol.bis/bill"

// parseCharges splits the document-level AllowanceCharge elements back
// into discounts and charges using the charge indicator.
func (ui *Invoice) parseCharges() ([]*bill.Discount, []*bill.Charge) {
	var discounts []*bill.Discount
	var charges []*bill.Charge

	for _, ac := range ui.AllowanceCharge {
		reason, reasonCode := "", ""
		if ac.AllowanceChargeReason != nil {
			reason = cleanString(*ac.AllowanceChargeReason)
		}
		if ac.AllowanceChargeReasonCode != nil {
			reasonCode = cleanString(*ac.AllowanceChargeReasonCode)
		}
		var tax bill.Tax
		if len(ac.TaxCategory) > 0 {
			tax.Category, tax.Percent = parseTaxCategory(ac.TaxCategory[0])
		}

		if ac.ChargeIndicator {
			charges = append(charges, &bill.Charge{
				Amount:     normalizeNumericString(ac.Amount.Value),
				Reason:     reason,
				ReasonCode: reasonCode,
				Tax:        tax,
			})
		} else {
			discounts = append(discounts, &bill.Discount{
				Amount:     normalizeNumericString(ac.Amount.Value),
				Reason:     reason,
				ReasonCode: reasonCode,
				Tax:        tax,
			})
		}
	}

	return discounts, charges
}
