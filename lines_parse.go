package bis

import "github.com/worksome/peppol.bis/bill"

func parseLines(lines []InvoiceLine) []*bill.Line {
	if len(lines) == 0 {
		return nil
	}
	out := make([]*bill.Line, 0, len(lines))
	for _, l := range lines {
		line := &bill.Line{
			NetAmount: normalizeNumericString(l.LineExtensionAmount.Value),
		}

		q := l.InvoicedQuantity
		if q == nil {
			q = l.CreditedQuantity
		}
		if q != nil {
			line.Quantity = normalizeNumericString(q.Value)
			line.UnitCode = q.UnitCode
		}

		if l.Price != nil {
			line.Price = normalizeNumericString(l.Price.PriceAmount.Value)
		}

		if it := l.Item; it != nil {
			line.Name = cleanString(it.Name)
			if it.Description != nil {
				line.Description = cleanString(*it.Description)
			}
			if it.OriginCountry != nil {
				line.OriginCountry = cleanString(it.OriginCountry.IdentificationCode)
			}
			if it.BuyersItemIdentification != nil && it.BuyersItemIdentification.ID != nil {
				line.BuyerItemID = cleanString(it.BuyersItemIdentification.ID.Value)
			}
			if it.SellersItemIdentification != nil && it.SellersItemIdentification.ID != nil {
				line.SellerItemID = cleanString(it.SellersItemIdentification.ID.Value)
			}
			if it.StandardItemIdentification != nil && it.StandardItemIdentification.ID != nil {
				line.StandardItemID = cleanString(it.StandardItemIdentification.ID.Value)
			}
			if ct := it.ClassifiedTaxCategory; ct != nil {
				if ct.ID != nil {
					line.Tax.Category = bill.TaxCategory(cleanString(ct.ID.Value))
				}
				if ct.Percent != nil {
					line.Tax.Percent = normalizeNumericString(*ct.Percent)
				}
			}
		}

		for _, ac := range l.AllowanceCharge {
			reason, reasonCode := "", ""
			if ac.AllowanceChargeReason != nil {
				reason = cleanString(*ac.AllowanceChargeReason)
			}
			if ac.AllowanceChargeReasonCode != nil {
				reasonCode = cleanString(*ac.AllowanceChargeReasonCode)
			}
			if ac.ChargeIndicator {
				line.Charges = append(line.Charges, &bill.LineCharge{
					Amount:     normalizeNumericString(ac.Amount.Value),
					Reason:     reason,
					ReasonCode: reasonCode,
				})
			} else {
				line.Discounts = append(line.Discounts, &bill.LineDiscount{
					Amount:     normalizeNumericString(ac.Amount.Value),
					Reason:     reason,
					ReasonCode: reasonCode,
				})
			}
		}

		out = append(out, line)
	}
	return out
}
