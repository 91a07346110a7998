package bis

import (
	"strconv"

	"github.com/worksome/peppol.bis/bill"
)

// InvoiceLine represents a line item in an invoice and credit note
type InvoiceLine struct {
	ID                  string             `xml:"cbc:ID"`
	InvoicedQuantity    *Quantity          `xml:"cbc:InvoicedQuantity,omitempty"` // or CreditedQuantity
	CreditedQuantity    *Quantity          `xml:"cbc:CreditedQuantity,omitempty"`
	LineExtensionAmount Amount             `xml:"cbc:LineExtensionAmount"`
	AllowanceCharge     []*AllowanceCharge `xml:"cac:AllowanceCharge"`
	Item                *Item              `xml:"cac:Item"`
	Price               *Price             `xml:"cac:Price"`
}

// Item represents an item in an invoice line
type Item struct {
	Description                *string                `xml:"cbc:Description"`
	Name                       string                 `xml:"cbc:Name"`
	BuyersItemIdentification   *ItemIdentification    `xml:"cac:BuyersItemIdentification"`
	SellersItemIdentification  *ItemIdentification    `xml:"cac:SellersItemIdentification"`
	StandardItemIdentification *ItemIdentification    `xml:"cac:StandardItemIdentification"`
	OriginCountry              *Country               `xml:"cac:OriginCountry"`
	ClassifiedTaxCategory      *ClassifiedTaxCategory `xml:"cac:ClassifiedTaxCategory"`
}

// ItemIdentification represents an item identification
type ItemIdentification struct {
	ID *IDType `xml:"cbc:ID"`
}

// ClassifiedTaxCategory represents a classified tax category
type ClassifiedTaxCategory struct {
	ID        *IDType    `xml:"cbc:ID,omitempty"`
	Percent   *string    `xml:"cbc:Percent,omitempty"`
	TaxScheme *TaxScheme `xml:"cac:TaxScheme,omitempty"`
}

// Price represents the price of an item
type Price struct {
	PriceAmount Amount `xml:"cbc:PriceAmount"`
}

func (ui *Invoice) addLines(lines []*bill.Line, creditNote bool) {
	if len(lines) == 0 {
		return
	}

	out := make([]InvoiceLine, 0, len(lines))
	for i, l := range lines {
		line := InvoiceLine{
			ID:                  strconv.Itoa(i + 1),
			LineExtensionAmount: amount(l.NetAmount),
			Item:                newItem(l),
			Price: &Price{
				PriceAmount: Amount{
					CurrencyID: amountCurrency(),
					Value:      l.Price,
				},
			},
		}

		// The quantity element differs between the two root types.
		q := &Quantity{UnitCode: l.UnitCode, Value: l.Quantity}
		if creditNote {
			line.CreditedQuantity = q
		} else {
			line.InvoicedQuantity = q
		}

		line.AllowanceCharge = makeLineCharges(l.Discounts, l.Charges)

		out = append(out, line)
	}
	if creditNote {
		ui.CreditNoteLines = out
	} else {
		ui.InvoiceLines = out
	}
}

func amountCurrency() *string {
	ccy := CurrencyEUR
	return &ccy
}

func newItem(l *bill.Line) *Item {
	it := &Item{Name: l.Name}

	if l.Description != "" {
		d := l.Description
		it.Description = &d
	}
	if l.OriginCountry != "" {
		it.OriginCountry = &Country{IdentificationCode: l.OriginCountry}
	}
	if l.BuyerItemID != "" {
		it.BuyersItemIdentification = &ItemIdentification{
			ID: &IDType{Value: l.BuyerItemID},
		}
	}
	if l.SellerItemID != "" {
		it.SellersItemIdentification = &ItemIdentification{
			ID: &IDType{Value: l.SellerItemID},
		}
	}
	if l.StandardItemID != "" {
		it.StandardItemIdentification = &ItemIdentification{
			ID: &IDType{Value: l.StandardItemID},
		}
	}

	cat := newTaxCategory(l.Tax.Category, l.Tax.Percent, "", "")
	it.ClassifiedTaxCategory = &ClassifiedTaxCategory{
		ID:        cat.ID,
		Percent:   cat.Percent,
		TaxScheme: cat.TaxScheme,
	}

	return it
}

func makeLineCharges(discounts []*bill.LineDiscount, charges []*bill.LineCharge) []*AllowanceCharge {
	var out []*AllowanceCharge
	for _, ch := range charges {
		ac := &AllowanceCharge{
			ChargeIndicator: true,
			Amount:          amount(ch.Amount),
		}
		if ch.Reason != "" {
			ac.AllowanceChargeReason = &ch.Reason
		}
		if ch.ReasonCode != "" {
			ac.AllowanceChargeReasonCode = &ch.ReasonCode
		}
		out = append(out, ac)
	}
	for _, d := range discounts {
		ac := &AllowanceCharge{
			ChargeIndicator: false,
			Amount:          amount(d.Amount),
		}
		if d.Reason != "" {
			ac.AllowanceChargeReason = &d.Reason
		}
		if d.ReasonCode != "" {
			ac.AllowanceChargeReasonCode = &d.ReasonCode
		}
		out = append(out, ac)
	}
	return out
}
