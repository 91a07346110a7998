package bis

import "github.com/worksome/peppol.bis/bill"

func parseParty(party *Party) bill.Party {
	if party == nil {
		return bill.Party{}
	}
	p := bill.Party{}

	if party.PartyLegalEntity != nil && party.PartyLegalEntity.RegistrationName != nil {
		p.Name = cleanString(*party.PartyLegalEntity.RegistrationName)
	}
	if p.Name == "" && party.PartyName != nil {
		p.Name = cleanString(party.PartyName.Name)
	}

	if addr := party.PostalAddress; addr != nil {
		if addr.StreetName != nil {
			p.Street = cleanString(*addr.StreetName)
		}
		if addr.AdditionalStreetName != nil {
			p.Street2 = cleanString(*addr.AdditionalStreetName)
		}
		if addr.CityName != nil {
			p.City = cleanString(*addr.CityName)
		}
		if addr.PostalZone != nil {
			p.PostalZone = cleanString(*addr.PostalZone)
		}
		if addr.Country != nil {
			p.CountryCode = cleanString(addr.Country.IdentificationCode)
		}
	}

	for _, pts := range party.PartyTaxScheme {
		if pts.CompanyID == nil || pts.CompanyID.Value == "" {
			continue
		}
		// Prefer the VAT scheme when several are present.
		if pts.TaxScheme != nil && pts.TaxScheme.ID.Value == TaxSchemeVAT {
			p.VATNumber = cleanString(pts.CompanyID.Value)
			break
		}
		if p.VATNumber == "" {
			p.VATNumber = cleanString(pts.CompanyID.Value)
		}
	}

	if party.PartyLegalEntity != nil && party.PartyLegalEntity.CompanyID != nil {
		p.EnterpriseNumber = cleanString(party.PartyLegalEntity.CompanyID.Value)
	}

	return p
}

func (ui *Invoice) parseDelivery() *bill.Delivery {
	if len(ui.Delivery) == 0 {
		return nil
	}
	d := ui.Delivery[0]
	out := &bill.Delivery{}
	if d.ActualDeliveryDate != nil {
		out.Date = cleanString(*d.ActualDeliveryDate)
	}
	if d.DeliveryLocation != nil && d.DeliveryLocation.Address != nil {
		addr := d.DeliveryLocation.Address
		if addr.StreetName != nil {
			out.Street = cleanString(*addr.StreetName)
		}
		if addr.AdditionalStreetName != nil {
			out.Street2 = cleanString(*addr.AdditionalStreetName)
		}
		if addr.CityName != nil {
			out.City = cleanString(*addr.CityName)
		}
		if addr.PostalZone != nil {
			out.PostalZone = cleanString(*addr.PostalZone)
		}
		if addr.Country != nil {
			out.CountryCode = cleanString(addr.Country.IdentificationCode)
		}
	}
	return out
}
