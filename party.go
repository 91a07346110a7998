package bis

import "github.com/worksome/peppol.bis/bill"

// SupplierParty represents the supplier party in a transaction
type SupplierParty struct {
	Party *Party `xml:"cac:Party"`
}

// CustomerParty represents the customer party in a transaction
type CustomerParty struct {
	Party *Party `xml:"cac:Party"`
}

// Party represents a party involved in a transaction
type Party struct {
	EndpointID       *EndpointID       `xml:"cbc:EndpointID"`
	PartyName        *PartyName        `xml:"cac:PartyName"`
	PostalAddress    *PostalAddress    `xml:"cac:PostalAddress"`
	PartyTaxScheme   []PartyTaxScheme  `xml:"cac:PartyTaxScheme"`
	PartyLegalEntity *PartyLegalEntity `xml:"cac:PartyLegalEntity"`
}

// EndpointID represents an endpoint identifier
type EndpointID struct {
	SchemeID string `xml:"schemeID,attr"`
	Value    string `xml:",chardata"`
}

// PartyName represents the name of a party
type PartyName struct {
	Name string `xml:"cbc:Name"`
}

// PostalAddress represents a postal address
type PostalAddress struct {
	StreetName           *string  `xml:"cbc:StreetName"`
	AdditionalStreetName *string  `xml:"cbc:AdditionalStreetName"`
	CityName             *string  `xml:"cbc:CityName"`
	PostalZone           *string  `xml:"cbc:PostalZone"`
	Country              *Country `xml:"cac:Country"`
}

// PartyTaxScheme represents a party's tax scheme
type PartyTaxScheme struct {
	CompanyID *IDType    `xml:"cbc:CompanyID"`
	TaxScheme *TaxScheme `xml:"cac:TaxScheme"`
}

// TaxScheme represents a tax scheme
type TaxScheme struct {
	ID IDType `xml:"cbc:ID"`
}

// PartyLegalEntity represents the legal entity of a party
type PartyLegalEntity struct {
	RegistrationName *string `xml:"cbc:RegistrationName"`
	CompanyID        *IDType `xml:"cbc:CompanyID"`
}

// Delivery represents the delivery details of the document
type Delivery struct {
	ActualDeliveryDate *string           `xml:"cbc:ActualDeliveryDate,omitempty"`
	DeliveryLocation   *DeliveryLocation `xml:"cac:DeliveryLocation,omitempty"`
}

// DeliveryLocation represents the location goods were delivered to
type DeliveryLocation struct {
	Address *PostalAddress `xml:"cac:Address,omitempty"`
}

// addParties fills the supplier and customer slots. The seller always
// occupies AccountingSupplierParty; what swaps under self-billing is
// the endpoint mapping, since there the buyer transmits on the seller's
// behalf.
func (ui *Invoice) addParties(seller, buyer bill.Party, ctx Context, sender, recipient Address) {
	supplierEndpoint, customerEndpoint := sender, recipient
	if ctx.SelfBilling {
		supplierEndpoint, customerEndpoint = recipient, sender
	}
	ui.AccountingSupplierParty = SupplierParty{Party: newParty(seller, supplierEndpoint)}
	ui.AccountingCustomerParty = CustomerParty{Party: newParty(buyer, customerEndpoint)}
}

func newParty(party bill.Party, endpoint Address) *Party {
	p := &Party{
		PostalAddress: newAddress(party.Street, party.Street2, party.City, party.PostalZone, party.CountryCode),
	}

	if !endpoint.IsZero() {
		p.EndpointID = &EndpointID{
			SchemeID: endpoint.Scheme,
			Value:    endpoint.Value,
		}
	}

	if party.Name != "" {
		p.PartyName = &PartyName{
			Name: party.Name,
		}
		p.PartyLegalEntity = &PartyLegalEntity{
			RegistrationName: &party.Name,
		}
	}

	if party.VATNumber != "" {
		p.PartyTaxScheme = []PartyTaxScheme{
			{
				CompanyID: &IDType{Value: party.VATNumber},
				TaxScheme: &TaxScheme{
					ID: IDType{Value: TaxSchemeVAT},
				},
			},
		}
	}

	if party.EnterpriseNumber != "" {
		if p.PartyLegalEntity == nil {
			p.PartyLegalEntity = &PartyLegalEntity{}
		}
		p.PartyLegalEntity.CompanyID = &IDType{Value: party.EnterpriseNumber}
	}

	return p
}

func newAddress(street, street2, city, postalZone, country string) *PostalAddress {
	if street == "" && street2 == "" && city == "" && postalZone == "" && country == "" {
		return nil
	}

	addr := &PostalAddress{}

	if street != "" {
		addr.StreetName = &street
	}
	if street2 != "" {
		addr.AdditionalStreetName = &street2
	}
	if city != "" {
		addr.CityName = &city
	}
	if postalZone != "" {
		addr.PostalZone = &postalZone
	}
	if country != "" {
		addr.Country = &Country{IdentificationCode: country}
	}

	return addr
}

func (ui *Invoice) addDelivery(d *bill.Delivery) {
	if d == nil {
		return
	}
	out := &Delivery{}
	if d.Date != "" {
		date := d.Date
		out.ActualDeliveryDate = &date
	}
	if addr := newAddress(d.Street, d.Street2, d.City, d.PostalZone, d.CountryCode); addr != nil {
		out.DeliveryLocation = &DeliveryLocation{Address: addr}
	}
	ui.Delivery = []*Delivery{out}
}
