package bis_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bis "github.com/worksome/peppol.bis"
	"github.com/worksome/peppol.bis/bill"
)

func minimalInvoiceXML(omit string) []byte {
	elements := []struct {
		name string
		xml  string
	}{
		{"cbc:ID", "<cbc:ID>INV-1</cbc:ID>"},
		{"cbc:IssueDate", "<cbc:IssueDate>2024-03-01</cbc:IssueDate>"},
		{"cbc:DocumentCurrencyCode", "<cbc:DocumentCurrencyCode>EUR</cbc:DocumentCurrencyCode>"},
		{"cac:AccountingSupplierParty", `<cac:AccountingSupplierParty><cac:Party>
			<cac:PartyName><cbc:Name>Ploughman Produce</cbc:Name></cac:PartyName>
			<cac:PostalAddress><cbc:StreetName>Rue du Commerce 1</cbc:StreetName><cbc:CityName>Brussels</cbc:CityName><cbc:PostalZone>1000</cbc:PostalZone><cac:Country><cbc:IdentificationCode>BE</cbc:IdentificationCode></cac:Country></cac:PostalAddress>
			<cac:PartyLegalEntity><cbc:RegistrationName>Ploughman Produce</cbc:RegistrationName></cac:PartyLegalEntity>
		</cac:Party></cac:AccountingSupplierParty>`},
		{"cac:AccountingCustomerParty", `<cac:AccountingCustomerParty><cac:Party>
			<cac:PartyName><cbc:Name>Provide One</cbc:Name></cac:PartyName>
			<cac:PostalAddress><cbc:StreetName>Kerkstraat 10</cbc:StreetName><cbc:CityName>Antwerp</cbc:CityName><cbc:PostalZone>2000</cbc:PostalZone><cac:Country><cbc:IdentificationCode>BE</cbc:IdentificationCode></cac:Country></cac:PostalAddress>
			<cac:PartyLegalEntity><cbc:RegistrationName>Provide One</cbc:RegistrationName></cac:PartyLegalEntity>
		</cac:Party></cac:AccountingCustomerParty>`},
		{"cac:TaxTotal", `<cac:TaxTotal><cbc:TaxAmount currencyID="EUR">21.00</cbc:TaxAmount>
			<cac:TaxSubtotal>
				<cbc:TaxableAmount currencyID="EUR">100.00</cbc:TaxableAmount>
				<cbc:TaxAmount currencyID="EUR">21.00</cbc:TaxAmount>
				<cac:TaxCategory><cbc:ID>S</cbc:ID><cbc:Percent>21.00</cbc:Percent><cac:TaxScheme><cbc:ID>VAT</cbc:ID></cac:TaxScheme></cac:TaxCategory>
			</cac:TaxSubtotal></cac:TaxTotal>`},
		{"cac:LegalMonetaryTotal", `<cac:LegalMonetaryTotal>
			<cbc:LineExtensionAmount currencyID="EUR">100.00</cbc:LineExtensionAmount>
			<cbc:TaxExclusiveAmount currencyID="EUR">100.00</cbc:TaxExclusiveAmount>
			<cbc:TaxInclusiveAmount currencyID="EUR">121.00</cbc:TaxInclusiveAmount>
			<cbc:PayableAmount currencyID="EUR">121.00</cbc:PayableAmount>
		</cac:LegalMonetaryTotal>`},
		{"cac:InvoiceLine", `<cac:InvoiceLine><cbc:ID>1</cbc:ID>
			<cbc:InvoicedQuantity unitCode="C62">1</cbc:InvoicedQuantity>
			<cbc:LineExtensionAmount currencyID="EUR">100.00</cbc:LineExtensionAmount>
			<cac:Item><cbc:Name>Widget</cbc:Name>
				<cac:ClassifiedTaxCategory><cbc:ID>S</cbc:ID><cbc:Percent>21.00</cbc:Percent><cac:TaxScheme><cbc:ID>VAT</cbc:ID></cac:TaxScheme></cac:ClassifiedTaxCategory>
			</cac:Item>
			<cac:Price><cbc:PriceAmount currencyID="EUR">100.00</cbc:PriceAmount></cac:Price>
		</cac:InvoiceLine>`},
	}

	body := `<cbc:CustomizationID>urn:cen.eu:en16931:2017#compliant#urn:fdc:peppol.eu:2017:poacc:billing:3.0</cbc:CustomizationID>
		<cbc:ProfileID>urn:fdc:peppol.eu:2017:poacc:billing:01:1.0</cbc:ProfileID>
		<cbc:InvoiceTypeCode>380</cbc:InvoiceTypeCode>`
	for _, el := range elements {
		if el.name == omit {
			continue
		}
		body += el.xml
	}

	return []byte(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<Invoice xmlns="urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	xmlns:cac="urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	xmlns:cbc="urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2">%s</Invoice>`, body))
}

func TestParseDocumentMinimal(t *testing.T) {
	doc, err := bis.ParseDocument(minimalInvoiceXML(""))
	require.NoError(t, err)

	inv, ok := doc.(*bill.Invoice)
	require.True(t, ok)
	assert.Equal(t, "INV-1", inv.Number)
	assert.Equal(t, "2024-03-01", inv.IssueDate)
	assert.Equal(t, "EUR", inv.Currency)
	assert.Equal(t, "Ploughman Produce", inv.Seller.Name)
	assert.Equal(t, "Provide One", inv.Buyer.Name)
	require.Len(t, inv.Lines, 1)
	assert.Equal(t, "Widget", inv.Lines[0].Name)
	assert.Equal(t, "100.00", inv.Lines[0].NetAmount)
	assert.Equal(t, bill.TaxCategoryStandard, inv.Lines[0].Tax.Category)
	assert.Equal(t, "121.00", inv.Totals.TaxInclusiveAmount)
	assert.Equal(t, "21.00", inv.Tax.Amount)
}

func TestParseDocumentMissingElements(t *testing.T) {
	for _, omit := range []string{
		"cbc:ID",
		"cbc:IssueDate",
		"cac:AccountingSupplierParty",
		"cac:AccountingCustomerParty",
		"cac:TaxTotal",
		"cac:LegalMonetaryTotal",
	} {
		t.Run(omit, func(t *testing.T) {
			_, err := bis.ParseDocument(minimalInvoiceXML(omit))
			require.Error(t, err)

			var missing *bis.MissingElementError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, omit, missing.Element)
		})
	}
}
