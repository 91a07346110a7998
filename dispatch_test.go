package bis_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bis "github.com/worksome/peppol.bis"
	"github.com/worksome/peppol.bis/bill"
)

const (
	customizationBilling     = "urn:cen.eu:en16931:2017#compliant#urn:fdc:peppol.eu:2017:poacc:billing:3.0"
	customizationSelfBilling = "urn:cen.eu:en16931:2017#compliant#urn:fdc:peppol.eu:2017:poacc:selfbilling:3.0"
	profileBilling           = "urn:fdc:peppol.eu:2017:poacc:billing:01:1.0"
	profileSelfBilling       = "urn:fdc:peppol.eu:2017:poacc:selfbilling:01:1.0"
)

func dispatchXML(rootTag, namespace, customizationID, profileID string) []byte {
	body := ""
	if customizationID != "" {
		body += fmt.Sprintf("<cbc:CustomizationID>%s</cbc:CustomizationID>", customizationID)
	}
	if profileID != "" {
		body += fmt.Sprintf("<cbc:ProfileID>%s</cbc:ProfileID>", profileID)
	}
	return []byte(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<%s xmlns="%s"
	xmlns:cbc="urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2">%s</%s>`,
		rootTag, namespace, body, rootTag))
}

func TestIdentify(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bill.DocumentType
	}{
		{
			name: "invoice",
			data: dispatchXML("Invoice", bis.NamespaceUBLInvoice, customizationBilling, profileBilling),
			want: bill.DocumentTypeInvoice,
		},
		{
			name: "credit note",
			data: dispatchXML("CreditNote", bis.NamespaceUBLCreditNote, customizationBilling, profileBilling),
			want: bill.DocumentTypeCreditNote,
		},
		{
			name: "self-billing invoice",
			data: dispatchXML("Invoice", bis.NamespaceUBLInvoice, customizationSelfBilling, profileSelfBilling),
			want: bill.DocumentTypeSelfBillingInvoice,
		},
		{
			name: "self-billing credit note",
			data: dispatchXML("CreditNote", bis.NamespaceUBLCreditNote, customizationSelfBilling, profileSelfBilling),
			want: bill.DocumentTypeSelfBillingCreditNote,
		},
		{
			name: "foreign root element",
			data: dispatchXML("Order", "urn:oasis:names:specification:ubl:schema:xsd:Order-2", customizationBilling, profileBilling),
			want: bill.DocumentTypeUnknown,
		},
		{
			name: "invoice root with credit note namespace",
			data: dispatchXML("Invoice", bis.NamespaceUBLCreditNote, customizationBilling, profileBilling),
			want: bill.DocumentTypeUnknown,
		},
		{
			name: "unknown customization falls back to regular",
			data: dispatchXML("Invoice", bis.NamespaceUBLInvoice, "urn:example:custom", profileBilling),
			want: bill.DocumentTypeInvoice,
		},
		{
			name: "not XML",
			data: []byte(`{"number": "INV-1"}`),
			want: bill.DocumentTypeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bis.Identify(tt.data))
		})
	}
}

func TestDocumentTypeID(t *testing.T) {
	id, err := bis.DocumentTypeID(dispatchXML("Invoice", bis.NamespaceUBLInvoice, customizationBilling, profileBilling))
	require.NoError(t, err)
	assert.Equal(t, "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2::Invoice##"+customizationBilling+"::2.1", id)

	id, err = bis.DocumentTypeID(dispatchXML("CreditNote", bis.NamespaceUBLCreditNote, customizationSelfBilling, profileSelfBilling))
	require.NoError(t, err)
	assert.Equal(t, "urn:oasis:names:specification:ubl:schema:xsd:CreditNote-2::CreditNote##"+customizationSelfBilling+"::2.1", id)
}

func TestDocumentTypeIDMissingCustomization(t *testing.T) {
	_, err := bis.DocumentTypeID(dispatchXML("Invoice", bis.NamespaceUBLInvoice, "", profileBilling))
	require.Error(t, err)

	var missing *bis.MissingElementError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "cbc:CustomizationID", missing.Element)
}

func TestDocumentTypeIDInvalidXML(t *testing.T) {
	_, err := bis.DocumentTypeID([]byte("not xml at all"))
	require.Error(t, err)
}
