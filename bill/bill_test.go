package bill_test

import (
	"testing"

	"github.com/invopop/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worksome/peppol.bis/bill"
)

func TestInvoiceValidate(t *testing.T) {
	inv := testInvoice(standardLine("1", "10.00"))
	require.NoError(t, inv.Validate())
}

func TestInvoiceValidateMissingFields(t *testing.T) {
	inv := &bill.Invoice{}
	err := inv.Validate()
	require.Error(t, err)

	errs, ok := err.(validation.Errors)
	require.True(t, ok)
	assert.Contains(t, errs, "number")
	assert.Contains(t, errs, "issueDate")
	assert.Contains(t, errs, "currency")
	assert.Contains(t, errs, "seller")
}

func TestInvoiceValidateNestedPaths(t *testing.T) {
	inv := testInvoice(standardLine("1", "10.00"))
	inv.Buyer.CountryCode = "Belgium"
	inv.Lines[0].Quantity = "one"

	err := inv.Validate()
	require.Error(t, err)

	errs, ok := err.(validation.Errors)
	require.True(t, ok)
	assert.Contains(t, errs, "buyer")
	assert.Contains(t, errs, "lines")
}

func TestInvoiceValidateBadDates(t *testing.T) {
	inv := testInvoice(standardLine("1", "10.00"))
	inv.IssueDate = "01-03-2024"
	inv.DueDate = "2024-13-40"

	err := inv.Validate()
	require.Error(t, err)

	errs, ok := err.(validation.Errors)
	require.True(t, ok)
	assert.Contains(t, errs, "issueDate")
	assert.Contains(t, errs, "dueDate")
}

func TestCreditNoteValidate(t *testing.T) {
	cn := &bill.CreditNote{
		Number:    "CN-1",
		IssueDate: "2024-03-15",
		Currency:  "EUR",
		Seller:    testParty("Ploughman Produce"),
		Buyer:     testParty("Provide One"),
		InvoiceReferences: []*bill.InvoiceReference{
			{Number: "INV-1"},
		},
		Lines: []*bill.Line{standardLine("1", "10.00")},
	}
	require.NoError(t, cn.Validate())

	cn.InvoiceReferences[0].Number = ""
	err := cn.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invoiceReferences")
}

func TestTaxValidate(t *testing.T) {
	tax := bill.Tax{Category: "X", Percent: "21.00"}
	err := tax.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "category")

	tax = bill.Tax{Category: bill.TaxCategoryStandard}
	err = tax.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "percent")

	// Outside-scope categories carry no percentage.
	tax = bill.Tax{Category: bill.TaxCategoryOutsideScope}
	require.NoError(t, tax.Validate())
}

func TestAttachmentValidate(t *testing.T) {
	a := bill.Attachment{}
	err := a.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data")

	a = bill.Attachment{URI: "https://example.com/invoice.pdf"}
	require.NoError(t, a.Validate())

	a = bill.Attachment{Data: "UERGLTEuNA=="}
	err = a.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mimeCode")

	a = bill.Attachment{Data: "UERGLTEuNA==", MimeCode: "application/pdf", Filename: "invoice.pdf"}
	require.NoError(t, a.Validate())
}

func TestExemptionReasonRequired(t *testing.T) {
	assert.False(t, bill.TaxCategoryStandard.ExemptionReasonRequired())
	assert.False(t, bill.TaxCategoryZeroRated.ExemptionReasonRequired())
	assert.True(t, bill.TaxCategoryReverseCharge.ExemptionReasonRequired())
	assert.True(t, bill.TaxCategoryExempt.ExemptionReasonRequired())
	assert.True(t, bill.TaxCategoryOutsideScope.ExemptionReasonRequired())
}

func TestDocumentTypes(t *testing.T) {
	inv := &bill.Invoice{}
	cn := &bill.CreditNote{}
	assert.Equal(t, bill.DocumentTypeInvoice, inv.Type())
	assert.Equal(t, bill.DocumentTypeCreditNote, cn.Type())
	assert.Equal(t, bill.DocumentTypeSelfBillingInvoice, (&bill.SelfBillingInvoice{}).Type())
	assert.Equal(t, bill.DocumentTypeSelfBillingCreditNote, (&bill.SelfBillingCreditNote{}).Type())
}
