package bis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bis "github.com/worksome/peppol.bis"
	"github.com/worksome/peppol.bis/bill"
)

func TestFindContext(t *testing.T) {
	ctx := bis.FindContext(customizationBilling, profileBilling)
	require.NotNil(t, ctx)
	assert.True(t, ctx.Is(bis.ContextPeppolBilling))
	assert.False(t, ctx.SelfBilling)

	ctx = bis.FindContext(customizationSelfBilling, profileSelfBilling)
	require.NotNil(t, ctx)
	assert.True(t, ctx.Is(bis.ContextPeppolSelfBilling))
	assert.True(t, ctx.SelfBilling)

	// ProfileID may be absent from the payload.
	ctx = bis.FindContext(customizationBilling, "")
	require.NotNil(t, ctx)
	assert.True(t, ctx.Is(bis.ContextPeppolBilling))

	assert.Nil(t, bis.FindContext("urn:example:custom", profileBilling))
	assert.Nil(t, bis.FindContext(customizationBilling, profileSelfBilling))
}

func TestContextFor(t *testing.T) {
	assert.True(t, bis.ContextPeppolBilling.Is(bis.ContextFor(bill.DocumentTypeInvoice)))
	assert.True(t, bis.ContextPeppolBilling.Is(bis.ContextFor(bill.DocumentTypeCreditNote)))
	assert.True(t, bis.ContextPeppolSelfBilling.Is(bis.ContextFor(bill.DocumentTypeSelfBillingInvoice)))
	assert.True(t, bis.ContextPeppolSelfBilling.Is(bis.ContextFor(bill.DocumentTypeSelfBillingCreditNote)))
}

func TestContextTypeCode(t *testing.T) {
	assert.Equal(t, "380", bis.ContextPeppolBilling.TypeCode(bill.DocumentTypeInvoice))
	assert.Equal(t, "381", bis.ContextPeppolBilling.TypeCode(bill.DocumentTypeCreditNote))
	assert.Equal(t, "389", bis.ContextPeppolSelfBilling.TypeCode(bill.DocumentTypeSelfBillingInvoice))
	assert.Equal(t, "261", bis.ContextPeppolSelfBilling.TypeCode(bill.DocumentTypeSelfBillingCreditNote))
}
