package bis

import "github.com/worksome/peppol.bis/bill"

// Context is used to ensure that the generated UBL document uses a
// specific CustomizationID and ProfileID, together with the UNTDID 1001
// type codes the profile demands.
type Context struct {
	// CustomizationID identifies specific characteristics in the
	// document which need to be present for local differences.
	CustomizationID string
	// ProfileID determines the business process context or scenario
	// for the exchange of the document
	ProfileID string
	// InvoiceTypeCode is the UNTDID 1001 code used for invoices in
	// this context.
	InvoiceTypeCode string
	// CreditNoteTypeCode is the UNTDID 1001 code used for credit
	// notes in this context.
	CreditNoteTypeCode string
	// SelfBilling marks contexts where the buyer issues the document
	// on the seller's behalf, swapping the endpoint mapping.
	SelfBilling bool
}

// Is checks if two contexts are the same.
func (c *Context) Is(c2 Context) bool {
	return c.CustomizationID == c2.CustomizationID && c.ProfileID == c2.ProfileID
}

// TypeCode returns the UNTDID 1001 code for the given document type
// within this context.
func (c *Context) TypeCode(dt bill.DocumentType) string {
	switch dt {
	case bill.DocumentTypeCreditNote, bill.DocumentTypeSelfBillingCreditNote:
		return c.CreditNoteTypeCode
	}
	return c.InvoiceTypeCode
}

// ContextPeppolBilling is the regular Peppol BIS Billing 3.0 context.
var ContextPeppolBilling = Context{
	CustomizationID:    "urn:cen.eu:en16931:2017#compliant#urn:fdc:peppol.eu:2017:poacc:billing:3.0",
	ProfileID:          "urn:fdc:peppol.eu:2017:poacc:billing:01:1.0",
	InvoiceTypeCode:    "380",
	CreditNoteTypeCode: "381",
}

// ContextPeppolSelfBilling is the Peppol self-billing context, used when
// the buyer transmits the document on the seller's behalf.
var ContextPeppolSelfBilling = Context{
	CustomizationID:    "urn:cen.eu:en16931:2017#compliant#urn:fdc:peppol.eu:2017:poacc:selfbilling:3.0",
	ProfileID:          "urn:fdc:peppol.eu:2017:poacc:selfbilling:01:1.0",
	InvoiceTypeCode:    "389",
	CreditNoteTypeCode: "261",
	SelfBilling:        true,
}

// contexts is used internally for reverse lookups during parsing.
var contexts = []Context{ContextPeppolBilling, ContextPeppolSelfBilling}

// FindContext looks up a context by CustomizationID and optionally
// ProfileID. Returns nil if no matching context is found.
func FindContext(customizationID string, profileID string) *Context {
	for _, ctx := range contexts {
		if ctx.CustomizationID == customizationID {
			if ctx.ProfileID != "" && profileID != "" && ctx.ProfileID != profileID {
				continue
			}
			return &ctx
		}
	}
	return nil
}

// ContextFor returns the wire context a document type encodes with.
func ContextFor(dt bill.DocumentType) Context {
	switch dt {
	case bill.DocumentTypeSelfBillingInvoice, bill.DocumentTypeSelfBillingCreditNote:
		return ContextPeppolSelfBilling
	}
	return ContextPeppolBilling
}

type options struct {
	context *Context
}

// Option is used to define configuration options to use during
// conversion processes.
type Option func(*options)

// WithContext overrides the context derived from the document type.
func WithContext(c Context) Option {
	return func(o *options) {
		o.context = &c
	}
}
