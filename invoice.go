package bis

import (
	"encoding/xml"

	"github.com/worksome/peppol.bis/bill"
)

// Main UBL namespaces
const (
	NamespaceUBLInvoice    = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	NamespaceUBLCreditNote = "urn:oasis:names:specification:ubl:schema:xsd:CreditNote-2"
)

// Invoice represents the root element of a UBL Invoice **or** Credit
// Note; the structures between the two types are so similar, that it
// doesn't make much sense to separate.
type Invoice struct {
	// Attributes
	XMLName      xml.Name
	CACNamespace string `xml:"xmlns:cac,attr"`
	CBCNamespace string `xml:"xmlns:cbc,attr"`
	UBLNamespace string `xml:"xmlns,attr"`

	CustomizationID string `xml:"cbc:CustomizationID,omitempty"`
	ProfileID       string `xml:"cbc:ProfileID,omitempty"`
	ID              string `xml:"cbc:ID"`
	IssueDate       string `xml:"cbc:IssueDate"`
	DueDate         string `xml:"cbc:DueDate,omitempty"`

	InvoiceTypeCode    string `xml:"cbc:InvoiceTypeCode,omitempty"`
	CreditNoteTypeCode string `xml:"cbc:CreditNoteTypeCode,omitempty"`

	Note                 []string `xml:"cbc:Note,omitempty"`
	DocumentCurrencyCode string   `xml:"cbc:DocumentCurrencyCode,omitempty"`
	BuyerReference       string   `xml:"cbc:BuyerReference,omitempty"`

	OrderReference              *OrderReference     `xml:"cac:OrderReference,omitempty"`
	BillingReference            []*BillingReference `xml:"cac:BillingReference,omitempty"`
	DespatchDocumentReference   []Reference         `xml:"cac:DespatchDocumentReference,omitempty"`
	AdditionalDocumentReference []Reference         `xml:"cac:AdditionalDocumentReference,omitempty"`
	AccountingSupplierParty     SupplierParty       `xml:"cac:AccountingSupplierParty"`
	AccountingCustomerParty     CustomerParty       `xml:"cac:AccountingCustomerParty"`
	Delivery                    []*Delivery         `xml:"cac:Delivery,omitempty"`
	PaymentMeans                []PaymentMeans      `xml:"cac:PaymentMeans,omitempty"`
	PaymentTerms                []PaymentTerms      `xml:"cac:PaymentTerms,omitempty"`
	AllowanceCharge             []AllowanceCharge   `xml:"cac:AllowanceCharge,omitempty"`
	TaxTotal                    []TaxTotal          `xml:"cac:TaxTotal,omitempty"`
	LegalMonetaryTotal          *MonetaryTotal      `xml:"cac:LegalMonetaryTotal,omitempty"`
	InvoiceLines                []InvoiceLine       `xml:"cac:InvoiceLine,omitempty"`
	CreditNoteLines             []InvoiceLine       `xml:"cac:CreditNoteLine,omitempty"`
}

// OrderReference represents a reference to a purchase order
type OrderReference struct {
	ID string `xml:"cbc:ID"`
}

// BillingReference links a credit note to the invoice it amends
type BillingReference struct {
	InvoiceDocumentReference *Reference `xml:"cac:InvoiceDocumentReference,omitempty"`
}

// Reference represents a document reference
type Reference struct {
	ID                  IDType      `xml:"cbc:ID"`
	IssueDate           *string     `xml:"cbc:IssueDate,omitempty"`
	DocumentDescription *string     `xml:"cbc:DocumentDescription,omitempty"`
	Attachment          *Attachment `xml:"cac:Attachment,omitempty"`
}

// Attachment holds either an embedded binary object or an external
// reference
type Attachment struct {
	EmbeddedDocumentBinaryObject *BinaryObject      `xml:"cbc:EmbeddedDocumentBinaryObject,omitempty"`
	ExternalReference            *ExternalReference `xml:"cac:ExternalReference,omitempty"`
}

// BinaryObject is a base64-encoded embedded document
type BinaryObject struct {
	MimeCode string `xml:"mimeCode,attr"`
	Filename string `xml:"filename,attr"`
	Value    string `xml:",chardata"`
}

// ExternalReference points at an externally hosted document
type ExternalReference struct {
	URI string `xml:"cbc:URI"`
}

// Convert renders a resolved document into its UBL wire structure. The
// sender and recipient Peppol addresses are threaded through every call
// since they live on the transport envelope, not in the document model.
//
// Returns ErrUnresolvedDocument when derived fields are missing; run
// bill.Resolve first.
func Convert(doc bill.Document, sender, recipient Address, opts ...Option) (*Invoice, error) {
	if !doc.Resolved() {
		return nil, ErrUnresolvedDocument
	}

	o := new(options)
	for _, opt := range opts {
		opt(o)
	}
	ctx := ContextFor(doc.Type())
	if o.context != nil {
		ctx = *o.context
	}

	switch d := doc.(type) {
	case *bill.Invoice:
		return newInvoice(d, ctx, doc.Type(), sender, recipient)
	case *bill.SelfBillingInvoice:
		return newInvoice(&d.Invoice, ctx, doc.Type(), sender, recipient)
	case *bill.CreditNote:
		return newCreditNote(d, ctx, doc.Type(), sender, recipient)
	case *bill.SelfBillingCreditNote:
		return newCreditNote(&d.CreditNote, ctx, doc.Type(), sender, recipient)
	default:
		return nil, ErrUnknownDocumentType
	}
}

func newInvoice(inv *bill.Invoice, ctx Context, dt bill.DocumentType, sender, recipient Address) (*Invoice, error) {
	out := &Invoice{
		XMLName:              xml.Name{Local: "Invoice"},
		CACNamespace:         NamespaceCAC,
		CBCNamespace:         NamespaceCBC,
		UBLNamespace:         NamespaceUBLInvoice,
		CustomizationID:      ctx.CustomizationID,
		ProfileID:            ctx.ProfileID,
		ID:                   inv.Number,
		IssueDate:            inv.IssueDate,
		DueDate:              inv.DueDate,
		InvoiceTypeCode:      ctx.TypeCode(dt),
		DocumentCurrencyCode: inv.Currency,
		BuyerReference:       inv.BuyerReference,
	}
	out.addHeader(inv.Note, inv.OrderReference, inv.DespatchReference)
	out.addParties(inv.Seller, inv.Buyer, ctx, sender, recipient)
	out.addDelivery(inv.Delivery)
	out.addPayment(inv.PaymentMeans, inv.PaymentTermsNote)
	out.addCharges(inv.Discounts, inv.Charges)
	out.addTotals(inv.Totals, inv.Tax)
	out.addLines(inv.Lines, false)
	out.addAttachments(inv.Attachments)
	return out, nil
}

func newCreditNote(cn *bill.CreditNote, ctx Context, dt bill.DocumentType, sender, recipient Address) (*Invoice, error) {
	out := &Invoice{
		XMLName:              xml.Name{Local: "CreditNote"},
		CACNamespace:         NamespaceCAC,
		CBCNamespace:         NamespaceCBC,
		UBLNamespace:         NamespaceUBLCreditNote,
		CustomizationID:      ctx.CustomizationID,
		ProfileID:            ctx.ProfileID,
		ID:                   cn.Number,
		IssueDate:            cn.IssueDate,
		CreditNoteTypeCode:   ctx.TypeCode(dt),
		DocumentCurrencyCode: cn.Currency,
		BuyerReference:       cn.BuyerReference,
	}
	for _, ref := range cn.InvoiceReferences {
		r := &Reference{ID: IDType{Value: ref.Number}}
		if ref.IssueDate != "" {
			d := ref.IssueDate
			r.IssueDate = &d
		}
		out.BillingReference = append(out.BillingReference, &BillingReference{
			InvoiceDocumentReference: r,
		})
	}
	out.addHeader(cn.Note, cn.OrderReference, cn.DespatchReference)
	out.addParties(cn.Seller, cn.Buyer, ctx, sender, recipient)
	out.addDelivery(cn.Delivery)
	out.addPayment(cn.PaymentMeans, cn.PaymentTermsNote)
	out.addCharges(cn.Discounts, cn.Charges)
	out.addTotals(cn.Totals, cn.Tax)
	out.addLines(cn.Lines, true)
	out.addAttachments(cn.Attachments)
	return out, nil
}

func (ui *Invoice) addHeader(note, orderRef, despatchRef string) {
	if note != "" {
		ui.Note = []string{note}
	}
	if orderRef != "" {
		ui.OrderReference = &OrderReference{ID: orderRef}
	}
	if despatchRef != "" {
		ui.DespatchDocumentReference = []Reference{
			{ID: IDType{Value: despatchRef}},
		}
	}
}

func (ui *Invoice) addAttachments(attachments []*bill.Attachment) {
	for _, a := range attachments {
		ref := Reference{ID: IDType{Value: a.ID}}
		if a.Description != "" {
			d := a.Description
			ref.DocumentDescription = &d
		}
		att := &Attachment{}
		if a.Data != "" {
			att.EmbeddedDocumentBinaryObject = &BinaryObject{
				MimeCode: a.MimeCode,
				Filename: a.Filename,
				Value:    a.Data,
			}
		}
		if a.URI != "" {
			att.ExternalReference = &ExternalReference{URI: a.URI}
		}
		ref.Attachment = att
		ui.AdditionalDocumentReference = append(ui.AdditionalDocumentReference, ref)
	}
}
