package bis

import "github.com/worksome/peppol.bis/bill"

// Document converts the parsed wire structure back into the document
// model, performing the structural inverse of Convert. Mandatory UBL
// elements that are absent surface as a MissingElementError rather
// than silently defaulting.
func (ui *Invoice) Document() (bill.Document, error) {
	if err := ui.checkMandatory(); err != nil {
		return nil, err
	}

	ctx := FindContext(ui.CustomizationID, ui.ProfileID)
	selfBilling := ctx != nil && ctx.SelfBilling
	creditNote := ui.isCreditNote()

	if creditNote {
		out := &bill.CreditNote{
			Number:    cleanString(ui.ID),
			IssueDate: cleanString(ui.IssueDate),
			Currency:  cleanString(ui.DocumentCurrencyCode),
		}
		for _, ref := range ui.BillingReference {
			r := ref.InvoiceDocumentReference
			if r == nil {
				continue
			}
			ir := &bill.InvoiceReference{Number: cleanString(r.ID.Value)}
			if r.IssueDate != nil {
				ir.IssueDate = cleanString(*r.IssueDate)
			}
			out.InvoiceReferences = append(out.InvoiceReferences, ir)
		}
		ui.parseHeader(&out.Note, &out.BuyerReference, &out.OrderReference, &out.DespatchReference)
		out.Seller = parseParty(ui.AccountingSupplierParty.Party)
		out.Buyer = parseParty(ui.AccountingCustomerParty.Party)
		out.Delivery = ui.parseDelivery()
		out.PaymentMeans, out.PaymentTermsNote = ui.parsePayment()
		out.Lines = parseLines(ui.CreditNoteLines)
		out.Discounts, out.Charges = ui.parseCharges()
		out.Totals = ui.parseTotals()
		out.Tax = ui.parseTaxTotal()
		out.Attachments = ui.parseAttachments()

		if selfBilling {
			return &bill.SelfBillingCreditNote{CreditNote: *out}, nil
		}
		return out, nil
	}

	out := &bill.Invoice{
		Number:    cleanString(ui.ID),
		IssueDate: cleanString(ui.IssueDate),
		DueDate:   cleanString(ui.DueDate),
		Currency:  cleanString(ui.DocumentCurrencyCode),
	}
	ui.parseHeader(&out.Note, &out.BuyerReference, &out.OrderReference, &out.DespatchReference)
	out.Seller = parseParty(ui.AccountingSupplierParty.Party)
	out.Buyer = parseParty(ui.AccountingCustomerParty.Party)
	out.Delivery = ui.parseDelivery()
	out.PaymentMeans, out.PaymentTermsNote = ui.parsePayment()
	out.Lines = parseLines(ui.InvoiceLines)
	out.Discounts, out.Charges = ui.parseCharges()
	out.Totals = ui.parseTotals()
	out.Tax = ui.parseTaxTotal()
	out.Attachments = ui.parseAttachments()

	if selfBilling {
		return &bill.SelfBillingInvoice{Invoice: *out}, nil
	}
	return out, nil
}

// Endpoints returns the sender and recipient Peppol addresses recovered
// from the party endpoint elements, undoing the self-billing swap when
// the profile calls for one.
func (ui *Invoice) Endpoints() (sender, recipient Address) {
	supplier := parseEndpoint(ui.AccountingSupplierParty.Party)
	customer := parseEndpoint(ui.AccountingCustomerParty.Party)

	ctx := FindContext(ui.CustomizationID, ui.ProfileID)
	if ctx != nil && ctx.SelfBilling {
		return customer, supplier
	}
	return supplier, customer
}

func (ui *Invoice) isCreditNote() bool {
	if ui.XMLName.Local == "CreditNote" || ui.XMLName.Space == NamespaceUBLCreditNote {
		return true
	}
	return ui.CreditNoteTypeCode != "" || len(ui.CreditNoteLines) > 0
}

func (ui *Invoice) checkMandatory() error {
	switch {
	case cleanString(ui.ID) == "":
		return &MissingElementError{Element: "cbc:ID"}
	case cleanString(ui.IssueDate) == "":
		return &MissingElementError{Element: "cbc:IssueDate"}
	case ui.AccountingSupplierParty.Party == nil:
		return &MissingElementError{Element: "cac:AccountingSupplierParty"}
	case ui.AccountingCustomerParty.Party == nil:
		return &MissingElementError{Element: "cac:AccountingCustomerParty"}
	case len(ui.TaxTotal) == 0:
		return &MissingElementError{Element: "cac:TaxTotal"}
	case ui.LegalMonetaryTotal == nil:
		return &MissingElementError{Element: "cac:LegalMonetaryTotal"}
	}
	return nil
}

func (ui *Invoice) parseHeader(note, buyerRef, orderRef, despatchRef *string) {
	if len(ui.Note) > 0 {
		*note = cleanString(ui.Note[0])
	}
	*buyerRef = cleanString(ui.BuyerReference)
	if ui.OrderReference != nil {
		*orderRef = cleanString(ui.OrderReference.ID)
	}
	if len(ui.DespatchDocumentReference) > 0 {
		*despatchRef = cleanString(ui.DespatchDocumentReference[0].ID.Value)
	}
}

func (ui *Invoice) parseTotals() *bill.Totals {
	mt := ui.LegalMonetaryTotal
	if mt == nil {
		return nil
	}
	out := &bill.Totals{
		LinesAmount:        normalizeNumericString(mt.LineExtensionAmount.Value),
		TaxExclusiveAmount: normalizeNumericString(mt.TaxExclusiveAmount.Value),
		TaxInclusiveAmount: normalizeNumericString(mt.TaxInclusiveAmount.Value),
		PayableAmount:      normalizeNumericString(mt.PayableAmount.Value),
	}
	if mt.AllowanceTotalAmount != nil {
		out.DiscountAmount = normalizeNumericString(mt.AllowanceTotalAmount.Value)
	}
	if mt.ChargeTotalAmount != nil {
		out.ChargeAmount = normalizeNumericString(mt.ChargeTotalAmount.Value)
	}
	if mt.PrepaidAmount != nil {
		out.PaidAmount = normalizeNumericString(mt.PrepaidAmount.Value)
	}
	if mt.PayableRoundingAmount != nil {
		out.RoundingAmount = normalizeNumericString(mt.PayableRoundingAmount.Value)
	}
	return out
}

func (ui *Invoice) parseTaxTotal() *bill.TaxTotal {
	if len(ui.TaxTotal) == 0 {
		return nil
	}
	tt := ui.TaxTotal[0]
	out := &bill.TaxTotal{
		Amount: normalizeNumericString(tt.TaxAmount.Value),
	}
	for _, st := range tt.TaxSubtotal {
		sub := &bill.TaxSubtotal{
			TaxableAmount: normalizeNumericString(st.TaxableAmount.Value),
			TaxAmount:     normalizeNumericString(st.TaxAmount.Value),
		}
		sub.Category, sub.Percent = parseTaxCategory(&st.TaxCategory)
		if st.TaxCategory.TaxExemptionReason != nil {
			sub.ExemptionReason = cleanString(*st.TaxCategory.TaxExemptionReason)
		}
		if st.TaxCategory.TaxExemptionReasonCode != nil {
			sub.ExemptionReasonCode = cleanString(*st.TaxCategory.TaxExemptionReasonCode)
		}
		out.Subtotals = append(out.Subtotals, sub)
	}
	// Surface a subtotal-level exemption reason at the document level
	// too, so that resolving the decoded document reproduces it.
	for _, sub := range out.Subtotals {
		if sub.ExemptionReason != "" || sub.ExemptionReasonCode != "" {
			out.ExemptionReason = sub.ExemptionReason
			out.ExemptionReasonCode = sub.ExemptionReasonCode
			break
		}
	}
	return out
}

func parseTaxCategory(tc *TaxCategory) (bill.TaxCategory, string) {
	if tc == nil {
		return "", ""
	}
	var category bill.TaxCategory
	if tc.ID != nil {
		category = bill.TaxCategory(cleanString(tc.ID.Value))
	}
	percent := ""
	if tc.Percent != nil {
		percent = normalizeNumericString(*tc.Percent)
	}
	return category, percent
}

func (ui *Invoice) parseAttachments() []*bill.Attachment {
	var out []*bill.Attachment
	for _, ref := range ui.AdditionalDocumentReference {
		a := &bill.Attachment{ID: cleanString(ref.ID.Value)}
		if ref.DocumentDescription != nil {
			a.Description = cleanString(*ref.DocumentDescription)
		}
		if ref.Attachment != nil {
			if obj := ref.Attachment.EmbeddedDocumentBinaryObject; obj != nil {
				a.Data = cleanString(obj.Value)
				a.MimeCode = obj.MimeCode
				a.Filename = obj.Filename
			}
			if ext := ref.Attachment.ExternalReference; ext != nil {
				a.URI = cleanString(ext.URI)
			}
		}
		out = append(out, a)
	}
	return out
}

func parseEndpoint(p *Party) Address {
	if p == nil || p.EndpointID == nil {
		return Address{}
	}
	return Address{
		Scheme: p.EndpointID.SchemeID,
		Value:  cleanString(p.EndpointID.Value),
	}
}
