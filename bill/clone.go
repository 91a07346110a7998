package bill

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

func clonePtrSlice[T any](s []*T) []*T {
	if s == nil {
		return nil
	}
	out := make([]*T, len(s))
	for i, p := range s {
		out[i] = clonePtr(p)
	}
	return out
}

func cloneLines(lines []*Line) []*Line {
	if lines == nil {
		return nil
	}
	out := make([]*Line, len(lines))
	for i, l := range lines {
		c := *l
		c.Discounts = clonePtrSlice(l.Discounts)
		c.Charges = clonePtrSlice(l.Charges)
		out[i] = &c
	}
	return out
}

func cloneSubtotals(subs []*TaxSubtotal) []*TaxSubtotal {
	return clonePtrSlice(subs)
}

func cloneTax(t *TaxTotal) *TaxTotal {
	if t == nil {
		return nil
	}
	c := *t
	c.Subtotals = cloneSubtotals(t.Subtotals)
	return &c
}

func (inv *Invoice) clone() *Invoice {
	c := *inv
	c.Delivery = clonePtr(inv.Delivery)
	c.PaymentMeans = clonePtrSlice(inv.PaymentMeans)
	c.Lines = cloneLines(inv.Lines)
	c.Discounts = clonePtrSlice(inv.Discounts)
	c.Charges = clonePtrSlice(inv.Charges)
	c.Totals = clonePtr(inv.Totals)
	c.Tax = cloneTax(inv.Tax)
	c.Attachments = clonePtrSlice(inv.Attachments)
	return &c
}

func (cn *CreditNote) clone() *CreditNote {
	c := *cn
	c.InvoiceReferences = clonePtrSlice(cn.InvoiceReferences)
	c.Delivery = clonePtr(cn.Delivery)
	c.PaymentMeans = clonePtrSlice(cn.PaymentMeans)
	c.Lines = cloneLines(cn.Lines)
	c.Discounts = clonePtrSlice(cn.Discounts)
	c.Charges = clonePtrSlice(cn.Charges)
	c.Totals = clonePtr(cn.Totals)
	c.Tax = cloneTax(cn.Tax)
	c.Attachments = clonePtrSlice(cn.Attachments)
	return &c
}
