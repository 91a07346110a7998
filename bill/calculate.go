package bill

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// round2 rounds half-up to two decimal places. All derived monetary
// values pass through it at the steps defined by EN16931; intermediate
// quantities and prices keep their full precision until then.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func parseAmount(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, &CalculationError{Field: field, Value: value, Err: err}
	}
	return d, nil
}

// lineNetAmount determines the net amount of a single line. An
// explicit NetAmount wins so that decoded documents keep their original
// values; otherwise quantity times price is rounded, line discounts and
// charges are summed and rounded, and the combination rounded again.
func lineNetAmount(index int, line *Line) (decimal.Decimal, error) {
	field := fmt.Sprintf("lines.%d", index)
	if line.NetAmount != "" {
		return parseAmount(field+".netAmount", line.NetAmount)
	}
	qty, err := parseAmount(field+".quantity", line.Quantity)
	if err != nil {
		return decimal.Zero, err
	}
	price, err := parseAmount(field+".price", line.Price)
	if err != nil {
		return decimal.Zero, err
	}
	base := round2(qty.Mul(price))
	discounts := decimal.Zero
	for i, d := range line.Discounts {
		a, err := parseAmount(fmt.Sprintf("%s.discounts.%d.amount", field, i), d.Amount)
		if err != nil {
			return decimal.Zero, err
		}
		discounts = discounts.Add(a)
	}
	charges := decimal.Zero
	for i, c := range line.Charges {
		a, err := parseAmount(fmt.Sprintf("%s.charges.%d.amount", field, i), c.Amount)
		if err != nil {
			return decimal.Zero, err
		}
		charges = charges.Add(a)
	}
	return round2(base.Sub(round2(discounts)).Add(round2(charges))), nil
}

// vatGroup accumulates the taxable base for one (category, percent)
// pair in document order.
type vatGroup struct {
	category TaxCategory
	percent  string
	rate     decimal.Decimal
	hasRate  bool
	lines    decimal.Decimal
	charges  decimal.Decimal
	disc     decimal.Decimal
}

type vatGroups struct {
	order []*vatGroup
	index map[string]*vatGroup
}

func (g *vatGroups) get(field string, tax Tax) (*vatGroup, error) {
	var rate decimal.Decimal
	hasRate := tax.Percent != ""
	if hasRate {
		var err error
		rate, err = parseAmount(field+".tax.percent", tax.Percent)
		if err != nil {
			return nil, err
		}
	}
	percent := ""
	if hasRate {
		percent = rate.StringFixed(2)
	}
	key := string(tax.Category) + "|" + percent
	if grp, ok := g.index[key]; ok {
		return grp, nil
	}
	grp := &vatGroup{
		category: tax.Category,
		percent:  percent,
		rate:     rate,
		hasRate:  hasRate,
	}
	if g.index == nil {
		g.index = make(map[string]*vatGroup)
	}
	g.index[key] = grp
	g.order = append(g.order, grp)
	return grp, nil
}

// resolveParts fills every derived monetary field in place: line net
// amounts, the VAT breakdown, and the document totals. Supplied
// non-empty values always win over calculated ones so that resolving a
// fully specified document is the identity.
func resolveParts(lines []*Line, discounts []*Discount, charges []*Charge, totals *Totals, tax *TaxTotal) (*Totals, *TaxTotal, error) {
	groups := &vatGroups{}

	linesSum := decimal.Zero
	for i, line := range lines {
		net, err := lineNetAmount(i, line)
		if err != nil {
			return nil, nil, err
		}
		if line.NetAmount == "" {
			line.NetAmount = net.StringFixed(2)
		}
		linesSum = linesSum.Add(net)
		grp, err := groups.get(fmt.Sprintf("lines.%d", i), line.Tax)
		if err != nil {
			return nil, nil, err
		}
		grp.lines = grp.lines.Add(net)
	}

	chargesSum := decimal.Zero
	for i, c := range charges {
		field := fmt.Sprintf("charges.%d", i)
		a, err := parseAmount(field+".amount", c.Amount)
		if err != nil {
			return nil, nil, err
		}
		chargesSum = chargesSum.Add(a)
		grp, err := groups.get(field, c.Tax)
		if err != nil {
			return nil, nil, err
		}
		grp.charges = grp.charges.Add(a)
	}

	discountsSum := decimal.Zero
	for i, d := range discounts {
		field := fmt.Sprintf("discounts.%d", i)
		a, err := parseAmount(field+".amount", d.Amount)
		if err != nil {
			return nil, nil, err
		}
		discountsSum = discountsSum.Add(a)
		grp, err := groups.get(field, d.Tax)
		if err != nil {
			return nil, nil, err
		}
		grp.disc = grp.disc.Add(a)
	}

	subtotals := make([]*TaxSubtotal, 0, len(groups.order))
	vatSum := decimal.Zero
	for _, grp := range groups.order {
		taxable := round2(grp.lines).Sub(round2(grp.disc)).Add(round2(grp.charges))
		vat := decimal.Zero
		if grp.hasRate && !grp.rate.IsZero() {
			vat = round2(taxable.Mul(grp.rate).Div(decimal.NewFromInt(100)))
		}
		vatSum = vatSum.Add(vat)
		st := &TaxSubtotal{
			TaxableAmount: taxable.StringFixed(2),
			TaxAmount:     vat.StringFixed(2),
			Category:      grp.category,
			Percent:       grp.percent,
		}
		if tax != nil && grp.category.ExemptionReasonRequired() {
			st.ExemptionReason = tax.ExemptionReason
			st.ExemptionReasonCode = tax.ExemptionReasonCode
		}
		subtotals = append(subtotals, st)
	}

	outTax := &TaxTotal{}
	if tax != nil {
		*outTax = *tax
	}
	if len(outTax.Subtotals) == 0 {
		outTax.Subtotals = subtotals
	} else {
		outTax.Subtotals = cloneSubtotals(outTax.Subtotals)
		vatSum = decimal.Zero
		for i, st := range outTax.Subtotals {
			a, err := parseAmount(fmt.Sprintf("tax.subtotals.%d.taxAmount", i), st.TaxAmount)
			if err != nil {
				return nil, nil, err
			}
			vatSum = vatSum.Add(a)
		}
	}
	if outTax.Amount == "" {
		outTax.Amount = vatSum.StringFixed(2)
	} else {
		a, err := parseAmount("tax.amount", outTax.Amount)
		if err != nil {
			return nil, nil, err
		}
		vatSum = a
		outTax.Amount = a.StringFixed(2)
	}

	out := &Totals{}
	if totals != nil {
		*out = *totals
	}
	linesAmount := round2(linesSum)
	if out.LinesAmount == "" {
		out.LinesAmount = linesAmount.StringFixed(2)
	} else {
		a, err := parseAmount("totals.linesAmount", out.LinesAmount)
		if err != nil {
			return nil, nil, err
		}
		linesAmount = a
	}
	docDiscounts := round2(discountsSum)
	if out.DiscountAmount == "" {
		if len(discounts) > 0 {
			out.DiscountAmount = docDiscounts.StringFixed(2)
		}
	} else {
		a, err := parseAmount("totals.discountAmount", out.DiscountAmount)
		if err != nil {
			return nil, nil, err
		}
		docDiscounts = a
	}
	docCharges := round2(chargesSum)
	if out.ChargeAmount == "" {
		if len(charges) > 0 {
			out.ChargeAmount = docCharges.StringFixed(2)
		}
	} else {
		a, err := parseAmount("totals.chargeAmount", out.ChargeAmount)
		if err != nil {
			return nil, nil, err
		}
		docCharges = a
	}
	taxExclusive := round2(linesAmount.Sub(docDiscounts).Add(docCharges))
	if out.TaxExclusiveAmount == "" {
		out.TaxExclusiveAmount = taxExclusive.StringFixed(2)
	} else {
		a, err := parseAmount("totals.taxExclusiveAmount", out.TaxExclusiveAmount)
		if err != nil {
			return nil, nil, err
		}
		taxExclusive = a
	}
	taxInclusive := round2(taxExclusive.Add(vatSum))
	if out.TaxInclusiveAmount == "" {
		out.TaxInclusiveAmount = taxInclusive.StringFixed(2)
	} else {
		a, err := parseAmount("totals.taxInclusiveAmount", out.TaxInclusiveAmount)
		if err != nil {
			return nil, nil, err
		}
		taxInclusive = a
	}
	if err := extractTotals(out, taxInclusive); err != nil {
		return nil, nil, err
	}
	return out, outTax, nil
}

// extractTotals reconciles the payable and paid amounts against the
// tax inclusive amount and derives the rounding amount, per BR-CO-16.
// A missing counterpart is clamped at zero; the rounding amount never
// is, it carries any over or under payment.
func extractTotals(t *Totals, taxInclusive decimal.Decimal) error {
	var payable, paid decimal.Decimal
	switch {
	case t.PayableAmount == "" && t.PaidAmount == "":
		payable = taxInclusive
		paid = decimal.Zero
	case t.PaidAmount == "":
		var err error
		payable, err = parseAmount("totals.payableAmount", t.PayableAmount)
		if err != nil {
			return err
		}
		paid = taxInclusive.Sub(payable)
		if paid.IsNegative() {
			paid = decimal.Zero
		}
	case t.PayableAmount == "":
		var err error
		paid, err = parseAmount("totals.paidAmount", t.PaidAmount)
		if err != nil {
			return err
		}
		payable = taxInclusive.Sub(paid)
		if payable.IsNegative() {
			payable = decimal.Zero
		}
	default:
		var err error
		payable, err = parseAmount("totals.payableAmount", t.PayableAmount)
		if err != nil {
			return err
		}
		paid, err = parseAmount("totals.paidAmount", t.PaidAmount)
		if err != nil {
			return err
		}
	}
	t.PayableAmount = payable.StringFixed(2)
	t.PaidAmount = paid.StringFixed(2)
	rounding := round2(payable.Add(paid).Sub(taxInclusive))
	if rounding.IsZero() {
		t.RoundingAmount = ""
	} else {
		t.RoundingAmount = rounding.StringFixed(2)
	}
	return nil
}

// Resolve returns a deep copy of the invoice with every derived field
// filled in: line net amounts, the VAT breakdown, and totals. The
// original is left untouched. Resolving an already resolved invoice
// returns an identical copy.
func (inv *Invoice) Resolve() (*Invoice, error) {
	out := inv.clone()
	totals, tax, err := resolveParts(out.Lines, out.Discounts, out.Charges, out.Totals, out.Tax)
	if err != nil {
		return nil, err
	}
	out.Totals = totals
	out.Tax = tax
	return out, nil
}

// Resolve returns a deep copy of the credit note with every derived
// field filled in.
func (cn *CreditNote) Resolve() (*CreditNote, error) {
	out := cn.clone()
	totals, tax, err := resolveParts(out.Lines, out.Discounts, out.Charges, out.Totals, out.Tax)
	if err != nil {
		return nil, err
	}
	out.Totals = totals
	out.Tax = tax
	return out, nil
}

// Resolve returns a resolved copy of the self-billing invoice.
func (inv *SelfBillingInvoice) Resolve() (*SelfBillingInvoice, error) {
	base, err := inv.Invoice.Resolve()
	if err != nil {
		return nil, err
	}
	return &SelfBillingInvoice{Invoice: *base}, nil
}

// Resolve returns a resolved copy of the self-billing credit note.
func (cn *SelfBillingCreditNote) Resolve() (*SelfBillingCreditNote, error) {
	base, err := cn.CreditNote.Resolve()
	if err != nil {
		return nil, err
	}
	return &SelfBillingCreditNote{CreditNote: *base}, nil
}

// Resolve runs the calculation engine on any document variant.
func Resolve(doc Document) (Document, error) {
	switch d := doc.(type) {
	case *Invoice:
		return d.Resolve()
	case *CreditNote:
		return d.Resolve()
	case *SelfBillingInvoice:
		return d.Resolve()
	case *SelfBillingCreditNote:
		return d.Resolve()
	default:
		return nil, fmt.Errorf("cannot resolve document of type %q", doc.Type())
	}
}

func resolvedParts(lines []*Line, totals *Totals, tax *TaxTotal) bool {
	if totals == nil || tax == nil {
		return false
	}
	if totals.LinesAmount == "" ||
		totals.TaxExclusiveAmount == "" ||
		totals.TaxInclusiveAmount == "" ||
		totals.PayableAmount == "" ||
		totals.PaidAmount == "" {
		return false
	}
	if tax.Amount == "" {
		return false
	}
	for _, line := range lines {
		if line.NetAmount == "" {
			return false
		}
	}
	return true
}

// Resolved reports whether every derived field has been filled in.
func (inv *Invoice) Resolved() bool {
	return resolvedParts(inv.Lines, inv.Totals, inv.Tax)
}

// Resolved reports whether every derived field has been filled in.
func (cn *CreditNote) Resolved() bool {
	return resolvedParts(cn.Lines, cn.Totals, cn.Tax)
}
