package bis

import "github.com/worksome/peppol.bis/bill"

func (ui *Invoice) parsePayment() ([]*bill.PaymentMeans, string) {
	var means []*bill.PaymentMeans
	for _, pm := range ui.PaymentMeans {
		out := &bill.PaymentMeans{
			Code: cleanString(pm.PaymentMeansCode.Value),
		}
		if pm.PaymentID != nil {
			out.PaymentID = cleanString(*pm.PaymentID)
		}
		if pfa := pm.PayeeFinancialAccount; pfa != nil {
			if pfa.ID != nil {
				out.IBAN = cleanString(*pfa.ID)
			}
			if pfa.Name != nil {
				out.AccountName = cleanString(*pfa.Name)
			}
			if pfa.FinancialInstitutionBranch != nil && pfa.FinancialInstitutionBranch.ID != nil {
				out.BIC = cleanString(*pfa.FinancialInstitutionBranch.ID)
			}
		}
		means = append(means, out)
	}

	termsNote := ""
	if len(ui.PaymentTerms) > 0 && len(ui.PaymentTerms[0].Note) > 0 {
		termsNote = cleanString(ui.PaymentTerms[0].Note[0])
	}

	return means, termsNote
}
