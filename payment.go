package bis

import "github.com/worksome/peppol.bis/bill"

// PaymentMeans represents the means of payment
type PaymentMeans struct {
	PaymentMeansCode      IDType            `xml:"cbc:PaymentMeansCode"`
	PaymentID             *string           `xml:"cbc:PaymentID"`
	PayeeFinancialAccount *FinancialAccount `xml:"cac:PayeeFinancialAccount"`
}

// FinancialAccount represents a financial account
type FinancialAccount struct {
	ID                         *string `xml:"cbc:ID"`
	Name                       *string `xml:"cbc:Name"`
	FinancialInstitutionBranch *Branch `xml:"cac:FinancialInstitutionBranch"`
}

// Branch represents a branch of a financial institution
type Branch struct {
	ID *string `xml:"cbc:ID"`
}

// PaymentTerms represents the terms of payment
type PaymentTerms struct {
	Note []string `xml:"cbc:Note"`
}

func (ui *Invoice) addPayment(means []*bill.PaymentMeans, termsNote string) {
	for _, pm := range means {
		out := PaymentMeans{
			PaymentMeansCode: IDType{Value: pm.Code},
		}
		if pm.PaymentID != "" {
			id := pm.PaymentID
			out.PaymentID = &id
		}
		if pm.IBAN != "" || pm.AccountName != "" || pm.BIC != "" {
			pfa := new(FinancialAccount)
			if pm.IBAN != "" {
				iban := pm.IBAN
				pfa.ID = &iban
			}
			if pm.AccountName != "" {
				name := pm.AccountName
				pfa.Name = &name
			}
			if pm.BIC != "" {
				bic := pm.BIC
				pfa.FinancialInstitutionBranch = &Branch{ID: &bic}
			}
			out.PayeeFinancialAccount = pfa
		}
		ui.PaymentMeans = append(ui.PaymentMeans, out)
	}

	if termsNote != "" {
		ui.PaymentTerms = []PaymentTerms{
			{Note: []string{termsNote}},
		}
	}
}
