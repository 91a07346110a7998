package bis

import (
	"strings"

	"github.com/shopspring/decimal"
)

// UBL schema constants
const (
	NamespaceCBC = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"
	NamespaceCAC = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
)

// CurrencyEUR is the only accounting currency supported on the wire.
const CurrencyEUR = "EUR"

// TaxSchemeVAT is the tax scheme code for VAT
const TaxSchemeVAT = "VAT"

// IDType represents an ID with optional scheme attributes
type IDType struct {
	SchemeID *string `xml:"schemeID,attr"`
	Value    string  `xml:",chardata"`
}

// Amount represents a monetary amount
type Amount struct {
	CurrencyID *string `xml:"currencyID,attr"`
	Value      string  `xml:",chardata"`
}

// Quantity represents a quantity with a unit code
type Quantity struct {
	UnitCode string `xml:"unitCode,attr"`
	Value    string `xml:",chardata"`
}

// Country represents a country
type Country struct {
	IdentificationCode string `xml:"cbc:IdentificationCode"`
}

// amount builds a 2-decimal EUR amount element. Values that do not
// parse as decimals are passed through verbatim.
func amount(value string) Amount {
	ccy := CurrencyEUR
	return Amount{CurrencyID: &ccy, Value: formatAmount(value)}
}

func amountPtr(value string) *Amount {
	a := amount(value)
	return &a
}

func formatAmount(value string) string {
	d, err := decimal.NewFromString(normalizeNumericString(value))
	if err != nil {
		return value
	}
	return d.StringFixed(2)
}

// normalizeNumericString cleans up numeric strings to ensure they can be
// parsed correctly. It handles:
// - Leading/trailing whitespace (e.g., " 123.45 " -> "123.45")
// - Numbers starting with decimal point (e.g., ".07" -> "0.07")
func normalizeNumericString(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	return s
}

// cleanString collapses the whitespace XML indentation leaves behind in
// element text.
func cleanString(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
