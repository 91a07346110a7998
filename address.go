package bis

import (
	"fmt"
	"strings"
)

// Address is a two-part Peppol participant identifier, e.g.
// "0208:0123456789" for a Belgian enterprise number. The scheme is the
// ISO 6523 ICD code from the EAS codelist.
type Address struct {
	Scheme string `json:"scheme"`
	Value  string `json:"value"`
}

// ParseAddress splits a "scheme:value" participant identifier on its
// first colon. The value may itself contain colons.
func ParseAddress(s string) (Address, error) {
	scheme, value, ok := strings.Cut(s, ":")
	if !ok {
		return Address{}, fmt.Errorf("invalid peppol address %q: missing scheme separator", s)
	}
	if scheme == "" || value == "" {
		return Address{}, fmt.Errorf("invalid peppol address %q: empty scheme or value", s)
	}
	return Address{Scheme: scheme, Value: value}, nil
}

// String renders the address back to its "scheme:value" form.
func (a Address) String() string {
	return a.Scheme + ":" + a.Value
}

// IsZero reports whether the address is unset.
func (a Address) IsZero() bool {
	return a.Scheme == "" && a.Value == ""
}
