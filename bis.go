// Package bis converts billing documents into Peppol BIS Billing 3.0
// UBL payloads and vice versa.
package bis

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/invopop/xmlctx"

	"github.com/worksome/peppol.bis/bill"
)

var (
	// ErrUnknownDocumentType is returned when the document type
	// is not recognized during parsing.
	ErrUnknownDocumentType = fmt.Errorf("unknown document type")

	// ErrUnresolvedDocument is returned when a document with unfilled
	// derived fields is handed to the encoder. Run bill.Resolve first.
	ErrUnresolvedDocument = fmt.Errorf("document has not been resolved")
)

// Version is the version of UBL documents that will be generated
// by this package.
const Version = "2.1"

// MissingElementError is returned when decoded XML lacks a mandatory
// UBL element.
type MissingElementError struct {
	// Element is the qualified name of the absent element, e.g.
	// "cac:AccountingSupplierParty".
	Element string
}

// Error implements the error interface.
func (e *MissingElementError) Error() string {
	return fmt.Sprintf("missing mandatory element %s", e.Element)
}

// Parse parses a raw UBL Invoice or CreditNote payload and returns the
// wire-level structure. Most callers want ParseDocument instead; the
// wire structure is useful for inspecting elements the document model
// does not carry.
func Parse(data []byte) (*Invoice, error) {
	ns, err := extractRootNamespace(data)
	if err != nil {
		return nil, err
	}

	switch ns {
	case NamespaceUBLInvoice, NamespaceUBLCreditNote:
		in := new(Invoice)
		if err := xmlctx.Unmarshal(data, in, xmlctx.WithNamespaces(map[string]string{
			"":    ns,
			"cbc": NamespaceCBC,
			"cac": NamespaceCAC,
		})); err != nil {
			return nil, err
		}
		return in, nil

	default:
		return nil, ErrUnknownDocumentType
	}
}

// ParseDocument parses a raw UBL payload all the way into the document
// model, validating the result. The concrete type of the returned
// document matches the payload's profile and root element.
func ParseDocument(data []byte) (bill.Document, error) {
	in, err := Parse(data)
	if err != nil {
		return nil, err
	}
	doc, err := in.Document()
	if err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

func extractRootNamespace(data []byte) (string, error) {
	dc := xml.NewDecoder(bytes.NewReader(data))
	for {
		tk, err := dc.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("error parsing XML: %w", err)
		}
		switch t := tk.(type) {
		case xml.StartElement:
			return t.Name.Space, nil
		}
	}
	return "", ErrUnknownDocumentType
}

// Bytes returns the raw XML of the UBL document including
// the XML Header.
func Bytes(in *Invoice) ([]byte, error) {
	b, err := xml.MarshalIndent(in, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), b...), nil
}
