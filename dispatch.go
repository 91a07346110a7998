package bis

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/worksome/peppol.bis/bill"
)

// Identify sniffs a raw XML payload's root element and CustomizationID
// to report which document variant it carries. Unrecognized payloads
// yield DocumentTypeUnknown rather than an error; callers must handle
// that tag explicitly.
func Identify(data []byte) bill.DocumentType {
	root, err := rootElement(data)
	if err != nil || root == nil {
		return bill.DocumentTypeUnknown
	}

	ns := rootNamespace(root)
	selfBilling := false
	if ctx := FindContext(childText(root, "CustomizationID"), childText(root, "ProfileID")); ctx != nil {
		selfBilling = ctx.SelfBilling
	}

	switch {
	case root.Tag == "Invoice" && ns == NamespaceUBLInvoice:
		if selfBilling {
			return bill.DocumentTypeSelfBillingInvoice
		}
		return bill.DocumentTypeInvoice
	case root.Tag == "CreditNote" && ns == NamespaceUBLCreditNote:
		if selfBilling {
			return bill.DocumentTypeSelfBillingCreditNote
		}
		return bill.DocumentTypeCreditNote
	default:
		return bill.DocumentTypeUnknown
	}
}

// DocumentTypeID synthesizes the canonical Peppol document type
// identifier for a payload, used when tagging outbound transmissions:
//
//	<root namespace>::<root element>##<customization id>::2.1
func DocumentTypeID(data []byte) (string, error) {
	root, err := rootElement(data)
	if err != nil {
		return "", err
	}
	if root == nil {
		return "", ErrUnknownDocumentType
	}
	customization := childText(root, "CustomizationID")
	if customization == "" {
		return "", &MissingElementError{Element: "cbc:CustomizationID"}
	}
	return fmt.Sprintf("%s::%s##%s::%s", rootNamespace(root), root.Tag, customization, Version), nil
}

func rootElement(data []byte) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("error parsing XML: %w", err)
	}
	return doc.Root(), nil
}

// rootNamespace resolves the namespace URI of the root element from its
// xmlns declarations.
func rootNamespace(root *etree.Element) string {
	if root.Space != "" {
		return root.SelectAttrValue("xmlns:"+root.Space, "")
	}
	return root.SelectAttrValue("xmlns", "")
}

func childText(root *etree.Element, tag string) string {
	for _, el := range root.ChildElements() {
		if el.Tag == tag {
			return cleanString(el.Text())
		}
	}
	return ""
}
