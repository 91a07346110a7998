package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	bis "github.com/worksome/peppol.bis"
	"github.com/worksome/peppol.bis/bill"
)

type convertOpts struct {
	*rootOpts
	docType   string
	sender    string
	recipient string
}

func convert(o *rootOpts) *convertOpts {
	return &convertOpts{rootOpts: o}
}

func (c *convertOpts) cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <infile> [outfile]",
		Short: "Convert a billing document JSON into UBL XML and vice versa",
		RunE:  c.runE,
	}

	flags := cmd.Flags()
	flags.StringVar(&c.docType, "type", "invoice", "Document type for JSON input (invoice, credit-note, self-billing-invoice, self-billing-credit-note)")
	flags.StringVar(&c.sender, "sender", "", "Sender Peppol address as scheme:value, e.g. 0208:0123456789")
	flags.StringVar(&c.recipient, "recipient", "", "Recipient Peppol address as scheme:value")

	return cmd
}

func (c *convertOpts) runE(cmd *cobra.Command, args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("expected one or two arguments, the command usage is `peppol.bis convert <infile> [outfile]`")
	}

	input, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer input.Close() // nolint:errcheck

	out, err := openOutput(cmd, args)
	if err != nil {
		return err
	}
	defer out.Close() // nolint:errcheck

	inData, err := io.ReadAll(input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	var outputData []byte
	if json.Valid(inData) {
		outputData, err = c.jsonToXML(inData)
	} else {
		// Assume XML if not JSON
		outputData, err = xmlToJSON(inData)
	}
	if err != nil {
		return err
	}

	if _, err = out.Write(outputData); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func (c *convertOpts) jsonToXML(data []byte) ([]byte, error) {
	doc, err := unmarshalDocument(c.docType, data)
	if err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}
	resolved, err := bill.Resolve(doc)
	if err != nil {
		return nil, fmt.Errorf("resolving document: %w", err)
	}

	sender, err := bis.ParseAddress(c.sender)
	if err != nil {
		return nil, err
	}
	recipient, err := bis.ParseAddress(c.recipient)
	if err != nil {
		return nil, err
	}

	ubl, err := bis.Convert(resolved, sender, recipient)
	if err != nil {
		return nil, fmt.Errorf("building UBL document: %w", err)
	}
	return bis.Bytes(ubl)
}

func xmlToJSON(data []byte) ([]byte, error) {
	doc, err := bis.ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parsing UBL document: %w", err)
	}
	return json.MarshalIndent(doc, "", "  ")
}

func unmarshalDocument(docType string, data []byte) (bill.Document, error) {
	var doc bill.Document
	switch bill.DocumentType(docType) {
	case bill.DocumentTypeInvoice:
		doc = new(bill.Invoice)
	case bill.DocumentTypeCreditNote:
		doc = new(bill.CreditNote)
	case bill.DocumentTypeSelfBillingInvoice:
		doc = new(bill.SelfBillingInvoice)
	case bill.DocumentTypeSelfBillingCreditNote:
		doc = new(bill.SelfBillingCreditNote)
	default:
		return nil, fmt.Errorf("unknown document type %q", docType)
	}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("parsing input document: %w", err)
	}
	return doc, nil
}
