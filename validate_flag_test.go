package bis_test

import (
	"context"
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bis "github.com/worksome/peppol.bis"
	"github.com/worksome/peppol.bis/bill"
	"github.com/worksome/peppol.bis/validator"
)

var runValidation = flag.Bool("validate", false, "check generated documents against the external validation service")

// TestGeneratedDocumentsValidate sends freshly encoded payloads to the
// validation service configured via PEPPOL_VALIDATOR_URL. It only runs
// with the -validate flag so regular test runs stay hermetic.
func TestGeneratedDocumentsValidate(t *testing.T) {
	if !*runValidation {
		t.Skip("skipping external validation, use -validate to enable")
	}
	url := os.Getenv("PEPPOL_VALIDATOR_URL")
	if url == "" {
		url = "http://localhost:8080"
	}
	client := validator.New(url)

	docs := map[string]*bis.Invoice{}

	inv, err := bis.Convert(testInvoice(t), testSender, testRecipient)
	require.NoError(t, err)
	docs["invoice"] = inv

	self, err := (&bill.SelfBillingInvoice{Invoice: *testInvoice(t)}).Resolve()
	require.NoError(t, err)
	selfDoc, err := bis.Convert(self, testSender, testRecipient)
	require.NoError(t, err)
	docs["self-billing-invoice"] = selfDoc

	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			data, err := bis.Bytes(doc)
			require.NoError(t, err)

			res, err := client.Validate(context.Background(), data)
			require.NoError(t, err)
			for _, issue := range res.Errors {
				t.Logf("%s %s: %s", issue.Severity, issue.Rule, issue.Message)
			}
			assert.True(t, res.Valid())
		})
	}
}
