package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/worksome/peppol.bis/validator"
)

type validateOpts struct {
	*rootOpts
	serviceURL string
}

func validate(o *rootOpts) *validateOpts {
	return &validateOpts{rootOpts: o}
}

func (v *validateOpts) cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <infile>",
		Short: "Check a UBL document against the validation service",
		RunE:  v.runE,
	}

	cmd.Flags().StringVar(&v.serviceURL, "service-url", "", "Validation service base URL (defaults to $PEPPOL_VALIDATOR_URL)")

	return cmd
}

func (v *validateOpts) runE(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected one argument, the command usage is `peppol.bis validate <infile>`")
	}

	input, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer input.Close() // nolint:errcheck

	data, err := io.ReadAll(input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	url := v.serviceURL
	if url == "" {
		url = viper.GetString("validator_url")
	}

	client := validator.New(url, validator.WithLogger(log.Logger))
	res, err := client.Validate(cmd.Context(), data)
	if err != nil {
		return err
	}

	if !res.Valid() {
		for _, issue := range res.Errors {
			log.Error().
				Str("rule", issue.Rule).
				Str("severity", issue.Severity).
				Str("location", issue.Location).
				Msg(issue.Message)
		}
		return fmt.Errorf("document is %s with %d issue(s)", res.Result, len(res.Errors))
	}

	fmt.Fprintln(cmd.OutOrStdout(), "valid")
	return nil
}
