package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	bis "github.com/worksome/peppol.bis"
)

type identifyOpts struct {
	*rootOpts
}

func identify(o *rootOpts) *identifyOpts {
	return &identifyOpts{rootOpts: o}
}

func (i *identifyOpts) cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "identify <infile>",
		Short: "Report the document type and Peppol document type identifier of a UBL payload",
		RunE:  i.runE,
	}
}

func (i *identifyOpts) runE(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected one argument, the command usage is `peppol.bis identify <infile>`")
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

	fmt.Fprintln(cmd.OutOrStdout(), bis.Identify(data))

	id, err := bis.DocumentTypeID(data)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), id)
	return nil
}
