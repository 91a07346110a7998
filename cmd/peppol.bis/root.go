package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type rootOpts struct{}

func root() *rootOpts {
	return &rootOpts{}
}

func (o *rootOpts) cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "peppol.bis",
		Short:         "Convert and validate Peppol BIS Billing 3.0 documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	viper.SetEnvPrefix("peppol")
	viper.AutomaticEnv()
	viper.SetDefault("validator_url", "http://localhost:8080")

	cmd.AddCommand(convert(o).cmd())
	cmd.AddCommand(validate(o).cmd())
	cmd.AddCommand(identify(o).cmd())

	return cmd
}

func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	return f, nil
}

func openOutput(cmd *cobra.Command, args []string) (io.WriteCloser, error) {
	if len(args) < 2 || args[1] == "-" {
		return nopWriteCloser{cmd.OutOrStdout()}, nil
	}
	f, err := os.Create(args[1])
	if err != nil {
		return nil, fmt.Errorf("opening output: %w", err)
	}
	return f, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
