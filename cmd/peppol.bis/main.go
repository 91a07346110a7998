// The peppol.bis command converts billing documents between their JSON
// representation and Peppol BIS Billing 3.0 UBL, and checks generated
// payloads against an external validation service.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// A missing .env file is fine; environment variables still apply.
	_ = godotenv.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := root().cmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}
