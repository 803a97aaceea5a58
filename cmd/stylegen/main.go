// cmd/stylegen/main.go
package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/codr1/personafolio/cmd/stylegen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("stylegen failed")
		os.Exit(1)
	}
}
