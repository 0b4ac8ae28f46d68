// serve.go
//
// `bee serve` runs the stateless HTTP API over the puzzle archive.
//
// Environment:
//   PORT           listen port (default 5175)
//   CLIENT_ORIGIN  CORS origin (default http://localhost:5173)
//   STATE_SECRET   HMAC key for state tokens (required when NODE_ENV=production)
//   NODE_ENV       "production" enables Secure cookies

package main

import (
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/robalobadob/spellingbee/internal/daily"
	"github.com/robalobadob/spellingbee/internal/httpserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve archived puzzles over HTTP",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("port", "5175", "listen port")
	_ = viper.BindPFlag("port", serveCmd.Flags().Lookup("port"))
}

func runServe(cmd *cobra.Command, args []string) error {
	production := viper.GetString("node_env") == "production"
	secret := viper.GetString("state_secret")
	if secret == "" {
		if production {
			return errors.New("STATE_SECRET must be set in production")
		}
		secret = "dev_secret_change_me"
		log.Warn().Msg("STATE_SECRET not set, using development secret")
	}

	arc := daily.NewArchive(viper.GetString("archive_dir"))
	srv := httpserver.New(arc, httpserver.Config{
		Secret:       []byte(secret),
		ClientOrigin: viper.GetString("client_origin"),
		SecureCookie: production,
	}, log.Logger)

	port := viper.GetString("port")
	log.Info().Str("port", port).Str("archive", arc.Dir()).Msg("starting server")
	return srv.Start(":" + port)
}
