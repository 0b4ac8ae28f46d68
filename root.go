// root.go
//
// Root command and shared configuration.
//
// Configuration sources, highest priority first:
//   1. command-line flags
//   2. environment variables (BEE_ prefixed or bare, e.g. BEE_PORT or PORT)
//   3. a .env file in the working directory (loaded with godotenv)
//   4. built-in defaults
//
// Keys:
//   LOG_LEVEL      zerolog level (default info)
//   ARCHIVE_DIR    puzzle archive directory (default ./word-lists)
//   WORDS_DIR      dictionary tier directory (default: embedded sample)
//   DB_PATH        sqlite progress store for `bee play` (default ./data/bee.db)
//   DAILY_SALT     salt for the daily letter source
//   PORT, CLIENT_ORIGIN, STATE_SECRET, NODE_ENV   see serve.go

package main

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "bee",
	Short: "Not Spelling Bee - generate and play near-anagram word puzzles",
	Long: `bee builds daily word puzzles from a tiered dictionary and lets you play them.

A puzzle is a center letter plus six outer letters. Valid words are
"one swap" away from the seven letters: exactly one puzzle letter is
left out and exactly one new letter is brought in.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().String("archive", "./word-lists", "puzzle archive directory")
	rootCmd.PersistentFlags().String("words", "", "dictionary tier directory (default: embedded sample)")

	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("archive_dir", rootCmd.PersistentFlags().Lookup("archive"))
	_ = viper.BindPFlag("words_dir", rootCmd.PersistentFlags().Lookup("words"))
}

// initConfig loads .env and wires environment variables into viper.
func initConfig() {
	_ = godotenv.Load()

	viper.SetEnvPrefix("BEE")
	viper.AutomaticEnv()
	for _, key := range []string{"log_level", "archive_dir", "words_dir", "db_path", "daily_salt", "port", "client_origin", "state_secret", "node_env"} {
		// accept the bare names too (LOG_LEVEL, PORT, ...)
		_ = viper.BindEnv(key, "BEE_"+strings.ToUpper(key), strings.ToUpper(key))
	}
	viper.SetDefault("db_path", "./data/bee.db")
	viper.SetDefault("daily_salt", "local_dev_salt")
	viper.SetDefault("port", "5175")
	viper.SetDefault("client_origin", "http://localhost:5173")
}

// setupLogging configures the global zerolog logger for the CLI.
func setupLogging() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if lvl, err := zerolog.ParseLevel(viper.GetString("log_level")); err == nil && lvl != zerolog.NoLevel {
		zerolog.SetGlobalLevel(lvl)
	}
}
