package main

import (
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/robalobadob/spellingbee/assets"
	"github.com/robalobadob/spellingbee/internal/daily"
	"github.com/robalobadob/spellingbee/internal/generator"
	"github.com/robalobadob/spellingbee/internal/words"
)

var generateCmd = &cobra.Command{
	Use:   "generate [center base-word]",
	Short: "Generate a puzzle definition from the dictionary tiers",
	Long: `Generate scans the dictionary tiers up to the obscurity ceiling and
collects every word whose letters are one swap away from the puzzle letters.

With no arguments the letters come from the daily letter source for --date.
The definition is printed to stdout, or with --save written to the archive
as <date>.json and today.json.

Examples:
  bee generate g gamecock
  bee generate g gamecock -o 50 --save
  bee generate --date 2026-10-18 --save`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("want no arguments or <center> <base-word>, got %d", len(args))
		}
		return nil
	},
	RunE: runGenerate,
}

var (
	generateObscurity int
	generateSave      bool
	generateDate      string
)

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().IntVarP(&generateObscurity, "obscurity", "o", generator.DefaultObscurity, "highest dictionary tier to scan")
	generateCmd.Flags().BoolVar(&generateSave, "save", false, "write to the archive instead of stdout")
	generateCmd.Flags().StringVar(&generateDate, "date", "", "puzzle date YYYY-MM-DD (default today, UTC)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	date := time.Now().UTC()
	if generateDate != "" {
		d, err := daily.ParseDateKey(generateDate)
		if err != nil {
			return fmt.Errorf("parsing --date: %w", err)
		}
		date = d
	}

	center, outer, err := seedLetters(cmd, args, date)
	if err != nil {
		return err
	}

	tiers := words.Open(viper.GetString("words_dir"))
	p, err := generator.New(tiers, log.Logger).Generate(cmd.Context(), center, outer, generateObscurity)
	if err != nil {
		return err
	}

	if !generateSave {
		enc := json.NewEncoder(cmd.OutOrStdout())
		return enc.Encode(p)
	}
	arc := daily.NewArchive(viper.GetString("archive_dir"))
	if err := arc.Save(daily.DateKey(date), p); err != nil {
		return fmt.Errorf("saving puzzle: %w", err)
	}
	log.Info().Str("dir", arc.Dir()).Str("date", daily.DateKey(date)).Int("words", len(p.Words())).Msg("puzzle saved")
	return nil
}

// seedLetters takes the letters from the arguments or the daily source.
func seedLetters(cmd *cobra.Command, args []string, date time.Time) (rune, string, error) {
	if len(args) == 2 {
		if utf8.RuneCountInString(args[0]) != 1 {
			return 0, "", fmt.Errorf("center %q must be a single letter", args[0])
		}
		center, _ := utf8.DecodeRuneInString(args[0])
		outer, err := generator.OuterFromBase(center, args[1])
		return center, outer, err
	}

	bases, err := assets.BaseWords()
	if err != nil {
		return 0, "", fmt.Errorf("reading base words: %w", err)
	}
	var src daily.LetterSource = &daily.SaltedSource{Bases: bases, Salt: viper.GetString("daily_salt")}
	center, outer, err := src.Letters(cmd.Context(), date)
	if err != nil {
		return 0, "", err
	}
	log.Info().Str("date", daily.DateKey(date)).Str("center", string(center)).Str("outer", outer).Msg("daily letters")
	return center, outer, nil
}
