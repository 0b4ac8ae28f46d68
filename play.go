package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/robalobadob/spellingbee/internal/daily"
	"github.com/robalobadob/spellingbee/internal/game"
	"github.com/robalobadob/spellingbee/internal/puzzle"
	"github.com/robalobadob/spellingbee/internal/store"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a puzzle in the terminal",
	Long: `Play reads one line at a time. A line of letters is typed and submitted
as a guess; '<' inside a line deletes the previous letter.

Commands:
  :shuffle   reorder the outer letters
  :found     list the words found so far
  :quit      leave (progress is already saved)

Progress is stored in the sqlite database at --db, keyed by the puzzle letters.`,
	RunE: runPlay,
}

var playPuzzle string

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().StringVar(&playPuzzle, "puzzle", "", "puzzle definition file (default: archive today.json)")
	playCmd.Flags().String("db", "./data/bee.db", "sqlite progress database")
	_ = viper.BindPFlag("db_path", playCmd.Flags().Lookup("db"))
}

func runPlay(cmd *cobra.Command, args []string) error {
	var (
		p   *puzzle.Puzzle
		err error
	)
	if playPuzzle != "" {
		p, err = puzzle.Load(playPuzzle)
	} else {
		p, err = daily.NewArchive(viper.GetString("archive_dir")).Current()
	}
	if err != nil {
		return fmt.Errorf("loading puzzle: %w", err)
	}

	st, err := store.OpenSQLite(viper.GetString("db_path"))
	if err != nil {
		return fmt.Errorf("opening progress store: %w", err)
	}
	defer st.Close()

	ctx := cmd.Context()
	pl, err := game.Open(ctx, p, st, log.Logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	lines := readLines(cmd.InOrStdin())
	clears := make(chan game.ClearMessage, 1)
	schedule := func(effects []game.Effect) {
		for _, e := range effects {
			if c, ok := e.(game.ClearAfter); ok {
				time.AfterFunc(c.Delay, func() {
					select {
					case clears <- game.ClearMessage{Seq: c.Seq}:
					default:
					}
				})
			}
		}
	}

	render(out, pl.Session())
	for {
		select {
		case <-ctx.Done():
			return nil
		case c := <-clears:
			pl.Do(ctx, c)
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			switch strings.TrimSpace(line) {
			case ":quit":
				return nil
			case ":shuffle":
				pl.Do(ctx, game.Shuffle{})
			case ":found":
				fmt.Fprintln(out, strings.Join(pl.Session().Found(), "\n"))
				continue
			default:
				for _, r := range strings.TrimSpace(line) {
					if r == '<' {
						pl.Do(ctx, game.Backspace{})
						continue
					}
					pl.Do(ctx, game.AppendLetter{Letter: r})
				}
				schedule(pl.Do(ctx, game.Submit{}))
			}
			render(out, pl.Session())
		}
	}
}

// readLines feeds r line by line into a channel closed at EOF.
func readLines(r io.Reader) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			ch <- sc.Text()
		}
	}()
	return ch
}

// render prints the hive line, message and progress.
func render(w io.Writer, s *game.Session) {
	found, total := s.Progress()
	fmt.Fprintf(w, "[%c] %s   %d/%d words\n", s.Center(), strings.Join(strings.Split(s.Letters(), ""), " "), found, total)
	if msg, _, ok := s.Message(); ok {
		fmt.Fprintf(w, "  ! %s\n", msg.Message())
	}
}
