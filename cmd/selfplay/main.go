// Command selfplay drives a handful of games to completion using only
// spooky's public API, logging a one-line summary per game. It exists
// to exercise Game end-to-end under concurrency; it is not a GTP
// engine, an SGF writer, or a search — none of those are in scope.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	spooky "github.com/snowdrop4/spooky-go"
)

func main() {
	width := flag.Int("width", 9, "board width")
	height := flag.Int("height", 9, "board height")
	games := flag.Int("games", 8, "number of games to play concurrently")
	superko := flag.Bool("superko", false, "enable positional superko")
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	g, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < *games; i++ {
		i := i
		g.Go(func() error { return playOne(ctx, i, *width, *height, *superko) })
	}
	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("selfplay failed")
	}
}

// playOne runs a single game to completion on its own goroutine-local
// Game, choosing uniformly among the legal moves at each step via
// frand (grounded on bluebear94/odnocam's use of frand.Shuffle to
// randomize move ordering before search).
func playOne(ctx context.Context, id, width, height int, superko bool) error {
	game, err := spooky.NewGameWithConfig(spooky.Config{
		Width:              width,
		Height:             height,
		Komi:               7.5,
		MinMovesBeforePass: (width * height) / 2,
		MaxMoves:           2 * width * height,
		Superko:            superko,
	})
	if err != nil {
		return err
	}

	for !game.IsOver() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		moves := game.LegalMoves()
		if len(moves) == 0 {
			break
		}
		pick := moves[frand.Intn(len(moves))]
		if !game.MakeMove(pick) {
			log.Warn().Int("game", id).Str("move", pick.String()).Msg("legal move rejected")
			break
		}
	}

	outcome, _ := game.Outcome()
	log.Info().
		Int("game", id).
		Int("moves", game.MoveCount()).
		Str("result", outcome.Name()).
		Msg("selfplay game finished")
	return nil
}
