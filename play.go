package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/pburel/SpotifyArtistGuess/db"
	"github.com/pburel/SpotifyArtistGuess/enrich"
	"github.com/pburel/SpotifyArtistGuess/fetcher"
	"github.com/pburel/SpotifyArtistGuess/game"
	"github.com/pburel/SpotifyArtistGuess/spotify"
	"github.com/pburel/SpotifyArtistGuess/subcmd"
)

func play(ctx context.Context, db *db.DB, spo *spotify.Client, enricher *enrich.Enricher, args []string) error {
	subcmd := subcmd.New("play", "play one round: guess the secret artist in five tries")
	hints := subcmd.Bool("hints", true, "show a hint after each wrong guess")
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	// An empty catalog means there's nothing to guess; seed it first.
	if count, err := db.CountArtists(ctx); err != nil {
		return err
	} else if count == 0 {
		if _, err := fetcher.New(db, spo).Seed(ctx, nil, 200); err != nil {
			return fmt.Errorf("catalog is empty and seeding failed: %w", err)
		}
	}

	catalogTarget, err := db.RandomArtist(ctx)
	if err != nil {
		return err
	}
	target := enricher.Enrich(ctx, *catalogTarget)
	session := game.New(target)

	fmt.Printf("I'm thinking of an artist. You have %d guesses.\n\n", game.MaxAttempts)

	scanner := bufio.NewScanner(os.Stdin)
	for session.Active() {
		fmt.Printf("[%d left] guess: ", session.AttemptsLeft())
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}

		matches, err := findArtists(ctx, db, spo, query)
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			fmt.Printf("no artist found for '%s', try again\n", query)
			continue
		}

		guess := enricher.Enrich(ctx, matches[0])
		cmp, err := session.Guess(guess)
		if err != nil {
			return err
		}

		fmt.Println()
		printComparison(os.Stdout, guess, cmp)
		if session.Active() && *hints {
			fmt.Printf("\nhint: %s\n\n", session.Hint())
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	fmt.Println()
	switch session.Outcome() {
	case game.OutcomeCorrect:
		fmt.Printf("correct! %s — score %d\n", target.Name, session.Score())
	case game.OutcomeExhausted:
		fmt.Printf("out of guesses. The artist was %s.\n", target.Name)
	default:
		// The player walked away mid-round; nothing to record.
		return nil
	}

	result := session.Result(time.Now().UTC().Format(time.RFC3339))
	if err := db.InsertGameResult(&result); err != nil {
		log.Printf("error recording game result: %v", err)
	}

	return nil
}
