package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/pburel/SpotifyArtistGuess/db"
	"github.com/pburel/SpotifyArtistGuess/subcmd"
)

func history(ctx context.Context, db *db.DB, args []string) error {
	subcmd := subcmd.New("history", "show recently played rounds")
	count := subcmd.Int("count", 10, "number of rounds to show")
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	results, err := db.RecentResults(ctx, *count)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Println("no rounds played yet")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, strings.Join([]string{"played_at", "target", "attempts", "correct", "score"}, "\t")+"\n")
	for _, result := range results {
		fmt.Fprintf(tw, strings.Join([]string{
			result.PlayedAt,
			result.TargetSpotifyID,
			fmt.Sprintf("%d", result.AttemptsUsed),
			fmt.Sprintf("%t", result.Correct),
			fmt.Sprintf("%d", result.Score),
		}, "\t")+"\n")
	}
	tw.Flush()

	return nil
}
