// Package enao pulls genre names off the visualization at everynoise.com.
// The game only needs names to seed its catalog searches with, so the rest
// of the page data (positions, colors, preview keys) is ignored.
package enao

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pburel/SpotifyArtistGuess/request"
)

const allGenresURL = "https://everynoise.com"

// GenreNames requests the html page at everynoise.com and extracts the
// genre names from it.
func GenreNames() ([]string, error) {
	doc, err := request.FetchHTML(allGenresURL)
	if err != nil {
		return nil, err
	}

	var names []string
	doc.Find("div.canvas > div").Each(func(i int, sel *goquery.Selection) {
		name := strings.TrimSpace(strings.TrimSuffix(sel.Text(), "» "))
		if name != "" {
			names = append(names, name)
		}
	})

	return names, nil
}
