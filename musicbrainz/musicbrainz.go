// Package musicbrainz fills the gaps Spotify leaves: debut year, performer
// type, gender, and country. MusicBrainz is a public registry with no auth,
// but it wants a descriptive User-Agent and at most about one request per
// second, so every outbound call goes through a shared minimum-interval
// gate. Results, including "not found", are cached for the process
// lifetime; a cache hit skips both the network and the gate.
package musicbrainz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pburel/SpotifyArtistGuess/limiter"
	"github.com/pburel/SpotifyArtistGuess/readthrough"
	"github.com/pburel/SpotifyArtistGuess/request"
)

const (
	defaultBaseURL = "https://musicbrainz.org/ws/2"

	// MusicBrainz asks for ~1 req/s; a little extra keeps us clear of
	// 503s under sustained use.
	requestInterval = 1100 * time.Millisecond
)

var ErrNotFound = errors.New("artist not found in musicbrainz")

// New creates a MusicBrainz client identified by the given User-Agent
// string, which should name the application and a contact URL per the
// MusicBrainz API guidelines.
func New(userAgent string) *Client {
	return &Client{
		baseURL:   defaultBaseURL,
		userAgent: userAgent,
		lim:       limiter.New(requestInterval),
		cache:     readthrough.New[*Info](),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type Client struct {
	baseURL   string
	userAgent string

	lim        *limiter.Limiter
	cache      *readthrough.Cache[*Info]
	httpClient *http.Client
}

// Info is what we can learn about an artist from MusicBrainz. Every field
// is optional; absent is the empty string.
type Info struct {
	MBID string

	// Four-digit year the artist's life-span began, like "1996".
	StartYear string

	// "Person", "Group", "Orchestra", "Choir", ...
	Type string

	// Lowercase in the source data, like "female".
	Gender string

	// Two-letter code, like "GB".
	Country string
}

// SearchArtist looks the artist up by name and returns the most relevant
// match. Returns ErrNotFound when the search comes back empty.
func (mb *Client) SearchArtist(ctx context.Context, name string) (*Info, error) {
	query := url.Values{}
	query.Set("query", name)
	query.Set("fmt", "json")

	var results struct {
		Artists []struct {
			ID       string
			Type     string
			Gender   string
			Country  string
			LifeSpan struct {
				Begin string
			} `json:"life-span"`
		}
	}
	if err := mb.get(ctx, "/artist/", query, &results); err != nil {
		return nil, err
	}

	if len(results.Artists) == 0 {
		return nil, ErrNotFound
	}

	artist := results.Artists[0]
	return &Info{
		MBID:      artist.ID,
		StartYear: beginYear(artist.LifeSpan.Begin),
		Type:      artist.Type,
		Gender:    artist.Gender,
		Country:   artist.Country,
	}, nil
}

// LookupMBID fetches the detailed record for a known MusicBrainz id.
func (mb *Client) LookupMBID(ctx context.Context, mbid string) (*Info, error) {
	query := url.Values{}
	query.Set("fmt", "json")

	var artist struct {
		ID       string
		Type     string
		Gender   string
		Country  string
		LifeSpan struct {
			Begin string
		} `json:"life-span"`
	}
	if err := mb.get(ctx, "/artist/"+url.PathEscape(mbid), query, &artist); err != nil {
		return nil, err
	}

	return &Info{
		MBID:      artist.ID,
		StartYear: beginYear(artist.LifeSpan.Begin),
		Type:      artist.Type,
		Gender:    artist.Gender,
		Country:   artist.Country,
	}, nil
}

// LookupEnriched is the call the enrichment pipeline uses: search by name,
// then, if the search produced a stable id, fetch the detailed record and
// prefer it. It never fails; any error along the way degrades to whatever
// partial data exists, and finally to an all-absent Info. The result is
// cached by lowercased name, not-found included, so repeat lookups of the
// same artist are free.
func (mb *Client) LookupEnriched(ctx context.Context, name string) *Info {
	key := strings.ToLower(strings.TrimSpace(name))

	if cached, err := mb.cache.Get(key); err == nil {
		if cached == nil {
			return &Info{}
		}
		return cached
	}

	found, err := mb.SearchArtist(ctx, name)
	if err != nil {
		log.Printf("musicbrainz search for '%s' failed: %v", name, err)
		mb.cache.Set(key, nil)
		return &Info{}
	}

	if found.MBID != "" {
		if detailed, err := mb.LookupMBID(ctx, found.MBID); err != nil {
			log.Printf("musicbrainz detail fetch for '%s' failed: %v", name, err)
		} else {
			found = detailed
		}
	}

	mb.cache.Set(key, found)
	return found
}

// get waits for a rate-limit slot, issues the request, and decodes the
// response into out. Every failure mode funnels into an error the callers
// convert to not-found; there are no retries.
func (mb *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if err := mb.lim.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "GET", mb.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("request error: %w", err)
	}
	req.Header.Set("User-Agent", mb.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := mb.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request error: %w", err)
	}
	defer resp.Body.Close()
	if err := request.Error(resp); err != nil {
		return fmt.Errorf("fetch error: %w", err)
	}

	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decode error: %w", err)
	}

	return nil
}

// beginYear extracts the year from a life-span begin date, which may be
// "1969", "1969-03", or "1969-03-12".
func beginYear(begin string) string {
	if begin == "" {
		return ""
	}
	year, _, _ := strings.Cut(begin, "-")
	return year
}
