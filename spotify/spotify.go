// Package spotify is the primary catalog source: artist search and the
// bulk genre searches used to seed the game's database. It uses the
// client-credentials flow; nothing here touches user accounts.
package spotify

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pburel/SpotifyArtistGuess/data"
	"github.com/pburel/SpotifyArtistGuess/request"
)

const (
	apiBase  = "https://api.spotify.com/v1"
	tokenURL = "https://accounts.spotify.com/api/token"
)

// New creates a Spotify client with the given credentials. Credentials are
// not checked here; a missing pair fails loudly on the first request.
func New(clientID, clientSecret string) *Client {
	return &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		delay:        time.Second / 10,
	}
}

type Client struct {
	mu sync.Mutex

	clientID     string
	clientSecret string

	nextReqAt time.Time
	delay     time.Duration

	accessToken string
	expiresAt   time.Time
}

// SearchArtists searches Spotify for artists matching the query and
// returns up to limit results in catalog shape.
func (spo *Client) SearchArtists(ctx context.Context, query string, limit int) ([]data.Artist, error) {
	if limit < 1 {
		limit = 1
	} else if limit > 50 {
		limit = 50
	}

	q := url.Values{}
	q.Set("q", query)
	q.Set("type", "artist")
	q.Set("limit", strconv.Itoa(limit))

	page, err := spo.searchPage(ctx, q)
	if err != nil {
		return nil, err
	}

	artists := make([]data.Artist, len(page.Artists.Items))
	for i, item := range page.Artists.Items {
		artists[i] = item.toArtist()
	}
	return artists, nil
}

// FetchTopArtists collects up to limit popular artists by running a search
// per seed genre and deduping by id. If the genre sweep comes up short, a
// broader recent-years search tops it off, like the original seeding did.
func (spo *Client) FetchTopArtists(ctx context.Context, genres []string, limit int) ([]data.Artist, error) {
	if len(genres) == 0 {
		return nil, fmt.Errorf("no seed genres")
	}

	perGenre := limit / len(genres)
	if perGenre < 1 {
		perGenre = 1
	} else if perGenre > 50 {
		perGenre = 50
	}

	seen := map[string]struct{}{}
	var artists []data.Artist

	for _, genre := range genres {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		q := url.Values{}
		q.Set("q", fmt.Sprintf("genre:%s", genre))
		q.Set("type", "artist")
		q.Set("limit", strconv.Itoa(perGenre))

		page, err := spo.searchPage(ctx, q)
		if err != nil {
			log.Printf("error searching artists for genre '%s': %v", genre, err)
			continue
		}

		for _, item := range page.Artists.Items {
			if _, dup := seen[item.ID]; dup {
				continue
			}
			seen[item.ID] = struct{}{}
			artists = append(artists, item.toArtist())
			if len(artists) >= limit {
				return artists, nil
			}
		}
	}

	if len(artists) < limit {
		remaining := limit - len(artists)
		if remaining > 50 {
			remaining = 50
		}
		q := url.Values{}
		q.Set("q", "year:2020-2024")
		q.Set("type", "artist")
		q.Set("limit", strconv.Itoa(remaining))

		if page, err := spo.searchPage(ctx, q); err != nil {
			log.Printf("error searching additional artists: %v", err)
		} else {
			for _, item := range page.Artists.Items {
				if _, dup := seen[item.ID]; dup {
					continue
				}
				seen[item.ID] = struct{}{}
				artists = append(artists, item.toArtist())
			}
		}
	}

	return artists, nil
}

func (spo *Client) searchPage(ctx context.Context, query url.Values) (*artistSearchPage, error) {
	resp, err := spo.get(ctx, apiBase+"/search", query)
	if err != nil {
		return nil, err
	}

	defer resp.Close()
	var results artistSearchPage
	dec := json.NewDecoder(resp)
	if err := dec.Decode(&results); err != nil {
		return nil, fmt.Errorf("artist search decode error: %w", err)
	}

	return &results, nil
}

type artistSearchPage struct {
	Artists struct {
		Items []artistItem
	}
}

type artistItem struct {
	ID     string
	Name   string
	Genres []string
	Images []struct {
		Height int64
		Width  int64
		URL    string
	}
	Popularity int64
}

func (item artistItem) toArtist() data.Artist {
	var imageURL string
	var maxSize int64
	for _, image := range item.Images {
		if image.Width > maxSize {
			imageURL = image.URL
			maxSize = image.Width
		}
	}
	return data.Artist{
		SpotifyID:  item.ID,
		Name:       item.Name,
		ImageURL:   imageURL,
		Genres:     item.Genres,
		Popularity: item.Popularity,

		// A rough monthly-listeners figure for game display; Spotify
		// doesn't expose the real number through this API.
		MonthlyListeners: item.Popularity * 10_000,
	}
}

// get respects Spotify's documented rate-limiter semantics: on a 429 it
// reads the Retry-After header, waits, and tries again, so callers might
// block for a while but won't see the error.
func (spo *Client) get(ctx context.Context, baseURL string, query url.Values) (io.ReadCloser, error) {
	spo.mu.Lock()
	defer spo.mu.Unlock()

retry:
	if !spo.nextReqAt.IsZero() {
		now := time.Now()
		if spo.nextReqAt.Sub(now) > time.Second {
			log.Printf("next spotify request in %s at %s",
				spo.nextReqAt.Sub(now).Truncate(time.Second),
				spo.nextReqAt.Format(time.StampMilli))
		}
	wait:
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Until(spo.nextReqAt)):
			break wait
		}
	}

	url, _ := url.Parse(baseURL)
	url.RawQuery = query.Encode()
	req, err := http.NewRequestWithContext(ctx, "GET", url.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("request error: %w", err)
	}

	token, err := spo.token()
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request error: %w", err)
	}
	if resp.StatusCode == 429 {
		spo.delay = 2 * spo.delay
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter == "" {
			log.Printf("no retry-after header on 429; retrying in 1 minute")
			spo.nextReqAt = time.Now().Add(time.Minute)
		} else {
			seconds, err := strconv.ParseInt(retryAfter, 10, 64)
			if err != nil {
				return nil, err
			}
			waitTime := time.Duration(seconds)*time.Second + time.Second
			log.Printf("429; retrying in %s", waitTime)
			spo.nextReqAt = time.Now().Add(waitTime)
		}
		resp.Body.Close()
		goto retry
	}
	if err := request.Error(resp); err != nil {
		return nil, fmt.Errorf("fetch error: %w", err)
	}

	spo.nextReqAt = time.Now().Add(spo.delay)

	return resp.Body, nil
}

type tokenResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func (spo *Client) token() (string, error) {
	if spo.clientID == "" || spo.clientSecret == "" {
		return "", fmt.Errorf("missing spotify credentials: set SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET")
	}
	if spo.accessToken == "" || spo.expiresAt.Before(time.Now().Add(time.Second)) {
		if err := spo.fetchToken(); err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("Bearer %s", spo.accessToken), nil
}

func (spo *Client) fetchToken() error {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	req, err := http.NewRequest("POST", tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("token request error: %w", err)
	}
	up := fmt.Sprintf("%s:%s", spo.clientID, spo.clientSecret)
	credential := base64.StdEncoding.EncodeToString([]byte(up))
	req.Header.Set("Authorization", fmt.Sprintf("Basic %s", credential))
	req.Header.Set("Content-type", "application/x-www-form-urlencoded")

	requestAt := time.Now()
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("token request error: %w", err)
	}
	defer resp.Body.Close()
	if err := request.Error(resp); err != nil {
		return fmt.Errorf("token fetch error: %w", err)
	}

	var result tokenResult
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&result); err != nil {
		return fmt.Errorf("token decode error: %w", err)
	}

	spo.accessToken = result.AccessToken
	spo.expiresAt = requestAt.Add(time.Duration(result.ExpiresIn) * time.Second)

	return nil
}
