// Package spotify searches the Spotify catalogue with an app-level client credentials token.
package spotify

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/TimDev9492/chad-website/config"
	"github.com/TimDev9492/chad-website/internal/domain/entity"
	"github.com/TimDev9492/chad-website/internal/domain/service"
	"github.com/TimDev9492/chad-website/internal/errors"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	defaultTokenURL = "https://accounts.spotify.com/api/token"
	defaultAPIURL   = "https://api.spotify.com/v1"

	// tokenExpiryBuffer refreshes the cached token this long before Spotify would reject it.
	tokenExpiryBuffer = 5 * time.Minute
	requestTimeout    = 10 * time.Second
)

// Client implements service.MusicSearch.
type Client struct {
	apiURL     string
	httpClient *http.Client
}

// fetchTokenSource asks the token endpoint on every call; caching is left to the reuse wrapper.
type fetchTokenSource struct {
	ctx context.Context
	cfg *clientcredentials.Config
}

func (s fetchTokenSource) Token() (*oauth2.Token, error) {
	return s.cfg.Token(s.ctx)
}

// NewClient builds the search client. The process keeps one cached token which is
// refreshed lazily; concurrent refreshes are serialized by oauth2.ReuseTokenSource.
func NewClient(cfg *config.Config) (service.MusicSearch, error) {
	sc := cfg.Spotify
	if sc == nil || sc.ClientID == "" || sc.ClientSecret == "" {
		return nil, errors.New("spotify client id and secret must be provided")
	}

	tokenURL := sc.TokenURL
	if tokenURL == "" {
		tokenURL = defaultTokenURL
	}
	apiURL := sc.APIURL
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	return newClient(context.Background(), sc.ClientID, sc.ClientSecret, tokenURL, apiURL, &http.Client{Timeout: requestTimeout}), nil
}

func newClient(ctx context.Context, clientID, clientSecret, tokenURL, apiURL string, base *http.Client) *Client {
	ccCfg := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	tokenCtx := context.WithValue(ctx, oauth2.HTTPClient, base)
	tokens := oauth2.ReuseTokenSourceWithExpiry(nil, fetchTokenSource{ctx: tokenCtx, cfg: ccCfg}, tokenExpiryBuffer)

	httpClient := oauth2.NewClient(tokenCtx, tokens)
	httpClient.Timeout = base.Timeout

	return &Client{
		apiURL:     strings.TrimRight(apiURL, "/"),
		httpClient: httpClient,
	}
}

type searchResponse struct {
	Tracks struct {
		Items []track `json:"items"`
	} `json:"tracks"`
}

type track struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Artists []struct {
		Name string `json:"name"`
	} `json:"artists"`
	Album struct {
		Name        string `json:"name"`
		ReleaseDate string `json:"release_date"`
		Images      []struct {
			URL string `json:"url"`
		} `json:"images"`
	} `json:"album"`
	DurationMS   int `json:"duration_ms"`
	Popularity   int `json:"popularity"`
	ExternalURLs struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
}

func (t *track) toDomain() *entity.SongSearchResult {
	artists := make([]string, 0, len(t.Artists))
	for _, artist := range t.Artists {
		artists = append(artists, artist.Name)
	}

	var cover string
	if len(t.Album.Images) > 0 {
		cover = t.Album.Images[0].URL
	}

	return &entity.SongSearchResult{
		ID:            t.ID,
		Name:          t.Name,
		Artists:       artists,
		Album:         t.Album.Name,
		ReleaseDate:   t.Album.ReleaseDate,
		Duration:      int(math.Round(float64(t.DurationMS) / 1000)),
		Popularity:    t.Popularity,
		CoverImageURL: cover,
		SpotifyURL:    t.ExternalURLs.Spotify,
	}
}

// SearchTracks runs a track search. Durations are returned in whole seconds.
func (c *Client) SearchTracks(ctx context.Context, query string, limit int) ([]*entity.SongSearchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("type", "track")
	params.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create search request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "spotify search failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))

		return nil, errors.Errorf("spotify search failed with status %d: %s", resp.StatusCode, string(body))
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode search response")
	}

	results := make([]*entity.SongSearchResult, 0, len(payload.Tracks.Items))
	for i := range payload.Tracks.Items {
		results = append(results, payload.Tracks.Items[i].toDomain())
	}

	return results, nil
}
