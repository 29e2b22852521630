package arr

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"seerr-cleaner/core/httpclient"
	"seerr-cleaner/core/reconcile"

	"golang.org/x/sync/singleflight"
)

const (
	// ResourceSeries is the Sonarr resource holding episodic media.
	ResourceSeries = "series"
	// ResourceMovie is the Radarr resource holding films.
	ResourceMovie = "movie"
)

// Client checks item existence on one library service.
type Client struct {
	name     string
	baseURL  string
	apiKey   string
	resource string
	http     *httpclient.Client
	group    singleflight.Group
}

// NewClient creates a client looking up items under {base}/{resource}/{id}.
func NewClient(name, resource string, endpoint httpclient.Endpoint, hc *httpclient.Client) *Client {
	return &Client{
		name:     name,
		baseURL:  endpoint.BaseURL(),
		apiKey:   endpoint.Key,
		resource: resource,
		http:     hc,
	}
}

// NewSonarr creates a client for a Sonarr instance.
func NewSonarr(endpoint httpclient.Endpoint, hc *httpclient.Client) *Client {
	return NewClient("Sonarr", ResourceSeries, endpoint, hc)
}

// NewRadarr creates a client for a Radarr instance.
func NewRadarr(endpoint httpclient.Endpoint, hc *httpclient.Client) *Client {
	return NewClient("Radarr", ResourceMovie, endpoint, hc)
}

// Name returns the display name of the service.
func (c *Client) Name() string {
	return c.name
}

// Exists reports whether the service answers the item lookup with a 2xx status.
func (c *Client) Exists(ctx context.Context, id int) (bool, error) {
	key := strconv.Itoa(id)
	v, err, _ := c.group.Do(key, func() (any, error) {
		endpoint := c.baseURL + "/" + c.resource + "/" + key
		resp, err := c.http.Do(ctx, http.MethodGet, endpoint, c.apiKey)
		if err != nil {
			return false, err
		}
		return resp.IsSuccess(), nil
	})
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

// Library routes existence checks to the service owning each media kind.
type Library struct {
	Series *Client
	Movies *Client
}

// NewLibrary creates a Library from a Sonarr and a Radarr client.
func NewLibrary(series, movies *Client) *Library {
	return &Library{Series: series, Movies: movies}
}

// Exists implements reconcile.Library.
func (l *Library) Exists(ctx context.Context, kind reconcile.Kind, ref int) (bool, error) {
	switch kind {
	case reconcile.KindEpisodic:
		return l.Series.Exists(ctx, ref)
	case reconcile.KindFilm:
		return l.Movies.Exists(ctx, ref)
	default:
		return false, fmt.Errorf("no library service for media type %q", kind)
	}
}
