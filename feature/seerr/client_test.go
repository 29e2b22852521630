package seerr

import (
	"context"
	"net/http/httptest"
	"testing"

	"seerr-cleaner/core/httpclient"
	"seerr-cleaner/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestClient(t *testing.T, app *fiber.App) (*Client, *httptest.Server) {
	srv := httptest.NewServer(adaptor.FiberApp(app))
	t.Cleanup(srv.Close)

	hc := httpclient.New(httpclient.Config{TimeoutSeconds: 5}, zap.NewNop())
	client := NewClient("Overseerr", httpclient.Endpoint{URL: srv.URL + "/api/v1/", Key: "secret"}, hc)
	return client, srv
}

// newApp copies request values so handlers can hand them to the test goroutine.
func newApp() *fiber.App {
	return fiber.New(fiber.Config{Immutable: true})
}

func sendJSON(c *fiber.Ctx, status int, body string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(status).SendString(body)
}

func TestFetchPage(t *testing.T) {
	var take, skip, key string

	app := newApp()
	app.Get("/api/v1/media", func(c *fiber.Ctx) error {
		take, skip, key = c.Query("take"), c.Query("skip"), c.Get("x-api-key")
		return sendJSON(c, 200, `{
			"pageInfo": {"page": 3, "pages": 5, "results": 97},
			"results": [
				{"id": 11, "mediaType": "tv", "status": 5},
				{"id": 12, "externalServiceId": 340, "mediaType": "movie"},
				{"id": 13, "externalServiceId": null, "mediaType": "movie"}
			]
		}`)
	})
	client, _ := setupTestClient(t, app)

	page, err := client.FetchPage(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, "20", take)
	assert.Equal(t, "40", skip)
	assert.Equal(t, "secret", key)

	assert.Equal(t, 3, page.Number)
	assert.Equal(t, 5, page.Count)
	require.Len(t, page.Entries, 3)

	assert.Equal(t, reconcile.Entry{ID: 11, Kind: reconcile.KindEpisodic}, page.Entries[0])
	assert.Equal(t, 12, page.Entries[1].ID)
	assert.Equal(t, reconcile.KindFilm, page.Entries[1].Kind)
	require.NotNil(t, page.Entries[1].ExternalRef)
	assert.Equal(t, 340, *page.Entries[1].ExternalRef)
	assert.Nil(t, page.Entries[2].ExternalRef)
}

func TestFetchPage_FirstPageSkipsNothing(t *testing.T) {
	var skip string

	app := newApp()
	app.Get("/api/v1/media", func(c *fiber.Ctx) error {
		skip = c.Query("skip")
		return sendJSON(c, 200, `{"pageInfo": {"page": 1, "pages": 0}, "results": []}`)
	})
	client, _ := setupTestClient(t, app)

	page, err := client.FetchPage(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "0", skip)
	assert.Empty(t, page.Entries)
	assert.Equal(t, 0, page.Count)
}

func TestFetchPage_StatusError(t *testing.T) {
	app := newApp()
	app.Get("/api/v1/media", func(c *fiber.Ctx) error {
		return sendJSON(c, 500, `{"message": "Something went wrong."}`)
	})
	client, _ := setupTestClient(t, app)

	_, err := client.FetchPage(context.Background(), 1)

	var apiErr *httpclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 500, apiErr.StatusCode)
	assert.Equal(t, "Something went wrong.", apiErr.Message)
	assert.Equal(t, "GET", apiErr.Method)
}

func TestFetchPage_DecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `<html>login</html>`},
		{name: "missing pageInfo", body: `{"results": []}`},
		{name: "missing results", body: `{"pageInfo": {"page": 1, "pages": 1}}`},
		{name: "null results", body: `{"pageInfo": {"page": 1, "pages": 1}, "results": null}`},
		{name: "unknown media type", body: `{"pageInfo": {"page": 1, "pages": 1}, "results": [{"id": 1, "mediaType": "music"}]}`},
		{name: "wrong id type", body: `{"pageInfo": {"page": 1, "pages": 1}, "results": [{"id": "one", "mediaType": "tv"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp()
			app.Get("/api/v1/media", func(c *fiber.Ctx) error {
				return sendJSON(c, 200, tt.body)
			})
			client, _ := setupTestClient(t, app)

			_, err := client.FetchPage(context.Background(), 1)

			var decodeErr *httpclient.DecodeError
			assert.ErrorAs(t, err, &decodeErr)
		})
	}
}

func TestFetchPage_InvalidIndex(t *testing.T) {
	client, _ := setupTestClient(t, newApp())

	_, err := client.FetchPage(context.Background(), 0)
	assert.Error(t, err)
}

func TestFetchPage_TransportError(t *testing.T) {
	client, srv := setupTestClient(t, newApp())
	srv.Close()

	_, err := client.FetchPage(context.Background(), 1)

	var transportErr *httpclient.TransportError
	assert.ErrorAs(t, err, &transportErr)
}

func TestDelete(t *testing.T) {
	var deleted, key string

	app := newApp()
	app.Delete("/api/v1/media/:id", func(c *fiber.Ctx) error {
		if c.Params("id") != "42" {
			return sendJSON(c, 404, `{"message": "Media not found."}`)
		}
		deleted, key = c.Params("id"), c.Get("x-api-key")
		return c.SendStatus(204)
	})
	client, _ := setupTestClient(t, app)

	require.NoError(t, client.Delete(context.Background(), 42))
	assert.Equal(t, "42", deleted)
	assert.Equal(t, "secret", key)

	err := client.Delete(context.Background(), 7)
	var apiErr *httpclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Equal(t, "Media not found.", apiErr.Message)
}

func TestName(t *testing.T) {
	client := NewClient("Jellyseerr", httpclient.Endpoint{URL: "http://localhost/api/v1"}, nil)
	assert.Equal(t, "Jellyseerr", client.Name())
}
