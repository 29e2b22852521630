package seerr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"seerr-cleaner/core/httpclient"
	"seerr-cleaner/core/reconcile"
)

// PageSize is the number of entries requested per page.
const PageSize = 20

// Client talks to one Overseerr or Jellyseerr instance.
type Client struct {
	name    string
	baseURL string
	apiKey  string
	http    *httpclient.Client
}

// NewClient creates a client for the service named name at endpoint.
func NewClient(name string, endpoint httpclient.Endpoint, hc *httpclient.Client) *Client {
	return &Client{
		name:    name,
		baseURL: endpoint.BaseURL(),
		apiKey:  endpoint.Key,
		http:    hc,
	}
}

// Name returns the display name of the service.
func (c *Client) Name() string {
	return c.name
}

type mediaResponse struct {
	PageInfo *pageInfo    `json:"pageInfo"`
	Results  *[]mediaItem `json:"results"`
}

type pageInfo struct {
	Page  int `json:"page"`
	Pages int `json:"pages"`
}

type mediaItem struct {
	ID                int    `json:"id"`
	ExternalServiceID *int   `json:"externalServiceId"`
	MediaType         string `json:"mediaType"`
}

// FetchPage retrieves the page at the 1-based pageIndex.
func (c *Client) FetchPage(ctx context.Context, pageIndex int) (*reconcile.Page, error) {
	if pageIndex < 1 {
		return nil, fmt.Errorf("page index must be at least 1, got %d", pageIndex)
	}

	query := url.Values{}
	query.Set("take", strconv.Itoa(PageSize))
	query.Set("skip", strconv.Itoa((pageIndex-1)*PageSize))
	endpoint := c.baseURL + "/media?" + query.Encode()

	resp, err := c.http.Do(ctx, http.MethodGet, endpoint, c.apiKey)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, httpclient.NewAPIError(http.MethodGet, endpoint, resp)
	}

	page, err := decodePage(resp.Body)
	if err != nil {
		return nil, &httpclient.DecodeError{URL: endpoint, Err: err}
	}
	return page, nil
}

func decodePage(body []byte) (*reconcile.Page, error) {
	var raw mediaResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	if raw.PageInfo == nil {
		return nil, errors.New("missing pageInfo")
	}
	if raw.Results == nil {
		return nil, errors.New("missing results")
	}
	items := *raw.Results

	page := &reconcile.Page{
		Number:  raw.PageInfo.Page,
		Count:   raw.PageInfo.Pages,
		Entries: make([]reconcile.Entry, 0, len(items)),
	}
	for _, item := range items {
		kind, err := reconcile.ParseKind(item.MediaType)
		if err != nil {
			return nil, fmt.Errorf("media %d: %w", item.ID, err)
		}
		page.Entries = append(page.Entries, reconcile.Entry{
			ID:          item.ID,
			ExternalRef: item.ExternalServiceID,
			Kind:        kind,
		})
	}
	return page, nil
}

// Delete removes the media entry with the given id.
func (c *Client) Delete(ctx context.Context, id int) error {
	endpoint := c.baseURL + "/media/" + strconv.Itoa(id)

	resp, err := c.http.Do(ctx, http.MethodDelete, endpoint, c.apiKey)
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return httpclient.NewAPIError(http.MethodDelete, endpoint, resp)
	}
	return nil
}
