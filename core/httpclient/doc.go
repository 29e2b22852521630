// Package httpclient provides the shared HTTP transport used to talk to the
// request services (Overseerr, Jellyseerr) and the library services (Sonarr, Radarr).
//
// It wraps go-retryablehttp so that every outgoing call shares one connection pool,
// carries the service API key in the x-api-key header, and is bounded by a per-call
// timeout. The retry budget defaults to zero: a failed call is reported exactly once.
//
// # Error Taxonomy
//
// Callers receive one of three typed errors, all usable with errors.As:
//   - TransportError: the service could not be reached or the body could not be read.
//   - APIError: the service answered with a non-2xx status.
//   - DecodeError: the body did not have the expected shape.
//
// # Usage
//
//	client := httpclient.New(cfg.HTTP, logger)
//	resp, err := client.Do(ctx, http.MethodGet, "http://sonarr:8989/api/v3/series/12", apiKey)
//	if err != nil {
//	    return err
//	}
//	if !resp.IsSuccess() {
//	    return httpclient.NewAPIError(http.MethodGet, url, resp)
//	}
package httpclient
