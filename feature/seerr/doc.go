// Package seerr implements reconcile.Catalog over the Overseerr and Jellyseerr APIs.
//
// Both services expose the same media listing, so a single Client serves either one;
// the name passed to NewClient only labels log lines and errors.
//
// # Endpoints
//
//   - GET {base}/media?take=20&skip=N : One page of the media catalog.
//   - DELETE {base}/media/{id} : Removes a media entry together with its requests.
//
// The base URL is the API root, e.g. http://overseerr:5055/api/v1. Every request
// carries the x-api-key header.
//
// # Errors
//
// Non-2xx responses are returned as *httpclient.APIError, network failures as
// *httpclient.TransportError, and bodies that are not a media page (missing pageInfo
// or results, unknown mediaType) as *httpclient.DecodeError.
package seerr
