// Package arr answers whether Sonarr or Radarr still holds an item.
//
// Library implements reconcile.Library by routing episodic media to Sonarr
// (GET {base}/series/{id}) and films to Radarr (GET {base}/movie/{id}).
//
// Any HTTP response is reduced to a boolean: a 2xx status means the item exists and
// every other status means it does not. Only a failure to reach the service at all is
// returned as an error (*httpclient.TransportError), so the caller can decide what a
// failed check means.
//
// Concurrent lookups of the same id on the same service share a single request.
//
// # Usage
//
//	library := arr.NewLibrary(
//		arr.NewSonarr(cfg.Sonarr, hc),
//		arr.NewRadarr(cfg.Radarr, hc),
//	)
//	held, err := library.Exists(ctx, reconcile.KindFilm, 603)
package arr
