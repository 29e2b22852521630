// Package reconcile removes request-catalog entries whose media is no longer held
// by the library services.
//
// # Architecture
//
// The engine is built from three layers, each driving the one below it:
//
//   - Run: iterates the configured catalogs in order. A catalog that fails to scan
//     is reported and the next one still runs.
//   - Scan: walks one catalog page by page. Every entry of a page is reconciled
//     concurrently and the page is joined before deciding what to fetch next.
//   - Reconcile: decides, for a single entry, whether it should be deleted and
//     issues the delete. Errors never escape this layer; they become an Outcome.
//
// # Pagination Under Deletion
//
// The catalog is paginated by offset, and deleting entries shifts every later entry
// towards the front. Whenever a page produced at least one deletion the same page
// index is fetched again instead of advancing, so no entry slides past the scan.
// The scan ends when the service reports the current page as the last one.
//
// # Adapters
//
// Catalog and Library abstract the request service and the library services. See
// feature/seerr and feature/arr for the HTTP implementations, and reconcile/mocks for
// testify mocks.
//
// # Usage Example
//
//	engine := reconcile.NewEngine(library, reconcile.Options{Config: cfg.Reconcile}, logger)
//	if err := engine.Run(ctx, []reconcile.Catalog{overseerr, jellyseerr}); err != nil {
//	    logger.Error("reconciliation incomplete", zap.Error(err))
//	}
package reconcile
