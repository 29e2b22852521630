package reconcile

import "context"

// Catalog is a paginated request-service listing that supports deletion.
type Catalog interface {
	// Name returns the display name of the catalog (e.g. "Overseerr").
	Name() string

	// FetchPage returns the page at the given 1-based index.
	FetchPage(ctx context.Context, pageIndex int) (*Page, error)

	// Delete removes the entry with the given ID from the catalog.
	Delete(ctx context.Context, id int) error
}

// Library answers whether a library service still holds an item.
type Library interface {
	// Exists reports whether ref is held by the library service for kind.
	// A non-success status is (false, nil); an error means the service could not
	// be asked at all.
	Exists(ctx context.Context, kind Kind, ref int) (bool, error)
}
