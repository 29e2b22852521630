package reconcile

import (
	"errors"
	"fmt"
)

// Kind is the media type of a catalog entry. It selects the library service.
type Kind string

const (
	// KindEpisodic is a series tracked by Sonarr.
	KindEpisodic Kind = "tv"
	// KindFilm is a movie tracked by Radarr.
	KindFilm Kind = "movie"
)

// ParseKind converts the wire media type into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindEpisodic, KindFilm:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown media type %q", s)
	}
}

// Entry is one request-catalog record.
type Entry struct {
	// ID identifies the entry within its catalog.
	ID int
	// ExternalRef is the library-service identifier. Nil means the entry was never
	// linked to library content.
	ExternalRef *int
	// Kind selects which library service owns ExternalRef.
	Kind Kind
}

// Page is one page of a catalog listing.
type Page struct {
	// Number is the 1-based page number reported by the service.
	Number int
	// Count is the total number of pages at fetch time. It may shrink between fetches.
	Count int
	// Entries is the page content in service order.
	Entries []Entry
}

// Outcome is the result of reconciling one entry.
type Outcome int

const (
	// OutcomeKept means the entry's media still exists; nothing was done.
	OutcomeKept Outcome = iota
	// OutcomeDeleted means the entry was removed from the catalog.
	OutcomeDeleted
	// OutcomeDeleteFailed means a delete was attempted and failed.
	OutcomeDeleteFailed
	// OutcomeWouldDelete means a delete was warranted but skipped in dry-run mode.
	OutcomeWouldDelete
)

// String implements fmt.Stringer
func (o Outcome) String() string {
	switch o {
	case OutcomeKept:
		return "kept"
	case OutcomeDeleted:
		return "deleted"
	case OutcomeDeleteFailed:
		return "delete_failed"
	case OutcomeWouldDelete:
		return "would_delete"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Stats counts what happened while scanning one catalog.
type Stats struct {
	Pages        int
	Kept         int
	Deleted      int
	DeleteFailed int
	WouldDelete  int
}

func (s *Stats) add(outcomes []Outcome) {
	for _, o := range outcomes {
		switch o {
		case OutcomeKept:
			s.Kept++
		case OutcomeDeleted:
			s.Deleted++
		case OutcomeDeleteFailed:
			s.DeleteFailed++
		case OutcomeWouldDelete:
			s.WouldDelete++
		}
	}
}

// ErrFetchLimit is returned when a scan exceeds Config.MaxPageFetches.
var ErrFetchLimit = errors.New("page fetch limit reached")

// CheckErrorPolicy decides what a failed existence check means.
type CheckErrorPolicy string

const (
	// CheckErrorDelete treats an unreachable library service as "media missing".
	CheckErrorDelete CheckErrorPolicy = "delete"
	// CheckErrorKeep keeps the entry when the library service is unreachable.
	CheckErrorKeep CheckErrorPolicy = "keep"
)

// IsValid reports whether p is a known policy.
func (p CheckErrorPolicy) IsValid() bool {
	switch p {
	case CheckErrorDelete, CheckErrorKeep:
		return true
	default:
		return false
	}
}

// Config holds configuration for the reconciliation engine.
type Config struct {
	// Concurrency caps concurrent reconciliations per page. Zero means one per entry.
	Concurrency int `mapstructure:"concurrency" default:"0"`
	// MaxPageFetches caps page fetches per catalog. Zero disables the guard.
	MaxPageFetches int `mapstructure:"max_page_fetches" default:"10000"`
	// OnCheckError is the CheckErrorPolicy applied when an existence check fails.
	OnCheckError CheckErrorPolicy `mapstructure:"on_check_error" default:"delete"`
}

// Options controls engine behavior for a single run.
type Options struct {
	Config

	// DryRun decides every entry but never issues a delete.
	DryRun bool
}
