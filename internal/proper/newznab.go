package proper

import (
	"context"
	"time"

	"github.com/vmunix/properd/pkg/newznab"
)

// NewznabProvider adapts a Newznab client to the Provider interface.
type NewznabProvider struct {
	client  *newznab.Client
	enabled bool
}

// NewNewznabProvider wraps a Newznab client. Disabled providers stay in the
// configured provider list but are skipped by the aggregator.
func NewNewznabProvider(client *newznab.Client, enabled bool) *NewznabProvider {
	return &NewznabProvider{client: client, enabled: enabled}
}

func (p *NewznabProvider) Name() string { return p.client.Name() }

func (p *NewznabProvider) Active() bool { return p.enabled }

// FindPropers queries the indexer and converts results to raw candidates.
func (p *NewznabProvider) FindPropers(ctx context.Context, since time.Time) ([]RawCandidate, error) {
	releases, err := p.client.FindPropers(ctx, since)
	if err != nil {
		return nil, err
	}
	out := make([]RawCandidate, 0, len(releases))
	for _, rel := range releases {
		out = append(out, RawCandidate{
			Name: rel.Title,
			URL:  rel.DownloadURL,
			Date: rel.PublishDate,
		})
	}
	return out, nil
}
