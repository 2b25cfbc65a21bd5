package profiles

import (
	"context"

	"github.com/mahadevpnair10/STAYSYNC/catalog"
	"github.com/rs/zerolog"
)

// Source labels for the profile list metric.
const (
	SourceSupabase = "supabase"
	SourceCatalog  = "catalog"
)

// Service resolves the profile name list, preferring Supabase and falling
// back to the local catalog.
type Service struct {
	client  *Client
	catalog *catalog.Catalog
	log     zerolog.Logger
}

// NewService wires the remote client and the catalog fallback.
func NewService(client *Client, cat *catalog.Catalog, log zerolog.Logger) *Service {
	return &Service{
		client:  client,
		catalog: cat,
		log:     log,
	}
}

// Names returns the profile names plus the source they came from. A remote
// failure is logged and absorbed by the fallback, never surfaced.
func (s *Service) Names(ctx context.Context) ([]string, string) {
	if s.client != nil && s.client.Configured() {
		names, err := s.client.Names(ctx)
		if err == nil && len(names) > 0 {
			return names, SourceSupabase
		}
		if err != nil {
			s.log.Warn().Err(err).Msg("supabase profile fetch failed, falling back to catalog")
		}
	}
	return s.catalog.Names(), SourceCatalog
}

// RemoteNames returns names from Supabase only, surfacing any error.
func (s *Service) RemoteNames(ctx context.Context) ([]string, error) {
	return s.client.Names(ctx)
}
