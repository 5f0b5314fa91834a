// README: Destination resolution via Google Places text search.
package places

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"wander/internal/types"
)

// Destination is a simplified place result offered to the client as a
// resolved free-text destination.
type Destination struct {
	Name     string         `json:"name"`
	Address  string         `json:"address"`
	PlaceID  string         `json:"place_id"`
	Rating   float32        `json:"rating"`
	Location types.GeoPoint `json:"location"`
}

// textSearcher is the slice of the Maps client the service uses; satisfied by
// *maps.Client and by fakes in tests.
type textSearcher interface {
	TextSearch(ctx context.Context, r *maps.TextSearchRequest) (maps.PlacesSearchResponse, error)
}

// Service handles interactions with the Google Places API.
type Service struct {
	client textSearcher
	cache  *Cache
}

// NewService creates a Service with the given API key. cache may be nil, in
// which case every lookup hits the Places API.
func NewService(apiKey string, cache *Cache) (*Service, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &Service{client: client, cache: cache}, nil
}

const maxResults = 5

// Resolve turns a free-text query into candidate destinations, newest cache
// entry first. Cache misses fall through to a Places text search.
func (s *Service) Resolve(ctx context.Context, query string) ([]Destination, error) {
	if s.cache != nil {
		if dests, ok := s.cache.Get(ctx, query); ok {
			return dests, nil
		}
	}

	resp, err := s.client.TextSearch(ctx, &maps.TextSearchRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	dests := mapResults(resp.Results)
	if s.cache != nil {
		s.cache.Set(ctx, query, dests)
	}
	return dests, nil
}

func mapResults(results []maps.PlacesSearchResult) []Destination {
	out := make([]Destination, 0, maxResults)
	for _, r := range results {
		out = append(out, Destination{
			Name:    r.Name,
			Address: r.FormattedAddress,
			PlaceID: r.PlaceID,
			Rating:  r.Rating,
			Location: types.GeoPoint{
				Lat: r.Geometry.Location.Lat,
				Lng: r.Geometry.Location.Lng,
			},
		})
		if len(out) == maxResults {
			break
		}
	}
	return out
}
