package server

import (
	"context"
	"fmt"
	"net/http"

	"impacttracker/internal/donation"
	"impacttracker/internal/geo"
	"impacttracker/pkg/types"
)

func charityLocation(c *types.CharityWithStories) geo.Point {
	return geo.NewPoint(c.Latitude, c.Longitude)
}

// RankCharities classifies charities by distance from ref, marking the k
// nearest as directly supported.
func RankCharities(ref geo.Point, charities []*types.CharityWithStories, k int) []geo.Ranked[*types.CharityWithStories] {
	return geo.Classify(ref, charities, k, charityLocation)
}

func markerTooltip(name string, distance float64) string {
	return fmt.Sprintf("%s\n%s away", name, formatKM(distance))
}

func buildMarkers(ranked []geo.Ranked[*types.CharityWithStories]) []*types.CharityMarker {
	markers := make([]*types.CharityMarker, len(ranked))
	for i, r := range ranked {
		markers[i] = &types.CharityMarker{
			ID:         r.Item.ID,
			Name:       r.Item.Name,
			Latitude:   r.Item.Latitude,
			Longitude:  r.Item.Longitude,
			DistanceKM: r.DistanceKM,
			Rank:       r.Rank,
			Supported:  r.Supported,
			Tooltip:    markerTooltip(r.Item.Name, r.DistanceKM),
		}
	}
	return markers
}

// loadCharities reads charities from the backend. A failed read is logged and
// treated as an empty list so the map still renders.
func (s *Service) loadCharities(r *http.Request) []*types.CharityWithStories {
	ctx, cancel := context.WithTimeout(r.Context(), backendTimeout)
	defer cancel()

	charities, err := s.backend.FetchCharities(ctx)
	if err != nil {
		s.requestLogger(r).WithError(err).Error("failed to load charities")
		return []*types.CharityWithStories{}
	}

	return charities
}

func (s *Service) handleGetImpact(w http.ResponseWriter, r *http.Request) {
	record, err := s.donationFromContext(r.Context())
	if err != nil {
		s.requestLogger(r).WithError(err).Error("ctx doesn't contain donation")
		s.internalServerError(w)
		return
	}

	k := donation.SupportedCount(record.Amount)
	ranked := RankCharities(s.reference, s.loadCharities(r), k)

	data := &types.ImpactPageData{
		BasePageData:   types.BasePageData{Title: fmt.Sprintf("Your Impact, %s", record.Name)},
		Donation:       record,
		SupportedCount: k,
		Reference:      types.MapPoint{Latitude: s.reference.Latitude, Longitude: s.reference.Longitude},
		Zoom:           s.config.MapZoom,
		TileURL:        s.config.TileURL,
		Markers:        buildMarkers(ranked),
		Notice:         r.URL.Query().Get("notice"),
	}

	if err := s.renderTemplate(w, http.StatusOK, "page.impact", data); err != nil {
		s.requestLogger(r).WithError(err).Error("failed to render impact page")
		s.internalServerError(w)
	}
}

func (s *Service) handleGetMarkers(w http.ResponseWriter, r *http.Request) {
	record, err := s.donationFromContext(r.Context())
	if err != nil {
		s.requestLogger(r).WithError(err).Error("ctx doesn't contain donation")
		s.internalServerError(w)
		return
	}

	k := donation.SupportedCount(record.Amount)
	ranked := RankCharities(s.reference, s.loadCharities(r), k)

	s.writeJSON(w, http.StatusOK, &types.MarkersResponse{
		Reference:      types.MapPoint{Latitude: s.reference.Latitude, Longitude: s.reference.Longitude},
		ReferenceLabel: record.Name,
		SupportedCount: k,
		Markers:        buildMarkers(ranked),
	})
}

func findCharity(charities []*types.CharityWithStories, id string) (*types.CharityWithStories, error) {
	for _, c := range charities {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, types.ErrCharityNotFound
}

func (s *Service) handleGetCharity(w http.ResponseWriter, r *http.Request) {
	charityID := r.PathValue("id")

	charity, err := findCharity(s.loadCharities(r), charityID)
	if err != nil {
		s.requestLogger(r).WithField("charity_id", charityID).Info("charity not found")
		http.NotFound(w, r)
		return
	}

	data := &types.CharityStoryPageData{
		BasePageData: types.BasePageData{Title: charity.Name},
		Charity:      charity,
		Story:        charity.LeadStory(),
	}

	if err := s.renderTemplate(w, http.StatusOK, "page.charity", data); err != nil {
		s.requestLogger(r).WithError(err).Error("failed to render charity story page")
		s.internalServerError(w)
	}
}
