package service

import "followup_tracker/internal/model"

// ChurchService serves the zone/area/parish hierarchy used by the signup
// flow. The backend has no hierarchy endpoints yet, so this ships the same
// fixed data set the web client used; swap the implementation once the
// endpoints exist.
type ChurchService interface {
	Zones() []model.Zone
	Areas(zonalID string) []model.Area
	Parishes(areaID string) []model.Parish
}

type churchService struct{}

// NewChurchService creates a new ChurchService.
func NewChurchService() ChurchService {
	return &churchService{}
}

func (s *churchService) Zones() []model.Zone {
	return []model.Zone{
		{ID: "zone_1", Name: "Zone 1"},
		{ID: "zone_2", Name: "Zone 2"},
		{ID: "zone_3", Name: "Zone 3"},
	}
}

func (s *churchService) Areas(zonalID string) []model.Area {
	if zonalID == "" {
		zonalID = "zone_1"
	}
	return []model.Area{
		{ID: "area_1", Name: "Area 1", ZonalID: zonalID},
		{ID: "area_2", Name: "Area 2", ZonalID: zonalID},
		{ID: "area_3", Name: "Area 3", ZonalID: zonalID},
	}
}

func (s *churchService) Parishes(areaID string) []model.Parish {
	if areaID == "" {
		areaID = "area_1"
	}
	return []model.Parish{
		{ID: "parish_love", Name: "Love parish", AreaID: areaID},
		{ID: "parish_hope", Name: "Hope parish", AreaID: areaID},
		{ID: "parish_gentle", Name: "Gentle spirit parish", AreaID: areaID},
	}
}
