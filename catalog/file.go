package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kartolab/marshrutka/core"
)

// poiRecord is the JSON shape of a catalog entry. Coordinates are flat
// lat/lon fields and the category travels as "type".
type poiRecord struct {
	ID           uint64   `json:"id,omitempty"`
	Name         string   `json:"name"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	Type         string   `json:"type"`
	Tags         []string `json:"tags,omitempty"`
	Rating       float64  `json:"rating"`
	VisitMinutes int      `json:"visit_minutes,omitempty"`
}

func (r *poiRecord) toPOI() *core.POI {
	return &core.POI{
		Id:           core.ID(r.ID),
		Name:         r.Name,
		Location:     core.Coordinates{Lat: r.Latitude, Lon: r.Longitude},
		Category:     r.Type,
		Tags:         r.Tags,
		Rating:       r.Rating,
		VisitMinutes: r.VisitMinutes,
	}
}

func recordFromPOI(p *core.POI) poiRecord {
	return poiRecord{
		ID:           uint64(p.Id),
		Name:         p.Name,
		Latitude:     p.Location.Lat,
		Longitude:    p.Location.Lon,
		Type:         p.Category,
		Tags:         p.Tags,
		Rating:       p.Rating,
		VisitMinutes: p.VisitMinutes,
	}
}

// ReadFile loads a POI catalog from a JSON file. The file holds an array
// of catalog entries; entries without an id get content-based IDs at
// ingest time.
func ReadFile(path string) ([]*core.POI, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var records []poiRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	pois := make([]*core.POI, 0, len(records))
	for i := range records {
		pois = append(pois, records[i].toPOI())
	}
	return pois, nil
}

// WriteFile stores a POI catalog as a JSON file readable by ReadFile.
func WriteFile(path string, pois []*core.POI) error {
	records := make([]poiRecord, 0, len(pois))
	for _, p := range pois {
		records = append(records, recordFromPOI(p))
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}
	return nil
}
