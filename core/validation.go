// Copyright 2026 Kartolab
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "fmt"

// ValidatePOI validates a POI according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//   - Location must be within valid latitude/longitude ranges
//   - Rating must be within [0, 5]
//   - VisitMinutes must not be negative
//
// NOT validated:
//   - ID (0 is valid before ingestion assigns one)
//   - Category and Tags (free-form, may be empty)
func ValidatePOI(poi *POI) error {
	if poi == nil {
		return fmt.Errorf("%w: poi is nil", ErrInvalidPOI)
	}

	if poi.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPOI, ErrEmptyName)
	}

	if err := ValidateCoordinates(poi.Location); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPOI, err)
	}

	if poi.Rating < 0 || poi.Rating > 5 {
		return fmt.Errorf("%w: %w: got %g", ErrInvalidPOI, ErrInvalidRating, poi.Rating)
	}

	if poi.VisitMinutes < 0 {
		return fmt.Errorf("%w: %w: got %d", ErrInvalidPOI, ErrInvalidVisitDuration, poi.VisitMinutes)
	}

	return nil
}

// ValidateQuery validates a Query according to domain rules.
//
// Validation rules:
//   - Center must be within valid latitude/longitude ranges
//   - RadiusKm must be positive
//
// An out-of-range center or non-positive radius fails fast instead of
// silently producing an empty result, since an empty result would mask
// the caller's mistake.
//
// NOT validated:
//   - Text (an empty query legitimately matches nothing)
func ValidateQuery(query *Query) error {
	if query == nil {
		return fmt.Errorf("%w: query is nil", ErrInvalidQuery)
	}

	if err := ValidateCoordinates(query.Center); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}

	if query.RadiusKm <= 0 {
		return fmt.Errorf("%w: %w: got %g", ErrInvalidQuery, ErrInvalidRadius, query.RadiusKm)
	}

	return nil
}

// ValidateSynonymGroup validates a SynonymGroup according to domain rules.
//
// Validation rules:
//   - Key must not be empty
//   - Tokens must contain at least one token
func ValidateSynonymGroup(group *SynonymGroup) error {
	if group == nil {
		return fmt.Errorf("%w: group is nil", ErrInvalidSynonymGroup)
	}

	if group.Key == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSynonymGroup, ErrEmptyName)
	}

	if len(group.Tokens) == 0 {
		return fmt.Errorf("%w: group %q has no tokens", ErrInvalidSynonymGroup, group.Key)
	}

	return nil
}

// ValidateCoordinates validates that a coordinate pair lies within the
// valid latitude and longitude ranges.
func ValidateCoordinates(c Coordinates) error {
	if !IsValidLatitude(c.Lat) || !IsValidLongitude(c.Lon) {
		return fmt.Errorf("%w: (%g, %g)", ErrInvalidCoordinates, c.Lat, c.Lon)
	}
	return nil
}

// IsValidLatitude checks if a latitude is within [-90, 90] degrees.
func IsValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

// IsValidLongitude checks if a longitude is within [-180, 180] degrees.
func IsValidLongitude(lon float64) bool {
	return lon >= -180 && lon <= 180
}
