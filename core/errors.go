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

import "errors"

// Domain validation errors
var (
	// ErrInvalidPOI indicates a POI failed validation.
	ErrInvalidPOI = errors.New("invalid poi")

	// ErrInvalidQuery indicates a Query failed validation.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrInvalidSynonymGroup indicates a SynonymGroup failed validation.
	ErrInvalidSynonymGroup = errors.New("invalid synonym group")

	// ErrEmptyName indicates the Name field is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrInvalidCoordinates indicates a coordinate outside the valid
	// latitude or longitude range.
	ErrInvalidCoordinates = errors.New("coordinates out of range")

	// ErrInvalidRadius indicates a search radius that is not positive.
	ErrInvalidRadius = errors.New("radius must be positive")

	// ErrInvalidRating indicates a rating outside the [0, 5] range.
	ErrInvalidRating = errors.New("rating must be between 0 and 5")

	// ErrInvalidVisitDuration indicates a negative visit duration.
	ErrInvalidVisitDuration = errors.New("visit duration cannot be negative")
)
