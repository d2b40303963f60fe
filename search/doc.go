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


// Package search ranks catalog POIs against free-text travel queries.
//
// The Searcher type implements a multi-stage ranking algorithm:
//   - Synonym expansion of the query tokens (single hop, via Dictionary)
//   - A hard geofilter that discards POIs beyond the search radius
//   - Substring token matching against each POI's name and tags
//   - A composite score mixing token points, a category bonus,
//     linear distance decay, and the POI rating
//
// Candidates with a positive token score are returned ordered by
// descending composite score; equal scores keep catalog order.
package search
