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


package storage

import (
	"fmt"

	"github.com/kartolab/marshrutka/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return id, nil
}

// MarshalPOI serializes a POI to bytes.
func MarshalPOI(poi *core.POI) []byte {
	buf := make([]byte, core.POIMUS.Size(*poi))
	core.POIMUS.Marshal(*poi, buf)
	return buf
}

// UnmarshalPOI deserializes a POI from bytes.
func UnmarshalPOI(data []byte) (*core.POI, error) {
	poi, _, err := core.POIMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &poi, nil
}

// MarshalSynonymGroup serializes a SynonymGroup to bytes.
func MarshalSynonymGroup(group *core.SynonymGroup) []byte {
	buf := make([]byte, core.SynonymGroupMUS.Size(*group))
	core.SynonymGroupMUS.Marshal(*group, buf)
	return buf
}

// UnmarshalSynonymGroup deserializes a SynonymGroup from bytes.
func UnmarshalSynonymGroup(data []byte) (*core.SynonymGroup, error) {
	group, _, err := core.SynonymGroupMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &group, nil
}
