package catalog

import (
	"testing"

	"github.com/kartolab/marshrutka/core"
)

func TestSample(t *testing.T) {
	pois := Sample()

	if len(pois) != 7 {
		t.Fatalf("Expected 7 sample POIs, got %d", len(pois))
	}

	// IDs are explicit and distinct
	seen := make(map[core.ID]bool, len(pois))
	for _, p := range pois {
		if p.Id == 0 {
			t.Errorf("POI %q has no ID", p.Name)
		}
		if seen[p.Id] {
			t.Errorf("Duplicate ID %d", p.Id)
		}
		seen[p.Id] = true
	}

	// Every sample entry passes validation
	for _, p := range pois {
		if err := core.ValidatePOI(p); err != nil {
			t.Errorf("POI %q fails validation: %v", p.Name, err)
		}
	}

	if pois[0].Name != "Храм Василия Блаженного" {
		t.Errorf("Expected catalog to start with Храм Василия Блаженного, got %q", pois[0].Name)
	}
}

func TestSample_FreshCopy(t *testing.T) {
	first := Sample()
	first[0].Name = "changed"
	first[0].Tags[0] = "changed"

	second := Sample()
	if second[0].Name != "Храм Василия Блаженного" {
		t.Error("Sample() shares POI structs between calls")
	}
	if second[0].Tags[0] != "храм" {
		t.Error("Sample() shares tag slices between calls")
	}
}

func TestSampleSynonyms(t *testing.T) {
	groups := SampleSynonyms()

	if len(groups) != 4 {
		t.Fatalf("Expected 4 synonym groups, got %d", len(groups))
	}

	wantKeys := []string{"церковь", "монастырь", "старый", "москва"}
	for i, want := range wantKeys {
		if groups[i].Key != want {
			t.Errorf("Group %d: expected key %q, got %q", i, want, groups[i].Key)
		}
	}

	// Each group lists its own key among the tokens
	for _, g := range groups {
		found := false
		for _, token := range g.Tokens {
			if token == g.Key {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Group %q does not contain its key", g.Key)
		}
		if err := core.ValidateSynonymGroup(g); err != nil {
			t.Errorf("Group %q fails validation: %v", g.Key, err)
		}
	}
}
