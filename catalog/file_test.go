package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")

	if err := WriteFile(path, Sample()); err != nil {
		t.Fatalf("Failed to write catalog: %v", err)
	}

	loaded, err := ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read catalog: %v", err)
	}

	want := Sample()
	if len(loaded) != len(want) {
		t.Fatalf("Expected %d POIs, got %d", len(want), len(loaded))
	}

	for i, p := range loaded {
		if p.Id != want[i].Id {
			t.Errorf("POI %d: expected ID %d, got %d", i, want[i].Id, p.Id)
		}
		if p.Name != want[i].Name {
			t.Errorf("POI %d: expected name %q, got %q", i, want[i].Name, p.Name)
		}
		if p.Location != want[i].Location {
			t.Errorf("POI %d: expected location %+v, got %+v", i, want[i].Location, p.Location)
		}
		if p.Category != want[i].Category {
			t.Errorf("POI %d: expected category %q, got %q", i, want[i].Category, p.Category)
		}
		if p.Rating != want[i].Rating {
			t.Errorf("POI %d: expected rating %g, got %g", i, want[i].Rating, p.Rating)
		}
		if p.VisitMinutes != want[i].VisitMinutes {
			t.Errorf("POI %d: expected visit minutes %d, got %d", i, want[i].VisitMinutes, p.VisitMinutes)
		}
		if len(p.Tags) != len(want[i].Tags) {
			t.Errorf("POI %d: expected %d tags, got %d", i, len(want[i].Tags), len(p.Tags))
		}
	}
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
}

func TestReadFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	_, err := ReadFile(path)
	if err == nil {
		t.Fatal("Expected error for malformed catalog")
	}
}
