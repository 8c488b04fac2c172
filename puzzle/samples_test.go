package puzzle

import (
	"testing"
)

func TestSamplesWellFormed(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range Samples {
		if s.Name == "" {
			t.Errorf("sample with empty name")
		}
		if seen[s.Name] {
			t.Errorf("duplicate sample name %q", s.Name)
		}
		seen[s.Name] = true
		if err := s.Grid.Check(); err != nil {
			t.Errorf("sample %q is malformed: %v", s.Name, err)
		}
		empty := 0
		for _, v := range s.Grid.Values() {
			if v == 0 {
				empty++
			}
		}
		if empty == 0 {
			t.Errorf("sample %q has nothing to solve", s.Name)
		}
	}
}

func TestSampleByName(t *testing.T) {
	for _, s := range Samples {
		found, ok := SampleByName(s.Name)
		if !ok {
			t.Errorf("sample %q not found by name", s.Name)
		} else if found.Grid != s.Grid {
			t.Errorf("lookup of %q returned a different grid", s.Name)
		}
	}
	if _, ok := SampleByName("no-such-sample"); ok {
		t.Errorf("lookup of an unknown name succeeded")
	}
}
