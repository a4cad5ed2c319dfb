package quality_test

import (
	"sort"
	"testing"

	"github.com/ThiRaBrTNK/Radarr/pkg/quality"
	"github.com/ThiRaBrTNK/Radarr/pkg/selectoptions"
)

func TestCatalogResolvesAscendingByID(t *testing.T) {
	options, err := selectoptions.Resolve(quality.Catalog)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(options) != len(quality.All()) {
		t.Fatalf("expected %d options, got %d", len(quality.All()), len(options))
	}
	if !sort.SliceIsSorted(options, func(i, j int) bool { return options[i].Value < options[j].Value }) {
		t.Fatalf("options not sorted by rank: %#v", options)
	}
	if options[0].Name != "Unknown" || options[len(options)-1].Name != "WORKPRINT" {
		t.Fatalf("unexpected ladder ends: first %q last %q", options[0].Name, options[len(options)-1].Name)
	}
}

func TestIDsAreUnique(t *testing.T) {
	seen := map[int]string{}
	for _, q := range quality.All() {
		if prev, ok := seen[q.ID]; ok {
			t.Fatalf("id %d shared by %q and %q", q.ID, prev, q.Name)
		}
		seen[q.ID] = q.Name
	}
}

func TestFindByID(t *testing.T) {
	q, ok := quality.FindByID(7)
	if !ok || q != quality.Bluray1080p {
		t.Fatalf("expected Bluray-1080p, got %#v", q)
	}
	if _, ok := quality.FindByID(999); ok {
		t.Fatalf("expected unknown id to miss")
	}
}
