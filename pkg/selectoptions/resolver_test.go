package selectoptions_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ThiRaBrTNK/Radarr/pkg/model"
	"github.com/ThiRaBrTNK/Radarr/pkg/selectoptions"
)

type letter int

const (
	letterB letter = 0
	letterC letter = 1
	letterA letter = 2
)

func (l letter) String() string {
	switch l {
	case letterA:
		return "A"
	case letterB:
		return "B"
	case letterC:
		return "C"
	default:
		return "?"
	}
}

type ladder struct {
	calls int
}

func (l *ladder) CatalogName() string { return "ladder" }

func (l *ladder) Ranks() []selectoptions.Entry {
	l.calls++
	return []selectoptions.Entry{
		{Name: "Gold", Value: 30},
		{Name: "Bronze", Value: 10},
		{Name: "Silver", Value: 20},
	}
}

type bogus struct{}

func (bogus) CatalogName() string { return "bogus" }

func TestResolve_EnumSortedByValue(t *testing.T) {
	catalog := selectoptions.Enum("letters", letterA, letterB, letterC)

	got, err := selectoptions.Resolve(catalog)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := []model.SelectOption{
		{Name: "B", Value: 0},
		{Name: "C", Value: 1},
		{Name: "A", Value: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_RankedCatalog(t *testing.T) {
	got, err := selectoptions.Resolve(&ladder{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := []model.SelectOption{
		{Name: "Bronze", Value: 10},
		{Name: "Silver", Value: 20},
		{Name: "Gold", Value: 30},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_UserDataIsEmpty(t *testing.T) {
	got, err := selectoptions.Resolve(selectoptions.Profiles)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", got)
	}
}

func TestResolve_Unsupported(t *testing.T) {
	for _, catalog := range []selectoptions.Catalog{nil, bogus{}} {
		if _, err := selectoptions.Resolve(catalog); !errors.Is(err, selectoptions.ErrUnsupportedCatalog) {
			t.Fatalf("%T: expected ErrUnsupportedCatalog, got %v", catalog, err)
		}
	}
}

func TestRegistry_CachesResolvedOptions(t *testing.T) {
	reg := selectoptions.NewRegistry(&ladder{}, selectoptions.Profiles,
		selectoptions.Enum("letters", letterA, letterB, letterC))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := reg.ResolveName("letters"); err != nil {
				t.Errorf("resolve: %v", err)
			}
		}()
	}
	wg.Wait()

	first, err := reg.ResolveName("ladder")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	first[0].Name = "mutated"
	second, err := reg.ResolveName("ladder")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if second[0].Name != "Bronze" {
		t.Fatalf("cached options leaked a caller mutation: %#v", second)
	}

	if got := reg.Names(); !cmp.Equal([]string{"ladder", "letters", "profile"}, got) {
		t.Fatalf("unexpected names: %v", got)
	}
	if _, err := reg.ResolveName("missing"); !errors.Is(err, selectoptions.ErrUnsupportedCatalog) {
		t.Fatalf("expected ErrUnsupportedCatalog for unknown name, got %v", err)
	}
}

func TestRegistry_RegisterReplacesCache(t *testing.T) {
	reg := selectoptions.NewRegistry(&ladder{})
	if _, err := reg.ResolveName("ladder"); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	replacement := &ladder{}
	reg.Register(replacement)
	if _, err := reg.ResolveName("ladder"); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if replacement.calls != 1 {
		t.Fatalf("expected replacement catalog to be resolved once, got %d", replacement.calls)
	}
}

type shadowLadder struct{}

func (shadowLadder) CatalogName() string { return "ladder" }

func (shadowLadder) Ranks() []selectoptions.Entry {
	return []selectoptions.Entry{{Name: "Tin", Value: 1}}
}

func TestRegistry_UnregisteredCatalogSharingANameIsNotServedFromCache(t *testing.T) {
	registered := &ladder{}
	reg := selectoptions.NewRegistry(registered)
	if _, err := reg.ResolveName("ladder"); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	got, err := reg.Resolve(shadowLadder{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := []model.SelectOption{{Name: "Tin", Value: 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}

	// A second instance of the registered type is a different catalog too.
	other := &ladder{}
	if _, err := reg.Resolve(other); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if other.calls != 1 {
		t.Fatalf("expected unregistered catalog to be resolved directly, got %d calls", other.calls)
	}

	if _, err := reg.Resolve(registered); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if registered.calls != 1 {
		t.Fatalf("expected registered catalog to be served from cache, got %d calls", registered.calls)
	}
}
