package db

import (
	"testing"

	"district-sim/config"
)

func TestStoreSetAndGet(t *testing.T) {
	store := NewStore()

	// Test missing district
	if _, ok := store.Get("nowhere"); ok {
		t.Fatal("Expected missing district to be reported as not found")
	}

	vec := []float64{1, 2, 3}
	store.Set("A", config.CategorySocial, vec)
	store.Set("B", config.CategorySocial, []float64{4})
	store.Set("A", config.CategoryHousing, []float64{5, 6})

	set, ok := store.Get("A")
	if !ok {
		t.Fatal("Expected district A to exist")
	}
	if len(set) != 2 || len(set[config.CategorySocial]) != 3 || len(set[config.CategoryHousing]) != 2 {
		t.Fatalf("Unexpected vector set: %v", set)
	}

	// the store keeps its own copy
	vec[0] = 100
	set[config.CategorySocial][1] = 100
	again, _ := store.Get("A")
	if again[config.CategorySocial][0] != 1 || again[config.CategorySocial][1] != 2 {
		t.Errorf("Store data aliased by caller: %v", again[config.CategorySocial])
	}

	if store.Len() != 2 {
		t.Errorf("Expected 2 districts, got %d", store.Len())
	}
}

func TestStoreOverwrite(t *testing.T) {
	store := NewStore()
	store.Set("A", config.CategorySocial, []float64{1, 2, 3})
	store.Set("A", config.CategorySocial, []float64{9})

	set, _ := store.Get("A")
	got := set[config.CategorySocial]
	if len(got) != 1 || got[0] != 9 {
		t.Fatalf("Expected later write to replace vector, got %v", got)
	}
}

func TestStoreEmptyVectorIgnored(t *testing.T) {
	store := NewStore()
	store.Set("A", config.CategorySocial, nil)

	if _, ok := store.Get("A"); ok {
		t.Fatal("Empty vector should not create a district")
	}

	store.Set("A", config.CategorySocial, []float64{1})
	store.Set("A", config.CategoryHousing, []float64{})
	set, _ := store.Get("A")
	if _, ok := set[config.CategoryHousing]; ok {
		t.Error("Empty vector should not create a category key")
	}
}

func TestStoreInsertionOrder(t *testing.T) {
	store := NewStore()
	for _, id := range []string{"C", "A", "B"} {
		store.Set(id, config.CategorySocial, []float64{1})
	}
	// re-setting an existing district keeps its position
	store.Set("C", config.CategoryEconomic, []float64{2})

	ids := store.IDs()
	want := []string{"C", "A", "B"}
	if len(ids) != len(want) {
		t.Fatalf("Expected %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, ids)
		}
	}
}
