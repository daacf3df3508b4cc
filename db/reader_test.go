package db

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"district-sim/config"
)

func TestReadTableFiltering(t *testing.T) {
	data := strings.Join([]string{
		"GEONAME,TITLE,PCT_ESTIMATE",
		"D1,a,42.5",
		"D1,b,150",
		"D1,c,N/A",
		"D2,a,100",
		"D2,b,",
		"D2,c,-3",
		"D3,a, 7 ",
		"D3,b,NaN",
		"short",
	}, "\n")

	table, err := ReadTable(strings.NewReader(data), config.CategorySocial)
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}
	if table.Outcome != OutcomeFound {
		t.Errorf("Expected OutcomeFound, got %v", table.Outcome)
	}

	want := []StatRow{
		{"D1", config.CategorySocial, 42.5},
		{"D2", config.CategorySocial, 100},
		{"D2", config.CategorySocial, -3},
		{"D3", config.CategorySocial, 7},
	}
	if len(table.Rows) != len(want) {
		t.Fatalf("Expected %d rows, got %d: %v", len(want), len(table.Rows), table.Rows)
	}
	for i, row := range want {
		if table.Rows[i] != row {
			t.Errorf("Row %d: expected %+v, got %+v", i, row, table.Rows[i])
		}
	}

	reasons := map[DropReason]int{}
	for _, d := range table.Dropped {
		reasons[d.Reason]++
	}
	if reasons[DropOutOfRange] != 1 || reasons[DropUnparseable] != 3 || reasons[DropShortRow] != 1 {
		t.Errorf("Unexpected drop reasons: %v", reasons)
	}
	if table.Dropped[0].Line != 3 || table.Dropped[0].Value != "150" {
		t.Errorf("Expected first drop at line 3 with value 150, got %+v", table.Dropped[0])
	}
}

func TestReadTableMissingColumn(t *testing.T) {
	tests := []string{
		"NAME,PCT_ESTIMATE\nD1,1\n",
		"GEONAME,ESTIMATE\nD1,1\n",
		"",
	}

	for _, data := range tests {
		if _, err := ReadTable(strings.NewReader(data), config.CategorySocial); !errors.Is(err, ErrMissingColumn) {
			t.Errorf("Expected ErrMissingColumn for %q, got %v", data, err)
		}
	}
}

func TestReadTableQuotedNames(t *testing.T) {
	data := "\ufeffGEONAME,PCT_ESTIMATE\n" +
		"\"Congressional District 2 (118th Congress), California\",12.5\n"

	table, err := ReadTable(strings.NewReader(data), config.CategoryHousing)
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}
	if len(table.Rows) != 1 || table.Rows[0].Geoname != "Congressional District 2 (118th Congress), California" {
		t.Fatalf("Unexpected rows: %v", table.Rows)
	}
}

func TestLoadTableNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.csv")

	table, err := LoadTable(path, config.CategorySocial)
	if err != nil {
		t.Fatalf("Missing file should not be an error: %v", err)
	}
	if table.Outcome != OutcomeNotFound {
		t.Errorf("Expected OutcomeNotFound, got %v", table.Outcome)
	}
	if len(table.Rows) != 0 || table.Path != path {
		t.Errorf("Unexpected table: %+v", table)
	}
}

func TestLoadTableFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.csv")
	if err := os.WriteFile(path, []byte("GEONAME,PCT_ESTIMATE\nD1,1\nD1,2\n"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	table, err := LoadTable(path, config.CategoryEconomic)
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}
	if table.Outcome != OutcomeFound || len(table.Rows) != 2 || table.Path != path {
		t.Fatalf("Unexpected table: %+v", table)
	}
	if table.Rows[1].Category != config.CategoryEconomic {
		t.Errorf("Expected category to be carried on rows, got %v", table.Rows[1].Category)
	}
}

func TestReadTableNonFinite(t *testing.T) {
	data := "GEONAME,PCT_ESTIMATE\nA,-inf\nA,+Inf\nA,1e400\nA,5\n"

	table, err := ReadTable(strings.NewReader(data), config.CategorySocial)
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}
	if len(table.Rows) != 1 || table.Rows[0].Percent != 5 {
		t.Fatalf("Expected only the finite row to be kept, got %v", table.Rows)
	}
	if len(table.Dropped) != 3 {
		t.Fatalf("Expected 3 dropped rows, got %v", table.Dropped)
	}
	if table.Dropped[0].Reason != DropOutOfRange || table.Dropped[1].Reason != DropOutOfRange {
		t.Errorf("Expected infinities to be out of range, got %v", table.Dropped)
	}
}

func TestReadTableEmptyGeoname(t *testing.T) {
	data := "GEONAME,PCT_ESTIMATE\n,4\n\"\",7\nT,1\n"

	table, err := ReadTable(strings.NewReader(data), config.CategorySocial)
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}
	if len(table.Rows) != 1 || table.Rows[0].Geoname != "T" {
		t.Fatalf("Expected only the named row, got %v", table.Rows)
	}
	if len(table.Dropped) != 2 {
		t.Fatalf("Expected 2 dropped rows, got %v", table.Dropped)
	}
	for _, d := range table.Dropped {
		if d.Reason != DropEmptyName {
			t.Errorf("Expected DropEmptyName, got %v at line %d", d.Reason, d.Line)
		}
	}

	store := NewStore()
	Fold(store, config.CategorySocial, table.Rows)
	if ids := store.IDs(); len(ids) != 1 || ids[0] != "T" {
		t.Errorf("Expected store to hold only T, got %q", ids)
	}
}
