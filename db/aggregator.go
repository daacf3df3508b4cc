package db

import (
	"fmt"
	"path/filepath"
	"sort"

	log "github.com/sirupsen/logrus"

	"district-sim/config"
)

/*
Aggregator builds a Store from the per-state, per-category source tables.

The states and categories it walks come from the DataConfig it was created
with, so a build over a small fixture only needs a small config.
*/
type Aggregator struct {
	cfg config.DataConfig
}

/*
BuildSummary counts what a build consumed.
*/
type BuildSummary struct {
	TablesLoaded int
	Missing      []string
	RowsRetained int
	RowsDropped  int
}

// Empty reports whether no source table was found at all.
func (s BuildSummary) Empty() bool {
	return s.TablesLoaded == 0
}

/*
NewAggregator creates an aggregator over the given data configuration
*/
func NewAggregator(cfg config.DataConfig) *Aggregator {
	return &Aggregator{cfg: cfg}
}

/*
TablePath returns <root>/<CATEGORY>/<PREFIX>_DP<NN>_<STATE>.csv
*/
func (a *Aggregator) TablePath(state string, category config.Category) string {
	name := fmt.Sprintf("%s_DP%s_%s.csv", a.cfg.Prefix, category.Number(), state)
	return filepath.Join(a.cfg.Root, string(category), name)
}

/*
Build loads every configured table, state-major and category-minor, and folds
it into a new Store.

Missing tables are logged and skipped. Any other load error aborts the build.
*/
func (a *Aggregator) Build() (*Store, BuildSummary, error) {
	store := NewStore()
	var summary BuildSummary

	for _, state := range a.cfg.States {
		for _, category := range a.cfg.Categories {
			path := a.TablePath(state, category)

			table, err := LoadTable(path, category)
			if err != nil {
				return nil, summary, err
			}

			if table.Outcome == OutcomeNotFound {
				log.WithFields(log.Fields{
					"path":     path,
					"state":    state,
					"category": category,
				}).Warn("File not found")
				summary.Missing = append(summary.Missing, path)
				continue
			}

			log.WithFields(log.Fields{
				"path":     path,
				"retained": len(table.Rows),
				"dropped":  len(table.Dropped),
			}).Info("Loaded table")

			summary.TablesLoaded++
			summary.RowsRetained += len(table.Rows)
			summary.RowsDropped += len(table.Dropped)
			Fold(store, table.Category, table.Rows)
		}
	}

	log.WithFields(log.Fields{
		"districts": store.Len(),
		"tables":    summary.TablesLoaded,
		"missing":   len(summary.Missing),
	}).Info("Vector store built")

	return store, summary, nil
}

/*
Fold groups rows by GEONAME and writes one vector per district for the category.

Each vector keeps the row order of the table. Groups are written in ascending
GEONAME order. An existing vector for the same district and category is
replaced, not extended.
*/
func Fold(store *Store, category config.Category, rows []StatRow) {
	groups := make(map[string][]float64)
	for _, row := range rows {
		groups[row.Geoname] = append(groups[row.Geoname], row.Percent)
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		store.Set(name, category, groups[name])
	}
}
