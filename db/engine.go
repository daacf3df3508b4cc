package db

import (
	"fmt"

	"district-sim/config"
)

/*
Ranking holds the unsorted distances from one target district.

ByCategory has an entry, possibly empty, for every category the engine was
configured with. Results appear in store enumeration order.
*/
type Ranking struct {
	Target     string
	Categories []config.Category
	ByCategory map[config.Category][]DistanceResult
	Combined   []DistanceResult
}

/*
Engine computes Euclidean distances between districts of a built Store.
*/
type Engine struct {
	store      *Store
	categories []config.Category
}

/*
NewEngine creates an engine over the store. Categories fix both the set of
per-category rankings and the concatenation order of the combined vector.
*/
func NewEngine(store *Store, categories []config.Category) *Engine {
	return &Engine{
		store:      store,
		categories: categories,
	}
}

/*
Rank computes per-category and combined distances from target to every other
district.

For each category present on both sides, the two vectors are truncated to the
shorter length and compared. The combined distance is taken over the
concatenation of those truncated pairs in category order. A candidate with no
shared category is absent from the combined results.

Returns ErrTargetNotFound if the target is not in the store.
*/
func (e *Engine) Rank(target string) (*Ranking, error) {
	targetSet, exists := e.store.lookup(target)
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrTargetNotFound, target)
	}

	ranking := &Ranking{
		Target:     target,
		Categories: e.categories,
		ByCategory: make(map[config.Category][]DistanceResult, len(e.categories)),
	}
	for _, cat := range e.categories {
		ranking.ByCategory[cat] = []DistanceResult{}
	}

	var rankErr error
	e.store.each(func(geoname string, set VectorSet) {
		if rankErr != nil || geoname == target {
			return
		}

		var combinedTarget, combinedOther []float64
		for _, cat := range e.categories {
			tv, ok := targetSet[cat]
			if !ok {
				continue
			}
			cv, ok := set[cat]
			if !ok {
				continue
			}

			tv, cv = TruncatePair(tv, cv)
			combinedTarget = append(combinedTarget, tv...)
			combinedOther = append(combinedOther, cv...)

			d, err := EuclideanDistance(tv, cv)
			if err != nil {
				rankErr = fmt.Errorf("%s, %s: %w", geoname, cat, err)
				return
			}
			ranking.ByCategory[cat] = append(ranking.ByCategory[cat], DistanceResult{Geoname: geoname, Distance: d})
		}

		if len(combinedTarget) == 0 {
			return
		}
		d, err := EuclideanDistance(combinedTarget, combinedOther)
		if err != nil {
			rankErr = fmt.Errorf("%s, combined: %w", geoname, err)
			return
		}
		ranking.Combined = append(ranking.Combined, DistanceResult{Geoname: geoname, Distance: d})
	})
	if rankErr != nil {
		return nil, rankErr
	}

	return ranking, nil
}

/*
DistrictID builds the GEONAME of a 118th Congress district from its labels.
*/
func DistrictID(state, district string) string {
	return fmt.Sprintf("Congressional District %s (118th Congress), %s", district, state)
}
