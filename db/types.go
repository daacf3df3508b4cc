package db

import "district-sim/config"

/*
StatRow is one valid observation parsed from a source table.
*/
type StatRow struct {
	Geoname  string
	Category config.Category
	Percent  float64
}

/*
VectorSet maps a category to the ordered estimates of one district
*/
type VectorSet map[config.Category][]float64

/*
DistanceResult is the distance from the target to one candidate district.
*/
type DistanceResult struct {
	Geoname  string  `json:"geoname"`
	Distance float64 `json:"distance"`
}
