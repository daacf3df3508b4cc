package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"

	"district-sim/config"
	"district-sim/db"
)

// CombinedName labels the cross-category ranking in file names and headings.
const CombinedName = "combined"

/*
Reporter sorts rankings and writes them to an output directory
*/
type Reporter struct {
	dir  string
	topN int
	out  io.Writer
}

/*
NewReporter creates a reporter that writes tables under dir and prints the
topN closest districts of every ranking to out. A nil out disables display.
*/
func NewReporter(cfg config.OutputConfig, out io.Writer) *Reporter {
	return &Reporter{
		dir:  cfg.Dir,
		topN: cfg.TopN,
		out:  out,
	}
}

/*
Sort returns the results ordered by ascending distance.

Equal distances keep their input order and NaN sorts after every number.
The input slice is not modified.
*/
func Sort(results []db.DistanceResult) []db.DistanceResult {
	sorted := make([]db.DistanceResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i].Distance, sorted[j].Distance)
	})
	return sorted
}

func less(a, b float64) bool {
	if math.IsNaN(a) {
		return false
	}
	if math.IsNaN(b) {
		return true
	}
	return a < b
}

/*
FileName returns the output table name for a category or CombinedName
*/
func FileName(name string) string {
	return fmt.Sprintf("euclidean_distances_%s.csv", name)
}

/*
Write sorts every ranking of r, writes one table per category plus the
combined table, and displays the closest districts.

The output directory is created if needed.
*/
func (rp *Reporter) Write(r *db.Ranking) error {
	if err := os.MkdirAll(rp.dir, 0755); err != nil {
		return err
	}

	for _, cat := range r.Categories {
		sorted := Sort(r.ByCategory[cat])
		if err := rp.writeTable(cat.String(), sorted); err != nil {
			return err
		}
		rp.display(fmt.Sprintf("Closest districts for category %s:", cat), sorted)
	}

	sorted := Sort(r.Combined)
	if err := rp.writeTable(CombinedName, sorted); err != nil {
		return err
	}
	rp.display("Closest districts for combined categories:", sorted)

	return nil
}

func (rp *Reporter) writeTable(name string, results []db.DistanceResult) error {
	path := filepath.Join(rp.dir, FileName(name))
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := WriteCSV(file, results); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	log.WithFields(log.Fields{
		"path": path,
		"rows": len(results),
	}).Info("Wrote ranking")

	return file.Close()
}

/*
WriteCSV writes results as a GEONAME,Distance table
*/
func WriteCSV(w io.Writer, results []db.DistanceResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{db.ColumnGeoname, "Distance"}); err != nil {
		return err
	}
	for _, r := range results {
		if err := cw.Write([]string{r.Geoname, formatDistance(r.Distance)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Top returns at most n leading results.
func Top(results []db.DistanceResult, n int) []db.DistanceResult {
	if n >= 0 && n < len(results) {
		return results[:n]
	}
	return results
}

func (rp *Reporter) display(title string, sorted []db.DistanceResult) {
	if rp.out == nil {
		return
	}

	fmt.Fprintf(rp.out, "\n%s\n", title)
	tw := tabwriter.NewWriter(rp.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "\t%s\tDistance\n", db.ColumnGeoname)
	for i, r := range Top(sorted, rp.topN) {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i, r.Geoname, formatDistance(r.Distance))
	}
	tw.Flush()
}

func formatDistance(d float64) string {
	return strconv.FormatFloat(d, 'f', -1, 64)
}
