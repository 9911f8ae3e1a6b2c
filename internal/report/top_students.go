package report

import (
	"fmt"
	"slices"
	"strings"

	"github.com/stemsi/gradebook/internal/model"
)

// TopStudents renders one "<surname> <name>\t<average>" line per ranked
// student, names padded so the averages line up. Rows follow
// model.RankedStudent ordering regardless of input order.
func TopStudents(ranked []model.RankedStudent) (string, int) {
	sorted := slices.Clone(ranked)
	slices.SortFunc(sorted, model.RankedStudent.Compare)

	names := make([]string, len(sorted))
	for i, r := range sorted {
		names[i] = r.FullName()
	}
	width := maxWidth(names)

	var b strings.Builder
	for i, r := range sorted {
		fmt.Fprintf(&b, "%s\t%s\n", padRight(names[i], width), FormatAverage(r.Average))
	}
	return b.String(), len(sorted)
}
