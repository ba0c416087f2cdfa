package convert

import (
	"maps"
	"slices"
	"strconv"

	"github.com/samber/lo"

	"github.com/J-VITA/slack-channel-converter/internal/sheet"
)

// statistics categories, in output order.
const (
	statPerDay  = "messages_per_day"
	statPerUser = "messages_per_user"
	statPerFile = "messages_per_file"
)

// StatisticsHeader is the column schema of the Statistics sheet.
var StatisticsHeader = []string{"category", "key", "count"}

// statistics builds the combined statistics table: message counts grouped
// by calendar date, by username and by source file.  Within a category the
// keys are sorted; each grouping sums up to the total row count.
func statistics(rows [][]string) sheet.Table {
	var out [][]string
	appendGroup := func(category string, counts map[string]int) {
		for _, key := range slices.Sorted(maps.Keys(counts)) {
			out = append(out, []string{category, key, strconv.Itoa(counts[key])})
		}
	}

	appendGroup(statPerDay, lo.CountValuesBy(rows, dateKey))
	appendGroup(statPerUser, lo.CountValuesBy(rows, func(r []string) string { return r[colUsername] }))
	appendGroup(statPerFile, lo.CountValuesBy(rows, func(r []string) string { return r[colSourceFile] }))

	return sheet.Table{Name: statisticsSheet, Header: StatisticsHeader, Rows: out}
}
