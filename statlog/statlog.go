// Model of the .dat logs written by serverstats_grab.
//
// A .dat file is line-oriented: lines starting with `#` are metadata (the
// `#TYPE` column declarations are a special case of that) and everything
// else is a comma-separated sample whose second column is the sample's epoch
// timestamp.  Columns other than the timestamp are opaque to these tools and
// pass through untouched.

package statlog

import (
	"strconv"
	"strings"

	"serverstats-tools/hms"
)

// IsComment tests the raw line, terminator and all: only a `#` in column
// zero makes a metadata line.
func IsComment(line string) bool {
	return strings.HasPrefix(line, "#")
}

// RowTime extracts the wall-clock time of a data row: column index 1 of the
// trimmed line, read as a base-10 epoch.  ok is false for rows with fewer
// than two columns or a timestamp that does not parse; callers drop such
// rows silently, since operational logs are full of noise rows by the time
// they reach these tools.
func RowTime(line string) (hms.TimeOfDay, bool) {
	cols := strings.Split(strings.TrimSpace(line), ",")
	if len(cols) < 2 {
		return 0, false
	}
	epoch, err := strconv.ParseInt(strings.TrimSpace(cols[1]), 10, 64)
	if err != nil {
		return 0, false
	}
	return hms.FromEpoch(epoch), true
}
