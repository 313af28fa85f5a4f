// Shorten a `serverstats_grab -pD` disk report to the columns worth
// reading.
//
// Usage:
//
//	serverstats_grab -pD host-20251205-044446.dat | short_disk_report | grep -e Device -e sdb
//
// The report arrives on stdin; everything ahead of the header line is
// dropped, then the twelve interesting columns are reprinted right-justified
// for every sample row.  There are no options.

package main

import (
	"fmt"
	"os"

	"serverstats-tools/diskreport"
)

func main() {
	if err := diskreport.Project(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}
