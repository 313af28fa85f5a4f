// Truncation of a .dat log to a wall-clock time window.

package statlog

import (
	"bufio"
	"io"

	"serverstats-tools/hms"
)

// Truncate copies inputPath to outputPath, keeping every metadata line and
// the data rows whose wall-clock time falls inside w.  Kept lines pass
// through byte-for-byte, original terminators included.  Unparseable rows
// are dropped, not reported; IO errors are returned as-is.
func Truncate(inputPath, outputPath string, w hms.Window) error {
	in, err := OpenLog(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := CreateLog(outputPath)
	if err != nil {
		return err
	}
	if err := filterLog(in, out, w); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// ReadString rather than a Scanner: the Scanner strips terminators and we
// would have to guess at reconstructing them ("\n" vs "\r\n" vs none on the
// last line).
func filterLog(in io.Reader, out io.Writer, w hms.Window) error {
	rd := bufio.NewReader(in)
	wr := bufio.NewWriter(out)
	for {
		line, err := rd.ReadString('\n')
		if line != "" && keep(line, w) {
			if _, werr := wr.WriteString(line); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}
	return wr.Flush()
}

func keep(line string, w hms.Window) bool {
	if IsComment(line) {
		return true
	}
	t, ok := RowTime(line)
	if !ok {
		return false
	}
	return w.Contains(t)
}
