// Projection of `serverstats_grab -pD` disk reports down to the columns
// worth reading.
//
// The full report is a whitespace-tabulated table with a preamble of
// banners and counters ahead of the real header line.  We find the first
// line that carries every field we care about, remember where those fields
// sit, and reprint just them for every sample row after it, right-justified
// so devices line up under each other.  Intended for pipelines like
//
//	serverstats_grab -pD host-20251205-044446.dat | short_disk_report | grep -e Device -e sdb

package diskreport

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"
)

// DesiredFields are the columns extracted from the report, in the order
// they are printed.  The set is fixed: this is a terminal aid, not a query
// tool.
//
// MT: Constant after initialization; immutable
var DesiredFields = []string{
	"Device", "Time", "Δt", "ΔReads", "ΔWrites",
	"Qlen", "r/s", "w/s", "rd_kB/s", "wr_kB/s",
	"await_rd(ms)", "await_wr(ms)",
}

const fieldWidth = 12

// Projector is the line-at-a-time state of one projection pass: nothing is
// emitted before the header line, and after it every row is projected using
// the column positions the header established.
type Projector struct {
	indices []int // source column of DesiredFields[i]; nil until the header is seen
	need    int   // fewest columns a sample row must have
}

// Line consumes one input line (sans terminator) and returns the line to
// print, if any.
func (p *Projector) Line(line string) (string, bool) {
	if p.indices == nil {
		return p.tryHeader(line)
	}
	if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "---") {
		return "", false
	}
	toks := strings.Fields(line)
	if len(toks) < p.need {
		// Truncated or malformed row, common at the tail of a live log.
		return "", false
	}
	var b strings.Builder
	for i, ix := range p.indices {
		if i > 0 {
			b.WriteByte(' ')
		}
		writePadded(&b, toks[ix])
	}
	return b.String(), true
}

// The header is the first line whose tokens include every desired field.
// Membership, not position: extra columns are fine, and if a name repeats
// the first occurrence wins.
func (p *Projector) tryHeader(line string) (string, bool) {
	toks := strings.Fields(line)
	indices := make([]int, 0, len(DesiredFields))
	need := 0
	for _, field := range DesiredFields {
		ix := slices.Index(toks, field)
		if ix < 0 {
			return "", false
		}
		indices = append(indices, ix)
		need = max(need, ix+1)
	}
	p.indices = indices
	p.need = need

	var b strings.Builder
	for i, field := range DesiredFields {
		if i > 0 {
			b.WriteByte(' ')
		}
		writePadded(&b, field)
	}
	return b.String(), true
}

func (p *Projector) HeaderSeen() bool {
	return p.indices != nil
}

const spaces = "            " // fieldWidth of them

// Right-justify by rune count, not bytes: three of the desired names carry
// a 'Δ' and byte-padding would shift their columns.
func writePadded(b *strings.Builder, s string) {
	if n := fieldWidth - utf8.RuneCountInString(s); n > 0 {
		b.WriteString(spaces[:n])
	}
	b.WriteString(s)
}

// Project pumps a report from in to out.  Preamble lines vanish; if no
// header ever shows up the output is empty, and that is not an error.
// Lines can be arbitrarily long; a Scanner's fixed token limit would turn
// a fat row into a failed run.
func Project(in io.Reader, out io.Writer) error {
	var p Projector
	rd := bufio.NewReader(in)
	wr := bufio.NewWriter(out)
	for {
		raw, err := rd.ReadString('\n')
		if raw != "" {
			if line, ok := p.Line(chomp(raw)); ok {
				fmt.Fprintln(wr, line)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			// Keep what was already projected.
			wr.Flush()
			return err
		}
	}
	return wr.Flush()
}

// chomp strips one line terminator, "\n" or "\r\n".
func chomp(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
