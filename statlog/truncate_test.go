package statlog

import (
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serverstats-tools/hms"
)

func window(t *testing.T, fromStr, toStr string) hms.Window {
	w, err := hms.WindowOf(fromStr, toStr)
	require.NoError(t, err)
	return w
}

func runTruncate(t *testing.T, content string, w hms.Window) string {
	dir := t.TempDir()
	input := path.Join(dir, "in.dat")
	output := path.Join(dir, "out.dat")
	require.NoError(t, os.WriteFile(input, []byte(content), 0644))
	require.NoError(t, Truncate(input, output, w))
	got, err := os.ReadFile(output)
	require.NoError(t, err)
	return string(got)
}

func TestTruncateWindow(t *testing.T) {
	// Of the four boundary rows only the two inside the inclusive window
	// survive; the comment always does.
	lines := []string{
		"#TYPE disk,1733395200\n",
		fmt.Sprintf("srv01,%d,sda,before\n", epochAt(9, 59, 59)),
		fmt.Sprintf("srv01,%d,sda,low-edge\n", epochAt(10, 0, 0)),
		fmt.Sprintf("srv01,%d,sda,high-edge\n", epochAt(12, 0, 0)),
		fmt.Sprintf("srv01,%d,sda,after\n", epochAt(12, 0, 1)),
	}
	got := runTruncate(t, strings.Join(lines, ""), window(t, "10:00:00", "12:00:00"))
	assert.Equal(t, lines[0]+lines[2]+lines[3], got)
}

func TestTruncateUnbounded(t *testing.T) {
	rows := []string{
		fmt.Sprintf("srv01,%d,early\n", epochAt(8, 0, 0)),
		fmt.Sprintf("srv01,%d,mid\n", epochAt(10, 30, 0)),
		fmt.Sprintf("srv01,%d,late\n", epochAt(22, 15, 5)),
	}
	content := strings.Join(rows, "")

	cases := []struct {
		name string
		from string
		to   string
		want string
	}{
		{"none", "", "", rows[0] + rows[1] + rows[2]},
		{"from-only", "10:30:00", "", rows[1] + rows[2]},
		{"to-only", "", "10:30:00", rows[0] + rows[1]},
	}
	for _, c := range cases {
		got := runTruncate(t, content, window(t, c.from, c.to))
		assert.Equal(t, c.want, got, c.name)
	}
}

func TestTruncateComments(t *testing.T) {
	// Comments are copied no matter what the window says and no matter
	// whether they look like parseable rows.
	lines := []string{
		"#TYPE disk\n",
		"# commas, but, no, epoch\n",
		fmt.Sprintf("srv01,%d,dropped\n", epochAt(3, 0, 0)),
		fmt.Sprintf("#srv01,%d,commented-out\n", epochAt(11, 0, 0)),
	}
	got := runTruncate(t, strings.Join(lines, ""), window(t, "10:00:00", "12:00:00"))
	assert.Equal(t, lines[0]+lines[1]+lines[3], got)
}

func TestTruncateDropsBadRows(t *testing.T) {
	// Unparseable rows are dropped silently and processing continues.
	ok1 := fmt.Sprintf("srv01,%d,ok1\n", epochAt(11, 0, 0))
	ok2 := fmt.Sprintf("srv01,%d,ok2\n", epochAt(11, 30, 0))
	content := ok1 +
		"srv01,notanepoch,bad\n" +
		"fieldless\n" +
		"\n" +
		ok2
	got := runTruncate(t, content, window(t, "10:00:00", "12:00:00"))
	assert.Equal(t, ok1+ok2, got)
}

func TestTruncateVerbatim(t *testing.T) {
	// CRLF line endings are kept and a final line without a terminator
	// does not grow one.
	content := fmt.Sprintf("srv01,%d,crlf\r\n", epochAt(11, 0, 0)) +
		fmt.Sprintf("srv01,%d,noterm", epochAt(11, 1, 0))
	got := runTruncate(t, content, hms.Window{})
	assert.Equal(t, content, got)
}

func TestTruncateCompressed(t *testing.T) {
	keep := fmt.Sprintf("srv01,%d,keep\n", epochAt(11, 0, 0))
	drop := fmt.Sprintf("srv01,%d,drop\n", epochAt(13, 0, 0))
	content := "#TYPE disk\n" + keep + drop
	want := "#TYPE disk\n" + keep

	for _, ext := range []string{".gz", ".zst"} {
		dir := t.TempDir()
		input := path.Join(dir, "in.dat"+ext)
		output := path.Join(dir, "out.dat"+ext)

		wr, err := CreateLog(input)
		require.NoError(t, err, ext)
		_, err = io.WriteString(wr, content)
		require.NoError(t, err, ext)
		require.NoError(t, wr.Close(), ext)

		// The input really is compressed, not plain text with a fancy name.
		raw, err := os.ReadFile(input)
		require.NoError(t, err, ext)
		assert.NotEqual(t, content, string(raw), ext)

		require.NoError(t, Truncate(input, output, window(t, "10:00:00", "12:00:00")), ext)

		rd, err := OpenLog(output)
		require.NoError(t, err, ext)
		got, err := io.ReadAll(rd)
		require.NoError(t, err, ext)
		require.NoError(t, rd.Close(), ext)
		assert.Equal(t, want, string(got), ext)
	}
}

func TestTruncateMissingInput(t *testing.T) {
	dir := t.TempDir()
	err := Truncate(path.Join(dir, "no-such.dat"), path.Join(dir, "out.dat"), hms.Window{})
	require.Error(t, err)
	var pathErr *os.PathError
	assert.ErrorAs(t, err, &pathErr)

	// The output must not have been created.
	_, err = os.Stat(path.Join(dir, "out.dat"))
	assert.True(t, os.IsNotExist(err))
}

func TestTruncateUnwritableOutput(t *testing.T) {
	dir := t.TempDir()
	input := path.Join(dir, "in.dat")
	require.NoError(t, os.WriteFile(input, []byte("#x\n"), 0644))
	err := Truncate(input, path.Join(dir, "nodir", "out.dat"), hms.Window{})
	assert.Error(t, err)
}
