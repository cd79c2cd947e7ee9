package perft

import (
	"bytes"
	"testing"
	"text/tabwriter"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nelhage/knights/perft"
)

func TestTable(t *testing.T) {
	var out bytes.Buffer
	w := tabwriter.NewWriter(&out, 4, 8, 1, ' ', tabwriter.AlignRight)
	header(w)
	row(w, 3, perft.Result{Nodes: 12, Wins: [2]uint64{1, 2}}, 1500*time.Microsecond)
	w.Flush()

	lines := bytes.Split(bytes.TrimRight(out.Bytes(), "\n"), []byte("\n"))
	assert.Len(t, lines, 2)
	assert.Equal(t, []string{"3", "12", "1", "2", "2ms"}, fields(lines[1]))
}

func fields(b []byte) []string {
	var out []string
	for _, f := range bytes.Fields(b) {
		out = append(out, string(f))
	}
	return out
}
