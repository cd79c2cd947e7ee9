package perft

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"

	"github.com/nelhage/knights/config"
	"github.com/nelhage/knights/notation"
	"github.com/nelhage/knights/perft"
)

type Command struct {
	Config *config.Config
	Log    *slog.Logger

	depth   int
	threads int
	limit   time.Duration
}

func (*Command) Name() string     { return "perft" }
func (*Command) Synopsis() string { return "Count the continuations of a position" }
func (*Command) Usage() string {
	return `perft [flags] POSITION

Walk every line of play from POSITION, one ply deeper per row of
output, and report how many positions are still in play and how many
games each player has won by then. POSITION uses the same form as the
moves command.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.depth, "depth", 6, "deepest ply to count")
	flags.IntVar(&c.threads, "threads", runtime.NumCPU(), "number of parallel threads")
	flags.DurationVar(&c.limit, "limit", 0, "give up after this long (0 for no limit)")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "perft: POSITION is required")
		return subcommands.ExitUsageError
	}
	rules, err := c.Config.Rules()
	if err != nil {
		fmt.Fprintln(os.Stderr, "perft:", err)
		return subcommands.ExitUsageError
	}
	g, err := notation.ParsePosition(strings.Join(flag.Args(), " "), rules)
	if err != nil {
		fmt.Fprintln(os.Stderr, "perft:", err)
		return subcommands.ExitUsageError
	}
	if c.limit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.limit)
		defer cancel()
	}

	w := tabwriter.NewWriter(os.Stdout, 4, 8, 1, ' ', tabwriter.AlignRight)
	defer w.Flush()
	header(w)
	for d := 0; d <= c.depth; d++ {
		start := time.Now()
		r, err := perft.Parallel(ctx, g, d, c.threads)
		if err != nil {
			w.Flush()
			c.Log.Error("perft stopped", "depth", d, "err", err)
			return subcommands.ExitFailure
		}
		row(w, d, r, time.Since(start))
		c.Log.Debug("perft", "depth", d, "nodes", r.Nodes, "games", r.Games())
	}
	return subcommands.ExitSuccess
}

func header(w io.Writer) {
	fmt.Fprintf(w, "depth\tnodes\tp1 wins\tp2 wins\ttime\t\n")
}

func row(w io.Writer, depth int, r perft.Result, elapsed time.Duration) {
	fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%s\t\n",
		depth, r.Nodes, r.Wins[0], r.Wins[1], elapsed.Round(time.Millisecond))
}
