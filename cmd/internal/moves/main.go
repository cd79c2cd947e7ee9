package moves

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"
	"golang.org/x/text/message"

	"github.com/nelhage/knights/cli"
	"github.com/nelhage/knights/config"
	"github.com/nelhage/knights/i18n"
	"github.com/nelhage/knights/knights"
	"github.com/nelhage/knights/notation"
)

type Command struct {
	Config *config.Config

	locale string
	after  string
}

func (*Command) Name() string     { return "moves" }
func (*Command) Synopsis() string { return "List the legal moves in a position" }
func (*Command) Usage() string {
	return `moves [flags] POSITION

Draw POSITION and list the moves open to the player whose turn it is.

POSITION has the form "ROWS TURN", e.g. "1,x2/x3/x2,2 1": rows from
row 0 down separated by '/', squares separated by ','. x is a free
square, # a vacated one, 1 and 2 the players; x and # take a repeat
count (x3). TURN is 1 or 2.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.locale, "locale", c.Config.Locale, "language of the console text")
	flags.StringVar(&c.after, "after", "", `moves to play first, as "y,x y,x ..."`)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "moves: POSITION is required")
		return subcommands.ExitUsageError
	}
	rules, err := c.Config.Rules()
	if err != nil {
		fmt.Fprintln(os.Stderr, "moves:", err)
		return subcommands.ExitUsageError
	}
	g, err := notation.ParsePosition(strings.Join(flag.Args(), " "), rules)
	if err != nil {
		fmt.Fprintln(os.Stderr, "moves:", err)
		return subcommands.ExitUsageError
	}
	if err := playAfter(g, c.after); err != nil {
		fmt.Fprintln(os.Stderr, "moves:", err)
		return subcommands.ExitFailure
	}
	describe(i18n.Printer(i18n.Resolve(c.locale)), os.Stdout, g)
	return subcommands.ExitSuccess
}

// playAfter plays the space-separated "y,x" moves in after on g.
func playAfter(g *knights.Game, after string) error {
	for _, word := range strings.Fields(after) {
		legal := g.LegalMoves()
		m := knights.ParseCoord(strings.Replace(word, ",", " ", 1))
		if err := g.Move(m); err != nil {
			return fmt.Errorf("%s: %w (legal: %s)", word, err, knights.FormatCoords(legal))
		}
	}
	return nil
}

func describe(p *message.Printer, out io.Writer, g *knights.Game) {
	cli.RenderBoard(out, g.Board())
	fmt.Fprintln(out, notation.FormatPosition(g))
	fmt.Fprintln(out)
	p.Fprintf(out, i18n.TurnToMove, g.Active().Name())
	fmt.Fprintln(out)
	if over, winner := g.GameOver(); over {
		p.Fprintf(out, i18n.TurnNoMoves)
		fmt.Fprintln(out)
		p.Fprintf(out, i18n.ResultStuck, g.Active().Name())
		fmt.Fprintln(out)
		p.Fprintf(out, i18n.ResultWinner, winner.Name())
		fmt.Fprintln(out)
		return
	}
	cli.ListMoves(p, out, g.LegalMoves())
}
