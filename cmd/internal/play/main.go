package play

import (
	"bufio"
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/google/subcommands"

	"github.com/nelhage/knights/cli"
	"github.com/nelhage/knights/config"
	"github.com/nelhage/knights/i18n"
	"github.com/nelhage/knights/knights"
)

type Command struct {
	Config *config.Config
	Log    *slog.Logger

	locale string
	border string
	glyphs string
	clear  bool
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Play knights on the command line" }
func (*Command) Usage() string {
	return `play [flags]

Play knights on the command line, two people sharing one terminal.

Defaults for the flags come from the environment:
` + config.Usage()
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.locale, "locale", c.Config.Locale, "language of the console text")
	flags.StringVar(&c.border, "border", c.Config.Border, "glyph framing the board")
	flags.StringVar(&c.glyphs, "glyphs", c.Config.Glyphs, "glyphs players pick their horse from")
	flags.BoolVar(&c.clear, "clear", c.Config.ClearScreen, "clear the terminal before drawing the board")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := *c.Config
	cfg.Locale = c.locale
	cfg.Border = c.border
	cfg.Glyphs = c.glyphs
	cfg.ClearScreen = c.clear

	rules, err := cfg.Rules()
	if err != nil {
		c.Log.Error("bad configuration", "err", err)
		return subcommands.ExitUsageError
	}
	g, err := knights.New(rules)
	if err != nil {
		c.Log.Error("new game", "err", err)
		return subcommands.ExitFailure
	}

	st := &cli.CLI{
		Game:    g,
		In:      bufio.NewReader(os.Stdin),
		Out:     os.Stdout,
		Printer: i18n.Printer(i18n.Resolve(cfg.Locale)),
		Log:     c.Log,
		Clear:   cfg.ClearScreen,
	}
	if _, err := st.Play(); err != nil {
		c.Log.Error("game aborted", "err", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
