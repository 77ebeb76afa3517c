/*
Package console renders binary search trees to terminals, for debugging.

Trees are drawn sideways, the root at the left margin and right subtrees
above their parents:

	    ┌── 7
	┌── 5
	│   └── 4
	3
	└── 1

Red-Black nodes are colored; AVL nodes carry their cached height.
Labels are clipped to the available line width, measured in fixed-width
positions according to UAX#11 (East Asian Width), so wide characters
do not break the layout.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/bintree"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// tracer writes to trace with key 'bintree'
func tracer() tracing.Trace {
	return tracing.Select("bintree")
}

// Config controls console rendering.
type Config struct {
	LineWidth int            // maximum width of an output line in ‘en’s
	Indent    int            // width of one tree level, at least 4
	Context   *uax11.Context // context for character width; nil means Latin
	Palette   *Palette       // colors; nil means DefaultPalette
}

// Palette holds the colors used for node labels.
type Palette struct {
	Red, Black, Plain, Lines *color.Color
}

// DefaultPalette prints red nodes red and black nodes bold.
var DefaultPalette = Palette{
	Red:   color.New(color.FgRed),
	Black: color.New(color.Bold),
	Plain: color.New(color.FgBlue),
	Lines: color.New(color.Faint),
}

var setupGraphemes sync.Once

// Print renders tree to w. label produces the text for a record.
// If config is nil, a config is derived from the current terminal.
func Print[K any, R bintree.Linked[R]](w io.Writer, tree *bintree.Tree[K, R],
	label func(R) string, config *Config) error {
	//
	if tree == nil || label == nil {
		return bintree.ErrIllegalArguments
	}
	if config == nil {
		config = ConfigFromTerminal()
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	ctx := config.Context
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	palette := config.Palette
	if palette == nil {
		palette = &DefaultPalette
	}
	indent := max(config.Indent, 4)
	if tree.IsEmpty() {
		_, err := io.WriteString(w, "(empty)\n")
		return err
	}
	return tree.EachNode(bintree.Descending, func(info bintree.NodeInfo[R]) error {
		var prefix strings.Builder
		// a vertical line passes level j if the path turns there
		for j := 1; j < len(info.Path); j++ {
			if info.Path[j-1] != info.Path[j] {
				prefix.WriteString("│" + strings.Repeat(" ", indent-1))
			} else {
				prefix.WriteString(strings.Repeat(" ", indent))
			}
		}
		switch info.Side {
		case bintree.SideRight:
			prefix.WriteString("┌" + strings.Repeat("─", indent-2) + " ")
		case bintree.SideLeft:
			prefix.WriteString("└" + strings.Repeat("─", indent-2) + " ")
		}
		text := label(info.Record)
		tag := nodeTag(tree.Discipline(), info)
		avail := config.LineWidth - info.Depth*indent - displayWidth(tag, ctx)
		text = clip(text, avail, ctx) + tag
		if _, err := palette.Lines.Fprint(w, prefix.String()); err != nil {
			return err
		}
		c := palette.Plain
		if tree.Discipline() == bintree.RedBlack {
			c = palette.Black
			if info.Red {
				c = palette.Red
			}
		}
		if _, err := c.Fprint(w, text); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	})
}

func nodeTag[R any](d bintree.Discipline, info bintree.NodeInfo[R]) string {
	if d == bintree.AVL {
		return fmt.Sprintf(" h=%d", info.Height)
	}
	return ""
}

func displayWidth(s string, ctx *uax11.Context) int {
	if s == "" {
		return 0
	}
	return uax11.StringWidth(grapheme.StringFromString(s), ctx)
}

// clip shortens s to at most width fixed-width positions, marking the cut
// with an ellipsis.
func clip(s string, width int, ctx *uax11.Context) string {
	if width <= 0 {
		return "…"
	}
	if displayWidth(s, ctx) <= width {
		return s
	}
	runes := []rune(s)
	for k := len(runes) - 1; k > 0; k-- {
		if c := string(runes[:k]) + "…"; displayWidth(c, ctx) <= width {
			return c
		}
	}
	return "…"
}

// ConfigFromTerminal is a simple helper for creating a Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width and sets Config.LineWidth accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{Indent: 4, Context: uax11.ContextFromEnvironment()}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil || w <= 10 {
			config.LineWidth = 65
		} else {
			config.LineWidth = w - 1
		}
	} else {
		config.LineWidth = 65
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
