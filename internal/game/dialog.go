package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/hanoi-animation/internal/config"
	"github.com/iburimskiy/hanoi-animation/internal/layout"
)

const dialogTitle = "Towers of Hanoi"

var errCanceled = errors.New("dialog canceled")

type dialogResult struct {
	discs int
	err   error
}

// promptDiscs asks for a disc count without blocking the game loop.
func (g *Game) promptDiscs() {
	if g.prompting {
		return
	}
	g.prompting = true
	current := g.sess.Discs()
	go func() {
		g.dialogs <- askDiscs(current)
	}()
}

func askDiscs(current int) dialogResult {
	text, err := zenity.Entry(
		fmt.Sprintf("Number of discs (%d-%d):", config.MinDiscs, config.MaxDiscs),
		zenity.Title(dialogTitle),
		zenity.EntryText(strconv.Itoa(current)),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return dialogResult{err: errCanceled}
		}
		return dialogResult{err: err}
	}
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return dialogResult{err: fmt.Errorf("disc count %q: %w", text, err)}
	}
	return dialogResult{discs: n}
}

// announce reports a finished run in an info dialog.
func (g *Game) announce(discs, moves int, took time.Duration) {
	msg := fmt.Sprintf("Moved %d discs in %d moves (%s).", discs, moves, layout.FormatDuration(took))
	go func() {
		if err := zenity.Info(msg, zenity.Title(dialogTitle)); err != nil && !errors.Is(err, zenity.ErrCanceled) {
			g.log.Warn("info dialog", "err", err)
		}
	}()
}
