// Command tetrisbot is a spectator CLI: it drives the tetris package's
// engine with a greedy best-evaluation policy and renders the result live.
// It exists to exercise the engine through a real terminal UI, not as part
// of the engine itself — everything it imports beyond the tetris package is
// presentation.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kosukenoda/tetriscore/internal/settings"
)

func main() {
	store, err := settings.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "tetrisbot: loading settings:", err)
	}

	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "bag randomizer seed")
	interval := flag.Int("interval", store.Config.TickIntervalMs(), "milliseconds between moves")
	theme := flag.String("theme", string(store.Config.Theme), "board color theme: matrix, amber, blue, red")
	flag.Parse()

	m := New(*seed, *interval, settings.Theme(*theme))
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "tetrisbot:", err)
		os.Exit(1)
	}
}
