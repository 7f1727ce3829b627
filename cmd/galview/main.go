// Command galview is a terminal previewer for Circular Gallifreyan.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ha1tch/gallifreyan/pkg/config"
	"github.com/ha1tch/gallifreyan/pkg/gallifreyan"
	"github.com/ha1tch/gallifreyan/pkg/plotter"
	"github.com/ha1tch/gallifreyan/pkg/render"
)

// Mode represents viewer mode
type Mode int

const (
	ModeInput Mode = iota
	ModeHelp
)

// MessageType for status messages
type MessageType int

const (
	MsgInfo    MessageType = iota // Informative, no flash
	MsgError                      // Errors, flash
	MsgSuccess                    // Saved files, flash
)

// Flash timing: the message alternates normal and inverted every
// flashPhase milliseconds for flashPeriod milliseconds.
const (
	flashPhase  = 125
	flashPeriod = 500
)

// flashes reports whether messages of this type flash when shown.
func (t MessageType) flashes() bool {
	return t == MsgError || t == MsgSuccess
}

// flashInverted reports whether a flashing message is drawn inverted
// elapsed milliseconds after it was shown.
func flashInverted(elapsed int64) bool {
	if elapsed < 0 || elapsed >= flashPeriod {
		return false
	}
	phase := elapsed / flashPhase
	return phase == 1 || phase == 3
}

// Zoom limits for the canvas window, in world units.
const (
	minExtent = 5
	maxExtent = 80
)

// Viewer holds all previewer state
type Viewer struct {
	screen tcell.Screen
	config config.Config
	mode   Mode

	text     string
	words    [][]gallifreyan.Letter
	drawings []plotter.Drawing
	extent   float64

	showTokens bool

	message     string
	messageType MessageType

	// Unix milliseconds, 0 when not flashing. Shared with the refresh
	// goroutine.
	messageFlashStart atomic.Int64
}

func newViewer(cfg config.Config) *Viewer {
	extent := cfg.Output.Extent
	if extent == 0 {
		extent = render.DefaultPNGOptions().Extent
	}
	return &Viewer{
		config:     cfg,
		extent:     extent,
		showTokens: true,
	}
}

func main() {
	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	v := newViewer(cfg)
	v.setText(strings.Join(os.Args[1:], " "))

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}
	screen.Clear()

	v.screen = screen
	v.run()

	screen.Fini()
}

// refreshFlash posts a redraw every interval while a message is flashing,
// until done is closed.
func (v *Viewer) refreshFlash(done <-chan struct{}, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			start := v.messageFlashStart.Load()
			if start == 0 {
				continue
			}
			elapsed := time.Now().UnixMilli() - start
			if elapsed >= 0 && elapsed < flashPeriod+200 {
				v.screen.PostEvent(tcell.NewEventInterrupt(nil))
			}
		}
	}
}

func (v *Viewer) run() {
	done := make(chan struct{})
	defer close(done)
	go v.refreshFlash(done, 50*time.Millisecond)

	for {
		v.draw()
		v.screen.Show()

		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			if v.handleKey(ev) {
				return
			}
		case *tcell.EventInterrupt:
			// Redraw for flash animation
		}
	}
}

func (v *Viewer) showMessage(msg string, t MessageType) {
	v.message = msg
	v.messageType = t
	var start int64
	if t.flashes() {
		start = time.Now().UnixMilli()
	}
	v.messageFlashStart.Store(start)
}

// setText lays out text and keeps the previous glyph when it cannot be
// written.
func (v *Viewer) setText(text string) {
	v.text = text
	if strings.TrimSpace(text) == "" {
		v.words = nil
		v.drawings = nil
		v.showMessage("", MsgInfo)
		return
	}

	words, err := gallifreyan.TokenizeSentence(text)
	if err != nil {
		var te *gallifreyan.TokenizationError
		if errors.As(err, &te) {
			v.showMessage(fmt.Sprintf("%q is not a Gallifreyan letter", te.Substring), MsgError)
		} else {
			v.showMessage(err.Error(), MsgError)
		}
		return
	}

	pal, err := v.config.PlotPalette()
	if err != nil {
		v.showMessage(err.Error(), MsgError)
		return
	}
	g := v.config.LayoutGeometry()
	plots, err := gallifreyan.LayoutTokens(words, g)
	if err != nil {
		v.showMessage(err.Error(), MsgError)
		return
	}

	v.words = words
	v.drawings = plotter.DrawPlots(plots, g, pal)
	v.showMessage(fmt.Sprintf("%d words, %d parts", len(words), len(plots)), MsgInfo)
}

func (v *Viewer) zoom(factor float64) {
	e := v.extent * factor
	if e < minExtent {
		e = minExtent
	}
	if e > maxExtent {
		e = maxExtent
	}
	v.extent = e
}

// save writes the current glyph as PNG to the configured file.
func (v *Viewer) save() {
	if len(v.drawings) == 0 {
		v.showMessage("Nothing to save", MsgError)
		return
	}
	opts := v.config.PNGOptions()
	var buf bytes.Buffer
	if err := render.RenderPNG(v.drawings, &buf, opts); err != nil {
		v.showMessage("Render failed: "+err.Error(), MsgError)
		return
	}
	if err := os.WriteFile(v.config.Output.File, buf.Bytes(), 0644); err != nil {
		v.showMessage("Save failed: "+err.Error(), MsgError)
		return
	}
	v.showMessage("Saved "+v.config.Output.File, MsgSuccess)
}

// handleKey applies a key press and reports whether to quit.
func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	if v.mode == ModeHelp {
		v.mode = ModeInput
		return false
	}

	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyF1:
		v.mode = ModeHelp
	case tcell.KeyCtrlS:
		v.save()
	case tcell.KeyTab:
		v.showTokens = !v.showTokens
	case tcell.KeyPgUp:
		v.zoom(1 / 1.25)
	case tcell.KeyPgDn:
		v.zoom(1.25)
	case tcell.KeyCtrlU:
		v.setText("")
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if v.text != "" {
			r := []rune(v.text)
			v.setText(string(r[:len(r)-1]))
		}
	case tcell.KeyRune:
		v.setText(v.text + string(ev.Rune()))
	}
	return false
}
