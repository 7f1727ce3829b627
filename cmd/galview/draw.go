package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/ha1tch/gallifreyan/pkg/gallifreyan"
	"github.com/ha1tch/gallifreyan/pkg/render"
)

// Styles
var (
	styleDefault  = tcell.StyleDefault
	styleTitle    = tcell.StyleDefault.Bold(true).Foreground(tcell.ColorWhite)
	styleSidebar  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleSidebarH = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleAttached = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleMsgInfo  = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorNavy)
	styleMsgError = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorNavy).Bold(true)
	styleHelp     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleInput    = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	styleBorder   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

const sidebarWidth = 24

func (v *Viewer) draw() {
	v.screen.Clear()
	w, h := v.screen.Size()
	if w < 20 || h < 8 {
		v.drawString(0, 0, "Terminal too small", styleMsgError)
		return
	}

	v.drawString(1, 0, "galview", styleTitle)

	canvasW := w
	if v.showTokens {
		canvasW = w - sidebarWidth
		v.drawTokens(canvasW, 1, sidebarWidth, h-4)
	}
	v.drawCanvas(0, 1, canvasW, h-4)
	v.drawInputLine(w, h-3)
	v.drawStatusBar(w, h)

	if v.mode == ModeHelp {
		v.drawHelp(w, h)
	}
}

func (v *Viewer) drawCanvas(x, y, w, h int) {
	if w <= 0 || h <= 0 || len(v.drawings) == 0 {
		return
	}
	grid := render.Rasterize(v.drawings, w, h, v.extent)
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			c := grid.At(col, row)
			if c.Ch == ' ' {
				continue
			}
			v.screen.SetContent(x+col, y+row, c.Ch, nil, styleDefault.Foreground(cellColor(c)))
		}
	}
}

// cellColor lifts dark palette colours so they stay visible on a dark
// terminal background.
func cellColor(c render.Cell) tcell.Color {
	cf, _ := colorful.MakeColor(c.Color)
	h, s, l := cf.Hsl()
	if l < 0.45 {
		cf = colorful.Hsl(h, s, 0.45)
	}
	r, g, b := cf.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (v *Viewer) drawTokens(x, y, w, h int) {
	v.drawTitledBox(x, y, w, h, "Tokens")
	row := y + 1
	for i, tokens := range v.words {
		if row >= y+h-1 {
			return
		}
		v.drawString(x+2, row, truncate(fmt.Sprintf("%d %s", i+1, gallifreyan.Spell(tokens)), w-4), styleSidebarH)
		row++

		slots, err := gallifreyan.Slots(tokens)
		if err != nil {
			continue
		}
		for _, s := range slots {
			if row >= y+h-1 {
				return
			}
			style := styleSidebar
			if !s.Standalone {
				style = styleAttached
			}
			v.drawString(x+3, row, fmt.Sprintf("%-2s %2d", s.Letter.Spelling(), s.Index), style)
			row++
		}
	}
}

func (v *Viewer) drawInputLine(w, y int) {
	for x := 0; x < w; x++ {
		v.screen.SetContent(x, y, ' ', nil, styleInput)
	}
	prompt := "> "
	v.drawString(1, y, prompt, styleInput)
	end := v.drawString(1+len(prompt), y, v.text, styleInput)
	v.screen.SetContent(end, y, '_', nil, styleInput)
}

func (v *Viewer) drawStatusBar(w, h int) {
	// Help bar
	y := h - 2
	v.drawString(1, y, v.helpString(), styleHelp)

	y = h - 1
	for x := 0; x < w; x++ {
		v.screen.SetContent(x, y, ' ', nil, styleStatus)
	}
	v.drawString(1, y, fmt.Sprintf("±%.0f", v.extent), styleStatus)

	if v.message != "" {
		style := styleMsgInfo
		if v.messageType == MsgError {
			style = styleMsgError
		}
		if start := v.messageFlashStart.Load(); v.messageType.flashes() && start > 0 &&
			flashInverted(time.Now().UnixMilli()-start) {
			style = style.Reverse(true)
		}
		msg := truncate(v.message, w-10)
		v.drawString(w-runewidth.StringWidth(msg)-2, y, msg, style)
	}
}

func (v *Viewer) drawHelp(w, h int) {
	lines := []string{
		"Type to write, Backspace to erase",
		"Ctrl+U     clear",
		"PgUp/PgDn  zoom in/out",
		"Tab        toggle tokens",
		"Ctrl+S     save PNG",
		"Esc        quit",
		"",
		"Press any key",
	}
	boxW, boxH := 40, len(lines)+2
	x, y := (w-boxW)/2, (h-boxH)/2
	v.drawTitledBox(x, y, boxW, boxH, "Help")
	for i, l := range lines {
		v.drawString(x+2, y+1+i, l, styleSidebar)
	}
}

func (v *Viewer) drawTitledBox(x, y, w, h int, title string) {
	// Top border
	v.screen.SetContent(x, y, '┌', nil, styleBorder)
	for i := 1; i < w-1; i++ {
		v.screen.SetContent(x+i, y, '─', nil, styleBorder)
	}
	v.screen.SetContent(x+w-1, y, '┐', nil, styleBorder)

	if title != "" {
		titleX := x + (w-len(title)-2)/2
		v.screen.SetContent(titleX, y, ' ', nil, styleBorder)
		v.drawString(titleX+1, y, title, styleSidebarH)
		v.screen.SetContent(titleX+1+len(title), y, ' ', nil, styleBorder)
	}

	// Sides and fill
	for row := 1; row < h-1; row++ {
		v.screen.SetContent(x, y+row, '│', nil, styleBorder)
		for col := 1; col < w-1; col++ {
			v.screen.SetContent(x+col, y+row, ' ', nil, styleDefault)
		}
		v.screen.SetContent(x+w-1, y+row, '│', nil, styleBorder)
	}

	// Bottom border
	v.screen.SetContent(x, y+h-1, '└', nil, styleBorder)
	for i := 1; i < w-1; i++ {
		v.screen.SetContent(x+i, y+h-1, '─', nil, styleBorder)
	}
	v.screen.SetContent(x+w-1, y+h-1, '┘', nil, styleBorder)
}

// drawString draws s from column x and returns the column after it.
func (v *Viewer) drawString(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

func (v *Viewer) helpString() string {
	if v.mode == ModeHelp {
		return "Any key:Close"
	}
	return "F1:Help  PgUp/PgDn:Zoom  Tab:Tokens  Ctrl+S:Save PNG  Esc:Quit"
}

func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return runewidth.Truncate(s, maxLen, "")
	}
	return runewidth.Truncate(s, maxLen, "...")
}
