package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	launcher "github.com/nobonobo/speech-launcher"
)

// debug font cell
const (
	glyphW = 6
	glyphH = 16
)

const label = "Type English text and press Open & Speak to hear it in the browser"

var (
	background = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	fieldFill  = color.RGBA{0x20, 0x20, 0x20, 0xff}
	buttonFill = color.RGBA{0x40, 0x40, 0x48, 0xff}
	buttonHot  = color.RGBA{0x58, 0x58, 0x68, 0xff}
	shade      = color.RGBA{0x00, 0x00, 0x00, 0x90}
	dialogFill = color.RGBA{0x30, 0x18, 0x18, 0xff}
	border     = color.RGBA{0x80, 0x80, 0x80, 0xff}
)

type rect struct{ x, y, w, h int }

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

func (r rect) fill(dst *ebiten.Image, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.x), float32(r.y), float32(r.w), float32(r.h), clr, false)
}

func (r rect) stroke(dst *ebiten.Image, clr color.Color) {
	vector.StrokeRect(dst, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 1, clr, false)
}

type window struct {
	form   *launcher.Form
	runes  []rune
	dialog error
	width  int
	height int
	ticks  int
}

func newWindow(form *launcher.Form) *window {
	return &window{
		form:   form,
		width:  launcher.Config.Width,
		height: launcher.Config.Height,
	}
}

func (w *window) field() rect {
	return rect{10, 30, w.width - 20, w.height - 90}
}

func (w *window) speakButton() rect {
	return rect{w.width/2 - 122, w.height - 45, 112, 28}
}

func (w *window) clearButton() rect {
	return rect{w.width/2 + 10, w.height - 45, 112, 28}
}

func (w *window) dialogBox() rect {
	return rect{40, w.height/2 - 70, w.width - 80, 140}
}

func (w *window) okButton() rect {
	b := w.dialogBox()
	return rect{b.x + b.w/2 - 40, b.y + b.h - 38, 80, 28}
}

func repeating(key ebiten.Key) bool {
	const delay, interval = 30, 3
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d >= delay && (d-delay)%interval == 0)
}

func enterPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)
}

func (w *window) Update() error {
	w.ticks++
	if w.dialog == nil {
		w.dialog = w.form.Poll()
	}
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	mx, my := ebiten.CursorPosition()
	if w.dialog != nil {
		if enterPressed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
			(clicked && w.okButton().contains(mx, my)) {
			w.dialog = nil
		}
		// typed text while the dialog is up is dropped
		w.runes = ebiten.AppendInputChars(w.runes[:0])
		return nil
	}
	switch {
	case clicked && w.speakButton().contains(mx, my):
		w.form.OpenAndSpeak()
	case clicked && w.clearButton().contains(mx, my):
		w.form.Clear()
	}
	w.runes = ebiten.AppendInputChars(w.runes[:0])
	w.form.Insert(w.runes...)
	if enterPressed() {
		if ebiten.IsKeyPressed(ebiten.KeyControl) {
			w.form.OpenAndSpeak()
		} else {
			w.form.Insert('\n')
		}
	}
	if repeating(ebiten.KeyBackspace) {
		w.form.Backspace()
	}
	return nil
}

func (w *window) drawButton(screen *ebiten.Image, r rect, caption string) {
	mx, my := ebiten.CursorPosition()
	if r.contains(mx, my) {
		r.fill(screen, buttonHot)
	} else {
		r.fill(screen, buttonFill)
	}
	r.stroke(screen, border)
	x := r.x + (r.w-len(caption)*glyphW)/2
	ebitenutil.DebugPrintAt(screen, caption, x, r.y+(r.h-glyphH)/2)
}

func (w *window) drawField(screen *ebiten.Image) {
	f := w.field()
	f.fill(screen, fieldFill)
	f.stroke(screen, border)
	text := w.form.Text()
	if w.dialog == nil && w.ticks/30%2 == 0 {
		text += "_"
	}
	lines := launcher.Wrap(text, (f.w-8)/glyphW)
	if rows := (f.h - 8) / glyphH; rows > 0 && len(lines) > rows {
		lines = lines[len(lines)-rows:]
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, f.x+4, f.y+4+i*glyphH)
	}
}

func (w *window) drawDialog(screen *ebiten.Image) {
	rect{0, 0, w.width, w.height}.fill(screen, shade)
	b := w.dialogBox()
	b.fill(screen, dialogFill)
	b.stroke(screen, border)
	ebitenutil.DebugPrintAt(screen, "Error", b.x+10, b.y+6)
	lines := launcher.Wrap(w.dialog.Error(), (b.w-20)/glyphW)
	if limit := (b.h - 70) / glyphH; len(lines) > limit {
		lines = lines[:limit]
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, b.x+10, b.y+28+i*glyphH)
	}
	w.drawButton(screen, w.okButton(), "OK")
}

func (w *window) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	rect{0, 0, w.width, 26}.fill(screen, buttonFill)
	ebitenutil.DebugPrintAt(screen, label, 10, 5)
	w.drawField(screen)
	w.drawButton(screen, w.speakButton(), "Open & Speak")
	w.drawButton(screen, w.clearButton(), "Clear")
	if w.dialog != nil {
		w.drawDialog(screen)
	}
}

func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	w.width, w.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
