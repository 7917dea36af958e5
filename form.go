package launcher

import (
	"strings"
	"unicode/utf8"
)

// Speaker is what the form hands trimmed text to.
type Speaker interface {
	Speak(text string)
}

// Form is the state behind the launcher window, kept apart from the
// drawing code. All methods are meant to be called from the UI thread.
type Form struct {
	text    []rune
	speaker Speaker
	errs    <-chan error
}

func NewForm(e *Engine) *Form {
	return &Form{speaker: e, errs: e.Errors()}
}

func (f *Form) Text() string {
	return string(f.text)
}

func (f *Form) SetText(s string) {
	f.text = []rune(s)
}

func (f *Form) Insert(runes ...rune) {
	f.text = append(f.text, runes...)
}

func (f *Form) Backspace() {
	if len(f.text) > 0 {
		f.text = f.text[:len(f.text)-1]
	}
}

// OpenAndSpeak dispatches the trimmed text and reports whether it did.
// Blank text is ignored without complaint.
func (f *Form) OpenAndSpeak() bool {
	text := strings.TrimSpace(string(f.text))
	if text == "" {
		return false
	}
	f.speaker.Speak(text)
	return true
}

func (f *Form) Clear() {
	f.text = f.text[:0]
}

// Poll returns the next pending dispatch error, or nil when there is
// none, without blocking.
func (f *Form) Poll() error {
	select {
	case err := <-f.errs:
		return err
	default:
		return nil
	}
}

// Wrap splits text into display lines of at most cols runes, breaking
// at newlines and, where possible, at the last space before the limit.
func Wrap(text string, cols int) []string {
	if cols < 1 {
		cols = 1
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		for utf8.RuneCountInString(para) > cols {
			runes := []rune(para)
			cut := cols
			for i := cols; i > 0; i-- {
				if runes[i] == ' ' {
					cut = i
					break
				}
			}
			lines = append(lines, string(runes[:cut]))
			rest := runes[cut:]
			if len(rest) > 0 && rest[0] == ' ' {
				rest = rest[1:]
			}
			para = string(rest)
		}
		lines = append(lines, para)
	}
	return lines
}
