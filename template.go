package launcher

import (
	"strings"
	"time"

	gcache "github.com/Code-Hex/go-generics-cache"
)

const placeholder = `<textarea id="t" placeholder="Type English text here..."></textarea>`

const document = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1"/>
  <title>Speech Synthesis Test</title>
  <style>
    body { font-family: system-ui, sans-serif; margin: 20px; }
    textarea { width: 100%; height: 160px; font-size: 16px; }
    button { font-size: 16px; padding: 10px 14px; margin-right: 8px; }
    .row { margin-top: 12px; }
    .note { color: #444; font-size: 13px; margin-top: 10px; }
  </style>
</head>
<body>
  <h2>Speech Synthesis Test</h2>
  ` + placeholder + `
  <div class="row">
    <button onclick="speak()">Speak</button>
    <button onclick="stopSpeak()">Stop</button>
  </div>
  <div class="note">
    Uses the browser's built-in SpeechSynthesis (voice/quality depends on device).
  </div>
<script>
  function pickEnglishVoice() {
    const voices = speechSynthesis.getVoices();
    if (!voices || voices.length === 0) return null;
    return voices.find(v => (v.lang || '').toLowerCase().startsWith('en-us'))
        || voices.find(v => (v.lang || '').toLowerCase().startsWith('en'))
        || null;
  }

  function speak() {
    const text = document.getElementById('t').value.trim();
    if (!text) return;
    speechSynthesis.cancel();
    const u = new SpeechSynthesisUtterance(text);
    u.lang = "en-US";
    const v = pickEnglishVoice();
    if (v) u.voice = v;
    speechSynthesis.speak(u);
  }

  function stopSpeak() {
    speechSynthesis.cancel();
  }

  // voices may be populated asynchronously
  window.speechSynthesis.onvoiceschanged = () => {};
</script>
</body>
</html>
`

// escaper order matters: backslash and "</" are rewritten before the
// entity pass so their output is not escaped twice.
var escapers = []*strings.Replacer{
	strings.NewReplacer(`\`, `\\`),
	strings.NewReplacer(`</`, `<\/`),
	strings.NewReplacer(`&`, `&amp;`),
	strings.NewReplacer(`<`, `&lt;`),
	strings.NewReplacer(`>`, `&gt;`),
}

// Escape makes text safe to embed in the text area of the speech page.
func Escape(text string) string {
	for _, r := range escapers {
		text = r.Replace(text)
	}
	return text
}

// Render returns the speech page with text filled into its text area.
func Render(text string) string {
	return strings.Replace(document, placeholder,
		`<textarea id="t">`+Escape(text)+`</textarea>`, 1)
}

// Renderer memoizes Render per input text.
type Renderer struct {
	cache *gcache.Cache[string, string]
	ttl   time.Duration
}

func NewRenderer(cache *gcache.Cache[string, string], ttl time.Duration) *Renderer {
	return &Renderer{cache: cache, ttl: ttl}
}

func (r *Renderer) Render(text string) string {
	if r == nil || r.cache == nil {
		return Render(text)
	}
	if doc, ok := r.cache.Get(text); ok {
		return doc
	}
	doc := Render(text)
	r.cache.Set(text, doc, gcache.WithExpiration(r.ttl))
	return doc
}
