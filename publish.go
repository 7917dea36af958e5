package launcher

import (
	"fmt"
	"os"
)

// Opener opens a path with the application the OS registered for it.
type Opener interface {
	Open(path string) error
}

type OpenerFunc func(path string) error

func (f OpenerFunc) Open(path string) error {
	return f(path)
}

// Publisher writes documents to fresh temp files and opens them.
// Files are left in place for the browser to read; the OS temp
// eviction cleans them up.
type Publisher struct {
	Dir     string
	Pattern string
	Opener  Opener
}

func (p *Publisher) Publish(doc string) (string, error) {
	pattern := p.Pattern
	if pattern == "" {
		pattern = "*.html"
	}
	f, err := os.CreateTemp(p.Dir, pattern)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	path := f.Name()
	if _, err := f.WriteString(doc); err != nil {
		f.Close()
		return path, fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return path, fmt.Errorf("close %s: %w", path, err)
	}
	opener := p.Opener
	if opener == nil {
		opener = DefaultOpener()
	}
	if err := opener.Open(path); err != nil {
		return path, fmt.Errorf("open %s: %w", path, err)
	}
	return path, nil
}
