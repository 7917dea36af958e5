package launcher

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPublishWritesThenOpens(t *testing.T) {
	dir := t.TempDir()
	doc := "<!doctype html><p>café</p>\n"
	var opened []string
	p := &Publisher{Dir: dir, Pattern: "speech-*.html", Opener: OpenerFunc(func(path string) error {
		b, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if string(b) != doc {
			t.Errorf("file not complete when opened: %q", b)
		}
		opened = append(opened, path)
		return nil
	})}
	path, err := p.Publish(doc)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if filepath.Dir(path) != dir || !strings.HasSuffix(path, ".html") {
		t.Fatalf("unexpected path %q", path)
	}
	if len(opened) != 1 || opened[0] != path {
		t.Fatalf("expected one open of %q, got %v", path, opened)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("published file should be kept: %v", err)
	}
}

func TestPublishDefaultPattern(t *testing.T) {
	p := &Publisher{Dir: t.TempDir(), Opener: OpenerFunc(func(string) error { return nil })}
	path, err := p.Publish("x")
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if !strings.HasSuffix(path, ".html") {
		t.Fatalf("expected .html suffix, got %q", path)
	}
}

func TestPublishOpenError(t *testing.T) {
	errNoHandler := errors.New("no handler")
	p := &Publisher{Dir: t.TempDir(), Opener: OpenerFunc(func(string) error { return errNoHandler })}
	path, err := p.Publish("x")
	if !errors.Is(err, errNoHandler) {
		t.Fatalf("expected wrapped open error, got %v", err)
	}
	if _, statErr := os.Stat(path); statErr != nil {
		t.Fatalf("file should exist after open failure: %v", statErr)
	}
}

func TestPublishCreateError(t *testing.T) {
	called := false
	p := &Publisher{
		Dir:    filepath.Join(t.TempDir(), "missing"),
		Opener: OpenerFunc(func(string) error { called = true; return nil }),
	}
	if _, err := p.Publish("x"); err == nil {
		t.Fatalf("expected error for missing dir")
	}
	if called {
		t.Fatalf("opener must not run when the write fails")
	}
}

func TestSetupCreatesTempDir(t *testing.T) {
	saved := Config
	t.Cleanup(func() { Config = saved })
	Config.TempDir = filepath.Join(t.TempDir(), "a", "b")
	if err := Setup(); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if fi, err := os.Stat(Config.TempDir); err != nil || !fi.IsDir() {
		t.Fatalf("expected temp dir to exist: %v", err)
	}
}
