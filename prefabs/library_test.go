package prefabs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func useDir(t *testing.T, dir string) {
	t.Helper()
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })
}

func TestLoadEmbeddedLibrary(t *testing.T) {
	useDir(t, t.TempDir())

	lib, err := LoadLibrary()
	if err != nil {
		t.Fatalf("LoadLibrary: %v", err)
	}

	for _, name := range []string{"snappy", "hop", "wobble", "smoothstep"} {
		if _, err := lib.Curve(name); err != nil {
			t.Fatalf("curve %s: %v", name, err)
		}
	}
	if _, err := lib.Curve("out_bounce"); err != nil {
		t.Fatalf("expected built-in easing fallback: %v", err)
	}
	if _, err := lib.Curve("nope"); !errors.Is(err, ErrUnknownCurve) {
		t.Fatalf("expected ErrUnknownCurve, got %v", err)
	}

	slide, err := lib.Tween("slide")
	if err != nil {
		t.Fatalf("tween slide: %v", err)
	}
	if slide.Property != PropertyPosition || slide.Duration != 1.6 || !slide.Yoyo {
		t.Fatalf("unexpected slide spec: %+v", slide)
	}
	if _, err := lib.Tween("nope"); !errors.Is(err, ErrUnknownTween) {
		t.Fatalf("expected ErrUnknownTween, got %v", err)
	}
	if len(lib.TweenNames()) == 0 || len(lib.CurveNames()) == 0 {
		t.Fatalf("expected names")
	}
}

func TestDiskOverridesEmbedded(t *testing.T) {
	dir := t.TempDir()
	useDir(t, dir)

	lib, err := LoadLibrary()
	if err != nil {
		t.Fatalf("LoadLibrary: %v", err)
	}

	override := "curves:\n  - name: only\n    power: 2\n"
	if err := os.WriteFile(filepath.Join(dir, CurvesFile), []byte(override), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	// tweens.yaml still references embedded curves, so reload must fail and
	// keep the previous content.
	if err := lib.Reload(); err == nil {
		t.Fatalf("expected reload error for dangling curve reference")
	}
	if _, err := lib.Curve("snappy"); err != nil {
		t.Fatalf("previous curves should survive a failed reload: %v", err)
	}

	tweens := "tweens:\n  - name: t\n    property: x\n    from: 0\n    to: 1\n    duration: 1\n    curve: only\n"
	if err := os.WriteFile(filepath.Join(dir, TweensFile), []byte(tweens), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := lib.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	c, err := lib.Curve("only")
	if err != nil {
		t.Fatalf("curve only: %v", err)
	}
	if got := c.Evaluate(0.5); got != 0.25 {
		t.Fatalf("expected 0.25, got %g", got)
	}
	if _, err := lib.Curve("snappy"); !errors.Is(err, ErrUnknownCurve) {
		t.Fatalf("expected snappy to be gone, got %v", err)
	}
	if _, ok := ModTime(CurvesFile); !ok {
		t.Fatalf("expected mod time for disk file")
	}
}

func TestReloadRejectsDuplicates(t *testing.T) {
	dir := t.TempDir()
	useDir(t, dir)

	dup := "curves:\n  - name: a\n  - name: a\n"
	if err := os.WriteFile(filepath.Join(dir, CurvesFile), []byte(dup), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadLibrary(); err == nil {
		t.Fatalf("expected duplicate curve error")
	}
}

func TestLoadScene(t *testing.T) {
	useDir(t, t.TempDir())

	scene, err := LoadScene()
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	if len(scene.Entities) == 0 {
		t.Fatalf("expected demo entities")
	}
	for _, e := range scene.Entities {
		if _, err := e.Tint.Color(); err != nil {
			t.Fatalf("entity %s tint: %v", e.Name, err)
		}
	}
}

func TestWatcherReportsSpecChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	target := filepath.Join(dir, CurvesFile)
	if err := os.WriteFile(target, []byte("curves: []\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case name := <-w.Events:
		if name != target {
			t.Fatalf("expected %s, got %s", target, name)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}
}

func TestCleanScriptPath(t *testing.T) {
	cases := map[string]string{
		"wobble":                       "scripts/wobble.tengo",
		"scripts/wobble.tengo":         "scripts/wobble.tengo",
		"prefabs/scripts/wobble.tengo": "scripts/wobble.tengo",
		"prefabs/wobble":               "scripts/wobble.tengo",
	}
	for in, want := range cases {
		if got := cleanScriptPath(in); got != want {
			t.Fatalf("cleanScriptPath(%q) = %q, want %q", in, got, want)
		}
	}
}
