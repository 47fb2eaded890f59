package window

import "testing"

func TestWindowDefaults(t *testing.T) {
	w := &effectWindow{}
	w.applyDefaults()
	if w.title != "Default Window Title" {
		t.Errorf("default title = %q", w.title)
	}
	if w.width != 1280 || w.height != 720 {
		t.Errorf("default size = %dx%d, want 1280x720", w.width, w.height)
	}
}

func TestWindowOptionsOverrideDefaults(t *testing.T) {
	w := &effectWindow{}
	for _, opt := range []WindowBuilderOption{
		WithTitle("showcase"),
		WithWidth(1920),
		WithHeight(1080),
	} {
		opt(w)
	}
	w.applyDefaults()
	if w.title != "showcase" {
		t.Errorf("title = %q, want \"showcase\"", w.title)
	}
	if w.width != 1920 || w.height != 1080 {
		t.Errorf("size = %dx%d, want 1920x1080", w.width, w.height)
	}
}
