package main

import (
	"fmt"
	"io"
	"sync"

	"locshare/internal/models"
)

// terminalView prints every page update as a line of text.
type terminalView struct {
	mu sync.Mutex
	w  io.Writer
}

func newTerminalView(w io.Writer) *terminalView {
	return &terminalView{w: w}
}

func (v *terminalView) printf(format string, args ...any) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintf(v.w, format+"\n", args...)
}

func (v *terminalView) SetText(key, text string) { v.printf("[%s] %s", key, text) }

func (v *terminalView) SetStatus(text string) { v.printf("status: %s", text) }

func (v *terminalView) SetSubmitEnabled(enabled bool) {
	if enabled {
		v.printf("share: enabled")
		return
	}
	v.printf("share: disabled")
}

func (v *terminalView) PlaceMarker(p models.LocationPoint) {
	v.printf("marker: %.6f, %.6f", p.Lat, p.Lng)
}

func (v *terminalView) SetLanguage(tag string) { v.printf("lang: %s", tag) }
