package page

import "testing"

func TestParseParams(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Params
	}{
		{name: "both", raw: "id=42&backend=https%3A%2F%2Fapi.example.com", want: Params{UserID: "42", Backend: "https://api.example.com"}},
		{name: "leading question mark", raw: "?id=abc", want: Params{UserID: "abc"}},
		{name: "empty", raw: "", want: Params{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseParams(tt.raw); got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestParsePageURL(t *testing.T) {
	p, err := ParsePageURL("https://jobs.example.com/maps/index.html?id=9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := (Params{UserID: "9", Backend: "https://jobs.example.com"}); p != want {
		t.Errorf("expected %+v, got %+v", want, p)
	}

	p, err = ParsePageURL("https://jobs.example.com/maps/?id=9&backend=https://api.example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Backend != "https://api.example.com" {
		t.Errorf("expected backend override, got %q", p.Backend)
	}

	if _, err := ParsePageURL("://bad"); err == nil {
		t.Error("expected an error for a malformed URL")
	}
}

func TestStateString(t *testing.T) {
	tests := map[State]string{
		StateIdle:      "idle",
		StateSaveError: "save_error",
		State(99):      "unknown",
	}
	for state, want := range tests {
		if got := state.String(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
}
