package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"locshare/internal/storage"
	"locshare/pkg/i18n"
)

type fakeUsers map[string]string

func (f fakeUsers) UserLanguage(_ context.Context, userID string) (string, error) {
	if userID == "broken" {
		return "", errors.New("connection refused")
	}
	lang, ok := f[userID]
	if !ok {
		return "", fmt.Errorf("%w: %s", storage.ErrUserNotFound, userID)
	}
	return lang, nil
}

type fakeObjects struct {
	docs  map[string]string
	err   error
	calls int
}

func (f *fakeObjects) GetJSON(_ context.Context, bucket, key string, out any) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	doc, ok := f.docs[bucket+"/"+key]
	if !ok {
		return fmt.Errorf("%w: %s/%s", storage.ErrNotFound, bucket, key)
	}
	return json.Unmarshal([]byte(doc), out)
}

func TestService_Strings(t *testing.T) {
	users := fakeUsers{"42": "spanish", "7": "fr", "9": "japanese?", "11": "german"}
	objects := &fakeObjects{docs: map[string]string{
		"i18n/i18n/spanish.json": `{"title":"Comparte","btn_share":"Compartir"}`,
	}}
	svc := NewService(users, objects, "i18n")

	tests := []struct {
		name      string
		userID    string
		wantLang  string
		wantTitle string
		wantShare string
	}{
		{name: "stored catalog overlays base", userID: "42", wantLang: "spanish", wantTitle: "Comparte", wantShare: "Compartir"},
		{name: "builtin catalog when object is missing", userID: "7", wantLang: "french", wantTitle: "Partagez votre position", wantShare: "Partager la position"},
		{name: "unknown user gets base", userID: "nobody", wantLang: "english", wantTitle: "Share Your Location", wantShare: "Share Location"},
		{name: "empty id gets base", userID: "", wantLang: "english", wantTitle: "Share Your Location", wantShare: "Share Location"},
		{name: "unparseable language gets base", userID: "9", wantLang: "english", wantTitle: "Share Your Location", wantShare: "Share Location"},
		{name: "language without catalog gets base text", userID: "11", wantLang: "german", wantTitle: "Share Your Location", wantShare: "Share Location"},
		{name: "user store failure gets base", userID: "broken", wantLang: "english", wantTitle: "Share Your Location", wantShare: "Share Location"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := svc.Strings(context.Background(), tt.userID)
			if got := table[i18n.KeyLanguage]; got != tt.wantLang {
				t.Errorf("expected language %q, got %q", tt.wantLang, got)
			}
			if got := table[i18n.KeyTitle]; got != tt.wantTitle {
				t.Errorf("expected title %q, got %q", tt.wantTitle, got)
			}
			if got := table[i18n.KeyBtnShare]; got != tt.wantShare {
				t.Errorf("expected share button %q, got %q", tt.wantShare, got)
			}
			// every key has text
			for _, key := range i18n.Elements {
				if table[key] == "" {
					t.Errorf("missing text for %s", key)
				}
			}
		})
	}
}

func TestService_CatalogIsCached(t *testing.T) {
	objects := &fakeObjects{docs: map[string]string{
		"b/i18n/hindi.json": `{"title":"स्थान"}`,
	}}
	svc := NewService(fakeUsers{"1": "hindi"}, objects, "b")

	first := svc.Strings(context.Background(), "1")
	second := svc.Strings(context.Background(), "1")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical tables, got %v and %v", first, second)
	}
	if objects.calls != 1 {
		t.Errorf("expected 1 object read, got %d", objects.calls)
	}
}

func TestService_StorageErrorIsNotCached(t *testing.T) {
	objects := &fakeObjects{err: errors.New("minio down")}
	svc := NewService(fakeUsers{"1": "spanish"}, objects, "b")

	table := svc.Strings(context.Background(), "1")
	if got := table[i18n.KeyTitle]; got != "Comparte tu ubicación" {
		t.Errorf("expected builtin title, got %q", got)
	}

	objects.err = nil
	objects.docs = map[string]string{"b/i18n/spanish.json": `{"title":"Nuevo"}`}
	table = svc.Strings(context.Background(), "1")
	if got := table[i18n.KeyTitle]; got != "Nuevo" {
		t.Errorf("expected stored title, got %q", got)
	}
	if objects.calls != 2 {
		t.Errorf("expected 2 object reads, got %d", objects.calls)
	}
}

func TestService_WithoutStores(t *testing.T) {
	svc := NewService(nil, nil, "", WithDefaultLanguage("es"))
	table := svc.Strings(context.Background(), "42")
	if got := table[i18n.KeyLanguage]; got != "spanish" {
		t.Errorf("expected spanish, got %q", got)
	}
	if got := table[i18n.KeyBtnShare]; got != "Compartir ubicación" {
		t.Errorf("unexpected share button %q", got)
	}
}

func TestService_EmptyValuesKeepBase(t *testing.T) {
	objects := &fakeObjects{docs: map[string]string{"b/i18n/english.json": `{"title":""}`}}
	svc := NewService(nil, objects, "b")
	table := svc.Strings(context.Background(), "")
	if got := table[i18n.KeyTitle]; got != "Share Your Location" {
		t.Errorf("expected base title, got %q", got)
	}
}

func TestBuiltin(t *testing.T) {
	want := []string{"english", "french", "hindi", "spanish"}
	if got := BuiltinLanguages(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	for _, lang := range BuiltinLanguages() {
		table, ok := Builtin(lang)
		if !ok {
			t.Fatalf("missing builtin catalog %s", lang)
		}
		for _, key := range append(append([]string{}, i18n.Elements...),
			i18n.StatusLocating, i18n.StatusDetected, i18n.StatusError,
			i18n.StatusSaving, i18n.StatusSaved, i18n.StatusSaveError) {
			if table[key] == "" {
				t.Errorf("%s/%s: missing text", lang, key)
			}
		}
	}

	table, _ := Builtin("spanish")
	table[i18n.KeyTitle] = "mutated"
	again, _ := Builtin("spanish")
	if again[i18n.KeyTitle] == "mutated" {
		t.Error("expected Builtin to return a copy")
	}

	if _, ok := Builtin("klingon"); ok {
		t.Error("expected no catalog for klingon")
	}
}
