package validators

import (
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	pkgerrors "github.com/Arman11r/Catalog-web/pkg/errors"
)

type samplePayload struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

func TestDecodeJSONBodyValid(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Asha","email":"asha@example.com"}`))

	var dest samplePayload
	if err := DecodeJSONBody(r, &dest); err != nil {
		t.Fatalf("DecodeJSONBody: %v", err)
	}
	if dest.Name != "Asha" || dest.Email != "asha@example.com" {
		t.Fatalf("unexpected payload: %+v", dest)
	}
}

func TestDecodeJSONBodyToleratesUnknownFields(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"A","email":"a@b.co","extra":true}`))

	var dest samplePayload
	if err := DecodeJSONBody(r, &dest); err != nil {
		t.Fatalf("unknown field rejected: %v", err)
	}
}

func TestDecodeJSONBodyMalformedJSON(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":`))

	var dest samplePayload
	err := DecodeJSONBody(r, &dest)

	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestDecodeJSONBodyFieldErrorsUseJSONNames(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Asha","email":"not-an-email"}`))

	var dest samplePayload
	err := DecodeJSONBody(r, &dest)

	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}

	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("details type %T", typed.Details())
	}
	if details["email"] != "must be a valid email" {
		t.Fatalf("details = %v", details)
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString("  hello  ", 0); got != "hello" {
		t.Fatalf("SanitizeString = %q", got)
	}
	if got := SanitizeString("abcdef", 3); got != "abc" {
		t.Fatalf("SanitizeString with maxLen = %q", got)
	}
}

func TestSanitizeStringKeepsRunesIntact(t *testing.T) {
	// "Café" is 5 bytes; a 4-byte cap must drop the whole é, not half of it.
	got := SanitizeString("Café", 4)
	if got != "Caf" {
		t.Fatalf("SanitizeString = %q, want %q", got, "Caf")
	}
	if !utf8.ValidString(got) {
		t.Fatalf("SanitizeString produced invalid UTF-8: %q", got)
	}

	// A cap landing past the rune keeps it.
	if got := SanitizeString("Café", 5); got != "Café" {
		t.Fatalf("SanitizeString = %q, want %q", got, "Café")
	}

	// Devanagari runes are 3 bytes each; any cap must yield valid UTF-8.
	name := "रेस्टोरेंट"
	for maxLen := 1; maxLen <= len(name); maxLen++ {
		if out := SanitizeString(name, maxLen); !utf8.ValidString(out) {
			t.Fatalf("invalid UTF-8 at maxLen=%d: %q", maxLen, out)
		}
	}
}

func TestSanitizeOptional(t *testing.T) {
	if got := SanitizeOptional(nil, 10); got != nil {
		t.Fatalf("nil input must stay nil, got %v", got)
	}

	blank := "   "
	if got := SanitizeOptional(&blank, 10); got != nil {
		t.Fatalf("blank input must become nil, got %q", *got)
	}

	val := " ok "
	got := SanitizeOptional(&val, 10)
	if got == nil || *got != "ok" {
		t.Fatalf("SanitizeOptional = %v", got)
	}
}
