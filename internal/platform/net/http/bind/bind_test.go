package bind

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "forword/internal/platform/errors"
	kit "forword/internal/platform/testkit"
)

type replaceIn struct {
	Text  string `json:"text" validate:"required"`
	Token string `json:"token" validate:"max=8,nocontrol"`
}

func TestParseJSON_Success(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"text":"bad word","token":"[x]"}`))
	got, err := ParseJSON[replaceIn](req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Text != "bad word" || got.Token != "[x]" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseJSON_Failures(t *testing.T) {
	cases := []struct {
		name string
		body string
		code perr.ErrorCode
	}{
		{"empty body", "", perr.ErrorCodeJSON},
		{"invalid json", `{`, perr.ErrorCodeJSON},
		{"unknown field", `{"text":"a","boom":1}`, perr.ErrorCodeJSON},
		{"required", `{"token":"x"}`, perr.ErrorCodeValidation},
		{"too long", `{"text":"a","token":"123456789"}`, perr.ErrorCodeValidation},
		{"control chars", `{"text":"a","token":"a\u0007"}`, perr.ErrorCodeValidation},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/", strings.NewReader(c.body))
			_, err := ParseJSON[replaceIn](req)
			if perr.CodeOf(err) != c.code {
				t.Fatalf("code = %v, want %v (%v)", perr.CodeOf(err), c.code, err)
			}
		})
	}
}

func TestParseJSON_ValidationMessagesAndField(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"text":"a","token":"123456789"}`))
	_, err := ParseJSON[replaceIn](req)
	e, ok := perr.As(err)
	if !ok {
		t.Fatalf("expected *perr.Error, got %T", err)
	}
	if e.Field() != "token" {
		t.Fatalf("field = %q", e.Field())
	}
	kit.MustContain(t, err.Error(), "token must be at most 8")

	req = httptest.NewRequest("POST", "/", strings.NewReader(`{"text":"a","token":"\t"}`))
	_, err = ParseJSON[replaceIn](req)
	kit.MustContain(t, err.Error(), "token must not contain control characters")
}

func TestParseJSON_AllowEmptyBody(t *testing.T) {
	type opt struct {
		Note string `json:"note"`
	}
	req := httptest.NewRequest("POST", "/", http.NoBody)
	got, err := ParseJSON[opt](req, JSONOptions{AllowEmptyBody: true, MaxBytes: 8})
	if err != nil || got != (opt{}) {
		t.Fatalf("got %+v, %v", got, err)
	}
}

func TestParseJSON_MaxBytesTruncates(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"text":"`+strings.Repeat("a", 64)+`"}`))
	_, err := ParseJSON[replaceIn](req, JSONOptions{MaxBytes: 16, DisallowUnknown: true})
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("expected JSON error for truncated body, got %v", err)
	}
}

func TestParseJSON_TrailingData_Seam(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &jsonMore, func(*json.Decoder) bool { return true })

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"text":"a"}`))
	_, err := ParseJSON[replaceIn](req)
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("expected JSON error for trailing data, got %v", err)
	}
}

func TestValidationFieldAndMessage_Plain(t *testing.T) {
	if f, m := ValidationFieldAndMessage(nil); f != "" || m != "" {
		t.Fatalf("nil => %q %q", f, m)
	}
	if f, m := ValidationFieldAndMessage(perr.Internalf("x")); f != "" || m != "x" {
		t.Fatalf("plain => %q %q", f, m)
	}
}
