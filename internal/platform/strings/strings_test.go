package strings

import (
	"testing"

	kit "forword/internal/platform/testkit"
)

func TestIfEmpty(t *testing.T) {
	t.Parallel()

	got := IfEmpty([]string{"GET"}, []string{"POST"})
	if len(got) != 1 || got[0] != "GET" {
		t.Fatalf("IfEmpty returned wrong slice: %#v", got)
	}
	var empty []string
	got = IfEmpty(empty, []string{"POST"})
	if len(got) != 1 || got[0] != "POST" {
		t.Fatalf("IfEmpty did not return default: %#v", got)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   []string
		want string
	}{
		{[]string{"", "  ", "b"}, "b"},
		{[]string{"a", "b"}, "a"},
		{[]string{" ", ""}, ""},
		{nil, ""},
	}
	for _, c := range cases {
		if got := FirstNonEmpty(c.in...); got != c.want {
			t.Fatalf("FirstNonEmpty(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestMustPrefix(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"v1/filter":    "/v1/filter",
		"/v1/filter/":  "/v1/filter",
		"  /healthz  ": "/healthz",
	}
	for in, want := range cases {
		if got := MustPrefix(in); got != want {
			t.Fatalf("MustPrefix(%q) = %q, want %q", in, got, want)
		}
	}
	kit.MustPanic(t, func() { _ = MustPrefix(" / ") })
}
