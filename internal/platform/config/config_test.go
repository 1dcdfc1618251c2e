package config

import (
	"testing"
	"time"

	kit "forword/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	fw := New().Prefix("FORWORD_")
	if got := fw.key("TOKEN"); got != "FORWORD_TOKEN" {
		t.Fatalf("key() = %q, want %q", got, "FORWORD_TOKEN")
	}
	pg := fw.Prefix("DICT_PG_")
	if got := pg.key("TABLE"); got != "FORWORD_DICT_PG_TABLE" {
		t.Fatalf("nested key() = %q", got)
	}
}

func TestMustString(t *testing.T) {
	c := New().Prefix("SERVICE_PGSQL_")
	t.Setenv("SERVICE_PGSQL_DBURL", "  postgres://db ")
	if got := c.MustString("DBURL"); got != "postgres://db" {
		t.Fatalf("MustString = %q", got)
	}
	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })

	t.Setenv("SERVICE_PGSQL_WS", "   ")
	kit.MustPanic(t, func() { _ = c.MustString("WS") })
}

func TestMustPortAndMayPort(t *testing.T) {
	c := New().Prefix("CORE_API_")
	t.Setenv("CORE_API_PORT", "4000")
	if got := c.MustPort("PORT"); got != ":4000" {
		t.Fatalf("MustPort = %q", got)
	}
	t.Setenv("CORE_API_COLON", ":8080")
	if got := c.MustPort("COLON"); got != ":8080" {
		t.Fatalf("MustPort(:8080) = %q", got)
	}
	t.Setenv("CORE_API_BAD", "abc")
	kit.MustPanic(t, func() { _ = c.MustPort("BAD") })
	t.Setenv("CORE_API_OOB", "70000")
	kit.MustPanic(t, func() { _ = c.MustPort("OOB") })

	if got := c.MayPort("UNSET", ":4000"); got != ":4000" {
		t.Fatalf("MayPort default = %q", got)
	}
}

func TestMayString(t *testing.T) {
	c := New().Prefix("FORWORD_")
	if got := c.MayString("MISSING", "***"); got != "***" {
		t.Fatalf("MayString default = %q", got)
	}
	t.Setenv("FORWORD_DICT_PATH", " words.txt ")
	if got := c.MayString("DICT_PATH", ""); got != "words.txt" {
		t.Fatalf("MayString value = %q", got)
	}
}

func TestMayRaw(t *testing.T) {
	c := New().Prefix("FORWORD_")
	if _, ok := c.MayRaw("IGNORED_SYMBOLS_UNSET"); ok {
		t.Fatalf("unset key reported present")
	}
	t.Setenv("FORWORD_IGNORED_SYMBOLS", " ")
	if v, ok := c.MayRaw("IGNORED_SYMBOLS"); !ok || v != " " {
		t.Fatalf("MayRaw = %q,%v", v, ok)
	}
}

func TestMayInt(t *testing.T) {
	c := New().Prefix("SERVICE_PGSQL_")
	if got := c.MayInt("MAX_CONNS", 4); got != 4 {
		t.Fatalf("MayInt default = %d", got)
	}
	t.Setenv("SERVICE_PGSQL_MAX_CONNS", " 7 ")
	if got := c.MayInt("MAX_CONNS", 0); got != 7 {
		t.Fatalf("MayInt ok = %d", got)
	}
	t.Setenv("SERVICE_PGSQL_BAD", "x")
	if got := c.MayInt("BAD", 3); got != 3 {
		t.Fatalf("MayInt bad -> default = %d", got)
	}
}

func TestMayBool(t *testing.T) {
	c := New().Prefix("FORWORD_")
	if !c.MayBool("MISSING", true) {
		t.Fatalf("MayBool default true expected")
	}
	t.Setenv("FORWORD_IGNORED_SYMBOLS_NONE", "1")
	if !c.MayBool("IGNORED_SYMBOLS_NONE", false) {
		t.Fatalf("MayBool(1) true expected")
	}
	t.Setenv("FORWORD_BAD", "nope")
	if c.MayBool("BAD", false) {
		t.Fatalf("MayBool bad -> default false expected")
	}
}

func TestMayDuration(t *testing.T) {
	c := New().Prefix("CORE_API_")
	if got := c.MayDuration("MISS", 5*time.Second); got != 5*time.Second {
		t.Fatalf("MayDuration default expected")
	}
	t.Setenv("CORE_API_TIMEOUT", "150ms")
	if got := c.MayDuration("TIMEOUT", time.Second); got != 150*time.Millisecond {
		t.Fatalf("MayDuration ok = %v", got)
	}
	t.Setenv("CORE_API_BAD", "nope")
	if got := c.MayDuration("BAD", time.Minute); got != time.Minute {
		t.Fatalf("MayDuration bad -> default expected")
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("CORE_API_")
	def := []string{"*"}
	if got := c.MayCSV("CORS_ORIGINS", def); len(got) != 1 || got[0] != "*" {
		t.Fatalf("MayCSV default mismatch: %#v", got)
	}
	t.Setenv("CORE_API_CORS_ORIGINS", " https://a.example, https://b.example , ,")
	got := c.MayCSV("CORS_ORIGINS", nil)
	want := []string{"https://a.example", "https://b.example"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("MayCSV = %#v, want %#v", got, want)
	}
	t.Setenv("CORE_API_BLANKS", " , ,  ,")
	if got := c.MayCSV("BLANKS", def); len(got) != 1 || got[0] != "*" {
		t.Fatalf("MayCSV all-empty -> default mismatch: %#v", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("FORWORD_")

	if got := c.MayEnum("DICT_SOURCE", "file", "file", "pg"); got != "file" {
		t.Fatalf("MayEnum default = %q", got)
	}

	t.Setenv("FORWORD_DICT_SOURCE", "PG")
	if got := c.MayEnum("DICT_SOURCE", "file", "file", "pg"); got != "pg" {
		t.Fatalf("MayEnum should return the allowed spelling, got %q", got)
	}

	t.Setenv("FORWORD_BAD", "redis")
	kit.MustPanic(t, func() { _ = c.MayEnum("BAD", "file", "file", "pg") })

	if got := c.MayEnum("UNSET", "", "file", "pg"); got != "" {
		t.Fatalf("MayEnum empty def = %q", got)
	}
}
