package pg

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestCompact(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"select 1", "select 1"},
		{"  select   word  ", " select word "},
		{"SELECT\tword\nFROM\r\tforbidden_words ORDER BY  id", "SELECT word FROM forbidden_words ORDER BY id"},
		{"", ""},
	}
	for i, c := range cases {
		if got := compact(c.in); got != c.want {
			t.Fatalf("case %d: compact(%q) = %q, want %q", i, c.in, got, c.want)
		}
	}
}

type logLine struct {
	Level     string  `json:"level"`
	ElapsedMS float64 `json:"elapsed_ms"`
	Slow      bool    `json:"slow"`
	SQL       string  `json:"sql"`
	Args      []any   `json:"args"`
	Error     string  `json:"error"`
	Message   string  `json:"message"`
	Component string  `json:"component"`
}

func TestTracer_Levels(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	tr := Tracer(zerolog.New(&buf).Level(zerolog.ErrorLevel))

	ev := QueryEvent{
		SQL:       "SELECT  word \n FROM  forbidden_words",
		Args:      []any{"en"},
		ElapsedUS: 12345,
	}

	cases := []struct {
		name  string
		slow  bool
		err   error
		level string
	}{
		{"info", false, nil, "info"},
		{"slow", true, nil, "warn"},
		{"error", true, errors.New("boom"), "error"},
	}
	for _, c := range cases {
		buf.Reset()
		ev.Slow, ev.Err = c.slow, c.err
		tr.OnQuery(context.Background(), ev)

		var line logLine
		if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
			t.Fatalf("%s: unmarshal: %v raw=%s", c.name, err, buf.String())
		}
		if line.Level != c.level {
			t.Fatalf("%s: level = %q, want %q", c.name, line.Level, c.level)
		}
		if math.Abs(line.ElapsedMS-12.345) > 0.0005 {
			t.Fatalf("%s: elapsed_ms = %v", c.name, line.ElapsedMS)
		}
		if line.SQL != "SELECT word FROM forbidden_words" || line.Component != "pg" || line.Message != "pg query" {
			t.Fatalf("%s: line = %+v", c.name, line)
		}
		if len(line.Args) != 1 || line.Args[0] != "en" {
			t.Fatalf("%s: args = %#v", c.name, line.Args)
		}
		if c.err != nil && line.Error != "boom" {
			t.Fatalf("%s: error = %q", c.name, line.Error)
		}
	}
}

type recTracer struct{ evs []QueryEvent }

func (r *recTracer) OnQuery(_ context.Context, ev QueryEvent) { r.evs = append(r.evs, ev) }

func TestTrace_SlowFlag(t *testing.T) {
	t.Parallel()

	rt := &recTracer{}
	p := &PG{Tracer: rt, SlowMs: 1}
	p.trace(context.Background(), "select 1", nil, zeroTime, nil)
	if len(rt.evs) != 1 || !rt.evs[0].Slow {
		t.Fatalf("expected one slow event, got %+v", rt.evs)
	}

	(&PG{}).trace(context.Background(), "select 1", nil, zeroTime, nil) // nil tracer is a no-op
}

// a start time far in the past makes every query look slow
var zeroTime = time.Unix(0, 0)
