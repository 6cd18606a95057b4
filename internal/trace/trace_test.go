package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestLevelAllows(t *testing.T) {
	tests := []struct {
		level Level
		ev    Event
		want  bool
	}{
		{LevelOff, Event{Scope: ScopeDriver}, false},
		{LevelOff, Event{Scope: ScopeNode, Err: true}, false},
		{LevelError, Event{Scope: ScopeDriver}, false},
		{LevelError, Event{Scope: ScopeNode, Err: true}, true},
		{LevelPhase, Event{Scope: ScopePass}, true},
		{LevelPhase, Event{Scope: ScopeFile}, false},
		{LevelDetail, Event{Scope: ScopeFile}, true},
		{LevelDetail, Event{Scope: ScopeNode}, false},
		{LevelDebug, Event{Scope: ScopeNode}, true},
	}
	for _, tt := range tests {
		if got := tt.level.Allows(&tt.ev); got != tt.want {
			t.Errorf("%v.Allows(%v err=%v) = %v, want %v", tt.level, tt.ev.Scope, tt.ev.Err, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	for _, name := range []string{"off", "ERROR", "Phase", "detail", "debug"} {
		lvl, err := ParseLevel(name)
		if err != nil || !strings.EqualFold(lvl.String(), name) {
			t.Errorf("ParseLevel(%q) = %v, %v", name, lvl, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithTracer(context.Background(), NewStreamTracer(&buf, LevelPhase, FormatText))

	span := Begin(ctx, ScopePass, "parse", "main.o2")
	span.Point(ScopeNode, "recover", "", Int("skipped", 2)) // отфильтровано на phase
	span.Set(Int("stmts", 3), Int("errors", 0)).End()

	out := buf.String()
	for _, want := range []string{">parse main.o2\n", "<parse main.o2 stmts=3 errors=0\n"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "recover") {
		t.Fatalf("node events must be filtered at phase level:\n%s", out)
	}
}

func TestErrorLevelKeepsOnlyErrors(t *testing.T) {
	ring := NewRingTracer(8, LevelError)
	ctx := WithTracer(context.Background(), ring)

	span := Begin(ctx, ScopePass, "parse", "bad.o2")
	span.Point(ScopeNode, "recover", "")
	span.Error("diag", "SYN2012", String("state", "stmt-start"))
	span.End()

	got := ring.Snapshot()
	if len(got) != 1 || got[0].Name != "diag" || !got[0].Err || got[0].File != "bad.o2" {
		t.Fatalf("unexpected events %+v", got)
	}
	if got[0].ParentID != span.ID() {
		t.Fatalf("error point must belong to the span")
	}
}

func TestRingTracerWraps(t *testing.T) {
	r := NewRingTracer(2, LevelDebug)
	span := Begin(WithTracer(context.Background(), r), ScopeDriver, "run", "")
	span.Point(ScopeNode, "a", "")
	span.Point(ScopeNode, "b", "")

	got := r.Snapshot()
	if len(got) != 2 || got[0].Name != "a" || got[1].Name != "b" {
		t.Fatalf("unexpected snapshot %+v", got)
	}
	if got[0].Seq >= got[1].Seq {
		t.Fatalf("sequence numbers must grow: %d, %d", got[0].Seq, got[1].Seq)
	}
}

func TestNestedSpans(t *testing.T) {
	r := NewRingTracer(8, LevelDebug)
	ctx := WithTracer(context.Background(), r)

	outer := Begin(ctx, ScopeDriver, "parse-dir", "src")
	inner := Begin(outer.Context(ctx), ScopePass, "parse", "src/a.o2")
	inner.End()
	outer.End()

	evs := r.Snapshot()
	if len(evs) != 4 {
		t.Fatalf("want 4 events, got %d", len(evs))
	}
	if evs[1].ParentID != outer.ID() || outer.ID() == 0 {
		t.Fatalf("inner span parent = %d, want %d", evs[1].ParentID, outer.ID())
	}
}

func TestDisabledSpanIsInert(t *testing.T) {
	span := Begin(context.Background(), ScopePass, "parse", "x.o2")
	span.Set(Int("n", 1)).Point(ScopeNode, "p", "")
	span.Error("diag", "")
	if span.ID() != 0 || span.End() != 0 {
		t.Fatal("span without tracer must be inert")
	}
	ctx := context.Background()
	if span.Context(ctx) != ctx {
		t.Fatal("inert span must not change the context")
	}
}

func TestNDJSON(t *testing.T) {
	ev := &Event{Kind: KindPoint, Scope: ScopeNode, Err: true, Name: "diag", File: "a.o2", Attrs: []Attr{String("at", "1:2")}}
	var got map[string]any
	if err := json.Unmarshal(FormatEvent(ev, FormatNDJSON), &got); err != nil {
		t.Fatal(err)
	}
	if got["name"] != "diag" || got["error"] != true || got["scope"] != "node" {
		t.Fatalf("unexpected json %v", got)
	}
}

func TestNew(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil || tr.Enabled() {
		t.Fatalf("New(off) = %v, %v", tr, err)
	}

	var buf bytes.Buffer
	tr, err = New(Config{Level: LevelDebug, Mode: ModeBoth, Output: &buf, RingSize: 4})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := Ring(tr); !ok {
		t.Fatal("both mode must keep a ring")
	}
	if _, err := ParseMode("tape"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		ok   bool
	}{
		{"", FormatAuto, true},
		{"text", FormatText, true},
		{"NDJSON", FormatNDJSON, true},
		{"json", FormatNDJSON, true},
		{"xml", FormatAuto, false},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, %v", tt.in, got, err)
		}
	}
	if formatForPath("run.jsonl") != FormatNDJSON || formatForPath("run.log") != FormatText {
		t.Error("formatForPath picked the wrong format")
	}
}
