package observ

import (
	"fmt"
	"io"
	"time"
)

// Timer measures the phases of one front-end run (tokenize, parse, sort).
// One Timer per file: it is not safe for concurrent use.
type Timer struct {
	phases []phase
}

type phase struct {
	name string
	dur  time.Duration
	note string
}

func NewTimer() *Timer { return &Timer{} }

// Track starts a phase; calling the returned func stops it with a note
// such as "12 tokens". Stopping twice keeps the first measurement.
func (t *Timer) Track(name string) func(note string) {
	idx := len(t.phases)
	t.phases = append(t.phases, phase{name: name, dur: -1})
	start := time.Now()
	return func(note string) {
		if p := &t.phases[idx]; p.dur < 0 {
			p.dur = time.Since(start)
			p.note = note
		}
	}
}

// PhaseReport is the serialisable form of one phase.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report is a finished Timer; phases that were never stopped count as zero.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

func (t *Timer) Report() Report {
	var rep Report
	for _, p := range t.phases {
		ms := millis(max(p.dur, 0))
		rep.TotalMS += ms
		rep.Phases = append(rep.Phases, PhaseReport{Name: p.name, DurationMS: ms, Note: p.note})
	}
	return rep
}

// Fprint writes "label: phase 1.23 ms (note)" lines and a total line.
func (r Report) Fprint(w io.Writer, label string) {
	for _, p := range r.Phases {
		fmt.Fprintf(w, "%s: %-8s %7.2f ms", label, p.Name, p.DurationMS)
		if p.Note != "" {
			fmt.Fprintf(w, " (%s)", p.Note)
		}
		fmt.Fprintln(w)
	}
	if len(r.Phases) > 1 {
		fmt.Fprintf(w, "%s: %-8s %7.2f ms\n", label, "total", r.TotalMS)
	}
}

func millis(d time.Duration) float64 { return float64(d) / float64(time.Millisecond) }
