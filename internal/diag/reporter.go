package diag

import "oxygen/internal/source"

// Reporter receives diagnostics from the lexer and the parser. Both phases
// of one file share a Reporter, so it also fixes the emission order.
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter stores everything in Bag; a nil Bag drops.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag != nil {
		r.Bag.Add(d)
	}
}

// NopReporter drops everything.
type NopReporter struct{}

func (NopReporter) Report(Diagnostic) {}

type uniqueKey struct {
	code  Code
	file  source.FileID
	start uint32
	end   uint32
	msg   string
}

// UniqueReporter forwards a diagnostic only the first time its code, span
// and message are seen.
type UniqueReporter struct {
	next Reporter
	seen map[uniqueKey]struct{}
}

func Unique(next Reporter) *UniqueReporter {
	return &UniqueReporter{next: next, seen: make(map[uniqueKey]struct{})}
}

func (r *UniqueReporter) Report(d Diagnostic) {
	key := uniqueKey{d.Code, d.Primary.File, d.Primary.Start, d.Primary.End, d.Message}
	if _, dup := r.seen[key]; dup {
		return
	}
	r.seen[key] = struct{}{}
	if r.next != nil {
		r.next.Report(d)
	}
}

// BagOf returns the Bag behind r, looking through UniqueReporter.
func BagOf(r Reporter) *Bag {
	switch rr := r.(type) {
	case BagReporter:
		return rr.Bag
	case *BagReporter:
		if rr != nil {
			return rr.Bag
		}
	case *UniqueReporter:
		if rr != nil {
			return BagOf(rr.next)
		}
	}
	return nil
}

// ReportBuilder collects notes and fixes, then emits once.
type ReportBuilder struct {
	to      Reporter
	d       Diagnostic
	emitted bool
}

func Build(r Reporter, sev Severity, code Code, primary source.Span, msg string) *ReportBuilder {
	return &ReportBuilder{to: r, d: New(sev, code, primary, msg)}
}

func (b *ReportBuilder) Note(sp source.Span, msg string) *ReportBuilder {
	b.d = b.d.WithNote(sp, msg)
	return b
}

func (b *ReportBuilder) Fix(fix Fix) *ReportBuilder {
	b.d = b.d.WithFix(fix)
	return b
}

// Emit reports the diagnostic; later calls do nothing.
func (b *ReportBuilder) Emit() {
	if b.emitted {
		return
	}
	b.emitted = true
	if b.to != nil {
		b.to.Report(b.d)
	}
}
