package trace

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff    Level = iota
	LevelError        // только события об ошибках
	LevelPhase        // + driver и pass
	LevelDetail       // + per-file
	LevelDebug        // всё, включая recovery парсера
)

var levelNames = [...]string{"off", "error", "phase", "detail", "debug"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel accepts the names printed by Level.String, case-insensitively.
func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level %q (expected off|error|phase|detail|debug)", s)
}

// Allows reports whether an event passes this level.
func (l Level) Allows(ev *Event) bool {
	if l == LevelOff {
		return false
	}
	if ev.Err {
		return true
	}
	return l.allowsScope(ev.Scope)
}

func (l Level) allowsScope(scope Scope) bool {
	switch l {
	case LevelPhase:
		return scope <= ScopePass
	case LevelDetail:
		return scope <= ScopeFile
	case LevelDebug:
		return true
	default:
		return false
	}
}

// Kind is the type of an event.
type Kind uint8

const (
	KindBegin Kind = iota + 1
	KindEnd
	KindPoint
)

func (k Kind) String() string {
	switch k {
	case KindBegin:
		return "begin"
	case KindEnd:
		return "end"
	case KindPoint:
		return "point"
	default:
		return "unknown"
	}
}

// Scope is the granularity of an event; smaller is coarser.
type Scope uint8

const (
	ScopeDriver Scope = iota + 1 // команды CLI, ParseDir
	ScopePass                    // tokenize / parse одного файла
	ScopeFile                    // загрузка и учёт файла внутри прохода
	ScopeNode                    // внутренности парсера
)

func (s Scope) String() string {
	switch s {
	case ScopeDriver:
		return "driver"
	case ScopePass:
		return "pass"
	case ScopeFile:
		return "file"
	case ScopeNode:
		return "node"
	default:
		return "unknown"
	}
}

// Attr is one key=value pair; attributes keep insertion order.
type Attr struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func String(key, value string) Attr { return Attr{Key: key, Value: value} }

func Int(key string, value int) Attr { return Attr{Key: key, Value: strconv.Itoa(value)} }

// Event is a single trace record.
type Event struct {
	Time     time.Time
	Seq      uint64 // проставляет tracer при записи
	Kind     Kind
	Scope    Scope
	Err      bool // проходит фильтр уже на LevelError
	SpanID   uint64
	ParentID uint64
	Name     string // "parse", "tokenize", "recover", "diag", ...
	File     string
	Detail   string
	Attrs    []Attr
}
