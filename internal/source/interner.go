package source

import (
	"fmt"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/text/unicode/norm"
)

// StringID identifies an interned name; NoStringID is "".
type StringID uint32

const NoStringID StringID = 0

// Interner stores each identifier once. Keys are NFC-normalised, so
// "é" typed precomposed and as e + U+0301 share one StringID.
type Interner struct {
	names []string
	ids   map[string]StringID // и исходное, и NFC-написание
}

func NewInterner() *Interner {
	return &Interner{names: []string{""}, ids: map[string]StringID{"": NoStringID}}
}

// Intern returns the id of s, adding it on first sight.
func (in *Interner) Intern(s string) StringID {
	if id, ok := in.ids[s]; ok {
		return id
	}
	nfc := norm.NFC.String(s)
	id, ok := in.ids[nfc]
	if !ok {
		nfc = strings.Clone(nfc) // не держим ссылку на буфер исходника
		n, err := safecast.Conv[uint32](len(in.names))
		if err != nil {
			panic(fmt.Errorf("interner overflow: %w", err))
		}
		id = StringID(n)
		in.names = append(in.names, nfc)
		in.ids[nfc] = id
	}
	if s != nfc {
		in.ids[strings.Clone(s)] = id
	}
	return id
}

// Lookup returns the NFC form stored for id.
func (in *Interner) Lookup(id StringID) (string, bool) {
	if int(id) >= len(in.names) {
		return "", false
	}
	return in.names[id], true
}

// Len counts stored names, NoStringID included.
func (in *Interner) Len() int { return len(in.names) }
