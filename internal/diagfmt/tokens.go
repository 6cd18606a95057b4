package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"oxygen/internal/source"
	"oxygen/internal/token"
)

// TriviaOutput is one piece of leading trivia in a token dump.
type TriviaOutput struct {
	Kind string `json:"kind" msgpack:"kind"`
	Text string `json:"text" msgpack:"text"`
}

// TokenOutput is the serialisable form of a token used by the JSON and
// msgpack dumps.
type TokenOutput struct {
	Kind     string         `json:"kind" msgpack:"kind"`
	Category string         `json:"category" msgpack:"category"`
	Text     string         `json:"text,omitempty" msgpack:"text,omitempty"`
	Start    uint32         `json:"start" msgpack:"start"`
	End      uint32         `json:"end" msgpack:"end"`
	Line     uint32         `json:"line" msgpack:"line"`
	Col      uint32         `json:"col" msgpack:"col"`
	Leading  []TriviaOutput `json:"leading,omitempty" msgpack:"leading,omitempty"`
}

// TokenDump is the msgpack document: file path plus tokens.
type TokenDump struct {
	Path   string        `msgpack:"path"`
	Tokens []TokenOutput `msgpack:"tokens"`
}

func makeTokenOutputs(tokens []token.Token) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		t := TokenOutput{
			Kind:     tok.Kind.String(),
			Category: tok.Category().String(),
			Text:     tok.Text,
			Start:    tok.Span.Start,
			End:      tok.Span.End,
			Line:     tok.Span.Line,
			Col:      tok.Span.Col,
		}
		for _, tr := range tok.Leading {
			t.Leading = append(t.Leading, TriviaOutput{Kind: tr.Kind.String(), Text: tr.Text})
		}
		out = append(out, t)
		if tok.Kind == token.EOF {
			break
		}
	}
	return out
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		var leading []string
		for _, trivia := range tok.Leading {
			leading = append(leading, trivia.Kind.String())
		}

		if _, err := fmt.Fprintf(w, "%3d: %-13s %-8s", i+1, tok.Kind.String(), tok.Category().String()); err != nil {
			return err
		}
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d", startPos.Line, startPos.Col, endPos.Line, endPos.Col)
		if len(leading) > 0 {
			fmt.Fprintf(w, " (leading: %s)", strings.Join(leading, ", "))
		}
		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(makeTokenOutputs(tokens))
}

// FormatTokensMsgpack пишет токены одним msgpack-документом TokenDump.
func FormatTokensMsgpack(w io.Writer, path string, tokens []token.Token) error {
	enc := msgpack.NewEncoder(w)
	if err := enc.Encode(TokenDump{Path: path, Tokens: makeTokenOutputs(tokens)}); err != nil {
		return fmt.Errorf("encode tokens: %w", err)
	}
	return nil
}

// DecodeTokensMsgpack читает документ, записанный FormatTokensMsgpack.
func DecodeTokensMsgpack(r io.Reader) (TokenDump, error) {
	var dump TokenDump
	if err := msgpack.NewDecoder(r).Decode(&dump); err != nil {
		return TokenDump{}, fmt.Errorf("decode tokens: %w", err)
	}
	return dump, nil
}
