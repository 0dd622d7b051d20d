package convert

import (
	"strings"

	"github.com/mgpai22/rang/internal/style"
)

const (
	lineBreak      = `\N`
	resetDirective = `{\r}`

	classOpenPrefix = "<c."
	classClose      = "</c>"
)

// class tag literal -> palette style
var defaultClassTags = map[string]string{
	"<c.white>":   "White",
	"<c.S1>":      "White",
	"<c.lime>":    "Lime",
	"<c.green>":   "Lime", // not in the broadcaster stylesheet, seen in the wild
	"<c.S2>":      "Lime",
	"<c.cyan>":    "Cyan",
	"<c.S3>":      "Cyan",
	"<c.red>":     "Red",
	"<c.S4>":      "Red",
	"<c.yellow>":  "Yellow",
	"<c.S5>":      "Yellow",
	"<c.magenta>": "Magenta",
	"<c.S6>":      "Magenta",
	"<c.blue>":    "Blue",
	"<c.S7>":      "Blue",
	"<c.black>":   "Black",
	"<c.S8>":      "Black",
}

func switchDirective(name string) string {
	return `{\r` + name + `}`
}

type tokenKind int

const (
	textToken tokenKind = iota
	breakToken
	resetToken
	switchToken
)

type token struct {
	kind tokenKind
	// literal text, or the style name of a switch
	value string
}

// Translation is the styled form of one cue text.
type Translation struct {
	Style string
	Text  string
}

// TagTranslator rewrites class markup into style directives.
type TagTranslator struct {
	classes map[string]string
}

func NewTagTranslator() *TagTranslator {
	return &TagTranslator{classes: defaultClassTags}
}

// Translate converts line breaks and class tags, drops redundant
// directives and lifts a leading switch into the event style. Unknown
// class tags stay in the text verbatim and are reported.
func (t *TagTranslator) Translate(text string) (Translation, []Diagnostic) {
	tokens, diags := t.tokenize(text)
	tokens = dropRedundant(tokens)

	name := style.DefaultName
	if len(tokens) > 0 && tokens[0].kind == switchToken {
		name = tokens[0].value
		tokens = dropRepeatedSwitch(tokens[1:], name)
	}

	return Translation{Style: name, Text: render(tokens)}, diags
}

func (t *TagTranslator) tokenize(text string) ([]token, []Diagnostic) {
	var (
		tokens []token
		diags  []Diagnostic
		run    strings.Builder
	)

	flush := func() {
		if run.Len() > 0 {
			tokens = append(tokens, token{kind: textToken, value: run.String()})
			run.Reset()
		}
	}
	emit := func(tok token) {
		flush()
		tokens = append(tokens, tok)
	}

	for i := 0; i < len(text); {
		rest := text[i:]
		switch {
		case strings.HasPrefix(rest, "\r\n"):
			emit(token{kind: breakToken})
			i += 2
		case rest[0] == '\n':
			emit(token{kind: breakToken})
			i++
		case strings.HasPrefix(rest, classClose):
			emit(token{kind: resetToken})
			i += len(classClose)
		case strings.HasPrefix(rest, classOpenPrefix):
			end := strings.IndexByte(rest, '>')
			if end < 0 {
				diags = append(diags, Diagnostic{
					Kind:    UnknownTag,
					Message: "unrecognized style class",
					Detail:  rest,
				})
				run.WriteString(rest)
				i = len(text)
				continue
			}
			literal := rest[:end+1]
			if name, ok := t.classes[literal]; ok {
				emit(token{kind: switchToken, value: name})
			} else {
				diags = append(diags, Diagnostic{
					Kind:    UnknownTag,
					Message: "unrecognized style class",
					Detail:  literal,
				})
				run.WriteString(literal)
			}
			i += len(literal)
		default:
			run.WriteByte(rest[0])
			i++
		}
	}
	flush()

	return tokens, diags
}

// dropRedundant removes directives that cannot change what is rendered:
// a reset directly before another directive, a reset before a line break
// that is followed by a switch, a switch directly before another switch,
// and trailing resets.
func dropRedundant(tokens []token) []token {
	out := make([]token, 0, len(tokens))
	for _, tok := range tokens {
		switch tok.kind {
		case resetToken:
			if n := len(out); n > 0 && out[n-1].kind == resetToken {
				continue
			}
		case switchToken:
			for {
				n := len(out)
				if n > 0 && (out[n-1].kind == resetToken || out[n-1].kind == switchToken) {
					out = out[:n-1]
					continue
				}
				if n > 1 && out[n-1].kind == breakToken && out[n-2].kind == resetToken {
					out = append(out[:n-2], out[n-1])
					continue
				}
				break
			}
		}
		out = append(out, tok)
	}

	for len(out) > 0 && out[len(out)-1].kind == resetToken {
		out = out[:len(out)-1]
	}
	return out
}

// dropRepeatedSwitch removes the first switch after the lifted one when it
// targets the same style, along with any resets in between, so the whole
// event carries that style.
func dropRepeatedSwitch(tokens []token, name string) []token {
	next := -1
	for i, tok := range tokens {
		if tok.kind == switchToken {
			next = i
			break
		}
	}
	if next < 0 || tokens[next].value != name {
		return tokens
	}

	out := make([]token, 0, len(tokens)-1)
	for i, tok := range tokens {
		if i == next || (i < next && tok.kind == resetToken) {
			continue
		}
		out = append(out, tok)
	}
	return out
}

func render(tokens []token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		switch tok.kind {
		case textToken:
			sb.WriteString(tok.value)
		case breakToken:
			sb.WriteString(lineBreak)
		case resetToken:
			sb.WriteString(resetDirective)
		case switchToken:
			sb.WriteString(switchDirective(tok.value))
		}
	}
	return sb.String()
}
