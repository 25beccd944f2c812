package gen

import (
	"blockgen/internal/api/models"
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// CommentWrap is the column block comments are wrapped at, prefix included.
const CommentWrap = 60

// ScrubNakedValue makes a top-level value expression a legal statement.
func ScrubNakedValue(line string) string {
	return line + ";\n"
}

// PrefixLines puts prefix in front of every line of text. A trailing newline
// does not start a new line.
func PrefixLines(text, prefix string) string {
	if text == "" {
		return prefix
	}
	body := text
	trailing := strings.HasSuffix(body, "\n")
	if trailing {
		body = body[:len(body)-1]
	}
	out := prefix + strings.ReplaceAll(body, "\n", "\n"+prefix)
	if trailing {
		out += "\n"
	}
	return out
}

// Quote renders text as a single-quoted string literal.
func Quote(text string) string {
	text = strings.ReplaceAll(text, `\`, `\\`)
	text = strings.ReplaceAll(text, "\n", "\\\n")
	text = strings.ReplaceAll(text, `'`, `\'`)
	return "'" + text + "'"
}

// MultilineQuote renders text as one quoted literal per line joined with
// explicit newlines.
func MultilineQuote(text string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = Quote(l)
	}
	return strings.Join(lines, " + '\\n' +\n")
}

// scrub adds the comments of b and its value children in front of code,
// then the statements chained after b.
func (ctx *Context) scrub(b *models.Block, code string, thisOnly bool) (string, error) {
	var comments strings.Builder
	if !b.OutputConnected() {
		if b.Comment != "" {
			text := wordwrap.WrapString(b.Comment, CommentWrap-3)
			comments.WriteString(PrefixLines(text+"\n", "// "))
		}
		for _, in := range b.Inputs {
			if in.Kind != models.InputValue || in.Block == nil {
				continue
			}
			if nested := nestedComments(in.Block); nested != "" {
				comments.WriteString(PrefixLines(nested, "// "))
			}
		}
	}

	next := ""
	if !thisOnly && b.Next != nil {
		res, err := ctx.BlockToCode(b.Next, false)
		if err != nil {
			return "", err
		}
		if res.Kind == KindValue {
			return "", blockError(b.Next, ErrExpectedStatement)
		}
		next = res.Code
	}
	return comments.String() + code + next, nil
}

// nestedComments collects the comments of b and everything below it, one
// per line.
func nestedComments(b *models.Block) string {
	var lines []string
	var visit func(*models.Block)
	visit = func(blk *models.Block) {
		for ; blk != nil; blk = blk.Next {
			if blk.Comment != "" {
				lines = append(lines, blk.Comment)
			}
			for _, child := range blk.Children() {
				visit(child)
			}
		}
	}
	visit(b)
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
