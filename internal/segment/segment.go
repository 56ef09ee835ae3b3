// Package segment splits markdown text into an alternating sequence of
// prose and fenced-code blocks. Only fence boundaries are structurally
// significant; everything else is opaque prose.
package segment

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind distinguishes prose spans from fenced code blocks.
type Kind int

const (
	Prose Kind = iota
	Code
)

func (k Kind) String() string {
	if k == Code {
		return "code"
	}
	return "prose"
}

// Block is one span of the source document. Start and End are byte
// offsets into the original text; concatenating all spans in order
// reconstructs the document exactly.
type Block struct {
	Kind       Kind
	Content    string // verbatim prose, or code body with fence lines stripped
	Fence      string // code only: the literal fence token
	Attributes string // code only: raw text inside the attribute braces
	Start      int
	End        int
}

// DefaultPattern matches an opening fence line: a run of at least three
// backticks followed by a brace-delimited attribute string, e.g.
//
//	```{.dash app=sub.go}
//
// A custom pattern must define the named groups "fence" and "attributes"
// and is applied to one line at a time.
const DefaultPattern = "^(?P<fence>`{3,})[ \\t]*\\{(?P<attributes>.*)\\}[ \\t]*$"

// maxBraceDepth bounds nesting inside an attribute string. Deeper
// nesting (or unbalanced braces) makes the line not a fence opening.
const maxBraceDepth = 32

// Segmenter finds fenced code blocks. The compiled pattern is immutable
// after construction, so a Segmenter is safe for concurrent use.
type Segmenter struct {
	open     *regexp.Regexp
	fenceIdx int
	attrIdx  int
}

// New returns a Segmenter using DefaultPattern.
func New() *Segmenter {
	s, err := NewPattern(DefaultPattern)
	if err != nil {
		panic(err) // DefaultPattern is known-good
	}
	return s
}

// NewPattern compiles a custom opening-fence pattern. The pattern must
// name a "fence" group (the fence token, closed by a line that repeats
// it exactly) and an "attributes" group (the raw attribute string).
// Missing groups are a configuration error reported here, never later
// during segmentation.
func NewPattern(expr string) (*Segmenter, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("segment: invalid pattern: %w", err)
	}
	s := &Segmenter{open: re, fenceIdx: -1, attrIdx: -1}
	for i, name := range re.SubexpNames() {
		switch name {
		case "fence":
			s.fenceIdx = i
		case "attributes":
			s.attrIdx = i
		}
	}
	if s.fenceIdx < 0 || s.attrIdx < 0 {
		return nil, fmt.Errorf("segment: pattern %q must define named groups \"fence\" and \"attributes\"", expr)
	}
	return s, nil
}

// Segment splits text into blocks: prose spans interleaved with the code
// blocks found by the opening-fence pattern. Prose blocks with empty
// content are dropped; code blocks never are. With no fences the whole
// document is a single prose block (or nothing, if the text is empty).
func (s *Segmenter) Segment(text string) []Block {
	code := s.findCode(text)

	// Interleave: N code matches leave N+1 prose gaps around them.
	blocks := make([]Block, 0, 2*len(code)+1)
	pos := 0
	for _, c := range code {
		blocks = append(blocks, Block{Kind: Prose, Content: text[pos:c.Start], Start: pos, End: c.Start})
		blocks = append(blocks, c)
		pos = c.End
	}
	blocks = append(blocks, Block{Kind: Prose, Content: text[pos:], Start: pos, End: len(text)})

	out := blocks[:0]
	for _, b := range blocks {
		if b.Kind == Prose && b.Content == "" {
			continue
		}
		out = append(out, b)
	}
	return out
}

// findCode scans line by line for opening fences and their closing
// lines. An opening line with unbalanced attribute braces, or with no
// closing line, is not a match and stays prose.
func (s *Segmenter) findCode(text string) []Block {
	var blocks []Block
	pos := 0
	for pos < len(text) {
		lineEnd, next := lineBounds(text, pos)
		line := text[pos:lineEnd]

		m := s.open.FindStringSubmatch(line)
		if m == nil || !balanced(m[s.attrIdx]) {
			pos = next
			continue
		}
		fence := m[s.fenceIdx]

		closeStart, closeNext, ok := findClose(text, next, fence)
		if !ok {
			pos = next
			continue
		}

		content := ""
		if closeStart > next {
			// strip the newline that precedes the closing fence
			content = text[next : closeStart-1]
		}
		blocks = append(blocks, Block{
			Kind:       Code,
			Content:    content,
			Fence:      fence,
			Attributes: m[s.attrIdx],
			Start:      pos,
			End:        closeNext,
		})
		pos = closeNext
	}
	return blocks
}

// findClose returns the start offset of the line that closes the fence,
// and the offset just past that line's newline. The closing line must
// repeat the opening fence token exactly; trailing whitespace makes it
// content.
func findClose(text string, from int, fence string) (start, next int, ok bool) {
	pos := from
	for pos < len(text) {
		lineEnd, lineNext := lineBounds(text, pos)
		if text[pos:lineEnd] == fence {
			return pos, lineNext, true
		}
		pos = lineNext
	}
	return 0, 0, false
}

// lineBounds returns the end of the line starting at pos (exclusive of
// the newline) and the start of the following line.
func lineBounds(text string, pos int) (end, next int) {
	if i := strings.IndexByte(text[pos:], '\n'); i >= 0 {
		return pos + i, pos + i + 1
	}
	return len(text), len(text)
}

// balanced reports whether braces in the attribute string nest properly
// and no deeper than maxBraceDepth.
func balanced(attrs string) bool {
	depth := 0
	for i := 0; i < len(attrs); i++ {
		switch attrs[i] {
		case '{':
			depth++
			if depth > maxBraceDepth {
				return false
			}
		case '}':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}
