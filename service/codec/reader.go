package codec

import (
	"fmt"
	"io"
	"strconv"

	"github.com/viant/bookscan/model"
	"github.com/viant/parsly"
)

// Read parses an instance from r.
func Read(r io.Reader) (*model.Problem, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read instance: %w", err)
	}
	return Decode(data)
}

// Decode parses an instance:
//
//	numBooks numLibraries days
//	score_0 ... score_{numBooks-1}
//	bookCount signupTime scanRate      (per library)
//	book_0 ... book_{bookCount-1}
//
// Trailing blank lines are ignored.
func Decode(data []byte) (*model.Problem, error) {
	p := &parser{cursor: parsly.NewCursor("", data, 0)}
	return p.parse()
}

type parser struct {
	cursor *parsly.Cursor
	line   int
}

func (p *parser) parse() (*model.Problem, error) {
	header, err := p.readLine(3, "header")
	if err != nil {
		return nil, err
	}
	numBooks, numLibraries, days := header[0], header[1], header[2]
	if numBooks < 0 || numLibraries < 0 || days < 0 {
		return nil, model.NewParseError(p.line, "negative header value: %v", header)
	}
	scores, err := p.readLine(numBooks, "book scores")
	if err != nil {
		return nil, err
	}
	// the shortest library is "0 0 0" plus an empty book line: 7 bytes, 5 for the last one
	if numLibraries > (p.remaining()+2)/7 {
		return nil, model.NewParseError(p.line+1, "declared %d libraries, input too short", numLibraries)
	}
	libraries := make([]*model.Library, numLibraries)
	for i := range libraries {
		fields, err := p.readLine(3, fmt.Sprintf("library %d header", i))
		if err != nil {
			return nil, err
		}
		bookCount := fields[0]
		if bookCount < 0 {
			return nil, model.NewParseError(p.line, "library %d: negative book count %d", i, bookCount)
		}
		books, err := p.readLine(bookCount, fmt.Sprintf("library %d books", i))
		if err != nil {
			return nil, err
		}
		line := p.line
		for _, book := range books {
			if book < 0 || book >= numBooks {
				return nil, model.NewParseError(line, "library %d: book index %d out of range [0,%d)", i, book, numBooks)
			}
		}
		libraries[i] = &model.Library{SignupTime: fields[1], ScanRate: fields[2], Books: books}
	}
	if err := p.expectEnd(); err != nil {
		return nil, err
	}
	problem, err := model.NewProblem(numBooks, numLibraries, days, scores, libraries)
	if err != nil {
		return nil, err
	}
	return problem, nil
}

// readLine reads exactly expected integers followed by a newline or the
// end of input.
func (p *parser) readLine(expected int, what string) ([]int, error) {
	cur := p.cursor
	p.line++
	if !cur.HasMore() && expected > 0 {
		return nil, model.NewParseError(p.line, "unexpected end of input, expected %s", what)
	}
	// n integers take at least 2n-1 bytes
	if expected > (p.remaining()+1)/2 {
		return nil, model.NewParseError(p.line, "%s: declared %d values, input too short", what, expected)
	}
	values := make([]int, 0, expected)
	for {
		match := cur.MatchAfterOptional(blankToken, integerToken, newlineToken)
		switch match.Code {
		case integerCode:
			text := match.Text(cur)
			value, err := strconv.Atoi(text)
			if err != nil {
				return nil, model.NewParseError(p.line, "invalid integer %q in %s", text, what)
			}
			values = append(values, value)
		case newlineCode, parsly.EOF:
			if len(values) != expected {
				return nil, model.NewParseError(p.line, "%s: expected %d values, got %d", what, expected, len(values))
			}
			return values, nil
		default:
			if !cur.HasMore() {
				if len(values) != expected {
					return nil, model.NewParseError(p.line, "%s: expected %d values, got %d", what, expected, len(values))
				}
				return values, nil
			}
			return nil, model.NewParseError(p.line, "unexpected character %q in %s", cur.Input[cur.Pos], what)
		}
	}
}

func (p *parser) remaining() int {
	return len(p.cursor.Input) - p.cursor.Pos
}

// expectEnd verifies that only whitespace follows the last library.
func (p *parser) expectEnd() error {
	cur := p.cursor
	for cur.HasMore() {
		match := cur.MatchAfterOptional(blankToken, newlineToken)
		switch match.Code {
		case newlineCode:
			p.line++
		case parsly.EOF:
			return nil
		default:
			if !cur.HasMore() {
				return nil
			}
			return model.NewParseError(p.line+1, "unexpected content after last library")
		}
	}
	return nil
}
