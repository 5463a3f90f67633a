package model

// Library is a resource pool holding a subset of books.  Books lists member
// book indices in input order without duplicates.
type Library struct {
	Index      int   `json:"index" yaml:"index"`
	SignupTime int   `json:"signupTime" yaml:"signupTime"`
	ScanRate   int   `json:"scanRate" yaml:"scanRate"`
	Books      []int `json:"books" yaml:"books"`
}

// Problem is a parsed book scanning instance.  It is never mutated after
// NewProblem returns.
type Problem struct {
	NumBooks     int        `json:"numBooks"`
	NumLibraries int        `json:"numLibraries"`
	Days         int        `json:"days"`
	Scores       []int      `json:"scores"`
	Libraries    []*Library `json:"libraries"`

	// bookLibraries[b] lists libraries holding book b, ascending.
	bookLibraries [][]int
}

// NewProblem validates the supplied instance data and builds the derived
// book-to-library index.  Duplicate member indices within one library are
// collapsed; any out-of-range value is reported as a *ParseError.
func NewProblem(numBooks, numLibraries, days int, scores []int, libraries []*Library) (*Problem, error) {
	if numBooks < 0 || numLibraries < 0 {
		return nil, NewParseError(0, "negative counts: books=%d libraries=%d", numBooks, numLibraries)
	}
	if days < 0 {
		return nil, NewParseError(0, "negative day budget %d", days)
	}
	if len(scores) != numBooks {
		return nil, NewParseError(0, "expected %d book scores, got %d", numBooks, len(scores))
	}
	for i, score := range scores {
		if score < 0 {
			return nil, NewParseError(0, "book %d has negative score %d", i, score)
		}
	}
	if len(libraries) != numLibraries {
		return nil, NewParseError(0, "expected %d libraries, got %d", numLibraries, len(libraries))
	}
	ret := &Problem{
		NumBooks:      numBooks,
		NumLibraries:  numLibraries,
		Days:          days,
		Scores:        scores,
		Libraries:     libraries,
		bookLibraries: make([][]int, numBooks),
	}
	seen := make([]int, numBooks)
	for i := range seen {
		seen[i] = -1
	}
	for i, library := range libraries {
		if library == nil {
			return nil, NewParseError(0, "library %d is nil", i)
		}
		library.Index = i
		if library.SignupTime < 0 || library.ScanRate < 0 {
			return nil, NewParseError(0, "library %d: negative signup %d or scan rate %d", i, library.SignupTime, library.ScanRate)
		}
		books := library.Books[:0]
		for _, book := range library.Books {
			if book < 0 || book >= numBooks {
				return nil, NewParseError(0, "library %d: book index %d out of range [0,%d)", i, book, numBooks)
			}
			if seen[book] == i {
				continue
			}
			seen[book] = i
			books = append(books, book)
			ret.bookLibraries[book] = append(ret.bookLibraries[book], i)
		}
		library.Books = books
	}
	return ret, nil
}

// BookLibraries returns libraries that hold the given book.
func (p *Problem) BookLibraries(book int) []int {
	return p.bookLibraries[book]
}

// Library returns library at index.
func (p *Problem) Library(index int) *Library {
	return p.Libraries[index]
}
