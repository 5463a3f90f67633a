package codec

import (
	"bufio"
	"bytes"
	"io"
	"strconv"

	"github.com/viant/bookscan/model"
)

// Write formats the solution:
//
//	numEntries
//	library bookCount        (per entry, in activation order)
//	book_0 ... book_{bookCount-1}
func Write(w io.Writer, solution *model.Solution) error {
	writer := bufio.NewWriter(w)
	var buf []byte
	buf = strconv.AppendInt(buf, int64(solution.Len()), 10)
	buf = append(buf, '\n')
	if _, err := writer.Write(buf); err != nil {
		return err
	}
	for _, entry := range solution.Entries {
		buf = buf[:0]
		buf = strconv.AppendInt(buf, int64(entry.Library), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(len(entry.Books)), 10)
		buf = append(buf, '\n')
		for i, book := range entry.Books {
			if i > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendInt(buf, int64(book), 10)
		}
		buf = append(buf, '\n')
		if _, err := writer.Write(buf); err != nil {
			return err
		}
	}
	return writer.Flush()
}

// Encode returns the formatted solution.
func Encode(solution *model.Solution) []byte {
	var buf bytes.Buffer
	_ = Write(&buf, solution)
	return buf.Bytes()
}
