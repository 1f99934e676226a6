package feed

import "bytes"

// LineAssembler reassembles logical lines from arbitrarily chunked
// stream reads. Chunk boundaries are not guaranteed to align with the
// newline-delimited records, so a trailing partial line stays buffered
// until the rest of it arrives.
type LineAssembler struct {
	buf []byte
}

// Push appends a chunk and returns every complete line it unlocked, in
// stream order. Blank lines (the feed sends bare newlines as
// keep-alives) are dropped. Returned lines do not alias the internal
// buffer.
func (a *LineAssembler) Push(chunk []byte) [][]byte {
	a.buf = append(a.buf, chunk...)

	var lines [][]byte
	for {
		i := bytes.IndexByte(a.buf, '\n')
		if i < 0 {
			return lines
		}

		line := bytes.TrimSpace(a.buf[:i])
		if len(line) > 0 {
			lines = append(lines, append([]byte(nil), line...))
		}
		a.buf = a.buf[i+1:]
	}
}
