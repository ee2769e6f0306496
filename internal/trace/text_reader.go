package trace

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TextReader reads whitespace-delimited trace lines of the form
// "addr opcode src0 src1 dest", one instruction per line. Blank lines
// and lines beginning with '#' are skipped.
type TextReader struct {
	scanner *bufio.Scanner
}

// NewTextReader wraps r as a TextReader.
func NewTextReader(r io.Reader) *TextReader {
	return &TextReader{scanner: bufio.NewScanner(r)}
}

// Next implements Reader. A line that fails to parse is treated as
// end-of-trace, per spec.md §7 ("no distinction... between true EOF and
// parse failure at the reader boundary").
func (t *TextReader) Next(rec *Record) bool {
	for t.scanner.Scan() {
		line := strings.TrimSpace(t.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var addr uint32
		var op, src0, src1, dest int
		n, err := fmt.Sscanf(line, "%d %d %d %d %d", &addr, &op, &src0, &src1, &dest)
		if err != nil || n != 5 {
			return false
		}

		rec.InstructionAddress = addr
		rec.OpCode = op
		rec.SrcReg[0] = src0
		rec.SrcReg[1] = src1
		rec.DestReg = dest
		return true
	}
	return false
}
