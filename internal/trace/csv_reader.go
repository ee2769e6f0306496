package trace

import (
	"encoding/csv"
	"io"
	"strconv"
)

// CSVReader reads trace records from a CSV stream with columns
// addr,opcode,src0,src1,dest. A header row, if present, is skipped
// automatically (detected by a non-numeric first column).
type CSVReader struct {
	reader    *csv.Reader
	skipCheck bool
}

// NewCSVReader wraps r as a CSVReader.
func NewCSVReader(r io.Reader) *CSVReader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 5
	return &CSVReader{reader: cr, skipCheck: true}
}

// Next implements Reader.
func (c *CSVReader) Next(rec *Record) bool {
	for {
		row, err := c.reader.Read()
		if err == io.EOF || err != nil {
			return false
		}

		if c.skipCheck {
			c.skipCheck = false
			if _, err := strconv.ParseUint(row[0], 10, 32); err != nil {
				continue // header row
			}
		}

		addr, err0 := strconv.ParseUint(row[0], 10, 32)
		op, err1 := strconv.Atoi(row[1])
		src0, err2 := strconv.Atoi(row[2])
		src1, err3 := strconv.Atoi(row[3])
		dest, err4 := strconv.Atoi(row[4])
		if err0 != nil || err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			return false
		}

		rec.InstructionAddress = uint32(addr)
		rec.OpCode = op
		rec.SrcReg[0] = src0
		rec.SrcReg[1] = src1
		rec.DestReg = dest
		return true
	}
}
