package trace

import (
	"io"

	"gopkg.in/yaml.v3"
)

// yamlRecord mirrors Record with yaml tags for hand-authored fixtures.
type yamlRecord struct {
	Addr uint32 `yaml:"addr"`
	Op   int    `yaml:"op"`
	Src0 int    `yaml:"src0"`
	Src1 int    `yaml:"src1"`
	Dest int    `yaml:"dest"`
}

// YAMLReader reads an entire trace document (a YAML list of instructions)
// into memory up front, then serves it through the pull interface. Meant
// for small hand-authored test fixtures, not production-size traces.
type YAMLReader struct {
	records []yamlRecord
	pos     int
}

// NewYAMLReader decodes all records from r immediately.
func NewYAMLReader(r io.Reader) (*YAMLReader, error) {
	var records []yamlRecord
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&records); err != nil && err != io.EOF {
		return nil, err
	}
	return &YAMLReader{records: records}, nil
}

// Next implements Reader.
func (y *YAMLReader) Next(rec *Record) bool {
	if y.pos >= len(y.records) {
		return false
	}
	r := y.records[y.pos]
	y.pos++

	rec.InstructionAddress = r.Addr
	rec.OpCode = r.Op
	rec.SrcReg[0] = r.Src0
	rec.SrcReg[1] = r.Src1
	rec.DestReg = r.Dest
	return true
}
