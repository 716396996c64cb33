package vcf

import (
	"strings"
)

// MetaGroup is one "##key=..." meta-header key with its lines in file order.
type MetaGroup struct {
	Key   string
	Lines []string
}

// Meta collects the VCF meta-header: "##" lines grouped by key (INFO,
// FILTER, FORMAT, ALT, contig, fileformat, ...) in first-seen order, plus
// the "#CHROM ..." column-header line.
type Meta struct {
	groups     map[string]int
	order      []MetaGroup
	ColumnLine string
}

// Add records one raw header line (starting with "#").
func (m *Meta) Add(line string) {
	if !strings.HasPrefix(line, "##") {
		// The single-# column-header line.
		m.ColumnLine = line
		return
	}
	key := line[2:]
	if i := strings.IndexByte(key, '='); i >= 0 {
		key = key[:i]
	}
	if m.groups == nil {
		m.groups = map[string]int{}
	}
	idx, ok := m.groups[key]
	if !ok {
		idx = len(m.order)
		m.groups[key] = idx
		m.order = append(m.order, MetaGroup{Key: key})
	}
	m.order[idx].Lines = append(m.order[idx].Lines, line)
}

// Groups returns the meta-header groups in first-seen order.
func (m *Meta) Groups() []MetaGroup { return m.order }

// Lines returns the lines of one key (e.g. "INFO", "contig"), or nil.
func (m *Meta) Lines(key string) []string {
	if m.groups == nil {
		return nil
	}
	idx, ok := m.groups[key]
	if !ok {
		return nil
	}
	return m.order[idx].Lines
}
