package fastq

// qualOffset is the Phred+33 quality encoding offset.
const qualOffset = 33

// BaseContent counts base occurrences at one read position.
type BaseContent struct {
	A, C, G, T, N int64
}

// PositionStats aggregates the reads covering one position: how many reads
// are at least that long, their summed Phred quality, and base content.
type PositionStats struct {
	Count   int64
	QualSum int64
	Content BaseContent
}

// MeanQual returns the mean Phred quality at this position.
func (p PositionStats) MeanQual() float64 {
	if p.Count == 0 {
		return 0
	}
	return float64(p.QualSum) / float64(p.Count)
}

// Stats accumulates FASTQ summary statistics: read count, length
// distribution, and per-position quality and base content.  The zero value
// is ready to use; Stats is not safe for concurrent use.
type Stats struct {
	// Count is the number of reads.
	Count int64
	// TotalLen is the summed read length in bases.
	TotalLen int64
	// LengthDist maps read length to the number of reads of that length.
	LengthDist map[int]int64

	perBase []PositionStats
}

// Add folds one read into the stats.
func (s *Stats) Add(r *Read) {
	s.Count++
	s.TotalLen += int64(len(r.Seq))
	if s.LengthDist == nil {
		s.LengthDist = map[int]int64{}
	}
	s.LengthDist[len(r.Seq)]++
	for len(s.perBase) < len(r.Seq) {
		s.perBase = append(s.perBase, PositionStats{})
	}
	for i := 0; i < len(r.Seq); i++ {
		p := &s.perBase[i]
		p.Count++
		p.QualSum += int64(r.Qual[i]) - qualOffset
		switch r.Seq[i] {
		case 'A', 'a':
			p.Content.A++
		case 'C', 'c':
			p.Content.C++
		case 'G', 'g':
			p.Content.G++
		case 'T', 't':
			p.Content.T++
		default:
			p.Content.N++
		}
	}
}

// MeanLen returns the average read length in bases, 0 for an empty stream.
func (s *Stats) MeanLen() float64 {
	if s.Count == 0 {
		return 0
	}
	return float64(s.TotalLen) / float64(s.Count)
}

// Positions returns the per-position aggregates, index 0 being the first
// base of each read.  The slice is as long as the longest read seen.
func (s *Stats) Positions() []PositionStats { return s.perBase }

// ReadStats drains sc and returns the accumulated stats.
func ReadStats(sc *Scanner) (*Stats, error) {
	stats := &Stats{}
	var read Read
	for sc.Scan(&read) {
		stats.Add(&read)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return stats, nil
}
