package fasta

// Stats summarizes the sequences of a FASTA file.
type Stats struct {
	// Count is the number of sequences.
	Count int64
	// TotalLen is the summed length of all sequences, in bases.
	TotalLen int64
}

// MeanLen returns the average sequence length in bases, 0 for an empty file.
func (s Stats) MeanLen() float64 {
	if s.Count == 0 {
		return 0
	}
	return float64(s.TotalLen) / float64(s.Count)
}

// ReadStats drains sc and returns sequence count and length stats.
func ReadStats(sc *Scanner) (Stats, error) {
	var stats Stats
	for sc.Scan() {
		stats.Count++
		stats.TotalLen += int64(len(sc.Seq()))
	}
	if err := sc.Err(); err != nil {
		return Stats{}, err
	}
	return stats, nil
}
