package util

// Stats 碱基组成统计
type Stats struct {
	Length int `json:"length"`
	GC     int `json:"gc_count"`
	AT     int `json:"at_count"`
	Other  int `json:"other_count"`

	GCPercent float64 `json:"gc_percent"`

	// 每个字符的计数，key 为单个字符
	ATCG map[string]int `json:"atcg"`
}

// Composition counts G+C, A+T and everything else in seq with a single pass.
//
// seq is normally the output of Normalize, in which case Other is 0,
// but any input is accepted and unexpected symbols land in Other.
// Length and the counts are in characters, not UTF-8 bytes.
// GCPercent is left unrounded and is 0 for an empty seq.
func Composition(seq string) *Stats {
	var s = &Stats{
		ATCG: make(map[string]int),
	}

	// Count the occurrences of each nucleotide in the sequence
	for _, c := range seq {
		s.Length++
		s.ATCG[string(c)]++
		switch c {
		case 'G', 'C':
			s.GC++
		case 'A', 'T':
			s.AT++
		}
	}
	s.Other = s.Length - s.GC - s.AT

	if s.Length > 0 {
		s.GCPercent = float64(s.GC) / float64(s.Length) * 100
	}
	return s
}

// Tm calculates the melting temperature based on the GC content and sequence length.
// Tm = A + (B * GC/100) - (C / Length), not defined for an empty sequence.
func (s *Stats) Tm() (float64, bool) {
	if s.Length == 0 {
		return 0, false
	}
	return A + B*s.GCPercent/100 - C/float64(s.Length), true
}
