package util

import (
	"strings"
)

// Normalize 去掉首行 FASTA header 与空白，转大写，只保留 ACGT
func Normalize(raw string) string {
	var body = fastaHeader.ReplaceAllLiteralString(raw, "")
	return nonACGT.ReplaceAllLiteralString(strings.ToUpper(body), "")
}

// from https://forum.golangbridge.org/t/easy-way-for-letter-substitution-reverse-complementary-dna-sequence/20101
// from https://go.dev/play/p/IXI6PY7XUXN
var dnaComplement = strings.NewReplacer(
	"A", "T",
	"T", "A",
	"G", "C",
	"C", "G",
	"a", "t",
	"t", "a",
	"g", "c",
	"c", "g",
)

func Complement(s string) string {
	return dnaComplement.Replace(s)
}

// Reverse reverses r in place and returns it.
// from https://github.com/golang/example/blob/master/stringutil/reverse.go
func Reverse(r []byte) []byte {
	for i, j := 0, len(r)-1; i < len(r)/2; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return r
}

// ReverseComplement computes the reverse complement of a DNA sequence.
//
// Bases outside ACGT/acgt are kept as is, so applying it twice
// always gives back the input.
func ReverseComplement(s string) string {
	return Complement(string(Reverse([]byte(s))))
}

// Wrap 按 width 插入换行，width<=0 不换行
func Wrap(seq string, width int) string {
	if width <= 0 || len(seq) <= width {
		return seq
	}
	var b strings.Builder
	b.Grow(len(seq) + len(seq)/width)
	for i := 0; i < len(seq); i += width {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(seq[i:min(i+width, len(seq))])
	}
	return b.String()
}
