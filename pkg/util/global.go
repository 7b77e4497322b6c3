package util

import "regexp"

// Tm = A + B*GC/100 - C/Length
const (
	A = 69.3 // 64.9
	B = 41.0
	C = 650.0 // 41*16.4=672.4
)

// limitation
var (
	// LineWidth 反向互补序列每行碱基数，<=0 不换行
	LineWidth = 60
)

// regexp
var (
	// ACGT valid sequence
	ACGT = regexp.MustCompile(`^[ACGT]*$`)
	// 首行 FASTA header，无换行时整段都是 header
	fastaHeader = regexp.MustCompile(`^>[^\n]*(\n|$)`)
	nonACGT     = regexp.MustCompile(`[^ACGT]+`)
)
