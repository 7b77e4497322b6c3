package util

import (
	"fmt"
	"strings"
)

// RevCompName FASTA header of the reverse complement record
const RevCompName = "reverse_complement"

type Report struct {
	Stats     *Stats `json:"stats"`
	RevComp   string `json:"reverse_complement"`
	RawLength int    `json:"raw_length"`
}

// Analyze runs Normalize, Composition and ReverseComplement on raw.
func Analyze(raw string) *Report {
	var seq = Normalize(raw)
	return &Report{
		Stats:     Composition(seq),
		RevComp:   ReverseComplement(seq),
		RawLength: len([]rune(raw)),
	}
}

// AnalyzeSequence returns the text report of raw, it never fails.
func AnalyzeSequence(raw string) string {
	return Analyze(raw).String()
}

func (r *Report) String() string {
	return Format(r.Stats, r.RevComp, r.RawLength)
}

// Format renders stats and revComp, wrapping the sequence at LineWidth.
func Format(stats *Stats, revComp string, rawLength int) string {
	return FormatWidth(stats, revComp, rawLength, LineWidth)
}

func FormatWidth(stats *Stats, revComp string, rawLength, width int) string {
	var b strings.Builder
	writeStats(&b, stats, rawLength)
	writeRecord(&b, revComp, width)
	return b.String()
}

// Text renders r like String with an explicit width, optionally adding the Tm line.
func (r *Report) Text(width int, withTm bool) string {
	var b strings.Builder
	writeStats(&b, r.Stats, r.RawLength)
	if withTm {
		if tm, ok := r.Stats.Tm(); ok {
			fmt.Fprintf(&b, "Tm:\t%.2f℃\n", tm)
		} else {
			b.WriteString("Tm:\tNA\n")
		}
	}
	writeRecord(&b, r.RevComp, width)
	return b.String()
}

func writeStats(b *strings.Builder, stats *Stats, rawLength int) {
	fmt.Fprintf(b, "Length:\t%d\n", stats.Length)
	fmt.Fprintf(b, "Raw length:\t%d\n", rawLength)
	fmt.Fprintf(b, "GC%%:\t%.2f%%\n", stats.GCPercent)
	fmt.Fprintf(b, "GC:\t%d\n", stats.GC)
	fmt.Fprintf(b, "AT:\t%d\n", stats.AT)
	fmt.Fprintf(b, "Other:\t%d\n", stats.Other)
	fmt.Fprintf(
		b,
		"A/C/G/T:\t%d/%d/%d/%d\n",
		stats.ATCG["A"], stats.ATCG["C"], stats.ATCG["G"], stats.ATCG["T"],
	)
}

// writeRecord 反向互补序列写成一条 FASTA 记录
func writeRecord(b *strings.Builder, revComp string, width int) {
	fmt.Fprintf(b, ">%s length=%d\n", RevCompName, len(revComp))
	if revComp != "" {
		b.WriteString(Wrap(revComp, width))
		b.WriteByte('\n')
	}
}
