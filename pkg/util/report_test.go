package util

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	r := Analyze(">seq1\nACGT acgt\nNNXY")
	require.NotNil(t, r.Stats)
	assert.Equal(t, 8, r.Stats.Length)
	assert.Equal(t, 4, r.Stats.GC)
	assert.Equal(t, 4, r.Stats.AT)
	assert.Equal(t, 0, r.Stats.Other)
	assert.Equal(t, 50.0, r.Stats.GCPercent)
	assert.Equal(t, "ACGTACGT", r.RevComp)
	assert.Equal(t, 20, r.RawLength)
}

func TestAnalyzeSequence(t *testing.T) {
	got := AnalyzeSequence(">seq1\nACGT acgt\nNNXY")
	want := "Length:\t8\n" +
		"Raw length:\t20\n" +
		"GC%:\t50.00%\n" +
		"GC:\t4\n" +
		"AT:\t4\n" +
		"Other:\t0\n" +
		"A/C/G/T:\t2/2/2/2\n" +
		">reverse_complement length=8\n" +
		"ACGTACGT\n"
	assert.Equal(t, want, got)
}

func TestAnalyzeSequence_Degenerate(t *testing.T) {
	empty := AnalyzeSequence("")
	assert.Contains(t, empty, "Length:\t0\n")
	assert.Contains(t, empty, "GC%:\t0.00%\n")
	assert.Contains(t, empty, "GC:\t0\n")
	assert.Contains(t, empty, "AT:\t0\n")
	assert.Contains(t, empty, "Other:\t0\n")
	assert.True(t, strings.HasSuffix(empty, ">reverse_complement length=0\n"))

	noBases := AnalyzeSequence("zzz123")
	assert.Equal(
		t,
		strings.Replace(empty, "Raw length:\t0", "Raw length:\t6", 1),
		noBases,
	)
}

func TestFormatWidth_Wraps(t *testing.T) {
	seq := strings.Repeat("ACGTTGCA", 20)
	s := Composition(seq)
	rc := ReverseComplement(seq)

	out := FormatWidth(s, rc, len(seq), 60)
	_, record, found := strings.Cut(out, ">reverse_complement length=160\n")
	require.True(t, found)
	lines := strings.Split(strings.TrimSuffix(record, "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, rc, strings.Join(lines, ""))

	flat := FormatWidth(s, rc, len(seq), 0)
	assert.True(t, strings.HasSuffix(flat, "\n"+rc+"\n"))
}

func TestFormat_UsesLineWidth(t *testing.T) {
	old := LineWidth
	LineWidth = 4
	defer func() { LineWidth = old }()

	out := Format(Composition("AAAACCCC"), "GGGGTTTT", 8)
	assert.True(t, strings.HasSuffix(out, "\nGGGG\nTTTT\n"))
}

func TestReport_JSON(t *testing.T) {
	data, err := json.Marshal(Analyze("gc"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"gc_percent":100`)
	assert.Contains(t, string(data), `"reverse_complement":"GC"`)
	assert.Contains(t, string(data), `"raw_length":2`)
	assert.Contains(t, string(data), `"atcg":{"C":1,"G":1}`)
}

func BenchmarkAnalyzeSequence(b *testing.B) {
	var raw = ">bench\n" + strings.Repeat("ACGTNACGT\n", 1000)
	for i := 0; i < b.N; i++ {
		_ = AnalyzeSequence(raw)
	}
}

func TestReport_Text(t *testing.T) {
	r := Analyze("GGGGCCCCAA")
	out := r.Text(4, true)
	assert.Contains(t, out, "Other:\t0\nA/C/G/T:\t2/4/4/0\nTm:\t37.10℃\n>reverse_complement")
	assert.True(t, strings.HasSuffix(out, "length=10\nTTGG\nGGCC\nCC\n"))
	assert.Equal(t, r.String(), r.Text(LineWidth, false))

	assert.Contains(t, Analyze("").Text(0, true), "Tm:\tNA\n")
}
