package main

import (
	"encoding/json"
	"flag"
	"io"
	"log/slog"
	"os"
	"regexp"
	"runtime/pprof"
	"time"

	gzip "github.com/klauspost/pgzip"
	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"

	"github.com/liserjrqlxue/seqStat/pkg/util"
)

// clean one sequence, cal GC content and reverse complement

// flag
var (
	input = flag.String(
		"i",
		"",
		"input, one seq with optional FASTA header, .gz supported, - for stdin",
	)
	seq = flag.String(
		"s",
		"",
		"input seq string, prior to -i",
	)
	output = flag.String(
		"o",
		"",
		"output report, default stdout",
	)
	width = flag.Int(
		"w",
		util.LineWidth,
		"line width of reverse complement, 0 for one line",
	)
	Tm = flag.Bool(
		"tm",
		false,
		"add tm",
	)
	asJSON = flag.Bool(
		"json",
		false,
		"output json instead of text",
	)
	outputPNG = flag.String(
		"png",
		"",
		"output A/C/G/T count bar chart",
	)
	cpuProfile = flag.String(
		"cpu",
		"",
		"write cpu profile to file",
	)
)

var gz = regexp.MustCompile(`\.gz$`)

func main() {
	t0 := time.Now()
	flag.Parse()
	if *input == "" && *seq == "" {
		flag.PrintDefaults()
		return
	}
	if *cpuProfile != "" {
		var LogCPUProfile = osUtil.Create(*cpuProfile)
		defer simpleUtil.DeferClose(LogCPUProfile)
		pprof.StartCPUProfile(LogCPUProfile)
		defer pprof.StopCPUProfile()
	}

	var raw = *seq
	if raw == "" {
		raw = ReadInput(*input)
	}

	var report = util.Analyze(raw)
	slog.Debug("Analyze", "rawLength", report.RawLength, "length", report.Stats.Length, "GC%", report.Stats.GCPercent)

	// open output
	var outF = os.Stdout
	if *output != "" {
		outF = osUtil.Create(*output)
		defer simpleUtil.DeferClose(outF)
	}
	fmtUtil.Fprintf(outF, "%s", simpleUtil.HandleError(Render(report, *width, *Tm, *asJSON)))

	if *outputPNG != "" {
		simpleUtil.CheckErr(PlotComposition(report.Stats, *outputPNG))
	}

	slog.Info("Done", "elapsed", time.Since(t0))
}

// ReadInput return whole content of path, - for stdin
func ReadInput(path string) string {
	if path == "-" {
		return string(simpleUtil.HandleError(io.ReadAll(os.Stdin)))
	}
	if gz.MatchString(path) {
		var file = osUtil.Open(path)
		defer simpleUtil.DeferClose(file)
		var gr = simpleUtil.HandleError(gzip.NewReader(file))
		defer simpleUtil.DeferClose(gr)
		return string(simpleUtil.HandleError(io.ReadAll(gr)))
	}
	var file = osUtil.Open(path)
	defer simpleUtil.DeferClose(file)
	return string(simpleUtil.HandleError(io.ReadAll(file)))
}

type jsonReport struct {
	*util.Report
	Tm *float64 `json:"tm,omitempty"`
}

// Render report as text or indented json
func Render(report *util.Report, width int, withTm, asJSON bool) (string, error) {
	if !asJSON {
		return report.Text(width, withTm), nil
	}
	var r = jsonReport{Report: report}
	if withTm {
		if tm, ok := report.Stats.Tm(); ok {
			r.Tm = &tm
		}
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
