package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"
	"github.com/logrusorgru/aurora/v4"
	"github.com/pkg/errors"

	"github.com/mrhaoxx/soj-doublecheck/checker"
)

// JudgeResult is the document SOJ workflows read back from result.json.
type JudgeResult struct {
	Success bool

	Score float64

	Msg string

	Memory uint64 // in bytes
	Time   uint64 // in ns

	Verdict string
	Checked int
}

func NewJudgeResult(v checker.Verdict) JudgeResult {
	res := JudgeResult{
		Success: v.Outcome == checker.OK,
		Msg:     v.String(),
		Verdict: v.Outcome.String(),
		Checked: v.Checked,
	}
	if res.Success {
		res.Score = 100
	}
	return res
}

func WriteJudgeResult(file string, v checker.Verdict) error {
	byes, err := sonic.Marshal(NewJudgeResult(v))
	if err != nil {
		return errors.Wrap(err, "failed to encode result")
	}
	return errors.Wrap(os.WriteFile(file, byes, 0644), "failed to write result file")
}

func ColorizeVerdict(o checker.Outcome) aurora.Value {
	switch o {
	case checker.OK:
		return aurora.Green(o)
	case checker.WrongAnswer:
		return aurora.Red(o)
	case checker.PresentationError:
		return aurora.Yellow(o)
	default:
		return aurora.Bold(aurora.Magenta(o))
	}
}

// WriteVerdict prints the single verdict line the judge harness reads from stderr.
func WriteVerdict(w io.Writer, v checker.Verdict, color bool) {
	if !color {
		fmt.Fprintln(w, v.String())
		return
	}
	if v.Outcome == checker.OK {
		fmt.Fprintln(w, ColorizeVerdict(v.Outcome), v.Message)
		return
	}
	fmt.Fprintln(w, ColorizeVerdict(v.Outcome), aurora.Blue(v.Message))
}
