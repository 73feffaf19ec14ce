package checker

import "fmt"

type Outcome int

const (
	OK Outcome = iota
	WrongAnswer
	PresentationError
	Fail
)

func (o Outcome) String() string {
	switch o {
	case OK:
		return "ok"
	case WrongAnswer:
		return "wrong answer"
	case PresentationError:
		return "wrong output format"
	case Fail:
		return "FAIL"
	default:
		return "unknown"
	}
}

// ExitCode follows the testlib checker convention.
func (o Outcome) ExitCode() int {
	switch o {
	case OK:
		return 0
	case WrongAnswer:
		return 1
	case PresentationError:
		return 2
	default:
		return 3
	}
}

type Verdict struct {
	Outcome Outcome
	Message string

	Checked int
}

func (v Verdict) String() string {
	return v.Outcome.String() + " " + v.Message
}

func Accepted(checked int) Verdict {
	return Verdict{Outcome: OK, Message: fmt.Sprintf("%d numbers checked", checked), Checked: checked}
}

func Quitf(o Outcome, checked int, format string, a ...interface{}) Verdict {
	return Verdict{Outcome: o, Message: fmt.Sprintf(format, a...), Checked: checked}
}
