package checker

import (
	"io"
	"math"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const DefaultEpsilon = 1e-6

// slack absorbs the binary rounding of decimal differences sitting on eps.
const slack = 1e-15

// DoubleCompare accepts found when it is within eps of expected, absolutely
// or relative to |expected|.
func DoubleCompare(expected, found, eps float64) bool {
	if math.IsNaN(expected) {
		return math.IsNaN(found)
	}
	if math.IsInf(expected, 0) {
		return found == expected
	}
	if math.IsNaN(found) || math.IsInf(found, 0) {
		return false
	}

	if math.Abs(expected-found) <= eps+slack {
		return true
	}

	minv := math.Min(expected*(1-eps), expected*(1+eps))
	maxv := math.Max(expected*(1-eps), expected*(1+eps))
	return found+slack >= minv && found <= maxv+slack
}

// Compare walks the answer and output streams in lockstep and stops at the
// first mismatch.
func Compare(ans, ouf io.Reader, eps float64) Verdict {
	if eps <= 0 {
		eps = DefaultEpsilon
	}

	answer := NewTokenStream("answer", ans)
	output := NewTokenStream("output", ouf)

	count := 0
	for {
		eof, err := answer.SeekEOF()
		if err != nil {
			return Quitf(Fail, count, "%v", err)
		}
		if eof {
			break
		}

		count++

		j, err := answer.ReadDouble()
		if err != nil {
			return Quitf(Fail, count, "answer: %v", err)
		}

		p, err := output.ReadDouble()
		if err != nil {
			return outputError(count, err)
		}

		if !DoubleCompare(j, p, eps) {
			log.Debug().Int("pos", count).Float64("expected", j).Float64("found", p).Msg("number differs")
			return Quitf(WrongAnswer, count, "%d-th number differs - expected: '%.10f', found: '%.10f'", count, j, p)
		}
	}

	eof, err := output.SeekEOF()
	if err != nil {
		return Quitf(Fail, count, "%v", err)
	}
	if !eof {
		return Quitf(PresentationError, count, "Extra tokens in output")
	}

	return Accepted(count)
}

func outputError(count int, err error) Verdict {
	var ferr *FormatError
	switch {
	case errors.Is(err, ErrUnexpectedEOF):
		return Quitf(WrongAnswer, count, "%d-th number: %v", count, err)
	case errors.As(err, &ferr):
		return Quitf(PresentationError, count, "%d-th number: %v", count, err)
	default:
		return Quitf(Fail, count, "%v", err)
	}
}
