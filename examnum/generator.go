package examnum

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/AndrewConway/make-exam-numbers/internal/xrand"
)

// ErrAttemptsExhausted is returned by Generator.NewCode when a maximum attempt
// count is configured and no acceptable candidate was found within it.
var ErrAttemptsExhausted = errors.New("exhausted attempts without finding an acceptable code")

const maxDigits = 19

// Generator produces random numeric codes such that every code differs from
// every previously produced or supplied code in at least a requested number of
// character positions.
//
// A Generator is not safe for concurrent use.
type Generator struct {
	source    xrand.Source
	numDigits int
	rangeEnd  uint64

	used        []string
	maxAttempts int
	rejections  uint64

	// OnReject, if set, is called once for every rejected candidate.
	OnReject func(candidate string)

	progress *rate.Limiter
}

// NewGenerator returns a Generator drawing codes of numDigits decimal digits
// from source. maxAttempts bounds the number of candidates tried per code; 0
// means keep trying forever, which never terminates if the distance constraint
// cannot be satisfied.
func NewGenerator(source xrand.Source, numDigits int, maxAttempts int) (*Generator, error) {
	if numDigits < 1 || numDigits > maxDigits {
		return nil, fmt.Errorf("invalid number of digits %d, must be between 1 and %d", numDigits, maxDigits)
	}
	if maxAttempts < 0 {
		return nil, fmt.Errorf("invalid max attempts %d, must not be negative", maxAttempts)
	}

	rangeEnd := uint64(1)
	for i := 0; i < numDigits; i++ {
		rangeEnd *= 10
	}

	return &Generator{
		source:      source,
		numDigits:   numDigits,
		rangeEnd:    rangeEnd,
		maxAttempts: maxAttempts,
		progress:    rate.NewLimiter(rate.Every(time.Second), 1),
	}, nil
}

// AddUsed records codes as already issued, so every future code must keep the
// required distance from them. The used list only ever grows; codes are never
// removed or deduplicated.
func (g *Generator) AddUsed(codes ...string) {
	g.used = append(g.used, codes...)
}

// Used returns the codes recorded so far, both supplied and generated, in
// insertion order.
func (g *Generator) Used() []string {
	return g.used
}

// Rejections returns the total number of candidates rejected over the
// lifetime of the generator.
func (g *Generator) Rejections() uint64 {
	return g.rejections
}

// NewCandidate draws a uniform integer from [0, 10^numDigits), formats it as a
// decimal string left padded with zeros to exactly numDigits characters and
// prepends prefix verbatim. It does not touch the used list.
func (g *Generator) NewCandidate(prefix string) string {
	return fmt.Sprintf("%s%0*d", prefix, g.numDigits, g.source.Uint64N(g.rangeEnd))
}

// Accept reports whether candidate differs from every used code in at least
// minDistance character positions. Codes of different lengths are compared
// over the shorter length, see HammingDistance.
func (g *Generator) Accept(candidate string, minDistance int) bool {
	for _, used := range g.used {
		if HammingDistance(candidate, used) < minDistance {
			return false
		}
	}
	return true
}

// NewCode draws candidates until one is accepted, records it as used and
// returns it. With no maximum attempt count configured it blocks for as long
// as the search takes.
func (g *Generator) NewCode(prefix string, minDistance int) (string, error) {
	candidate := g.NewCandidate(prefix)
	for attempts := 1; !g.Accept(candidate, minDistance); attempts++ {
		g.rejections++
		if g.OnReject != nil {
			g.OnReject(candidate)
		}
		if g.progress.Allow() {
			slog.Info("Still searching for an acceptable code",
				slog.String("prefix", prefix),
				slog.Int("used", len(g.used)),
				slog.Uint64("rejections", g.rejections),
			)
		}
		if g.maxAttempts > 0 && attempts >= g.maxAttempts {
			return "", fmt.Errorf("%w: tried %d candidates for prefix %q", ErrAttemptsExhausted, attempts, prefix)
		}
		candidate = g.NewCandidate(prefix)
	}

	g.used = append(g.used, candidate)
	return candidate, nil
}
