package examnum

import (
	"fmt"
	"strconv"
	"strings"
)

// Batch is a request for Count codes sharing Prefix.
type Batch struct {
	Prefix string
	Count  int
}

func (b Batch) String() string {
	return fmt.Sprintf("%s:%d", b.Prefix, b.Count)
}

// ParseBatch parses a batch argument. "AB3:78" requests 78 codes with the
// prefix "AB3"; a bare number like "500" requests 500 codes with no prefix.
func ParseBatch(s string) (Batch, error) {
	prefix, countStr, ok := strings.Cut(s, ":")
	if !ok {
		prefix, countStr = "", s
	}

	count, err := strconv.Atoi(countStr)
	if err != nil {
		return Batch{}, fmt.Errorf("invalid batch %q: %w", s, err)
	}
	if count < 0 {
		return Batch{}, fmt.Errorf("invalid batch %q: count must not be negative", s)
	}

	return Batch{
		Prefix: prefix,
		Count:  count,
	}, nil
}

// ParseBatches parses all batch arguments, failing on the first invalid one.
func ParseBatches(args []string) ([]Batch, error) {
	batches := make([]Batch, 0, len(args))
	for _, arg := range args {
		batch, err := ParseBatch(arg)
		if err != nil {
			return nil, err
		}
		batches = append(batches, batch)
	}
	return batches, nil
}
