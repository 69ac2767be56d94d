package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/st325a1114/bokunokada/internal/domain"
)

// blockSpec is one parsed --block argument.
type blockSpec struct {
	Name  string
	Start domain.ClockTime
	End   domain.ClockTime
}

// blockList collects repeated --block flags. It validates syntax only;
// ledger rules (blank names, equal endpoints) stay with the service so
// every path reports them identically.
type blockList []blockSpec

var _ pflag.Value = (*blockList)(nil)

func (b *blockList) String() string {
	specs := make([]string, len(*b))
	for i, s := range *b {
		specs[i] = fmt.Sprintf("%s=%s-%s", s.Name, s.Start, s.End)
	}
	return strings.Join(specs, ",")
}

// Set parses one NAME=HH:MM-HH:MM argument. The name is everything before
// the first '=', so it may itself contain dashes.
func (b *blockList) Set(raw string) error {
	name, span, ok := strings.Cut(raw, "=")
	if !ok {
		return fmt.Errorf("block %q: want NAME=HH:MM-HH:MM", raw)
	}
	startStr, endStr, ok := strings.Cut(span, "-")
	if !ok {
		return fmt.Errorf("block %q: want NAME=HH:MM-HH:MM", raw)
	}

	start, err := domain.ParseClock(startStr)
	if err != nil {
		return fmt.Errorf("block %q: %w", raw, err)
	}
	end, err := domain.ParseClock(endStr)
	if err != nil {
		return fmt.Errorf("block %q: %w", raw, err)
	}

	*b = append(*b, blockSpec{Name: name, Start: start, End: end})
	return nil
}

func (b *blockList) Type() string {
	return "name=HH:MM-HH:MM"
}
