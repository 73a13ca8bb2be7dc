package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Membership identifier widths. Type-change approvals issue 6-digit
// numbers ("M000001"); the member registry issues 5-digit "MB" IDs
// ("MB00001").
const (
	MembershipNumberWidth = 6
	MembershipIDWidth     = 5
	MembershipIDPrefix    = "MB"
)

// MembershipNumberSource lists all assigned identifiers sharing a prefix.
type MembershipNumberSource func(ctx context.Context, prefix string) ([]string, error)

// MembershipNumberGenerator produces the next sequential human-readable
// identifier for a category. It scans the existing identifiers and takes
// the numerically greatest suffix rather than relying on lexicographic
// order, so "M0000100" beats "M000099".
//
// The scan-then-increment is not serialized against concurrent approvals;
// two reviewers approving at the same instant can compute the same next
// number. The unique constraint on the column fails one of the writes.
type MembershipNumberGenerator struct {
	source MembershipNumberSource
	width  int
}

// NewMembershipNumberGenerator builds a generator over the given source.
func NewMembershipNumberGenerator(source MembershipNumberSource, width int) *MembershipNumberGenerator {
	if width <= 0 {
		width = MembershipNumberWidth
	}
	return &MembershipNumberGenerator{source: source, width: width}
}

// Next returns the next identifier for the prefix, starting at 1 when no
// identifier with that prefix exists yet.
func (g *MembershipNumberGenerator) Next(ctx context.Context, prefix string) (string, error) {
	existing, err := g.source(ctx, prefix)
	if err != nil {
		return "", err
	}
	return formatSequential(prefix, maxNumericSuffix(existing, prefix)+1, g.width), nil
}

// maxNumericSuffix returns the greatest integer suffix among identifiers of
// the form prefix+digits, ignoring anything malformed.
func maxNumericSuffix(numbers []string, prefix string) int64 {
	var max int64
	for _, number := range numbers {
		suffix, ok := strings.CutPrefix(number, prefix)
		if !ok || suffix == "" {
			continue
		}
		value, err := strconv.ParseInt(suffix, 10, 64)
		if err != nil || value < 0 {
			continue
		}
		if value > max {
			max = value
		}
	}
	return max
}

func formatSequential(prefix string, value int64, width int) string {
	return fmt.Sprintf("%s%0*d", prefix, width, value)
}
