package io

import (
	"strconv"
	"strings"

	serrors "github.com/matzehuels/stackcheck/pkg/errors"
	"github.com/matzehuels/stackcheck/pkg/stacking"
)

// ParseArrivals parses a comma-separated arrival line. Surrounding
// whitespace, including the line terminator, is ignored.
func ParseArrivals(line string) ([]int, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return []int{}, nil
	}
	return parseIDs(line)
}

// ParseCandidate parses a candidate line into the reported stack count and
// the stacks.
func ParseCandidate(line string) (int, stacking.Partition, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, nil, serrors.New(serrors.ErrCodeInvalidInput, "missing stack count")
	}

	reported, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, nil, serrors.New(serrors.ErrCodeInvalidInput, "invalid stack count %q", fields[0])
	}

	stacks := make(stacking.Partition, 0, len(fields)-1)
	for i, f := range fields[1:] {
		ids, err := parseIDs(f)
		if err != nil {
			return 0, nil, serrors.Wrap(serrors.ErrCodeInvalidInput, err, "stack %d", i+1)
		}
		stacks = append(stacks, stacking.Stack(ids))
	}
	return reported, stacks, nil
}

func parseIDs(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	ids := make([]int, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		id, err := strconv.Atoi(p)
		if err != nil {
			return nil, serrors.New(serrors.ErrCodeInvalidInput, "invalid ship id %q", p)
		}
		if err := serrors.ValidateShipID(id); err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

// FormatArrivals writes ids as a comma-separated arrival line without a
// terminator.
func FormatArrivals(ids []int) string {
	var b strings.Builder
	writeIDs(&b, ids)
	return b.String()
}

// FormatPartition writes p as a candidate line without a terminator:
// the stack count followed by each stack.
func FormatPartition(p stacking.Partition) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(len(p)))
	for _, s := range p {
		b.WriteByte(' ')
		writeIDs(&b, s)
	}
	return b.String()
}

// FormatStacks writes the stacks of p separated by spaces, without the
// leading count.
func FormatStacks(p stacking.Partition) string {
	var b strings.Builder
	for i, s := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		writeIDs(&b, s)
	}
	return b.String()
}

func writeIDs(b *strings.Builder, ids []int) {
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(id))
	}
}
