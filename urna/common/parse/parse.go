package parse

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var errEmptyVector = errors.New("empty vector")

// Counts parses an ordered vector of category counts from a comma-separated string. It checks
// syntax only; range constraints on the counts are enforced by their consumers.
func Counts(s string) ([]int, error) {
	fields, err := split(s)
	if err != nil {
		return nil, err
	}
	counts := make([]int, len(fields))
	for i, f := range fields {
		count, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(err, "count %d of %q", i, s)
		}
		counts[i] = count
	}
	return counts, nil
}

// Weights parses an ordered vector of concentration weights from a comma-separated string.
func Weights(s string) ([]float64, error) {
	fields, err := split(s)
	if err != nil {
		return nil, err
	}
	weights := make([]float64, len(fields))
	for i, f := range fields {
		weight, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "weight %d of %q", i, s)
		}
		weights[i] = weight
	}
	return weights, nil
}

func split(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errEmptyVector
	}
	fields := strings.Split(s, ",")
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields, nil
}
