package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounts_ok(t *testing.T) {
	cases := []struct {
		s        string
		expected []int
	}{
		{"127,1,30", []int{127, 1, 30}},
		{"0,0", []int{0, 0}},
		{" 2, 3 ", []int{2, 3}},
		{"5", []int{5}},
		{"-1,2", []int{-1, 2}}, // range checks happen downstream
	}
	for _, c := range cases {
		actual, err := Counts(c.s)
		assert.Nil(t, err, c.s)
		assert.Equal(t, c.expected, actual, c.s)
	}
}

func TestCounts_err(t *testing.T) {
	cases := []string{
		"",        // empty vector
		"   ",     // empty vector
		"a,b",     // not integers
		"1,,2",    // empty entry
		"1;2",     // wrong delimiter
		"1.5,2",   // not an integer
		"127,1,x", // trailing junk
	}
	for _, s := range cases {
		actual, err := Counts(s)
		assert.Nil(t, actual, s)
		assert.NotNil(t, err, s)
	}
}

func TestWeights_ok(t *testing.T) {
	cases := []struct {
		s        string
		expected []float64
	}{
		{"1,1,1", []float64{1, 1, 1}},
		{"0.5, 0.5", []float64{0.5, 0.5}},
		{"1e-3,2", []float64{0.001, 2}},
		{"10", []float64{10}},
	}
	for _, c := range cases {
		actual, err := Weights(c.s)
		assert.Nil(t, err, c.s)
		assert.Equal(t, c.expected, actual, c.s)
	}
}

func TestWeights_err(t *testing.T) {
	cases := []string{
		"",       // empty vector
		"a",      // not a number
		"1,,2",   // empty entry
		"1 2 3",  // wrong delimiter
		"0.5,ha", // trailing junk
	}
	for _, s := range cases {
		actual, err := Weights(s)
		assert.Nil(t, actual, s)
		assert.NotNil(t, err, s)
	}
}
