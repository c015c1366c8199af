package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPluralize(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{0, "стульев"},
		{1, "стул"},
		{2, "стула"},
		{4, "стула"},
		{5, "стульев"},
		{10, "стульев"},
		{11, "стульев"},
		{12, "стульев"},
		{14, "стульев"},
		{19, "стульев"},
		{21, "стул"},
		{22, "стула"},
		{25, "стульев"},
		{100, "стульев"},
		{101, "стул"},
		{111, "стульев"},
		{-2, "стула"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Pluralize(tc.n, "стул", "стула", "стульев"), "n=%d", tc.n)
	}
}
