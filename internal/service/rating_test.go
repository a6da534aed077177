package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    string
	}{
		{"no reviews", nil, "0"},
		{"single", []int{5}, "5"},
		{"whole mean", []int{3, 4, 5}, "4"},
		{"half", []int{4, 5}, "4.5"},
		{"repeating", []int{1, 1, 2}, "1.3333333333333333"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AverageRating(tt.ratings).String())
		})
	}
}
