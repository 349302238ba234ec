package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequest_Bounds(t *testing.T) {
	cases := []struct {
		name       string
		page       PageRequest
		n          int
		start, end int
	}{
		{"sin límite", PageRequest{}, 5, 0, 5},
		{"primera página", PageRequest{Limit: 2}, 5, 0, 2},
		{"última página corta", PageRequest{Limit: 2, Offset: 4}, 5, 4, 5},
		{"offset fuera de rango", PageRequest{Limit: 2, Offset: 9}, 5, 5, 5},
		{"lista vacía", PageRequest{Limit: 10}, 0, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := tc.page.Bounds(tc.n)
			assert.Equal(t, tc.start, start)
			assert.Equal(t, tc.end, end)
		})
	}
}
