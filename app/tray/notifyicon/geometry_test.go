package notifyicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectContains(t *testing.T) {
	r := Rect{Left: 10, Top: 20, Right: 30, Bottom: 40}
	cases := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Point{X: 20, Y: 30}, true},
		{"top left corner", Point{X: 10, Y: 20}, true},
		{"right edge exclusive", Point{X: 30, Y: 30}, false},
		{"bottom edge exclusive", Point{X: 20, Y: 40}, false},
		{"left of rect", Point{X: 9, Y: 30}, false},
		{"above rect", Point{X: 20, Y: 19}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.Contains(tc.p))
		})
	}
}

func TestZeroRectContainsNothing(t *testing.T) {
	assert.False(t, Rect{}.Contains(Point{}))
	assert.False(t, Rect{}.Contains(Point{X: -1, Y: -1}))
}
