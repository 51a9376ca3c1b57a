package domain

import "testing"

func TestCoordinatesValid(t *testing.T) {
	cases := []struct {
		c    Coordinates
		want bool
	}{
		{Coordinates{Lat: 23.76, Lng: 90.38}, true},
		{Coordinates{Lat: -90, Lng: 180}, true},
		{Coordinates{}, false}, // null island means never reported
		{Coordinates{Lat: 91, Lng: 0}, false},
		{Coordinates{Lat: 0, Lng: 181}, false},
		{Coordinates{Lat: -100, Lng: 200}, false},
	}

	for _, tc := range cases {
		if got := tc.c.Valid(); got != tc.want {
			t.Fatalf("Valid(%+v) = %v, want %v", tc.c, got, tc.want)
		}
	}
}

func TestCoordinatesLonLat(t *testing.T) {
	c := Coordinates{Lat: 23.76, Lng: 90.38}
	ll := c.LonLat()
	if len(ll) != 2 || ll[0] != 90.38 || ll[1] != 23.76 {
		t.Fatalf("LonLat() = %v, want [90.38 23.76]", ll)
	}
}
