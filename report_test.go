package main

import (
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		m    StatsMap
		want string
	}{
		{"empty", StatsMap{}, "{}"},
		{
			name: "single",
			m:    StatsMap{"A": {Min: 1, Max: 1, Sum: 1, Count: 1}},
			want: "{A=1.00/1.00/1.00}",
		},
		{
			name: "byte order",
			m: StatsMap{
				"b":       {Min: 1, Max: 1, Sum: 1, Count: 1},
				"B":       {Min: -2, Max: 4, Sum: 2, Count: 2},
				"Ätna":    {Min: 0.125, Max: 0.125, Sum: 0.125, Count: 1},
				"Abidjan": {Min: 25.95, Max: 26.05, Sum: 52, Count: 2},
			},
			want: "{Abidjan=25.95/26.00/26.05, B=-2.00/1.00/4.00, b=1.00/1.00/1.00, Ätna=0.12/0.12/0.12}",
		},
		{
			name: "ties round the binary value half to even",
			m:    StatsMap{"T": {Min: 0.125, Max: 1.005, Sum: 0.25, Count: 2}},
			want: "{T=0.12/0.12/1.00}",
		},
		{
			name: "mean rounding",
			m:    StatsMap{"X": {Min: 1, Max: 2, Sum: 4, Count: 3}},
			want: "{X=1.00/1.33/2.00}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertOutput(t, tt.want, render(tt.m))
		})
	}
}
