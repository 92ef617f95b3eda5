package render

import "testing"

func TestFormatNameList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "empty",
			in:   "",
			want: "",
		},
		{
			name: "single name unchanged",
			in:   "Francis Bond",
			want: "Francis Bond",
		},
		{
			name: "comma form flipped",
			in:   "Bond, Francis",
			want: "Francis Bond",
		},
		{
			name: "only first comma splits",
			in:   "Bond, Francis, Jr.",
			want: "Francis, Jr. Bond",
		},
		{
			name: "two names",
			in:   "Bond, Francis and Baldwin, Timothy",
			want: "Francis Bond and Timothy Baldwin",
		},
		{
			name: "three names use oxford comma",
			in:   "A, X and B, Y and C, Z",
			want: "X A, Y B, and Z C",
		},
		{
			name: "four names",
			in:   "A, W and B, X and C, Y and D, Z",
			want: "W A, X B, Y C, and Z D",
		},
		{
			name: "separator is case-insensitive",
			in:   "Bond, Francis AND Baldwin, Timothy",
			want: "Francis Bond and Timothy Baldwin",
		},
		{
			name: "extra whitespace tolerated",
			in:   "Bond, Francis   and   Baldwin, Timothy",
			want: "Francis Bond and Timothy Baldwin",
		},
		{
			name: "empty fragments discarded",
			in:   " and Bond, Francis and ",
			want: "Francis Bond",
		},
		{
			name: "Alexander does not split",
			in:   "Alexander Koller",
			want: "Alexander Koller",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatNameList(tt.in); got != tt.want {
				t.Errorf("FormatNameList(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
