package hlayout

import (
	"testing"
)

func TestSegments_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		s    Segments
		e    string
	}{
		{"zero", Segments{}, ""},
		{"text", Text("hi"), "hi"},
		{
			"interleaved",
			NewSegments([]string{"a", "b", "c"}, 1, "<2>"),
			"a1b<2>c",
		},
		{
			"value_only",
			NewSegments([]string{"", ""}, "v"),
			"v",
		},
		{
			"missing_literals",
			NewSegments([]string{"a"}, "x", "y"),
			"axy",
		},
		{
			"extra_literals",
			NewSegments([]string{"a", "b", "c"}, "x"),
			"axbc",
		},
		{
			"nil_value",
			NewSegments([]string{"[", "]"}, nil),
			"[]",
		},
		{
			"nil_stringer_pointer",
			NewSegments([]string{"a", "b"}, (*label)(nil)),
			"a<nil>b",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if a := tc.s.String(); a != tc.e {
				t.Errorf("\nexp: %q\nact: %q", tc.e, a)
			}
		})
	}
}
