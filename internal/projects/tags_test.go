package projects

import (
	"reflect"
	"testing"
)

func TestParseTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "blank entries dropped", in: "a, b ,  ,c", want: []string{"a", "b", "c"}},
		{name: "empty", in: "", want: []string{}},
		{name: "only separators", in: " , ,, ", want: []string{}},
		{name: "single", in: "PyTorch", want: []string{"PyTorch"}},
		{name: "inner spaces kept", in: "Deep Learning, CNN", want: []string{"Deep Learning", "CNN"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ParseTags(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ParseTags(%q):\n got: %#v\nwant: %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatTags_RoundTrips(t *testing.T) {
	t.Parallel()

	tags := []string{"NLP", "BERT", "FastAPI"}
	if got := ParseTags(FormatTags(tags)); !reflect.DeepEqual(got, tags) {
		t.Fatalf("round trip: got %#v", got)
	}
}
