package main

import (
	"reflect"
	"testing"
)

func TestRewriteDirectProjectLookupArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"portfolio"},
			want: []string{"portfolio"},
		},
		{
			name: "direct id first token",
			in:   []string{"portfolio", "3"},
			want: []string{"portfolio", "projects", "show", "3"},
		},
		{
			name: "direct id after value flag",
			in:   []string{"portfolio", "--format", "edn", "3"},
			want: []string{"portfolio", "--format", "edn", "projects", "show", "3"},
		},
		{
			name: "direct id after equals flag",
			in:   []string{"portfolio", "--dir=./tmp-data", "12"},
			want: []string{"portfolio", "--dir=./tmp-data", "projects", "show", "12"},
		},
		{
			name: "direct id after bool flag",
			in:   []string{"portfolio", "--persist", "2"},
			want: []string{"portfolio", "--persist", "projects", "show", "2"},
		},
		{
			name: "direct id after double dash",
			in:   []string{"portfolio", "--pretty", "--", "1"},
			want: []string{"portfolio", "--pretty", "--", "projects", "show", "1"},
		},
		{
			name: "normal subcommand not rewritten",
			in:   []string{"portfolio", "projects", "show", "1"},
			want: []string{"portfolio", "projects", "show", "1"},
		},
		{
			name: "negative-looking token is a flag",
			in:   []string{"portfolio", "-1"},
			want: []string{"portfolio", "-1"},
		},
		{
			name: "unknown command not rewritten",
			in:   []string{"portfolio", "wat"},
			want: []string{"portfolio", "wat"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteDirectProjectLookupArgs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("rewriteDirectProjectLookupArgs:\n got: %#v\nwant: %#v", got, tt.want)
			}
		})
	}
}
