package mask

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseMapping(t *testing.T) {
	tests := []struct {
		spec string
		want Mapping
	}{
		{
			spec: "a:@,o:0",
			want: Mapping{'a': "@", 'A': "@", 'o': "0", 'O': "0"},
		},
		{
			spec: " a:@ ,  e:3",
			want: Mapping{'a': "@", 'A': "@", 'e': "3", 'E': "3"},
		},
		{
			spec: "a:,:x,o:0",
			want: Mapping{'o': "0", 'O': "0"},
		},
		{
			spec: "novalue,s:$",
			want: Mapping{'s': "$", 'S': "$"},
		},
		{
			spec: "H:#",
			want: Mapping{'h': "#", 'H': "#"},
		},
		{
			spec: "t:+:+",
			want: Mapping{'t': "+:+", 'T': "+:+"},
		},
		{
			spec: "ab:x",
			want: Mapping{'a': "x", 'A': "x"},
		},
		{
			spec: "a:1,a:2",
			want: Mapping{'a': "2", 'A': "2"},
		},
		{
			spec: "1:one",
			want: Mapping{'1': "one"},
		},
		{
			spec: "",
			want: Mapping{},
		},
		{
			spec: ",,,",
			want: Mapping{},
		},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("spec = %q", tt.spec), func(t *testing.T) {
			if diff := cmp.Diff(ParseMapping(tt.spec), tt.want); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
		})
	}
}

func TestMappingApply(t *testing.T) {
	m := ParseMapping("a:4,e:3")
	if got := m.Apply("Apple"); got != "4ppl3" {
		t.Fatalf("Apply() = %q, want %q", got, "4ppl3")
	}
	if got := Mapping(nil).Apply("apple"); got != "apple" {
		t.Fatalf("nil mapping should be identity, got %q", got)
	}
	invalid := "a\xffe"
	if got := m.Apply(invalid); got != "4\xff3" {
		t.Fatalf("invalid bytes should pass through, got %q", got)
	}
}

func TestMappingPairs(t *testing.T) {
	got := ParseMapping("o:0,a:@").Pairs()
	want := []Pair{
		{Letter: "A", Replacement: "@"},
		{Letter: "O", Replacement: "0"},
		{Letter: "a", Replacement: "@"},
		{Letter: "o", Replacement: "0"},
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
}
