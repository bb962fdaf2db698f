package textview

import "testing"

func collectStrings(v Text) []string {
	var out []string
	for it := v.Lines(); it.Next(); {
		out = append(out, it.Text().String())
	}
	return out
}

func TestLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single line", "hello", []string{"hello"}},
		{"lf", "a\nb\nc", []string{"a", "b", "c"}},
		{"mixed lf and crlf", "a\nb\r\nc", []string{"a", "b", "c"}},
		{"trailing terminator", "a\nb\n", []string{"a", "b"}},
		{"trailing crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"lone newline", "\n", []string{""}},
		{"blank line between", "a\n\nb", []string{"a", "", "b"}},
		{"bare carriage return kept", "a\rb", []string{"a\rb"}},
		{"unicode lines", "日本\n語", []string{"日本", "語"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collectStrings(New(tt.input))
			if len(got) != len(tt.want) {
				t.Fatalf("got %d lines %q, want %d %q", len(got), got, len(tt.want), tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLinesShareBuffer(t *testing.T) {
	v := New("first\nsecond\nthird")
	for it := v.Lines(); it.Next(); {
		line := it.Text()
		if line.IsEmpty() {
			continue
		}
		if _, ok := v.TrySliceRef(line.Bytes()); !ok {
			t.Errorf("line %q does not share the source buffer", line.String())
		}
	}
}

func TestLinesOfSlice(t *testing.T) {
	v := New("skip\nkeep1\nkeep2")
	tail := v.Slice(5, v.Len())

	got := collectStrings(tail)
	want := []string{"keep1", "keep2"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCollectLines(t *testing.T) {
	lines := New("a\nb").Lines().CollectLines()
	if len(lines) != 2 || lines[0].String() != "a" || lines[1].String() != "b" {
		t.Errorf("CollectLines = %v", lines)
	}
}

func TestLinesSingleUse(t *testing.T) {
	it := New("a\nb").Lines()
	for it.Next() {
	}
	if it.Next() {
		t.Error("exhausted iterator should stay exhausted")
	}
}
