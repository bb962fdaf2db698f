package span

import "testing"

func TestOffsetContained(t *testing.T) {
	buf := []byte("abcdef")

	tests := []struct {
		name       string
		sub        []byte
		start, end int
	}{
		{"whole buffer", buf, 0, 6},
		{"middle", buf[1:3], 1, 3},
		{"prefix", buf[:2], 0, 2},
		{"suffix", buf[4:], 4, 6},
		{"empty interior", buf[2:2], 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := Offset(buf, tt.sub)
			if !ok {
				t.Fatal("expected containment")
			}
			if start != tt.start || end != tt.end {
				t.Errorf("got %d..%d, want %d..%d", start, end, tt.start, tt.end)
			}
		})
	}
}

func TestOffsetNotContained(t *testing.T) {
	buf := []byte("abcdef")
	other := []byte("zz")

	if _, _, ok := Offset(buf, other); ok {
		t.Error("unrelated allocation reported as contained")
	}
	if _, _, ok := Offset(buf[2:4], buf); ok {
		t.Error("container inside candidate reported as contained")
	}
	if _, _, ok := Offset(nil, other); ok {
		t.Error("nil container reported as containing")
	}
}

func TestOffsetNestedWindows(t *testing.T) {
	buf := []byte("hello world")
	window := buf[3:9]
	sub := window[1:4] // buf[4:7]

	start, end, ok := Offset(window, sub)
	if !ok || start != 1 || end != 4 {
		t.Errorf("within window: got %d..%d ok=%v, want 1..4 true", start, end, ok)
	}

	start, end, ok = Offset(buf, sub)
	if !ok || start != 4 || end != 7 {
		t.Errorf("within buffer: got %d..%d ok=%v, want 4..7 true", start, end, ok)
	}
}
