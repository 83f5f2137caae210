package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestBar(t *testing.T) {
	var buf bytes.Buffer
	r := NewBar(&buf)

	// ticks before Start are ignored
	r.Advance(1)

	r.Start(10, "Processing slides")
	for i := 0; i < 10; i++ {
		r.Advance(1)
	}
	r.Finish()

	if !strings.Contains(buf.String(), "Processing slides") {
		t.Errorf("output %q should contain the description", buf.String())
	}
}

func TestNop(t *testing.T) {
	r := Nop()
	r.Start(5, "x")
	r.Advance(5)
	r.Finish()
}
