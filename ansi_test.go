package termframe

import (
	"bufio"
	"bytes"
	"testing"
)

func TestWriteInt(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{7, "7"},
		{42, "42"},
		{107, "107"},
		{999, "999"},
		{1234, "1234"},
		{-5, "0"},
	}
	for _, c := range cases {
		var buf bytes.Buffer
		w := bufio.NewWriter(&buf)
		writeInt(w, c.n)
		w.Flush()
		if got := buf.String(); got != c.want {
			t.Errorf("writeInt(%d): expected %q, got %q", c.n, c.want, got)
		}
	}
}

func TestWriteCursorPos(t *testing.T) {
	cases := []struct {
		col, row int
		want     string
	}{
		{0, 0, "\x1b[1;1H"},
		{7, 2, "\x1b[3;8H"},
		{79, 23, "\x1b[24;80H"},
	}
	for _, c := range cases {
		var buf bytes.Buffer
		w := bufio.NewWriter(&buf)
		writeCursorPos(w, c.col, c.row)
		w.Flush()
		if got := buf.String(); got != c.want {
			t.Errorf("writeCursorPos(%d,%d): expected %q, got %q", c.col, c.row, c.want, got)
		}
	}
}
