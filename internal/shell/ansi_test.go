package shell

import "testing"

func TestStripCSI(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"no escapes", "hello\n", "hello\n"},
		{"color sequence", "\x1b[31mred\x1b[0m\n", "red\n"},
		{"cursor move", "a\x1b[2Kb\n", "ab\n"},
		{"unterminated at end", "a\x1b[31", "a"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := string(stripCSI([]byte(c.in)))
			if got != c.want {
				t.Fatalf("stripCSI(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}
