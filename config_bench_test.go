package bashconf

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

var benchContent = "# Network configuration\n" +
	"NETWORKING=yes\n" +
	"HOSTNAME=\"mars\"  # primary name\n" +
	"export PATH='/usr/bin'\n" +
	"declare -x EDITOR=vim\n" +
	"setenv DISPLAY :0\n"

func BenchmarkParseString(b *testing.B) {
	for b.Loop() {
		c := New()
		c.ParseString(benchContent)
		if c.IsEmpty() {
			b.Fatal("empty config")
		}
	}
}

func BenchmarkLoadConfig(b *testing.B) {
	td := b.TempDir()
	fn := filepath.Join(td, "network")

	if err := os.WriteFile(fn, []byte(benchContent), 0o644); err != nil {
		b.Fatal(err)
	}

	for b.Loop() {
		cfg, err := LoadConfig(fn)
		if err != nil {
			b.Fatal(err)
		}
		if cfg == nil {
			b.Fatal("nil config")
		}
	}
}

func BenchmarkGet(b *testing.B) {
	c := New()
	c.ParseString(benchContent)

	for b.Loop() {
		_, ok := c.Get("HOSTNAME")
		if !ok {
			b.Fatal("missing variable")
		}
	}
}

func BenchmarkSet(b *testing.B) {
	c := New()
	c.ParseString(benchContent)

	b.ResetTimer()

	for i := range b.N {
		c.Set("HOSTNAME", strconv.Itoa(i))
	}
}

func BenchmarkRender(b *testing.B) {
	c := New()
	c.ParseString(benchContent)

	for b.Loop() {
		if c.String() == "" {
			b.Fatal("empty render")
		}
	}
}
