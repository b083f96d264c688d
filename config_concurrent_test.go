package bashconf

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentReads tests that multiple goroutines can safely read from
// the same config. Reads are safe as long as nobody mutates; the package
// provides no internal synchronization.
func TestConcurrentReads(t *testing.T) {
	t.Parallel()

	c := New()
	c.ParseString("NETWORKING=yes\nHOSTNAME=\"mars\"\nZONE='Europe/Berlin'\n")

	var wg sync.WaitGroup
	iterations := 100
	goroutines := 10

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			for i := 0; i < iterations; i++ {
				switch id % 3 {
				case 0:
					v, ok := c.Get("NETWORKING")
					assert.True(t, ok)
					assert.Equal(t, "yes", v)
				case 1:
					v, ok := c.Get("HOSTNAME")
					assert.True(t, ok)
					assert.Equal(t, "mars", v)
				case 2:
					v, ok := c.Get("ZONE")
					assert.True(t, ok)
					assert.Equal(t, "Europe/Berlin", v)
				}
			}
		}(g)
	}

	wg.Wait()
}

// TestConcurrentInstances tests that independent config instances can be
// parsed and mutated in parallel without interfering with each other.
func TestConcurrentInstances(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	goroutines := 10

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			c := New()
			c.ParseString(fmt.Sprintf("ID=%d", id))
			c.Set("EXTRA", fmt.Sprintf("value-%d", id))

			v, ok := c.Get("ID")
			assert.True(t, ok)
			assert.Equal(t, fmt.Sprintf("%d", id), v)
			assert.Equal(t, fmt.Sprintf("ID=%d\nEXTRA=value-%d", id, id), c.String())
		}(g)
	}

	wg.Wait()
}

// TestConcurrentLoad tests that loading different files concurrently is safe.
func TestConcurrentLoad(t *testing.T) {
	t.Parallel()

	td := t.TempDir()

	files := make([]string, 5)
	for i := range files {
		fn := filepath.Join(td, fmt.Sprintf("config-%d", i))
		content := fmt.Sprintf("INDEX=%d\n", i)
		require.NoError(t, os.WriteFile(fn, []byte(content), 0o644))
		files[i] = fn
	}

	var wg sync.WaitGroup
	for i, fn := range files {
		wg.Add(1)
		go func(i int, fn string) {
			defer wg.Done()

			c, err := LoadConfig(fn)
			assert.NoError(t, err)

			v, ok := c.Get("INDEX")
			assert.True(t, ok)
			assert.Equal(t, fmt.Sprintf("%d", i), v)
		}(i, fn)
	}

	wg.Wait()
}
