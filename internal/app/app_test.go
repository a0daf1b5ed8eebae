package app

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/colorscripts/internal/selector"
	"github.com/samdwyer/colorscripts/internal/ui"
)

// dataFS builds a data directory with 898 names, each with both variants.
func dataFS() fstest.MapFS {
	fsys := fstest.MapFS{}
	var names strings.Builder
	for i := 1; i <= 898; i++ {
		name := fmt.Sprintf("mon%03d", i)
		names.WriteString(name + "\n")
		fsys[ui.ArtPath(name, ui.Regular)] = &fstest.MapFile{Data: []byte("art:" + name)}
		fsys[ui.ArtPath(name, ui.Shiny)] = &fstest.MapFile{Data: []byte("shiny-art:" + name)}
	}
	fsys["nameslist.txt"] = &fstest.MapFile{Data: []byte(names.String())}
	return fsys
}

func run(t *testing.T, cfg Config) (string, error) {
	t.Helper()
	var out bytes.Buffer
	a, err := New(cfg, dataFS(), &out)
	require.NoError(t, err)
	err = a.Run(context.Background())
	return out.String(), err
}

func TestRunHelp(t *testing.T) {
	out, err := run(t, Config{})
	require.NoError(t, err)
	assert.Contains(t, out, "usage: pokemon-colorscripts")
}

func TestRunList(t *testing.T) {
	out, err := run(t, Config{List: true})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "mon001\nmon002\n"))
	assert.Contains(t, out, "mon898\n")
}

func TestRunName(t *testing.T) {
	out, err := run(t, Config{Name: "mon025"})
	require.NoError(t, err)
	assert.Equal(t, "mon025\nart:mon025\n", out)

	out, err = run(t, Config{Name: "mon025", Shiny: true})
	require.NoError(t, err)
	assert.Equal(t, "mon025 (shiny)\nshiny-art:mon025\n", out)
}

func TestRunNameNoTitle(t *testing.T) {
	out, err := run(t, Config{Name: "mon025", Shiny: true, NoTitle: true})
	require.NoError(t, err)
	assert.Equal(t, "shiny-art:mon025\n", out)
}

func TestRunNameNotFound(t *testing.T) {
	out, err := run(t, Config{Name: "missingno"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ui.ErrEntityNotFound)
	assert.Equal(t, "Invalid pokemon 'missingno'", err.Error())
	assert.Empty(t, out)
}

func TestRunRandom(t *testing.T) {
	out, err := run(t, Config{Random: "5", RandomSet: true, Seed: 7, Shiny: true})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)

	require.True(t, strings.HasSuffix(lines[0], " (shiny)"))
	index, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(lines[0], "mon"), " (shiny)"))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, index, 494)
	assert.LessOrEqual(t, index, 649)
	assert.Equal(t, fmt.Sprintf("shiny-art:mon%03d", index), lines[1])
}

func TestRunRandomDeterministic(t *testing.T) {
	cfg := Config{Random: "1-8", RandomSet: true, Seed: 12345}

	out1, err := run(t, cfg)
	require.NoError(t, err)
	out2, err := run(t, cfg)
	require.NoError(t, err)
	assert.Equal(t, out1, out2)
}

func TestRunRandomNoTitle(t *testing.T) {
	out, err := run(t, Config{Random: "2,8", RandomSet: true, NoTitle: true, Seed: 3})
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "\n"))
	assert.Contains(t, out, "art:mon")
}

func TestRunRandomInvalidGeneration(t *testing.T) {
	for _, spec := range []string{"9", "0-2", "8-1", "1-2,9"} {
		t.Run(spec, func(t *testing.T) {
			out, err := run(t, Config{Random: spec, RandomSet: true, Seed: 1})
			require.Error(t, err)
			assert.Equal(t, fmt.Sprintf("Invalid generation '%s'", spec), err.Error())
			assert.Empty(t, out)
		})
	}

	_, err := run(t, Config{Random: "9", RandomSet: true})
	assert.ErrorIs(t, err, selector.ErrGenerationNotFound)
	_, err = run(t, Config{Random: "8-1", RandomSet: true})
	assert.ErrorIs(t, err, selector.ErrInvalidRange)
}

func TestRunRandomShortNameList(t *testing.T) {
	fsys := dataFS()
	fsys["nameslist.txt"] = &fstest.MapFile{Data: []byte("mon001\nmon002\n")}

	var out bytes.Buffer
	a, err := New(Config{Random: "1", RandomSet: true, Seed: 1}, fsys, &out)
	require.NoError(t, err)

	// Checked before drawing, so the outcome does not depend on the seed.
	err = a.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has 2 names, generation table needs 898")
	assert.Empty(t, out.String())
}

func TestRunMissingNameList(t *testing.T) {
	var out bytes.Buffer
	a, err := New(Config{List: true}, fstest.MapFS{}, &out)
	require.NoError(t, err)
	assert.Error(t, a.Run(context.Background()))
}

func TestNewRejectsBadColor(t *testing.T) {
	_, err := New(Config{TitleColor: "nope"}, dataFS(), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title color")
}
