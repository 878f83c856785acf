package processor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TarekLP/Tareks-HalfLifeAlyx-Addons/config"
)

const roomMap = `{
"classname" "worldspawn"
{
( -128 -128 0 ) ( 128 -128 0 ) ( -128 128 0 ) WALL_TEX [ 1 0 0 0 ] [ 0 1 0 0 ] 0 1 1
( -128 -128 128 ) ( -128 128 128 ) ( 128 -128 128 ) CEILING_TEX [ 1 0 0 0 ] [ 0 1 0 0 ] 0 1 1
}
}`

const twoBrushMap = `{
"classname" "worldspawn"
{
( 0 0 0 ) ( 16 0 0 ) ( 0 16 0 ) floor 0 0 0
}
{
( 0 0 64 ) ( 16 0 64 ) ( 0 16 64 ) ceiling 0 0 0
}
}`

const lightOnlyMap = `{
"classname" "light"
"origin" "0 0 64"
}`

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	conf := config.Default()
	conf.InputDir = t.TempDir()
	conf.OutputDir = t.TempDir()
	return &conf
}

func writeMap(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestConvertFolder(t *testing.T) {
	conf := newTestConfig(t)
	writeMap(t, conf.InputDir, "room.map", roomMap)
	writeMap(t, conf.InputDir, "lights.map", lightOnlyMap)
	writeMap(t, conf.InputDir, "notes.txt", "not a map")

	summary, err := New(conf).ConvertFolder()
	require.NoError(t, err)

	assert.Equal(t, Summary{Found: 2, Converted: 1, Compiled: 0, Failed: 0}, summary)

	document, err := os.ReadFile(filepath.Join(conf.MapsDir(), "room.vmf"))
	require.NoError(t, err)
	assert.Contains(t, string(document), `"material" "materials/WALL_TEX"`)

	_, err = os.Stat(filepath.Join(conf.MapsDir(), "lights.vmf"))
	assert.True(t, os.IsNotExist(err))

	info, err := os.Stat(conf.MaterialsDir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestConvertFolderFindsMapsRecursivelyAndCaseInsensitively(t *testing.T) {
	conf := newTestConfig(t)

	nested := filepath.Join(conf.InputDir, "episode1", "secret")
	require.NoError(t, os.MkdirAll(nested, 0755))
	writeMap(t, nested, "E1M1.MAP", roomMap)
	writeMap(t, conf.InputDir, "start.Map", twoBrushMap)

	summary, err := New(conf).ConvertFolder()
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Found)
	assert.Equal(t, 2, summary.Converted)

	_, err = os.Stat(filepath.Join(conf.MapsDir(), "E1M1.vmf"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(conf.MapsDir(), "start.vmf"))
	assert.NoError(t, err)
}

func TestConvertFolderKeepsUnitsIndependent(t *testing.T) {
	conf := newTestConfig(t)
	writeMap(t, conf.InputDir, "one.map", roomMap)
	writeMap(t, conf.InputDir, "two.map", twoBrushMap)

	summary, err := New(conf).ConvertFolder()
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Converted)

	one, err := os.ReadFile(filepath.Join(conf.MapsDir(), "one.vmf"))
	require.NoError(t, err)
	two, err := os.ReadFile(filepath.Join(conf.MapsDir(), "two.vmf"))
	require.NoError(t, err)

	// Brush and id allocation state must not leak between files: each
	// document carries only its own solids, numbered from scratch.
	assert.Equal(t, 1, strings.Count(string(one), "solid"))
	assert.Equal(t, 2, strings.Count(string(two), "solid"))
	assert.Contains(t, string(one), `"id" "2"`)
	assert.Contains(t, string(two), `"id" "2"`)
	assert.NotContains(t, string(one), "materials/FLOOR")
	assert.NotContains(t, string(two), "materials/WALL_TEX")
}

func TestConvertFolderMissingInputDir(t *testing.T) {
	conf := newTestConfig(t)
	conf.InputDir = filepath.Join(conf.InputDir, "does-not-exist")

	_, err := New(conf).ConvertFolder()
	assert.Error(t, err)
}

func TestConvertFolderMissingCompiler(t *testing.T) {
	conf := newTestConfig(t)
	conf.CompilerPath = filepath.Join(conf.InputDir, "no-such-compiler")

	_, err := New(conf).ConvertFolder()
	assert.Error(t, err)
}

func TestConvertFolderEmptyInput(t *testing.T) {
	conf := newTestConfig(t)

	summary, err := New(conf).ConvertFolder()
	require.NoError(t, err)
	assert.Equal(t, Summary{}, summary)
}

func TestCollectMapFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.map"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.MAP"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.bsp"), nil, 0644))

	found, err := collectMapFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, len(found))
}
