package genome

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"genomekit/internal/instset"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testTable(t *testing.T) *instset.Table {
	t.Helper()
	src := "index, id, char, name\n0, 0, a, nop-A\n1, 1, b, nop-B\n2, 2, c, nop-C\n"
	tbl, _, err := instset.NewLoader(nil).Parse(strings.NewReader(src))
	require.NoError(t, err)
	return tbl
}

func TestWriteString_AppendsNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.org")

	require.NoError(t, WriteString(path, "abc"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "abc\n", string(data))
}

func TestWriteString_KeepsExistingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.org")

	require.NoError(t, WriteString(path, "nop-A\nnop-B\n"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "nop-A\nnop-B\n", string(data))
}

func TestSplitNames_TrimsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ancestor.org")
	require.NoError(t, os.WriteFile(path, []byte("  nop-A\nnop-B  \n\n\tnop-C\n"), 0644))

	names, err := SplitNames(path, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"nop-A", "nop-B", "", "nop-C", ""}, names)
}

func TestEncodeFile(t *testing.T) {
	tbl := testTable(t)
	path := filepath.Join(t.TempDir(), "ancestor.org")
	require.NoError(t, os.WriteFile(path, []byte("nop-A\n\nnop-B\nnop-C\n"), 0644))

	out, err := EncodeFile(tbl, path)
	require.NoError(t, err)
	assert.Equal(t, "abc", out)
}

func TestDecodeFile(t *testing.T) {
	tbl := testTable(t)
	path := filepath.Join(t.TempDir(), "symbols.org")
	require.NoError(t, os.WriteFile(path, []byte("cab\n"), 0644))

	out, err := DecodeFile(tbl, path)
	require.NoError(t, err)
	assert.Equal(t, "nop-C\nnop-A\nnop-B\n", out)
}

func TestDecodeFile_UnknownSymbol(t *testing.T) {
	tbl := testTable(t)
	path := filepath.Join(t.TempDir(), "symbols.org")
	require.NoError(t, os.WriteFile(path, []byte("az\n"), 0644))

	_, err := DecodeFile(tbl, path)
	var serr *instset.UnknownSymbolError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, 'z', serr.Char)
}

func TestFileRoundTrip(t *testing.T) {
	tbl := testTable(t)
	dir := t.TempDir()

	symbols := "abcacba"
	names, err := tbl.CharsToNames(symbols)
	require.NoError(t, err)

	namesPath := filepath.Join(dir, "names.org")
	require.NoError(t, WriteString(namesPath, names))

	back, err := EncodeFile(tbl, namesPath)
	require.NoError(t, err)
	assert.Equal(t, symbols, back)
}
