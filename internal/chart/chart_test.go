package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const runCSV = `UD,max_fit,mean_fit,min_fit
0,1.0,0.5,0.1
100,2.0,1.2,0.3
200,4.0,2.5,0.9
`

func writeCSV(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "output.csv")
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))
	return path
}

func TestLoadCSV_HeaderDetected(t *testing.T) {
	f, err := LoadCSV(writeCSV(t, runCSV), LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"UD", "max_fit", "mean_fit", "min_fit"}, f.Labels)
	assert.Equal(t, 3, f.Rows())
	if diff := cmp.Diff([]float64{0, 100, 200}, f.Cols[0]); diff != "" {
		t.Errorf("x column mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadCSV_Headerless(t *testing.T) {
	f, err := LoadCSV(writeCSV(t, "0,1.0\n100,2.0\n"), LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"col 0", "col 1"}, f.Labels)
	assert.Equal(t, 2, f.Rows())
}

func TestLoadCSV_SelectColumns(t *testing.T) {
	f, err := LoadCSV(writeCSV(t, runCSV), LoadOptions{Cols: []int{0, 2}})
	require.NoError(t, err)

	assert.Equal(t, []string{"UD", "mean_fit"}, f.Labels)
	if diff := cmp.Diff([]float64{0.5, 1.2, 2.5}, f.Cols[1]); diff != "" {
		t.Errorf("selected column mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadCSV_SkipRows(t *testing.T) {
	f, err := LoadCSV(writeCSV(t, runCSV), LoadOptions{SkipRows: 1})
	require.NoError(t, err)

	// The header row was skipped, so the data is headerless.
	assert.Equal(t, "col 0", f.Labels[0])
	assert.Equal(t, 3, f.Rows())
}

func TestLoadCSV_BadCell(t *testing.T) {
	_, err := LoadCSV(writeCSV(t, "0,1.0\n100,oops\n"), LoadOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestLoadCSV_MissingColumn(t *testing.T) {
	_, err := LoadCSV(writeCSV(t, runCSV), LoadOptions{Cols: []int{0, 9}})
	require.Error(t, err)
}

func TestRender(t *testing.T) {
	f, err := LoadCSV(writeCSV(t, runCSV), LoadOptions{})
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "fitness.png")
	require.NoError(t, Render(f, Config{Title: "Fitness over Time", XLabel: "UD", YLabel: "Fitness"}, out))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRender_NeedsSeries(t *testing.T) {
	f := &Frame{Labels: []string{"UD"}, Cols: [][]float64{{0, 1}}}
	err := Render(f, Config{}, filepath.Join(t.TempDir(), "x.png"))
	require.Error(t, err)
}
