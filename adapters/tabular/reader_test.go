package tabular

import (
	"os"
	"path/filepath"
	"testing"

	"predmaint/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadFrameCSV(t *testing.T) {
	path := writeFile(t, "data.csv", "id,label,score\n1,a,0.5\n2,b,0.75\n")

	f, err := NewReader(path).ReadFrame()
	require.NoError(t, err)

	assert.Equal(t, 2, f.NumRows())
	assert.Equal(t, []string{"id", "label", "score"}, f.Names())

	ids, err := f.Numeric("id")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, ids)

	labels, err := f.Strings("label")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, labels)
}

func TestReadFrameMissingFile(t *testing.T) {
	_, err := NewReader(filepath.Join(t.TempDir(), "absent.csv")).ReadFrame()
	require.Error(t, err)
	assert.Equal(t, errors.CodeDataLoad, errors.GetCode(err))
}

func TestReadFrameInconsistentColumns(t *testing.T) {
	path := writeFile(t, "bad.csv", "a,b\n1,2\n3\n")

	_, err := NewReader(path).ReadFrame()
	require.Error(t, err)
	assert.Equal(t, errors.CodeDataLoad, errors.GetCode(err))
}

func TestReadFrameHeaderOnly(t *testing.T) {
	path := writeFile(t, "empty.csv", "a,b\n")

	_, err := NewReader(path).ReadFrame()
	require.Error(t, err)
	assert.Equal(t, errors.CodeDataLoad, errors.GetCode(err))
}

func TestReadFrameExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.xlsx")

	wb := excelize.NewFile()
	require.NoError(t, wb.SetSheetRow("Sheet1", "A1", &[]interface{}{"id", "label"}))
	require.NoError(t, wb.SetSheetRow("Sheet1", "A2", &[]interface{}{1, "a"}))
	require.NoError(t, wb.SetSheetRow("Sheet1", "A3", &[]interface{}{2, "b"}))
	require.NoError(t, wb.SaveAs(path))
	require.NoError(t, wb.Close())

	f, err := NewReader(path).ReadFrame()
	require.NoError(t, err)

	assert.Equal(t, 2, f.NumRows())
	ids, err := f.Numeric("id")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, ids)
}
