package readers

import (
	"bytes"
	"compress/gzip"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleCSV = `total_changes,a,b,c,avg_time_ms
10,0,0,0,1.5
20,0,0,0,2.75
30,0,0,0,4.0
`

func TestReadChangesExample(t *testing.T) {
	s, err := ReadChanges(strings.NewReader(exampleCSV))
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 20, 30}, s.TotalChanges)
	assert.Equal(t, []float64{1.5, 2.75, 4.0}, s.AvgTimeMs)
	assert.Equal(t, 3, s.Len())

	x, y := s.XY(1)
	assert.Equal(t, 20.0, x)
	assert.Equal(t, 2.75, y)
}

func TestReadChangesRowCount(t *testing.T) {
	for _, n := range []int{0, 1, 2, 17, 500} {
		var buf bytes.Buffer
		buf.WriteString("id,position,is_insert,char,avg_time_ms\n")
		for i := 0; i < n; i++ {
			buf.WriteString(strconv.Itoa(i*500) + ",3,true,\"a\"," + strconv.FormatFloat(float64(i)/8, 'f', -1, 64) + "\n")
		}

		s, err := ReadChanges(&buf)
		if err != nil {
			t.Errorf("case %d: unexpected error: %v", n, err)
			continue
		}
		if len(s.TotalChanges) != n || len(s.AvgTimeMs) != n {
			t.Errorf("case %d: got %d x and %d y values", n, len(s.TotalChanges), len(s.AvgTimeMs))
			continue
		}
		for i := 0; i < n; i++ {
			if s.TotalChanges[i] != int64(i*500) || s.AvgTimeMs[i] != float64(i)/8 {
				t.Errorf("case %d: row %d: got (%d, %f)", n, i, s.TotalChanges[i], s.AvgTimeMs[i])
			}
		}
	}
}

func TestReadChangesKeepsFileOrder(t *testing.T) {
	in := "h\n30,x,x,x,0.25\n10,x,x,x,0.5\n30,x,x,x,0.25\n20,x,x,x,8\n"
	s, err := ReadChanges(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []int64{30, 10, 30, 20}, s.TotalChanges)
	assert.Equal(t, []float64{0.25, 0.5, 0.25, 8}, s.AvgTimeMs)
}

func TestReadChangesIgnoresOtherColumns(t *testing.T) {
	in := "anything at all\n" +
		" 7 ,not,a,number, 0.125 ,extra,cols\n" +
		"8,,,,1e-3\n"
	s, err := ReadChanges(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []int64{7, 8}, s.TotalChanges)
	assert.Equal(t, []float64{0.125, 0.001}, s.AvgTimeMs)
}

func TestReadChangesHeaderNotParsed(t *testing.T) {
	// A numeric header row must still be dropped.
	s, err := ReadChanges(strings.NewReader("1,2,3,4,5\n6,7,8,9,10\n"))
	require.NoError(t, err)
	assert.Equal(t, []int64{6}, s.TotalChanges)
	assert.Equal(t, []float64{10}, s.AvgTimeMs)
}

func TestReadChangesEmptyInput(t *testing.T) {
	s, err := ReadChanges(strings.NewReader(""))
	require.Error(t, err)
	assert.Nil(t, s)
	assert.True(t, errors.Is(err, io.EOF), "got %v", err)
}

func TestReadChangesBadRows(t *testing.T) {
	tests := []struct {
		in     string
		line   int
		column int
		value  string
	}{
		{"h\n10,0,0\n", 2, -1, ""},
		{"h\n10,0,0,0,1\n20,0\n", 3, -1, ""},
		{"h\nten,0,0,0,1.5\n", 2, 0, "ten"},
		{"h\n1.5,0,0,0,1.5\n", 2, 0, "1.5"},
		{"h\n10,0,0,0,fast\n", 2, 4, "fast"},
		{"h\n10,0,0,0,\n", 2, 4, ""},
	}

	for i, test := range tests {
		s, err := ReadChanges(strings.NewReader(test.in))
		if s != nil {
			t.Errorf("case %d: got partial series %v", i, s)
		}
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Errorf("case %d: want *FormatError, got %v", i, err)
			continue
		}
		if fe.Line != test.line || fe.Column != test.column || fe.Value != test.value {
			t.Errorf("case %d: got line %d column %d value %q, want %d %d %q",
				i, fe.Line, fe.Column, fe.Value, test.line, test.column, test.value)
		}
	}
}

func TestReadChangesFile(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "trace-data.csv")
	require.NoError(t, os.WriteFile(plain, []byte(exampleCSV), 0644))

	var gz bytes.Buffer
	gw := gzip.NewWriter(&gz)
	_, err := gw.Write([]byte(exampleCSV))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	zipped := filepath.Join(dir, "trace-data.csv.gz")
	require.NoError(t, os.WriteFile(zipped, gz.Bytes(), 0644))

	want, err := ReadChanges(strings.NewReader(exampleCSV))
	require.NoError(t, err)

	for _, p := range []string{plain, zipped} {
		got, err := ReadChangesFile(p)
		require.NoError(t, err, p)
		assert.Equal(t, want, got, p)
	}
}

func TestReadChangesFileMissing(t *testing.T) {
	_, err := ReadChangesFile(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
}

func TestReadChangesFileFormatErrorNamesPath(t *testing.T) {
	p := filepath.Join(t.TempDir(), "short.csv")
	require.NoError(t, os.WriteFile(p, []byte("h\n1,2,3\n"), 0644))

	_, err := ReadChangesFile(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), p)
	var fe *FormatError
	assert.True(t, errors.As(err, &fe))
}
