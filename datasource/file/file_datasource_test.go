package file

import (
	"io"
	"io/ioutil"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/require"

	csvsplit "github.com/go-csvsplit/csvsplit"
	"github.com/go-csvsplit/csvsplit/errors"
)

func TestFileDataSourceAnalyze(t *testing.T) {
	dir := t.TempDir()
	require.Nil(t, ioutil.WriteFile(path.Join(dir, "a.csv"), []byte("a,b\n"), 0644))
	require.Nil(t, ioutil.WriteFile(path.Join(dir, "b.csv"), []byte("c,d\ne,f\n"), 0644))

	source := CreateDataSource(path.Join(dir, "*.csv"))
	fm, err := source.Analyze()
	require.Nil(t, err)

	var paths []string
	var sizes []int64
	for fm.HasNext() {
		f := fm.Next()
		paths = append(paths, f.Status().Path)
		sizes = append(sizes, f.Status().Size)
	}
	require.Equal(t, []string{path.Join(dir, "a.csv"), path.Join(dir, "b.csv")}, paths)
	require.Equal(t, []int64{4, 8}, sizes)
}

func TestFileDataSourceNoFiles(t *testing.T) {
	dir := t.TempDir()
	source := CreateDataSource(path.Join(dir, "*.csv"))
	_, err := source.Analyze()
	require.Equal(t, errors.NoFilesError{Glob: path.Join(dir, "*.csv")}, err)
}

func TestFileDataSourceNotAFile(t *testing.T) {
	// a directory matched by the glob aborts the whole run before any read
	dir := t.TempDir()
	require.Nil(t, os.Mkdir(path.Join(dir, "sub.csv"), 0755))
	source := CreateDataSource(path.Join(dir, "*.csv"))
	_, err := source.Analyze()
	require.Equal(t, errors.NotAFileError{Path: path.Join(dir, "sub.csv")}, err)
}

func TestFileOpen(t *testing.T) {
	dir := t.TempDir()
	require.Nil(t, ioutil.WriteFile(path.Join(dir, "a.csv"), []byte("a,b\n"), 0644))
	source := CreateDataSource(path.Join(dir, "*.csv"))
	fm, err := source.Analyze()
	require.Nil(t, err)
	require.True(t, fm.HasNext())
	stream, err := fm.Next().Open()
	require.Nil(t, err)
	defer stream.Close()
	content, err := ioutil.ReadAll(stream)
	require.Nil(t, err)
	require.Equal(t, []byte("a,b\n"), content)
}

func TestOpenSplit(t *testing.T) {
	dir := t.TempDir()
	content := "a,b\nc,\"d\ne\"\nf,g"
	filePath := path.Join(dir, "a.csv")
	require.Nil(t, ioutil.WriteFile(filePath, []byte(content), 0644))

	// splits as a planner with one line per split would emit them
	ranges := [][2]int64{{0, 4}, {4, 8}, {12, 3}}
	var reassembled []byte
	for _, r := range ranges {
		stream, err := OpenSplit(csvsplit.Split{Path: filePath, Offset: r[0], Length: r[1]})
		require.Nil(t, err)
		part, err := ioutil.ReadAll(stream)
		require.Nil(t, err)
		require.Nil(t, stream.Close())
		require.Equal(t, int(r[1]), len(part))
		reassembled = append(reassembled, part...)
	}
	// concatenating every split's range reconstructs the file exactly
	require.Equal(t, []byte(content), reassembled)

	// a range never yields bytes past its end
	stream, err := OpenSplit(csvsplit.Split{Path: filePath, Offset: 4, Length: 8})
	require.Nil(t, err)
	defer stream.Close()
	buf := make([]byte, 64)
	n, err := io.ReadFull(stream, buf)
	require.Equal(t, 8, n)
	require.Equal(t, io.ErrUnexpectedEOF, err)
}
