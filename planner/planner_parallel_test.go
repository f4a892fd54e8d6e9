package planner

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	csvsplit "github.com/go-csvsplit/csvsplit"
	"github.com/go-csvsplit/csvsplit/datasource/file"
)

func createTestFiles(t *testing.T, numFiles int) string {
	dir := t.TempDir()
	for i := 0; i < numFiles; i++ {
		content, _ := buildLines(10 + i)
		err := ioutil.WriteFile(path.Join(dir, fmt.Sprintf("part-%02d.csv", i)), []byte(content), 0644)
		require.Nil(t, err)
	}
	return dir
}

func TestPlannerPlanParallel(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := createTestFiles(t, 5)
	source := file.CreateDataSource(path.Join(dir, "*.csv"))
	planner, err := CreatePlanner(&Conf{LinesPerSplit: 3, MaxParallelFiles: 2})
	require.Nil(t, err)

	// concurrent planning must produce exactly what sequential planning does,
	// grouped by file in enumeration order
	sequential, err := planner.Plan(source)
	require.Nil(t, err)
	parallel, err := planner.PlanParallel(context.Background(), source)
	require.Nil(t, err)
	require.Equal(t, sequential, parallel)
}

func TestPlannerPlanParallelCanceled(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := createTestFiles(t, 3)
	source := file.CreateDataSource(path.Join(dir, "*.csv"))
	planner, err := CreatePlanner(&Conf{MaxParallelFiles: 1})
	require.Nil(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = planner.PlanParallel(ctx, source)
	require.NotNil(t, err)
}

type failingFile struct{}

func (f *failingFile) Status() csvsplit.FileStatus {
	return csvsplit.FileStatus{Path: "failing://0"}
}

func (f *failingFile) Open() (io.ReadCloser, error) {
	return nil, os.ErrPermission
}

type failingDataSource struct{}

func (fs *failingDataSource) Analyze() (csvsplit.FileMap, error) {
	return &failingFileMap{}, nil
}

type failingFileMap struct {
	done bool
}

func (fm *failingFileMap) HasNext() bool {
	return !fm.done
}

func (fm *failingFileMap) Next() csvsplit.File {
	fm.done = true
	return &failingFile{}
}

func TestPlannerPlanParallelOpenFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	planner, err := CreatePlanner(&Conf{})
	require.Nil(t, err)
	_, err = planner.PlanParallel(context.Background(), &failingDataSource{})
	require.Equal(t, os.ErrPermission, err)
}
