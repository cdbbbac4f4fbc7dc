package compiler_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blanketsucks/language/internal/compiler"
	"github.com/blanketsucks/language/internal/diag"
)

func TestPipelineRunEmitsObjectWithoutLinking(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "main.qt")
	require.NoError(t, os.WriteFile(input, []byte("func main() { return; }"), 0o644))

	output := filepath.Join(dir, "main.o")
	rec := &diag.Recorder{}
	pipeline := compiler.NewPipeline(input, output, compiler.Object, rec)

	require.NoError(t, pipeline.Run())
	require.False(t, rec.Fatal)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Contains(t, string(data), "Func: 1")
}

func TestPipelineRunReportsMissingFile(t *testing.T) {
	rec := &diag.Recorder{}
	pipeline := compiler.NewPipeline("/nonexistent/path/main.qt", "/tmp/out.o", compiler.Object, rec)

	err := pipeline.Run()
	require.Error(t, err)
	require.True(t, rec.Fatal)
}

func TestPipelineWithTargetIsChainable(t *testing.T) {
	rec := &diag.Recorder{}
	pipeline := compiler.NewPipeline("in.qt", "out.o", compiler.Assembly, rec).WithTarget("x86_64-unknown-linux-gnu")
	require.Equal(t, "x86_64-unknown-linux-gnu", pipeline.Target)
}
