package errors

import (
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapKeepsCause(t *testing.T) {
	base := New("boom")
	err := Wrapf(Wrap(base, "inner"), "outer %d", 2)

	assert.True(t, Is(err, base))
	assert.Equal(t, base, Cause(err))
	assert.Equal(t, "outer 2: inner: boom", err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestWrapKeepsCause")
}

// Stack-carrying wrappers come from this package only, so call sites stay on one import path.
func TestOnlyFacadeImportsPkgErrors(t *testing.T) {
	root, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)
	facade := filepath.Join(root, "internal", "errors")

	var offenders []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if path != root && (strings.HasPrefix(d.Name(), "_") || strings.HasPrefix(d.Name(), ".") || d.Name() == "vendor") {
				return filepath.SkipDir
			}

			return nil
		}
		if filepath.Ext(path) != ".go" || filepath.Dir(path) == facade {
			return nil
		}

		file, err := parser.ParseFile(token.NewFileSet(), path, nil, parser.ImportsOnly)
		if err != nil {
			return err
		}
		for _, spec := range file.Imports {
			if importPath, _ := strconv.Unquote(spec.Path.Value); importPath == "github.com/pkg/errors" {
				rel, _ := filepath.Rel(root, path)
				offenders = append(offenders, rel)
			}
		}

		return nil
	})
	require.NoError(t, err)

	assert.Empty(t, offenders)
}
