package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seethruhead/unraid-binpack/apperror"
	"github.com/seethruhead/unraid-binpack/config"
)

func TestRunApply_MissingFile(t *testing.T) {
	var stdout bytes.Buffer
	err := runApply(context.Background(), config.ApplyOptions{PlanFile: filepath.Join(t.TempDir(), "nope.sh")}, &stdout)
	if assert.Error(t, err) {
		var target *apperror.PlanStorageError
		assert.ErrorAs(t, err, &target)
		assert.Equal(t, apperror.PlanStorageNotFound, target.Kind)
	}
}

func TestRunApply_StubScriptReportsNoMoves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.sh")
	assert.NoError(t, os.WriteFile(path, []byte("#!/bin/bash\nexit 0\n"), 0o644))

	var stdout bytes.Buffer
	err := runApply(context.Background(), config.ApplyOptions{PlanFile: path}, &stdout)
	assert.NoError(t, err)
	assert.NotEmpty(t, stdout.String())
}

func TestRunApply_DryRunReportsCompletion(t *testing.T) {
	script := "#!/bin/bash\n#\n# Unraid Bin-Pack Plan\n# Generated: 2024-01-15\n" +
		"# Source disk: auto\n# Total files: 1\n# Total size: 100 B\n# Concurrency: 2\n#\nset -e\n\n" +
		"# /mnt/disk2 -> /mnt/disk1: 1 file(s), 100 B\n" +
		"rsync -a --remove-source-files --files-from=<(cat <<'EOF'\n" +
		"videos/a.mkv\n" +
		"EOF\n" +
		") \"/mnt/disk2/\" \"/mnt/disk1/\" &\n\n" +
		"wait\n"
	path := filepath.Join(t.TempDir(), "plan.sh")
	assert.NoError(t, os.WriteFile(path, []byte(script), 0o644))

	var stdout bytes.Buffer
	err := runApply(context.Background(), config.ApplyOptions{PlanFile: path, Concurrency: 2, DryRun: true}, &stdout)
	assert.NoError(t, err)
	assert.Contains(t, stdout.String(), "/mnt/disk2")
	assert.Contains(t, stdout.String(), "/mnt/disk1")
}
