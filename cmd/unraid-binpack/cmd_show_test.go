package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seethruhead/unraid-binpack/apperror"
	"github.com/seethruhead/unraid-binpack/config"
	"github.com/seethruhead/unraid-binpack/locale"
)

func init() {
	locale.SetLanguage("")
}

func TestRunShow_MissingFile(t *testing.T) {
	var stdout bytes.Buffer
	err := runShow(config.ShowOptions{PlanFile: filepath.Join(t.TempDir(), "nope.sh")}, &stdout)
	if assert.Error(t, err) {
		var target *apperror.PlanStorageError
		assert.ErrorAs(t, err, &target)
		assert.Equal(t, apperror.PlanStorageNotFound, target.Kind)
	}
}

func TestRunShow_PrintsHeader(t *testing.T) {
	script := "#!/bin/bash\n#\n# Unraid Bin-Pack Plan\n# Generated: 2024-01-15\n" +
		"# Source disk: /mnt/disk3\n# Total files: 2\n# Total size: 1.0 GB\n" +
		"# Concurrency: 4\n#\nset -e\n\nwait\n"
	path := filepath.Join(t.TempDir(), "plan.sh")
	assert.NoError(t, os.WriteFile(path, []byte(script), 0o644))

	var stdout bytes.Buffer
	err := runShow(config.ShowOptions{PlanFile: path}, &stdout)
	assert.NoError(t, err)
	assert.Contains(t, stdout.String(), "/mnt/disk3")
	assert.Contains(t, stdout.String(), "2024-01-15")
}

func TestRunShow_StubScriptReportsNoMoves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.sh")
	assert.NoError(t, os.WriteFile(path, []byte("#!/bin/bash\nexit 0\n"), 0o644))

	var stdout bytes.Buffer
	err := runShow(config.ShowOptions{PlanFile: path}, &stdout)
	assert.NoError(t, err)
	assert.NotEmpty(t, stdout.String())
}
