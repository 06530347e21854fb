package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modelHCL = `
object "OS:ScheduleTypeLimits" "Fraction" {
  lower_limit_value = 0
  upper_limit_value = 1
}

object "OS:Schedule:Constant" "Always On" {
  value                = 1
  schedule_type_limits = "Fraction"
}

object "OS:Coil:Heating:Electric" "Reheat" {
  efficiency            = 0.95
  availability_schedule = "Always On"
}

object "OS:Coil:Heating:Electric" "Orphan" {}

object "OS:SpaceType" "Office" {}
`

type fixture struct {
	dir    string
	config string
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("log_level: error\n"), 0o600))

	return fixture{dir: dir, config: cfg}
}

func (f fixture) write(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(f.dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func (f fixture) run(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer

	args = append([]string{"--config", f.config}, args...)
	err := Execute(context.Background(), args, &stdout, &stderr)

	return stdout.String(), stderr.String(), err
}

func TestForward(t *testing.T) {
	f := newFixture(t)
	path := f.write(t, "model.hcl", modelHCL)

	stdout, stderr, err := f.run("forward", path)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Coil:Heating:Electric,\n  Reheat,")
	assert.Contains(t, stdout, "Schedule:Constant,\n  Always On,")
	assert.NotContains(t, stdout, "Orphan")

	assert.Contains(t, stderr, "error: [OS:Coil:Heating:Electric 'Orphan']: [unresolved_reference]")
	assert.Contains(t, stderr, "warning: [OS:SpaceType 'Office']: [untranslated]")
}

func TestForward_Strict(t *testing.T) {
	f := newFixture(t)
	path := f.write(t, "model.hcl", modelHCL)

	_, _, err := f.run("forward", "--strict", path)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
	assert.Equal(t, "1 error diagnostic(s)", exitErr.Message)
}

func TestForward_Roots(t *testing.T) {
	f := newFixture(t)
	path := f.write(t, "model.hcl", modelHCL)

	stdout, stderr, err := f.run("forward", "--root", "OS:Schedule:Constant", path)
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "ScheduleTypeLimits,")
	assert.NotContains(t, stdout, "Coil:Heating:Electric")

	_, _, err = f.run("forward", "--root", "OS:Schedule:Constnt", path)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, "did you mean OS:Schedule:Constant?")
}

func TestForwardThenReverse(t *testing.T) {
	f := newFixture(t)
	modelPath := f.write(t, "model.hcl", modelHCL)
	idfPath := filepath.Join(f.dir, "out.idf")

	_, _, err := f.run("forward", "-o", idfPath, modelPath)
	require.NoError(t, err)

	stdout, stderr, err := f.run("reverse", idfPath)
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, `object "OS:Coil:Heating:Electric" "Reheat" {`)
	assert.Contains(t, stdout, `availability_schedule = "Always On"`)

	digest1, _, err := f.run("digest", idfPath)
	require.NoError(t, err)

	backPath := f.write(t, "back.hcl", stdout)
	again := filepath.Join(f.dir, "again.idf")
	_, _, err = f.run("forward", "-o", again, backPath)
	require.NoError(t, err)

	digest2, _, err := f.run("digest", again)
	require.NoError(t, err)
	assert.Equal(t, digest1, digest2)
	assert.Len(t, strings.TrimSpace(digest1), 64)
}

func TestCheck(t *testing.T) {
	f := newFixture(t)
	ok := f.write(t, "ok.idf", "Schedule:Constant, Always On, , 1;\n")
	bad := f.write(t, "bad.idf", "Coil:Heating:Electric, Reheat, Missing;\n")

	_, _, err := f.run("check", ok)
	require.NoError(t, err)

	stdout, _, err := f.run("check", bad)
	require.Error(t, err)
	assert.Contains(t, stdout, "Missing")
	assert.Equal(t, "1 dangling reference(s)", err.Error())
}

func TestCatalogValidate(t *testing.T) {
	f := newFixture(t)

	stdout, _, err := f.run("catalog", "validate")
	require.NoError(t, err)
	assert.Contains(t, stdout, "record types OK")

	broken := f.write(t, "catalog.yaml", `version: "x"
types:
  - name: Zone
    fields:
      - name: Origin
        kind: reference
        refs: [Nowhere]
`)

	_, stderr, err := f.run("catalog", "validate", broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog is invalid")
	assert.Contains(t, stderr, "Nowhere")
}

func TestSetup_DebugLogging(t *testing.T) {
	f := newFixture(t)
	path := f.write(t, "model.hcl", modelHCL)

	_, stderr, err := f.run("--log-level", "debug", "forward", path)
	require.NoError(t, err)

	assert.Contains(t, stderr, `msg="Translation handlers registered."`)
	assert.Contains(t, stderr, "forward=")
}

func TestSetup_InvalidConfig(t *testing.T) {
	f := newFixture(t)
	path := f.write(t, "model.hcl", modelHCL)

	_, _, err := f.run("--log-format", "xml", "forward", path)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, "log_format")
}

func TestCompressedFiles(t *testing.T) {
	f := newFixture(t)
	modelPath := f.write(t, "model.hcl", modelHCL)
	plain := filepath.Join(f.dir, "out.idf")
	packed := filepath.Join(f.dir, "out.idf.zst")

	_, _, err := f.run("forward", "-o", plain, modelPath)
	require.NoError(t, err)

	_, _, err = f.run("forward", "-o", packed, modelPath)
	require.NoError(t, err)

	raw, err := os.ReadFile(packed)
	require.NoError(t, err)
	require.Greater(t, len(raw), 4)
	assert.Equal(t, []byte{0x28, 0xb5, 0x2f, 0xfd}, raw[:4], "zstd frame magic")

	want, _, err := f.run("digest", plain)
	require.NoError(t, err)

	got, _, err := f.run("digest", packed)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
