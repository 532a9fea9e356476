package e2e

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/bnema/humanos-cli/internal/domain"
	"github.com/bnema/humanos-cli/internal/fakeapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	binaryPath := buildBinary(t)
	server := httptest.NewServer(fakeapi.New().Handler())
	t.Cleanup(server.Close)
	env := smokeEnv(t, server.URL+fakeapi.BasePath)

	stdout, stderr, err := runHOS(t, binaryPath, env,
		"focus", "set",
		"--task", "write report",
		"--duration", "25m",
		"--criteria", "first draft",
	)
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Focus set: write report")

	_, stderr, err = runHOS(t, binaryPath, env,
		"loop", "authorize",
		"--description", "call bank",
		"--priority", "high",
	)
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err = runHOS(t, binaryPath, env, "status", "--json")
	require.NoError(t, err, "stderr: %s", stderr)

	var status domain.CognitiveStatus
	require.NoError(t, json.Unmarshal([]byte(stdout), &status))
	assert.Equal(t, "write report", status.CurrentFocus)
	assert.Equal(t, 1, status.OpenLoopsEstimate)

	stdout, stderr, err = runHOS(t, binaryPath, env, "status")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "write report")
	assert.Contains(t, stdout, "call bank")
}

func TestSmokeUnreachableAPI(t *testing.T) {
	binaryPath := buildBinary(t)
	env := smokeEnv(t, "http://127.0.0.1:1/api/v1")

	_, stderr, err := runHOS(t, binaryPath, env, "status")
	require.Error(t, err)
	assert.Contains(t, stderr, "fetch status")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "hos-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/hos")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build hos binary: %s", string(output))
	return binaryPath
}

func smokeEnv(t *testing.T, apiURL string) []string {
	t.Helper()

	return append(os.Environ(),
		"HOS_API_URL="+apiURL,
		"HOS_CONFIG_DIR="+t.TempDir(),
		"HOS_NOTIFY=off",
		"HOS_HTTP_TIMEOUT=2s",
	)
}

func runHOS(t *testing.T, binaryPath string, env []string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = env
	cmd.Dir = t.TempDir()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
