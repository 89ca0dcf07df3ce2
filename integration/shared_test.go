//go:build integration

package integration

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// binaryPath is the hoopstats binary built by TestMain.
var binaryPath string

func TestMain(m *testing.M) {
	os.Exit(run(m))
}

func run(m *testing.M) int {
	dir, err := os.MkdirTemp("", "hoopstats-integration-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "temp dir: %v\n", err)
		return 1
	}
	defer func() { _ = os.RemoveAll(dir) }()

	binaryPath = filepath.Join(dir, "hoopstats")
	build := exec.Command("go", "build", "-o", binaryPath, "./cmd/hoopstats")
	build.Dir = ".."
	if out, err := build.CombinedOutput(); err != nil {
		fmt.Fprintf(os.Stderr, "build hoopstats: %v\n%s", err, out)
		return 1
	}
	return m.Run()
}

// runHoopstats runs the binary in a clean directory and returns stdout.
func runHoopstats(t *testing.T, args ...string) string {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = t.TempDir()
	cmd.Env = append(os.Environ(), "HOOPSTATS_EMOJI=no", "HOOPSTATS_COLOR=no")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	require.NoError(t, cmd.Run(), "hoopstats %v failed: %s", args, stderr.String())
	return stdout.String()
}
