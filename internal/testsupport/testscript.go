// Package testsupport builds the dt binary and wires script tests to an
// in-memory daytask server.
package testsupport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/amonks/daytask/internal/taskdtest"
	"github.com/amonks/daytask/task"
	"github.com/rogpeppe/go-internal/testscript"
)

var (
	buildOnce sync.Once
	dtPath    string
	buildErr  error
)

// BuildDT builds the dt binary once and returns its path.
func BuildDT(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "dt-bin-")
		if err != nil {
			buildErr = err
			return
		}

		dtPath = filepath.Join(binDir, "dt")
		cmd := exec.Command("go", "build", "-o", dtPath, "./cmd/dt")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build dt: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return dtPath
}

// SetupScriptEnv starts a fresh server for one script and configures the
// environment: DT points at the built binary, DAYTASK_SERVER at the
// server, and HOME at a script-local directory holding a valid token for
// a pre-created account.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("DT", BuildDT(t))

	server := taskdtest.NewServer()
	httpServer := httptest.NewServer(server.Handler())
	env.Defer(httpServer.Close)
	env.Setenv("DAYTASK_SERVER", httpServer.URL)

	homeDir := filepath.Join(env.WorkDir, "home")
	configDir := filepath.Join(homeDir, ".config", "daytask")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)

	token := server.CreateAccount("script", "script@example.com", "Script User", "password")
	if err := os.WriteFile(filepath.Join(configDir, "token"), []byte(token+"\n"), 0o600); err != nil {
		return err
	}
	return nil
}

// CmdSeed loads tasks from a JSON file into the script's server.
func CmdSeed(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("seed does not support negation")
	}
	if len(args) != 1 {
		ts.Fatalf("usage: seed FILE")
	}
	postTestData(ts, "/testdata/seed", ts.ReadFile(args[0]))
}

// CmdClock shifts the script's server clock by a duration, e.g. "25h".
func CmdClock(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("clock does not support negation")
	}
	if len(args) != 1 {
		ts.Fatalf("usage: clock OFFSET")
	}
	postTestData(ts, "/testdata/now", fmt.Sprintf(`{"offset":%q}`, args[0]))
}

// CmdTaskID finds a task by title in a JSON listing and stores its ID
// in an env var.
func CmdTaskID(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("taskid does not support negation")
	}
	if len(args) != 3 {
		ts.Fatalf("usage: taskid FILE TITLE VAR")
	}

	var items []task.Task
	data := ts.ReadFile(args[0])
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		ts.Fatalf("parse task list: %v", err)
	}

	title := args[1]
	for _, item := range items {
		if item.Title == title {
			ts.Setenv(args[2], item.ID)
			return
		}
	}

	ts.Fatalf("task with title %q not found", title)
}

func postTestData(ts *testscript.TestScript, path, body string) {
	url := ts.Getenv("DAYTASK_SERVER") + path
	resp, err := http.Post(url, "application/json", bytes.NewReader([]byte(body)))
	if err != nil {
		ts.Fatalf("post %s: %v", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ts.Fatalf("post %s: status %d", path, resp.StatusCode)
	}
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find module root (go.mod)")
		}
		dir = parent
	}
}
