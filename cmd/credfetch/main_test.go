package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/wcproof/credfetch/api/client"
	"github.com/wcproof/credfetch/cmd"
	"github.com/wcproof/credfetch/proofgen"
	"github.com/wcproof/credfetch/proofgen/fetcher"
	"github.com/wcproof/credfetch/proofgen/runner"
	"github.com/wcproof/credfetch/testing/assert"
	"github.com/wcproof/credfetch/testing/require"
)

type testEnv struct {
	dir    string
	srv    *httptest.Server
	apiKey string
}

func newTestEnv(t *testing.T) *testEnv {
	env := &testEnv{dir: t.TempDir()}
	mux := http.NewServeMux()
	mux.HandleFunc("/eth/v1/beacon/headers/9179815", func(w http.ResponseWriter, r *http.Request) {
		env.apiKey = r.Header.Get(client.APIKeyHeader)
		_, _ = w.Write([]byte(`{"slot":"9179815"}`))
	})
	mux.HandleFunc("/eth/v2/debug/beacon/states/9179815", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("state-bytes"))
	})
	env.srv = httptest.NewServer(mux)
	t.Cleanup(env.srv.Close)
	lvl := logrus.GetLevel()
	t.Cleanup(func() { logrus.SetLevel(lvl) })
	return env
}

func (e *testEnv) path(name string) string {
	return filepath.Join(e.dir, name)
}

func (e *testEnv) script(t *testing.T, name, body string) string {
	p := e.path(name)
	require.NoError(t, os.WriteFile(p, []byte("#!/bin/sh\n"+body+"\n"), 0755))
	return p
}

func (e *testEnv) args(extra ...string) []string {
	args := []string{
		"credfetch",
		"--beacon-api", e.srv.URL,
		"--api-key", "secret",
		"--slot", "9179815",
		"--head-file", e.path("HEAD_FILE.json"),
		"--state-file", e.path("STATE_FILE.json"),
		"--no-color",
	}
	return append(args, extra...)
}

func runApp(t *testing.T, args []string) (string, error) {
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	err := app.Run(args)
	return out.String(), err
}

func TestApp_Run(t *testing.T) {
	env := newTestEnv(t)
	order := env.path("order")
	initScript := env.script(t, "intialize.sh", "echo initialize >> "+order)
	credScript := env.script(t, "withdrawalCredential.sh", "echo credential >> "+order)
	metrics := env.path("metrics.prom")

	out, err := runApp(t, env.args(
		"--init-script", initScript,
		"--credential-script", credScript,
		"--metrics-textfile", metrics,
		"run",
	))
	require.NoError(t, err)
	assert.Equal(t, "secret", env.apiKey)

	head, err := os.ReadFile(env.path("HEAD_FILE.json"))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"slot\": \"9179815\"\n}", string(head))
	state, err := os.ReadFile(env.path("STATE_FILE.json"))
	require.NoError(t, err)
	assert.Equal(t, "state-bytes", string(state))
	o, err := os.ReadFile(order)
	require.NoError(t, err)
	assert.Equal(t, "initialize\ncredential\n", string(o))

	assert.Equal(t, true, strings.Contains(out, "DONE"), out)
	m, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Equal(t, true, strings.Contains(string(m), "credfetch_runs_total"))
}

func TestApp_DefaultActionRunsScripts(t *testing.T) {
	env := newTestEnv(t)
	failing := env.script(t, "intialize.sh", "echo broken >&2")

	out, err := runApp(t, env.args("--init-script", failing, "--credential-script", env.path("missing.sh")))
	require.ErrorIs(t, err, runner.ErrScriptStderr)
	assert.Equal(t, true, strings.Contains(out, "FAILED"), out)
}

func TestApp_Fetch(t *testing.T) {
	env := newTestEnv(t)
	out, err := runApp(t, env.args(
		"--init-script", env.path("missing.sh"),
		"--state-encoding", "ssz",
		"fetch",
	))
	require.NoError(t, err)
	assert.Equal(t, true, readFile(t, env.path("STATE_FILE.json")) == "state-bytes")
	assert.Equal(t, true, strings.Contains(out, "saved"), out)
}

func TestApp_InvalidConfig(t *testing.T) {
	env := newTestEnv(t)
	unsetEnv(t, "CREDFETCH_API_KEY", "API_KEY")
	args := env.args("fetch")
	// Drop --api-key secret.
	args = append(args[:3], args[5:]...)
	_, err := runApp(t, args)
	require.ErrorIs(t, err, proofgen.ErrInvalidConfig)

	_, err = runApp(t, env.args("--state-encoding", "xml", "fetch"))
	require.ErrorIs(t, err, proofgen.ErrInvalidConfig)

	_, err = runApp(t, env.args("--log-format", "xml", "fetch"))
	require.ErrorContains(t, "allowed values are text, fluentd, json, journald", err)
}

func runWithConfigFile(t *testing.T, env *testEnv) error {
	cfgFile := env.path("credfetch.yaml")
	yaml := "api-key: from-file\nslot: \"9179815\"\nbeacon-api: " + env.srv.URL + "\n"
	require.NoError(t, os.WriteFile(cfgFile, []byte(yaml), 0600))

	_, err := runApp(t, []string{
		"credfetch",
		"--config-file", cfgFile,
		"--head-file", env.path("h.json"),
		"--state-file", env.path("s.json"),
		"fetch",
	})
	return err
}

func TestApp_ConfigFile(t *testing.T) {
	env := newTestEnv(t)
	unsetEnv(t, "CREDFETCH_API_KEY", "API_KEY")
	require.NoError(t, runWithConfigFile(t, env))
	assert.Equal(t, "from-file", env.apiKey)
}

func TestApp_ConfigFileAfterCommandLineRun(t *testing.T) {
	env := newTestEnv(t)
	unsetEnv(t, "CREDFETCH_API_KEY", "API_KEY")
	_, err := runApp(t, env.args("fetch"))
	require.NoError(t, err)
	assert.Equal(t, "secret", env.apiKey)

	// A flag set on the command line of one app must not shadow the file in the next.
	require.NoError(t, runWithConfigFile(t, env))
	assert.Equal(t, "from-file", env.apiKey)
}

func TestApp_ConfigFileWithEmptyEnv(t *testing.T) {
	env := newTestEnv(t)
	unsetEnv(t, "API_KEY")
	t.Setenv("CREDFETCH_API_KEY", "")
	cmd.ClearEmptyEnvVars(baseFlags())
	_, ok := os.LookupEnv("CREDFETCH_API_KEY")
	require.Equal(t, false, ok)

	require.NoError(t, runWithConfigFile(t, env))
	assert.Equal(t, "from-file", env.apiKey)
}

func TestApp_HTTPFailure(t *testing.T) {
	env := newTestEnv(t)
	_, err := runApp(t, env.args("--slot", "1", "fetch"))
	require.ErrorIs(t, err, client.ErrNotFound)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(p, []byte("CREDFETCH_TEST_FROM_FILE=file\nCREDFETCH_TEST_PRESET=file\n"), 0600))
	t.Setenv(envFileVar, p)
	t.Setenv("CREDFETCH_TEST_PRESET", "env")
	t.Cleanup(func() { _ = os.Unsetenv("CREDFETCH_TEST_FROM_FILE") })

	require.NoError(t, loadEnvFile())
	assert.Equal(t, "file", os.Getenv("CREDFETCH_TEST_FROM_FILE"))
	assert.Equal(t, "env", os.Getenv("CREDFETCH_TEST_PRESET"))

	t.Setenv(envFileVar, filepath.Join(dir, "missing.env"))
	require.NoError(t, loadEnvFile())
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	rep := &proofgen.Report{
		Head: &fetcher.Output{Path: "HEAD_FILE.json", Bytes: 2048},
		Scripts: []*runner.Result{
			{Script: runner.Script{Name: "initialize", Path: "./intialize.sh"}, ExitCode: 1},
		},
	}
	printSummary(&buf, rep, errors.New("boom"), false)
	out := buf.String()
	assert.Equal(t, true, strings.Contains(out, "HEAD_FILE.json (2.0 kB)"), out)
	assert.Equal(t, true, strings.Contains(out, "state    skipped"), out)
	assert.Equal(t, true, strings.Contains(out, "failed ./intialize.sh"), out)
	assert.Equal(t, true, strings.Contains(out, "FAILED boom"), out)
	assert.Equal(t, false, strings.Contains(out, "\x1b["), out)
}

func readFile(t *testing.T, p string) string {
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	return string(b)
}

// unsetEnv removes the variables for the duration of the test.
func unsetEnv(t *testing.T, names ...string) {
	for _, n := range names {
		t.Setenv(n, "")
		require.NoError(t, os.Unsetenv(n))
	}
}
