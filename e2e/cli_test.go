package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/playforge/bangate/internal/api"
	"github.com/playforge/bangate/internal/factory"
)

const adminToken = "e2e-admin-token"

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "bangatectl-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/bangatectl")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func (r *cliRunner) runWithToken(token string, args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token", token,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	server   *http.Server
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	// Create application against a throwaway database
	app, err := factory.New(factory.Config{
		DBPath: filepath.Join(t.TempDir(), "bangate.db"),
	})
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte(adminToken), bcrypt.MinCost)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		VerdictService: app.VerdictService,
		AuditService:   app.AuditService,
		Store:          app.Store,
		AdminTokenHash: string(hash),
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		server: server,
		addr:   serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type checkResponse struct {
	Blacklisted *string `json:"blacklisted"`
}

type entryResponse struct {
	ID         string  `json:"id"`
	PlayerName *string `json:"player_name"`
}

type entryListResponse struct {
	Entries []entryResponse `json:"entries"`
}

type auditListResponse struct {
	Records []struct {
		ID         int64  `json:"id"`
		PlayerID   string `json:"player_id"`
		PlayerName string `json:"player_name"`
	} `json:"records"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_CheckCleanIdentity(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("check", "--player-id", "abc-123", "--player-name", "Steve")
	require.NoError(t, err, "output: %s", output)

	var resp checkResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Nil(t, resp.Blacklisted)
}

func TestCLI_EntryLifecycle(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Add an entry
	output, err := cli.runWithToken(adminToken, "entries", "add", "--player-name", "steve")
	require.NoError(t, err, "output: %s", output)

	var entry entryResponse
	require.NoError(t, json.Unmarshal([]byte(output), &entry))
	require.NotEmpty(t, entry.ID)

	// Check now flags the player. The name is banned but no system
	// identifiers match, so the verdict is player level.
	output, err = cli.run("check", "--player-id", "abc-123", "--player-name", "Steve")
	require.NoError(t, err, "output: %s", output)

	var check checkResponse
	require.NoError(t, json.Unmarshal([]byte(output), &check))
	require.NotNil(t, check.Blacklisted)
	assert.Equal(t, "player", *check.Blacklisted)

	// List shows the entry
	output, err = cli.runWithToken(adminToken, "entries", "list")
	require.NoError(t, err, "output: %s", output)

	var list entryListResponse
	require.NoError(t, json.Unmarshal([]byte(output), &list))
	require.Len(t, list.Entries, 1)
	assert.Equal(t, entry.ID, list.Entries[0].ID)

	// Remove it
	output, err = cli.runWithToken(adminToken, "entries", "remove", entry.ID)
	require.NoError(t, err, "output: %s", output)

	var msg messageResponse
	require.NoError(t, json.Unmarshal([]byte(output), &msg))
	assert.Contains(t, msg.Message, "removed")

	// List is empty again
	output, err = cli.runWithToken(adminToken, "entries", "list")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &list))
	assert.Empty(t, list.Entries)
}

func TestCLI_AuditLog(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("check", "--player-id", "abc-123", "--player-name", "Steve")
	require.NoError(t, err, "output: %s", output)

	// Audit writes are detached from the request, give them a moment
	var list auditListResponse
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		output, err = cli.runWithToken(adminToken, "audit", "--limit", "10")
		require.NoError(t, err, "output: %s", output)
		require.NoError(t, json.Unmarshal([]byte(output), &list))
		if len(list.Records) > 0 {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}

	require.NotEmpty(t, list.Records)
	assert.Equal(t, "abc-123", list.Records[0].PlayerID)
	assert.Equal(t, "Steve", list.Records[0].PlayerName)
}

func TestCLI_ErrorHandling(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Admin commands without a token
	output, err := cli.run("entries", "list")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "unauthorized")

	// Remove a non-existent entry
	output, err = cli.runWithToken(adminToken, "entries", "remove", "no-such-id")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "not found")
}
