//go:build e2e

package e2e

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/blogforge/apiserver/config"
	"github.com/blogforge/apiserver/internal/db"
	"github.com/blogforge/apiserver/internal/server"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

const (
	serverPort = 18080
)

func TestMain(m *testing.M) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	setTestEnv()

	root, err := repoRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to locate repo root: %v\n", err)
		os.Exit(1)
	}

	if err := dockerCompose(ctx, root, "up", "-d"); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start docker compose: %v\n", err)
		os.Exit(1)
	}

	if err := waitForPostgres(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "postgres not ready: %v\n", err)
		_ = dockerCompose(context.Background(), root, "down")
		os.Exit(1)
	}

	if err := runMigrations(root); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run migrations: %v\n", err)
		_ = dockerCompose(context.Background(), root, "down")
		os.Exit(1)
	}

	srv, err := startServer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start server: %v\n", err)
		_ = dockerCompose(context.Background(), root, "down")
		os.Exit(1)
	}

	baseURL := fmt.Sprintf("http://localhost:%d", serverPort)
	if err := waitForHealth(ctx, baseURL+"/healthz"); err != nil {
		fmt.Fprintf(os.Stderr, "server not healthy: %v\n", err)
		_ = srv.Shutdown()
		_ = dockerCompose(context.Background(), root, "down")
		os.Exit(1)
	}

	code := m.Run()

	_ = srv.Shutdown()
	_ = dockerCompose(context.Background(), root, "down")
	os.Exit(code)
}

func TestAccountLifecycle(t *testing.T) {
	baseURL := fmt.Sprintf("http://localhost:%d", serverPort)
	email := fmt.Sprintf("alice_%d@example.com", time.Now().UnixNano())

	creds, err := registerAccount(t, baseURL, "Alice", email)
	if err != nil {
		t.Fatalf("register account: %v", err)
	}
	if creds.Email != email {
		t.Fatalf("unexpected email: %q", creds.Email)
	}
	if len(creds.Password) != 25 {
		t.Fatalf("expected 25-char generated password, got %d chars", len(creds.Password))
	}

	if status, _ := registerAccountRaw(t, baseURL, "Alice Again", email); status != http.StatusBadRequest {
		t.Fatalf("expected duplicate registration to fail with 400, got %d", status)
	}
	if n, err := countUsers(email); err != nil || n != 1 {
		t.Fatalf("expected exactly one user row for %s, got %d (err %v)", email, n, err)
	}

	if status := loginStatus(t, baseURL, email, "wrong-password"); status != http.StatusUnauthorized {
		t.Fatalf("expected wrong password login to return 401, got %d", status)
	}
	if status := loginStatus(t, baseURL, "nobody@example.com", "whatever"); status != http.StatusUnauthorized {
		t.Fatalf("expected unknown email login to return 401, got %d", status)
	}

	token, err := login(t, baseURL, email, creds.Password)
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := uploadImage(t, baseURL, token); err != nil {
		t.Fatalf("upload image: %v", err)
	}

	image, err := userImage(email)
	if err != nil {
		t.Fatalf("load user image: %v", err)
	}
	if !strings.HasSuffix(image, ".jpg") {
		t.Fatalf("expected stored image URL to end in .jpg, got %q", image)
	}
}

type credentialsResponse struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func registerAccount(t *testing.T, baseURL, name, email string) (credentialsResponse, error) {
	t.Helper()

	status, body := registerAccountRaw(t, baseURL, name, email)
	if status != http.StatusOK {
		return credentialsResponse{}, fmt.Errorf("register status %d: %s", status, strings.TrimSpace(string(body)))
	}

	var parsed credentialsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return credentialsResponse{}, err
	}
	return parsed, nil
}

func registerAccountRaw(t *testing.T, baseURL, name, email string) (int, []byte) {
	t.Helper()

	payload, _ := json.Marshal(map[string]string{"name": name, "email": email})
	resp, err := http.Post(baseURL+"/v1/accounts", "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("register request: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, body
}

func login(t *testing.T, baseURL, email, password string) (string, error) {
	t.Helper()

	payload, _ := json.Marshal(map[string]string{"email": email, "password": password})
	resp, err := http.Post(baseURL+"/v1/accounts/login", "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("login status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var parsed tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if parsed.Token == "" {
		return "", fmt.Errorf("missing token in login response")
	}
	return parsed.Token, nil
}

func loginStatus(t *testing.T, baseURL, email, password string) int {
	t.Helper()

	payload, _ := json.Marshal(map[string]string{"email": email, "password": password})
	resp, err := http.Post(baseURL+"/v1/accounts/login", "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode
}

func uploadImage(t *testing.T, baseURL, token string) error {
	t.Helper()

	image := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("fake image bytes"))
	payload, _ := json.Marshal(map[string]string{"imageBase64": image})

	req, err := http.NewRequest(http.MethodPost, baseURL+"/v1/accounts/upload-image", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("upload status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	return nil
}

func countUsers(email string) (int, error) {
	conn, err := openDB()
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var n int
	err = conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM users WHERE email = $1", email).Scan(&n)
	return n, err
}

func userImage(email string) (string, error) {
	conn, err := openDB()
	if err != nil {
		return "", err
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var image string
	err = conn.QueryRowContext(ctx, "SELECT image FROM users WHERE email = $1", email).Scan(&image)
	return image, err
}

func openDB() (*sql.DB, error) {
	cfg := config.LoadConfig()
	return sql.Open("postgres", db.DSN(cfg))
}

func waitForPostgres(ctx context.Context) error {
	conn, err := openDB()
	if err != nil {
		return err
	}
	defer conn.Close()

	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := conn.PingContext(pingCtx)
		cancel()
		if err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("postgres ping timeout: %w", err)
		case <-ticker.C:
		}
	}
}

func waitForHealth(ctx context.Context, url string) error {
	client := &http.Client{Timeout: 2 * time.Second}
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		resp, err := client.Do(req)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		select {
		case <-ctx.Done():
			if err != nil {
				return fmt.Errorf("health check failed: %w", err)
			}
			return fmt.Errorf("health check failed with status")
		case <-ticker.C:
		}
	}
}

func runMigrations(root string) error {
	cfg := config.LoadConfig()
	migrationsPath := filepath.Join(root, "internal", "db", "migrations")
	migrationsURL := "file://" + migrationsPath

	migrator, err := migrate.New(migrationsURL, db.DSN(cfg))
	if err != nil {
		return err
	}
	defer func() {
		_, _ = migrator.Close()
	}()

	if err := migrator.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

func setTestEnv() {
	_ = os.Setenv("JWT_SECRET", "test-secret")
	_ = os.Setenv("SERVER_PORT", fmt.Sprintf("%d", serverPort))
	_ = os.Setenv("DB_HOST", "localhost")
	_ = os.Setenv("DB_PORT", "5432")
	_ = os.Setenv("DB_USER", "blog")
	_ = os.Setenv("DB_PASSWORD", "blog")
	_ = os.Setenv("DB_NAME", "blog")
	_ = os.Setenv("DB_USE_SSL", "false")
	_ = os.Setenv("MINIO_ACCESS_KEY", "minioadmin")
	_ = os.Setenv("MINIO_SECRET_KEY", "minioadmin")
	_ = os.Setenv("MINIO_BUCKET", "blog-images")
}

func startServer() (*server.Server, error) {
	cfg := config.LoadConfig()
	srv, err := server.New(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	go func() {
		_ = srv.Start()
	}()

	return srv, nil
}

func dockerCompose(ctx context.Context, root string, args ...string) error {
	composeFile := filepath.Join(root, "development", "docker-compose.yml")
	baseArgs := append([]string{"compose", "-f", composeFile}, args...)
	cmd := exec.CommandContext(ctx, "docker", baseArgs...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func repoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found")
		}
		dir = parent
	}
}
