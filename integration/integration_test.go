//go:build integration

package integration

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	hovercode "github.com/hovercode/client-go"
	"github.com/joho/godotenv"
)

var (
	apiToken    string
	workspaceID string
	baseURL     string
)

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	apiToken = os.Getenv("HOVERCODE_API_TOKEN")
	workspaceID = os.Getenv("HOVERCODE_WORKSPACE_ID")
	baseURL = os.Getenv("HOVERCODE_BASE_URL")

	if apiToken == "" {
		os.Stderr.WriteString("Skipping integration tests: HOVERCODE_API_TOKEN not set\n")
		os.Exit(0)
	}

	if workspaceID == "" {
		os.Stderr.WriteString("Skipping integration tests: HOVERCODE_WORKSPACE_ID not set\n")
		os.Exit(0)
	}

	os.Stderr.WriteString("Running integration tests...\n")

	os.Exit(m.Run())
}

func newClient(t *testing.T) *hovercode.Client {
	t.Helper()

	opts := []hovercode.Option{
		hovercode.WithTimeout(30 * time.Second),
		hovercode.WithRetries(2),
	}
	if baseURL != "" {
		opts = append(opts, hovercode.WithBaseURL(baseURL))
	}

	client, err := hovercode.New(apiToken, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func createCode(t *testing.T, client *hovercode.Client, params hovercode.CreateParams) string {
	t.Helper()

	params.Workspace = workspaceID
	qr, err := client.Hovercodes().Create(context.Background(), params)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	id, _ := qr["id"].(string)
	if id == "" {
		t.Fatalf("Create() returned no id: %v", qr)
	}
	t.Logf("Created hovercode: %s", id)

	t.Cleanup(func() {
		if _, err := client.Hovercodes().Delete(context.Background(), id); err != nil {
			var apiErr *hovercode.APIError
			if !errors.As(err, &apiErr) || apiErr.Kind != hovercode.KindNotFound {
				t.Logf("cleanup Delete(%s) error = %v", id, err)
			}
		}
	})

	return id
}

func TestIntegration_CreateGetDelete(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	id := createCode(t, client, hovercode.CreateParams{
		QRData:      "https://example.com/integration",
		DisplayName: hovercode.Some("integration static"),
	})

	qr, err := client.Hovercodes().Get(ctx, id)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if qr["id"] != id {
		t.Errorf("Get() id = %v, want %s", qr["id"], id)
	}

	if _, err := client.Hovercodes().Delete(ctx, id); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	_, err = client.Hovercodes().Get(ctx, id)
	if !errors.Is(err, hovercode.ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}
}

func TestIntegration_DynamicUpdateAndTags(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	id := createCode(t, client, hovercode.CreateParams{
		QRData:          "https://example.com/before",
		Dynamic:         hovercode.Some(true),
		ErrorCorrection: hovercode.Some(hovercode.ErrorCorrectionQ),
	})

	updated, err := client.Hovercodes().Update(ctx, id, hovercode.UpdateParams{
		QRData:      hovercode.Some("https://example.com/after"),
		DisplayName: hovercode.Some("integration dynamic"),
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	t.Logf("Updated: %v", updated["display_name"])

	_, err = client.Hovercodes().AddTags(ctx, id, []hovercode.TagInput{
		hovercode.TagTitle("integration"),
	})
	if err != nil {
		t.Fatalf("AddTags() error = %v", err)
	}

	activity, err := client.Hovercodes().GetActivity(ctx, id, hovercode.ActivityParams{
		PageSize: hovercode.Some(10),
	})
	if err != nil {
		t.Fatalf("GetActivity() error = %v", err)
	}
	page, err := hovercode.ParsePage(activity)
	if err != nil {
		t.Fatalf("ParsePage() error = %v", err)
	}
	t.Logf("Activity count: %d", page.Count)
}

func TestIntegration_WaitForFiles(t *testing.T) {
	client := newClient(t)

	id := createCode(t, client, hovercode.CreateParams{
		QRData:      "https://example.com/files",
		GeneratePNG: hovercode.Some(true),
	})

	qr, err := client.Hovercodes().WaitForFiles(context.Background(), id,
		hovercode.WithWaitTimeout(90*time.Second),
	)
	if err != nil {
		t.Fatalf("WaitForFiles() error = %v", err)
	}
	t.Logf("PNG: %v", qr["png"])
}

func TestIntegration_ListForWorkspace(t *testing.T) {
	client := newClient(t)

	result, err := client.Hovercodes().ListForWorkspace(context.Background(), workspaceID, hovercode.ListParams{})
	if err != nil {
		t.Fatalf("ListForWorkspace() error = %v", err)
	}
	page, err := hovercode.ParsePage(result)
	if err != nil {
		t.Fatalf("ParsePage() error = %v", err)
	}
	t.Logf("Workspace has %d codes", page.Count)
}

func TestIntegration_InvalidToken(t *testing.T) {
	opts := []hovercode.Option{}
	if baseURL != "" {
		opts = append(opts, hovercode.WithBaseURL(baseURL))
	}
	client, err := hovercode.New("invalid-token", opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer client.Close()

	_, err = client.Hovercodes().ListForWorkspace(context.Background(), workspaceID, hovercode.ListParams{})
	if !errors.Is(err, hovercode.ErrAuthentication) {
		t.Errorf("error = %v, want ErrAuthentication", err)
	}
}
