package youtube_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"creator-studio/pkg/youtube"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *youtube.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := youtube.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestYouTubeClient(t *testing.T) {
	mockCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"project_id": "test-project",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`

	t.Run("API key required", func(t *testing.T) {
		_, err := youtube.NewClientWithAPIKey(context.Background(), "")
		if err == nil {
			t.Errorf("expected error for empty api key")
		}
	})

	t.Run("Initialize with broken JWT/OAuth config", func(t *testing.T) {
		_, err := youtube.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Initialize from installed app config", func(t *testing.T) {
		os.WriteFile("token.json", []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0644)
		defer os.Remove("token.json")

		_, err := youtube.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds))
		if err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("Initialize from installed app config bad token", func(t *testing.T) {
		os.WriteFile("token.json", []byte(`{"broken": true`), 0644)
		defer os.Remove("token.json")

		_, err := youtube.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds))
		if err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("Initialize from File", func(t *testing.T) {
		tmpFile, _ := os.CreateTemp("", "creds.json")
		defer os.Remove(tmpFile.Name())
		tmpFile.WriteString(`{"broken":true}`)
		tmpFile.Close()

		_, err := youtube.NewClientFromCredentialsFile(context.Background(), tmpFile.Name())
		if err == nil {
			t.Errorf("expected failure loading broken file")
		}

		_, err = youtube.NewClientFromCredentialsFile(context.Background(), "non-existent-file-path-12345.json")
		if err == nil {
			t.Errorf("expected reading file error")
		}
	})

	t.Run("Get Channel E2E", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if strings.HasSuffix(r.URL.Path, "/channels") && r.Method == http.MethodGet {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{
					"items": [{
						"id": "UC123",
						"snippet": {"title": "Test Channel", "description": "Tech videos"},
						"statistics": {"subscriberCount": "1200", "videoCount": "48", "viewCount": "99000"},
						"contentDetails": {"relatedPlaylists": {"uploads": "UU123"}}
					}]
				}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})

		ch, err := client.GetChannel(context.Background(), "UC123")
		if err != nil {
			t.Fatalf("failed to fetch channel: %v", err)
		}
		if ch.Title != "Test Channel" {
			t.Errorf("unexpected title: %s", ch.Title)
		}
		if ch.SubscriberCount != 1200 {
			t.Errorf("unexpected subscriber count: %d", ch.SubscriberCount)
		}
		if ch.UploadsPlaylistID != "UU123" {
			t.Errorf("unexpected uploads playlist: %s", ch.UploadsPlaylistID)
		}
	})

	t.Run("Get Channel not found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"items": []}`))
		})

		if _, err := client.GetChannel(context.Background(), "UC404"); err == nil {
			t.Fatalf("expected not-found error")
		}
	})

	t.Run("List Uploads E2E", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			switch {
			case strings.HasSuffix(r.URL.Path, "/playlistItems"):
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{
					"items": [
						{"contentDetails": {"videoId": "vid-1"}},
						{"contentDetails": {"videoId": "vid-2"}}
					]
				}`))
			case strings.HasSuffix(r.URL.Path, "/videos"):
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{
					"items": [
						{
							"id": "vid-1",
							"snippet": {
								"title": "Go Tutorial",
								"description": "Learn Go",
								"tags": ["go", "programming"],
								"publishedAt": "2024-05-01T10:00:00Z"
							},
							"statistics": {"viewCount": "500", "likeCount": "40", "commentCount": "7"}
						},
						{
							"id": "vid-2",
							"snippet": {"title": "Vlog", "publishedAt": "2024-05-02T10:00:00Z"}
						}
					]
				}`))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		})

		videos, err := client.ListUploads(context.Background(), youtube.ListUploadsRequest{
			UploadsPlaylistID: "UU123",
		})
		if err != nil {
			t.Fatalf("failed to list uploads: %v", err)
		}
		if len(videos) != 2 {
			t.Fatalf("expected 2 videos, got %d", len(videos))
		}
		if videos[0].Title != "Go Tutorial" {
			t.Errorf("unexpected video: %s", videos[0].Title)
		}
		if len(videos[0].Tags) != 2 || videos[0].Tags[0] != "go" {
			t.Errorf("unexpected tags: %v", videos[0].Tags)
		}
		if videos[0].ViewCount != 500 {
			t.Errorf("unexpected view count: %d", videos[0].ViewCount)
		}
		if videos[0].PublishedAt.IsZero() {
			t.Errorf("expected published time to parse")
		}
	})

	t.Run("List Uploads API error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.ListUploads(context.Background(), youtube.ListUploadsRequest{
			UploadsPlaylistID: "UU-fail",
		})
		if err == nil {
			t.Fatalf("expected api error")
		}
	})
}
