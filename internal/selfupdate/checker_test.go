package selfupdate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func releaseServer(t *testing.T, tag string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/abhisek/tutordesk/releases/latest" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"tag_name":"` + tag + `","html_url":"https://example.com/` + tag + `"}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		latest  string
		current string
		want    bool
	}{
		{"newer minor", "v1.3.0", "v1.2.9", true},
		{"same", "v1.2.0", "v1.2.0", false},
		{"older release", "v1.1.0", "v1.2.0", false},
		{"missing v prefix", "1.10.0", "1.9.0", true},
		{"prerelease is older", "v2.0.0", "v2.0.0-rc.1", true},
		{"unparseable current", "v0.1.0", "nightly", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := releaseServer(t, tt.latest)
			checker := NewChecker(WithBaseURL(server.URL))

			result, err := checker.Check(context.Background(), &CheckInput{Version: tt.current})
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.UpdateAvailable)
			assert.Equal(t, tt.latest, result.LatestVersion)
			assert.Equal(t, "https://example.com/"+tt.latest, result.ReleaseURL)
		})
	}
}

func TestCheckRejectsBadTag(t *testing.T) {
	server := releaseServer(t, "latest")
	checker := NewChecker(WithBaseURL(server.URL))

	_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	assert.ErrorContains(t, err, "not a semantic version")
}

func TestCheckHTTPError(t *testing.T) {
	server := releaseServer(t, "v1.0.0")
	checker := NewChecker(WithBaseURL(server.URL), WithRepo("someone", "else"))

	_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	assert.ErrorContains(t, err, "HTTP 404")
}

func TestIsDevBuild(t *testing.T) {
	assert.True(t, isDevBuild("(devel)"))
	assert.True(t, isDevBuild(""))
	assert.False(t, isDevBuild("v1.0.0"))
}
