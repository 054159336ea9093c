package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!DOCTYPE html>
<html>
<head><title>Jobs</title><style>body { color: red; }</style></head>
<body>
  <nav>Home | Jobs | About</nav>
  <div class="sidebar">Trending postings</div>
  <div class="job-description">
    <h1>Backend   Engineer</h1>
    <p>We are looking for a backend engineer.</p>


    <p>Requirements: Go, PostgreSQL.</p>
  </div>
  <footer>Copyright 2025</footer>
  <script>trackPageView();</script>
</body>
</html>`

func TestExtractMainText(t *testing.T) {
	text, err := ExtractMainText(samplePage)
	require.NoError(t, err)

	assert.Contains(t, text, "Backend Engineer")
	assert.Contains(t, text, "We are looking for a backend engineer.")
	assert.Contains(t, text, "Requirements: Go, PostgreSQL.")

	// Noise elements are stripped.
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "Trending postings")
	assert.NotContains(t, text, "Copyright")
	assert.NotContains(t, text, "trackPageView")
	assert.NotContains(t, text, "color: red")
}

func TestExtractMainText_FallsBackToBody(t *testing.T) {
	text, err := ExtractMainText(`<html><body><p>Just a plain page.</p></body></html>`)
	require.NoError(t, err)
	assert.Equal(t, "Just a plain page.", text)
}

func TestCleanWhitespace(t *testing.T) {
	input := "  line   one  \n\n\n\n  line\ttwo  "
	assert.Equal(t, "line one\n\nline two", cleanWhitespace(input))
}

func TestJobPostingText(t *testing.T) {
	var gotUserAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	result, err := JobPostingText(context.Background(), srv.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, srv.URL, result.URL)
	assert.Contains(t, result.Text, "Backend Engineer")
	assert.Equal(t, DefaultUserAgent, gotUserAgent)
}

func TestJobPostingText_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	result, err := JobPostingText(context.Background(), srv.URL, nil)
	require.Error(t, err)

	var fetchErr *Error
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, srv.URL, fetchErr.URL)
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
}

func TestJobPostingText_InvalidURL(t *testing.T) {
	tests := []string{"", "not-a-url", "://missing-scheme"}
	for _, u := range tests {
		_, err := JobPostingText(context.Background(), u, nil)
		assert.Error(t, err, "url %q", u)
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, DefaultTimeout, opts.Timeout)
	assert.Equal(t, DefaultUserAgent, opts.UserAgent)
}
