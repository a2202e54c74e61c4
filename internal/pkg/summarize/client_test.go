package summarize

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *Client {
	return &Client{
		InferenceURL: url,
		APIToken:     "test-token",
		HTTPClient:   http.DefaultClient,
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	var gotAuth string
	var gotReq inferenceRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, sonic.ConfigDefault.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"summary_text":"강남구에서 소음 제보가 이어지고 있다."}]`))
	}))
	defer server.Close()

	got, err := newTestClient(server.URL).Summarize(context.Background(), []string{"밤마다 공사 소음", "새벽에도 시끄럽다"})
	require.NoError(t, err)
	assert.Equal(t, "강남구에서 소음 제보가 이어지고 있다.", got)

	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "밤마다 공사 소음 새벽에도 시끄럽다", gotReq.Inputs)
	assert.Equal(t, maxSummaryLength, gotReq.Parameters.MaxLength)
	assert.Equal(t, minSummaryLength, gotReq.Parameters.MinLength)
	assert.False(t, gotReq.Parameters.DoSample)
}

func TestSummarizeTruncatesLongInput(t *testing.T) {
	t.Parallel()

	var gotReq inferenceRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, sonic.ConfigDefault.NewDecoder(r.Body).Decode(&gotReq))
		w.Write([]byte(`[{"summary_text":"ok"}]`))
	}))
	defer server.Close()

	long := strings.Repeat("공포의 밤거리 ", 300)
	_, err := newTestClient(server.URL).Summarize(context.Background(), []string{long})
	require.NoError(t, err)

	runes := []rune(gotReq.Inputs)
	assert.Len(t, runes, maxInputRunes+3, "input should be capped at the model limit plus ellipsis")
	assert.True(t, strings.HasSuffix(gotReq.Inputs, "..."))
}

func TestSummarizeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "model loading status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte(`{"error":"Model facebook/bart-large-cnn is currently loading"}`))
			},
		},
		{
			name: "empty result array",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`[]`))
			},
		},
		{
			name: "blank summary text",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`[{"summary_text":""}]`))
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`not json`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			_, err := newTestClient(server.URL).Summarize(context.Background(), []string{"무서운 일"})
			assert.Error(t, err)
		})
	}
}

func TestSummarizeEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := newTestClient("http://127.0.0.1:0").Summarize(context.Background(), nil)
	assert.Error(t, err)
}
