package evaluations

import (
	"context"
	"io"
	"mailtime-service/internal/pkg/dto/requests"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func evaluationResultFixture() requests.EvaluationResult {
	return requests.EvaluationResult{RunID: "run-1", Score: 80, Message: "bob"}
}

func TestTeamClientPostChallenge(t *testing.T) {
	t.Run("posts the payload to the solver endpoint", func(t *testing.T) {
		var gotPath, gotContentType string
		var gotBody []byte
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotContentType = r.Header.Get("Content-Type")
			gotBody, _ = io.ReadAll(r.Body)
			w.Write([]byte(`{"response":{"alice":60}}`))
		}))
		defer server.Close()

		client := NewTeamClient(5*time.Second, 10, "/mailtime", zap.NewNop())
		body, err := client.PostChallenge(context.Background(), server.URL, []byte(`{"emails":[]}`))
		require.NoError(t, err)

		assert.Equal(t, "/mailtime", gotPath)
		assert.Equal(t, "application/json", gotContentType)
		assert.JSONEq(t, `{"emails":[]}`, string(gotBody))
		assert.JSONEq(t, `{"response":{"alice":60}}`, string(body))
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewTeamClient(5*time.Second, 10, "/mailtime", zap.NewNop())
		_, err := client.PostChallenge(context.Background(), server.URL, []byte(`{}`))
		assert.Error(t, err)
	})

	t.Run("unreachable endpoint is an error", func(t *testing.T) {
		client := NewTeamClient(time.Second, 10, "/mailtime", zap.NewNop())
		_, err := client.PostChallenge(context.Background(), "http://127.0.0.1:1", []byte(`{}`))
		assert.Error(t, err)
	})
}

func TestCoordinatorClientPostResult(t *testing.T) {
	t.Run("posts the result with the bearer token", func(t *testing.T) {
		var gotAuth string
		var gotBody []byte
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotBody, _ = io.ReadAll(r.Body)
			w.WriteHeader(http.StatusAccepted)
		}))
		defer server.Close()

		client := NewCoordinatorClient(5*time.Second, "secret-token", zap.NewNop())
		err := client.PostResult(context.Background(), server.URL, evaluationResultFixture())
		require.NoError(t, err)

		assert.Equal(t, "Bearer secret-token", gotAuth)
		assert.JSONEq(t, `{"runId":"run-1","score":80,"message":"bob"}`, string(gotBody))
	})

	t.Run("non-2xx status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client := NewCoordinatorClient(5*time.Second, "secret-token", zap.NewNop())
		err := client.PostResult(context.Background(), server.URL, evaluationResultFixture())
		assert.Error(t, err)
	})
}
