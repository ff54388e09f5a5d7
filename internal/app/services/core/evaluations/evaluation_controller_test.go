package evaluations

import (
	"context"
	"mailtime-service/internal/app/models"
	"mailtime-service/internal/pkg/dto/requests"
	"mailtime-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubUsecase struct {
	enqueued []requests.Evaluation
	recorded []requests.EvaluationResult
	runs     map[string]*models.EvaluationRun
}

func (s *stubUsecase) Enqueue(_ context.Context, evaluation requests.Evaluation) error {
	s.enqueued = append(s.enqueued, evaluation)
	return nil
}

func (s *stubUsecase) Evaluate(_ context.Context, _ requests.Evaluation) error {
	return nil
}

func (s *stubUsecase) FindRun(_ context.Context, runID string) (*models.EvaluationRun, error) {
	run, ok := s.runs[runID]
	if !ok {
		return nil, exceptions.ErrRunNotFound(nil)
	}
	return run, nil
}

func (s *stubUsecase) RecordResult(_ context.Context, result requests.EvaluationResult) {
	s.recorded = append(s.recorded, result)
}

func newControllerRouter(stub *stubUsecase) *chi.Mux {
	ctrl := NewEvaluationController(zap.NewNop(), stub)
	router := chi.NewRouter()
	router.Post("/evaluate", ctrl.Evaluate)
	router.Post("/coordinator", ctrl.Coordinator)
	router.Get("/runs/{run_id}", ctrl.FindRun)
	return router
}

func TestEvaluationControllerEvaluate(t *testing.T) {
	t.Run("queues a valid request", func(t *testing.T) {
		stub := &stubUsecase{}
		router := newControllerRouter(stub)

		body := `{"runId":"run-1","teamUrl":"http://team.example","callbackUrl":"http://cb.example/results"}`
		req := httptest.NewRequest(http.MethodPost, "/evaluate", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusAccepted, rr.Code, rr.Body.String())
		require.Len(t, stub.enqueued, 1)
		assert.Equal(t, "run-1", stub.enqueued[0].RunID)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		router := newControllerRouter(&stubUsecase{})

		req := httptest.NewRequest(http.MethodPost, "/evaluate", strings.NewReader("nope"))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rejects a request without a callback", func(t *testing.T) {
		stub := &stubUsecase{}
		router := newControllerRouter(stub)

		body := `{"runId":"run-1","teamUrl":"http://team.example"}`
		req := httptest.NewRequest(http.MethodPost, "/evaluate", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Empty(t, stub.enqueued)
	})
}

func TestEvaluationControllerCoordinator(t *testing.T) {
	stub := &stubUsecase{}
	router := newControllerRouter(stub)

	body := `{"runId":"run-1","score":80,"message":"bob"}`
	req := httptest.NewRequest(http.MethodPost, "/coordinator", strings.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusAccepted, rr.Code)
	require.Len(t, stub.recorded, 1)
	assert.Equal(t, 80, stub.recorded[0].Score)
}

func TestEvaluationControllerFindRun(t *testing.T) {
	stub := &stubUsecase{
		runs: map[string]*models.EvaluationRun{
			"run-1": {RunID: "run-1", Score: 80},
		},
	}
	router := newControllerRouter(stub)

	t.Run("known run", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/runs/run-1", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"runId":"run-1"`)
	})

	t.Run("unknown run", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/runs/run-404", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
