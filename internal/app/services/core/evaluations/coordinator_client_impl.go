package evaluations

import (
	"bytes"
	"context"
	"fmt"
	"mailtime-service/internal/app/contracts"
	"mailtime-service/internal/pkg/constvars"
	"mailtime-service/internal/pkg/dto/requests"
	"mailtime-service/internal/pkg/exceptions"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type coordinatorClient struct {
	Client    *http.Client
	AuthToken string
	Log       *zap.Logger
}

func NewCoordinatorClient(timeout time.Duration, authToken string, logger *zap.Logger) contracts.CoordinatorClient {
	return &coordinatorClient{
		Client:    &http.Client{Timeout: timeout},
		AuthToken: authToken,
		Log:       logger,
	}
}

func (c *coordinatorClient) PostResult(ctx context.Context, callbackURL string, result requests.EvaluationResult) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("coordinatorClient.PostResult called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRunIDKey, result.RunID),
		zap.Int(constvars.LoggingScoreKey, result.Score),
	)

	payload, err := json.Marshal(result)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, callbackURL, bytes.NewBuffer(payload))
	if err != nil {
		return exceptions.ErrBuildRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+c.AuthToken)

	resp, err := c.Client.Do(req)
	if err != nil {
		c.Log.Error("coordinatorClient.PostResult error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSendRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		return exceptions.ErrCallback(fmt.Errorf("unexpected status %d from coordinator", resp.StatusCode))
	}
	return nil
}
