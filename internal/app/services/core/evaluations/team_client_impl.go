package evaluations

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mailtime-service/internal/app/contracts"
	"mailtime-service/internal/pkg/constvars"
	"mailtime-service/internal/pkg/exceptions"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type teamClient struct {
	Client         *http.Client
	Limiter        *rate.Limiter
	EndpointSuffix string
	Log            *zap.Logger
}

// NewTeamClient builds the client used to post generated inputs to team
// solvers. Calls are rate limited so a burst of levels does not hammer a
// single team endpoint.
func NewTeamClient(timeout time.Duration, requestsPerSecond int, endpointSuffix string, logger *zap.Logger) contracts.TeamClient {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 1
	}
	return &teamClient{
		Client:         &http.Client{Timeout: timeout},
		Limiter:        rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
		EndpointSuffix: endpointSuffix,
		Log:            logger,
	}
}

func (c *teamClient) PostChallenge(ctx context.Context, teamURL string, payload []byte) ([]byte, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("teamClient.PostChallenge called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTeamURLKey, teamURL),
	)

	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrTeamCall(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, teamURL+c.EndpointSuffix, bytes.NewBuffer(payload))
	if err != nil {
		return nil, exceptions.ErrBuildRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.Client.Do(req)
	if err != nil {
		c.Log.Error("teamClient.PostChallenge error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendRequest(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrTeamResponseDecoding(err)
	}
	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrTeamCall(fmt.Errorf("unexpected status %d from team", resp.StatusCode))
	}
	return body, nil
}
