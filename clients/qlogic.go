package clients

import (
	"context"
	"fmt"

	"github.com/reaich/cabreaich-common/errs"
	"github.com/reaich/cabreaich-common/models"
)

// QLogicClient talks to the qlogic routing API.
type QLogicClient struct {
	*BaseClient
}

// NewQLogicClient creates a client for the qlogic API at baseURL.
func NewQLogicClient(baseURL string, opts ...Option) *QLogicClient {
	return &QLogicClient{BaseClient: NewBaseClient(baseURL, opts...)}
}

// RouteTurn sends turn data to qlogic and returns the next action. The
// response is checked against the shared qlogicResponse contract before it
// is decoded.
func (c *QLogicClient) RouteTurn(ctx context.Context, turn models.QLogicTurnInput) (*models.QLogicResponse, error) {
	raw, err := c.postJSON(ctx, "/qlogic/route_turn", turn)
	if err != nil {
		return nil, fmt.Errorf("routing turn for session %s: %w", turn.SessionID, err)
	}

	res, err := models.Validate(models.KindQLogicResponse, raw)
	if err != nil {
		return nil, fmt.Errorf("routing turn for session %s: %w", turn.SessionID, err)
	}
	if !res.Valid {
		details := make(map[string]string, len(res.Issues))
		for _, issue := range res.Issues {
			details[issue.Path] = issue.Message
		}
		return nil, errs.NewValidationError("qlogic response violates contract", details)
	}

	var out models.QLogicResponse
	if err := decode(raw, &out); err != nil {
		return nil, fmt.Errorf("routing turn for session %s: %w", turn.SessionID, err)
	}
	return &out, nil
}
