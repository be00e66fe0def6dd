package clients

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// SpeechClient talks to the speech container API (audio pause/resume).
type SpeechClient struct {
	*BaseClient
}

// NewSpeechClient creates a client for the speech API at baseURL.
func NewSpeechClient(baseURL string, opts ...Option) *SpeechClient {
	return &SpeechClient{BaseClient: NewBaseClient(baseURL, opts...)}
}

// audioAction keeps the pause/resume endpoint closed over valid actions.
type audioAction string

const (
	actionPause  audioAction = "pause"
	actionResume audioAction = "resume"
)

// PauseAudio pauses audio capture for the session.
func (c *SpeechClient) PauseAudio(ctx context.Context, sessionID uuid.UUID) (map[string]interface{}, error) {
	return c.controlAudio(ctx, sessionID, actionPause)
}

// ResumeAudio resumes audio capture for the session.
func (c *SpeechClient) ResumeAudio(ctx context.Context, sessionID uuid.UUID) (map[string]interface{}, error) {
	return c.controlAudio(ctx, sessionID, actionResume)
}

func (c *SpeechClient) controlAudio(ctx context.Context, sessionID uuid.UUID, action audioAction) (map[string]interface{}, error) {
	path := fmt.Sprintf("/session/%s/audio/%s", sessionID, action)
	raw, err := c.postJSON(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("%s audio for session %s: %w", action, sessionID, err)
	}

	var ack map[string]interface{}
	if err := decode(raw, &ack); err != nil {
		return nil, fmt.Errorf("%s audio for session %s: %w", action, sessionID, err)
	}
	return ack, nil
}
