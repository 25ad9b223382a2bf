package platform

import (
	"context"
)

// ChatRequest is a natural-language question scoped to a dataset and role
type ChatRequest struct {
	DatasetID string `json:"dataset_id"`
	UserRole  string `json:"user_role"`
	Question  string `json:"question"`
}

// ChatAnswer is the assistant's reply
type ChatAnswer struct {
	Answer     string   `json:"answer"`
	Sources    []string `json:"sources"`
	Confidence float64  `json:"confidence"`
}

// Chat submits a question to the AI assistant
func (c *Client) Chat(ctx context.Context, req ChatRequest) (*ChatAnswer, error) {
	var answer ChatAnswer
	if err := c.postJSON(ctx, "/api/chatbot/query", req, &answer); err != nil {
		return nil, err
	}

	return &answer, nil
}
