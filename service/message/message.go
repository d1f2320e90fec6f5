package message

import (
	"context"
	"encoding/json"

	"diamond/core"

	"github.com/fox-one/mixin-sdk-go"
)

// New new message service
func New(client *mixin.Client) core.MessageService {
	return &messageService{client: client}
}

type messageService struct {
	client *mixin.Client
}

func (s *messageService) Send(ctx context.Context, messages []*core.Message) error {
	requests := make([]*mixin.MessageRequest, 0, len(messages))
	for _, msg := range messages {
		var req mixin.MessageRequest
		if err := json.Unmarshal(msg.Raw, &req); err != nil {
			continue
		}

		requests = append(requests, &req)
	}

	if len(requests) == 0 {
		return nil
	}

	return s.client.SendMessages(ctx, requests)
}
