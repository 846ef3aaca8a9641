package notifier

import (
	"context"
	"encoding/json"

	"github.com/praslar/lib/common"
	"github.com/sendgrid/rest"
	"github.com/sirupsen/logrus"

	"wasel/ms-delivery-management/conf"
)

// Publisher pushes a change notification to every connected realtime
// subscriber. Best-effort only: no persistence, no replay, no delivery
// guarantee.
type Publisher interface {
	Publish(ctx context.Context, event string, payload interface{}) error
}

type EventRequest struct {
	Event string `json:"event"`
	Body  string `json:"body"`
}

type realtimePublisher struct{}

// NewRealtimePublisher returns a Publisher backed by the realtime gateway's
// /events endpoint.
func NewRealtimePublisher() Publisher {
	return &realtimePublisher{}
}

func (p *realtimePublisher) Publish(ctx context.Context, event string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req := EventRequest{
		Event: event,
		Body:  string(body),
	}
	if _, _, err = common.SendRestAPI(conf.LoadEnv().RealtimeGateway+"/events", rest.Post, nil, nil, req); err != nil {
		logrus.WithContext(ctx).WithError(err).Warnf("Fail to push event %v to realtime gateway", event)
		return err
	}

	return nil
}
