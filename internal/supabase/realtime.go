package supabase

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/supabase-community/supabase-go"
)

// RealtimeClient is the change-notification side of the store. Supabase
// emits postgres_changes events for every orders row we write, so the UI's
// subscription refreshes without an explicit publish; PublishEvent exists
// as the seam where a polling or message-queue notifier could be swapped in.
type RealtimeClient struct {
	client *supabase.Client
}

func NewRealtimeClient(client *supabase.Client) *RealtimeClient {
	return &RealtimeClient{
		client: client,
	}
}

func (r *RealtimeClient) PublishEvent(channel string, event string, payload map[string]interface{}) error {
	// Row writes already trigger Realtime; nothing to send explicitly.
	return nil
}

func (r *RealtimeClient) PublishOrderEvent(orderID uuid.UUID, event string, payload map[string]interface{}) error {
	channel := fmt.Sprintf("order:%s", orderID.String())
	return r.PublishEvent(channel, event, payload)
}

// Event payloads
func OrderCreatedPayload(orderID uuid.UUID, status string) map[string]interface{} {
	return map[string]interface{}{
		"id":     orderID.String(),
		"status": status,
	}
}

func StatusChangedPayload(orderID uuid.UUID, status string) map[string]interface{} {
	return map[string]interface{}{
		"id":     orderID.String(),
		"status": status,
	}
}

func ArtifactDeletedPayload(orderID uuid.UUID, kind string) map[string]interface{} {
	return map[string]interface{}{
		"id":   orderID.String(),
		"kind": kind,
	}
}
