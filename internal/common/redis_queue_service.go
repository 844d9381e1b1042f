package common

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisQueueService provides queue functionality using Redis Streams
type RedisQueueService struct {
	client *redis.Client
}

// NewRedisQueueService creates a new Redis queue service
func NewRedisQueueService(client *redis.Client) *RedisQueueService {
	return &RedisQueueService{
		client: client,
	}
}

// BookingAcceptedEvent is published when an operator accepts a booking.
// The empty-leg worker consumes it to derive a repositioning offer.
type BookingAcceptedEvent struct {
	BookingID  string    `json:"booking_id"`
	JetID      string    `json:"jet_id"`
	CompanyID  string    `json:"company_id"`
	AcceptedAt time.Time `json:"accepted_at"`
}

// PublishBookingAccepted adds an event to the Redis stream
func (s *RedisQueueService) PublishBookingAccepted(ctx context.Context, streamName string, ev *BookingAcceptedEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: streamName,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}

	if _, err := s.client.XAdd(ctx, args).Result(); err != nil {
		return fmt.Errorf("failed to add to stream: %w", err)
	}

	return nil
}

// DequeueBookingAccepted reads one event using a consumer group.
// Returns (event, messageID, error); (nil, "", nil) on timeout.
func (s *RedisQueueService) DequeueBookingAccepted(ctx context.Context, streamName, groupName, consumerName string, blockTime time.Duration) (*BookingAcceptedEvent, string, error) {
	args := &redis.XReadGroupArgs{
		Group:    groupName,
		Consumer: consumerName,
		Streams:  []string{streamName, ">"}, // ">" means new messages only
		Count:    1,
		Block:    blockTime,
	}

	streams, err := s.client.XReadGroup(ctx, args).Result()
	if err != nil {
		if err == redis.Nil {
			// No messages available (timeout)
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("failed to read from stream: %w", err)
	}

	if len(streams) == 0 || len(streams[0].Messages) == 0 {
		return nil, "", nil
	}

	msg := streams[0].Messages[0]

	dataStr, ok := msg.Values["data"].(string)
	if !ok {
		return nil, "", fmt.Errorf("invalid message format: data field missing")
	}

	var ev BookingAcceptedEvent
	if err := json.Unmarshal([]byte(dataStr), &ev); err != nil {
		return nil, "", fmt.Errorf("failed to unmarshal booking event: %w", err)
	}

	return &ev, msg.ID, nil
}

// Ack acknowledges successful processing of a message
func (s *RedisQueueService) Ack(ctx context.Context, streamName, groupName, messageID string) error {
	return s.client.XAck(ctx, streamName, groupName, messageID).Err()
}

// CreateConsumerGroup creates a consumer group for the stream if it doesn't exist
func (s *RedisQueueService) CreateConsumerGroup(ctx context.Context, streamName, groupName string) error {
	// XGROUP CREATE stream group 0 MKSTREAM
	err := s.client.XGroupCreateMkStream(ctx, streamName, groupName, "0").Err()
	if err != nil && err.Error() == "BUSYGROUP Consumer Group name already exists" {
		// Group already exists, this is fine
		return nil
	}
	return err
}

// GetQueueLength returns the number of messages in the stream
func (s *RedisQueueService) GetQueueLength(ctx context.Context, streamName string) (int64, error) {
	length, err := s.client.XLen(ctx, streamName).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to get queue length: %w", err)
	}
	return length, nil
}

// TrimStream keeps only the most recent maxLen messages
func (s *RedisQueueService) TrimStream(ctx context.Context, streamName string, maxLen int64) error {
	return s.client.XTrimMaxLen(ctx, streamName, maxLen).Err()
}
