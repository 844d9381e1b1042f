package workers

import (
	"context"
	"time"

	"charterhub/skybroker/internal/common"
	"charterhub/skybroker/internal/constants"
	"charterhub/skybroker/internal/logging"
	"charterhub/skybroker/internal/services"
)

// EmptyLegWorker consumes booking-accepted events off the Redis stream
// and runs the empty-leg generator for each one.
type EmptyLegWorker struct {
	consumerName string
	queue        *common.RedisQueueService
	emptyLegs    *services.EmptyLegService
}

func NewEmptyLegWorker(consumerName string, queue *common.RedisQueueService, emptyLegs *services.EmptyLegService) *EmptyLegWorker {
	return &EmptyLegWorker{
		consumerName: consumerName,
		queue:        queue,
		emptyLegs:    emptyLegs,
	}
}

// Start blocks on the stream until the context is cancelled.
func (w *EmptyLegWorker) Start(ctx context.Context) {
	if err := w.queue.CreateConsumerGroup(ctx, constants.BookingAcceptedStream, constants.BookingAcceptedGroup); err != nil {
		logging.Warn("Failed to create consumer group",
			"stream", constants.BookingAcceptedStream,
			"error", err.Error(),
		)
	}

	if err := w.queue.TrimStream(ctx, constants.BookingAcceptedStream, constants.BookingAcceptedMaxStreamLen); err != nil {
		logging.Warn("Failed to trim booking stream", "error", err.Error())
	}

	backlog, err := w.queue.GetQueueLength(ctx, constants.BookingAcceptedStream)
	if err != nil {
		logging.Warn("Failed to read booking stream length", "error", err.Error())
	}

	logging.Info("Empty leg worker started",
		"consumer", w.consumerName,
		"backlog", backlog,
	)

	for {
		select {
		case <-ctx.Done():
			logging.Info("Empty leg worker shutting down", "consumer", w.consumerName)
			return
		default:
			ev, messageID, err := w.queue.DequeueBookingAccepted(
				ctx,
				constants.BookingAcceptedStream,
				constants.BookingAcceptedGroup,
				w.consumerName,
				5*time.Second,
			)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				logging.Error("Failed to dequeue booking event", "error", err.Error())
				time.Sleep(time.Second)
				continue
			}
			if ev == nil {
				continue
			}

			result, err := w.emptyLegs.GenerateFromBooking(ctx, ev.BookingID)
			if err != nil {
				logging.Error("Empty leg generation failed",
					"booking_id", ev.BookingID,
					"error", err.Error(),
				)
				// Ack anyway: generation errors are not transient enough to
				// justify redelivery loops.
			} else if result.Created {
				logging.Info("Empty leg created from booking",
					"booking_id", ev.BookingID,
					"empty_leg_id", result.EmptyLegID,
				)
			} else {
				logging.Debug("Empty leg not created",
					"booking_id", ev.BookingID,
					"reason", result.Reason,
				)
			}

			if err := w.queue.Ack(ctx, constants.BookingAcceptedStream, constants.BookingAcceptedGroup, messageID); err != nil {
				logging.Warn("Failed to ack booking event",
					"message_id", messageID,
					"error", err.Error(),
				)
			}
		}
	}
}
