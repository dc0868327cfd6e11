package kafkabus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"quotation-service/internal/application"
	"quotation-service/internal/domain"
	"quotation-service/internal/infrastructure/logx"

	"github.com/cenkalti/backoff/v4"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Quoter prices one request.
type Quoter interface {
	GetQuotation(ctx context.Context, req application.QuotationRequest) (domain.Quotation, error)
}

// Releaser is implemented by idempotency stores that can drop a reservation.
type Releaser interface {
	Release(ctx context.Context, key string) error
}

// Reply is published on the reply topic keyed by request ID. Quotation is set
// only when Code is OK.
type Reply struct {
	RequestID string                    `json:"request_id"`
	Code      string                    `json:"code"`
	Message   string                    `json:"message,omitempty"`
	Quotation *application.QuotationDTO `json:"quotation,omitempty"`
}

var _ application.Worker = (*QuotationController)(nil)

// QuotationController answers quotation requests read from Kafka. A request ID
// is priced at most once within the idempotency TTL; duplicates are committed
// without a reply.
//
// Messages are handled strictly in order. A reply that cannot be published is
// retried until it succeeds or ctx ends, because committing any later offset
// would also commit past the unanswered one.
type QuotationController struct {
	Reader  MessageReader
	Writer  MessageWriter
	Quoter  Quoter
	Idem    application.IdempotencyStore
	Timeout time.Duration
	// Backoff paces reply retries; nil means exponential up to 5s, unbounded.
	Backoff func() backoff.BackOff
	Log     *zap.Logger
}

func (c *QuotationController) Start(ctx context.Context) {
	log := c.logger()
	log.Info("kafka_controller_started")
	for {
		msg, err := c.Reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				log.Info("kafka_controller_stopped")
				return
			}
			log.Warn("fetch_failed", zap.Error(err))
			select {
			case <-ctx.Done():
				log.Info("kafka_controller_stopped")
				return
			case <-time.After(time.Second):
			}
			continue
		}
		if err := c.Handle(ctx, msg); err != nil {
			if ctx.Err() != nil {
				// uncommitted, so the next consumer starts from this offset
				log.Info("kafka_controller_stopped", zap.Int64("pending_offset", msg.Offset))
				return
			}
			log.Error("handle_failed", zap.Int64("offset", msg.Offset), zap.Error(err))
		}
		if err := c.Reader.CommitMessages(ctx, msg); err != nil {
			log.Warn("commit_failed", zap.Int64("offset", msg.Offset), zap.Error(err))
		}
	}
}

// Handle prices one message and publishes the reply. It returns an error only
// when the reply could not be encoded or ctx ended before it was published.
func (c *QuotationController) Handle(ctx context.Context, msg kafka.Message) error {
	var dto application.QuotationRequestDTO
	decodeErr := json.Unmarshal(msg.Value, &dto)
	if dto.RequestID == "" {
		dto.RequestID = string(msg.Key)
	}
	ctx = logx.ContextWith(ctx, zap.String("request_id", dto.RequestID))
	log := c.logger().With(zap.String("request_id", dto.RequestID), zap.Int64("offset", msg.Offset))

	if decodeErr != nil {
		log.Warn("quotation.bad_payload", zap.Error(decodeErr))
		return c.reply(ctx, Reply{
			RequestID: dto.RequestID,
			Code:      application.CodeMissingData,
			Message:   fmt.Sprintf("%s: %v", domain.ErrMissingData, decodeErr),
		})
	}

	if dto.RequestID != "" && c.Idem != nil {
		ok, err := c.Idem.TryReserve(ctx, dto.RequestID)
		switch {
		case err != nil:
			log.Warn("idempotency_unavailable", zap.Error(err))
		case !ok:
			log.Info("quotation.duplicate")
			return nil
		}
	}

	out := c.price(ctx, log, dto)
	if err := c.reply(ctx, out); err != nil {
		c.release(context.WithoutCancel(ctx), log, dto.RequestID)
		return err
	}
	log.Info("quotation.replied", zap.String("code", out.Code))
	return nil
}

func (c *QuotationController) price(ctx context.Context, log *zap.Logger, dto application.QuotationRequestDTO) (out Reply) {
	out.RequestID = dto.RequestID
	defer func() {
		if r := recover(); r != nil {
			log.Error("quotation.panic", zap.Any("r", r))
			out = Reply{RequestID: dto.RequestID, Code: application.CodeInternal, Message: fmt.Sprint(r)}
		}
	}()

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	cx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	q, err := c.Quoter.GetQuotation(cx, dto.ToRequest())
	out.Code = application.ErrorCode(err)
	if err != nil {
		out.Message = err.Error()
		return out
	}
	body := application.ToQuotationDTO(q)
	out.Quotation = &body
	return out
}

func (c *QuotationController) reply(ctx context.Context, r Reply) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal reply: %w", err)
	}
	msg := kafka.Message{Key: []byte(r.RequestID), Value: raw}
	op := func() error { return c.Writer.WriteMessages(ctx, msg) }
	notify := func(err error, wait time.Duration) {
		logx.WithFields(ctx).Warn("kafka.reply_retry", zap.Duration("wait", wait), zap.Error(err))
	}
	if err := backoff.RetryNotify(op, backoff.WithContext(c.retryPolicy(), ctx), notify); err != nil {
		return fmt.Errorf("write reply: %w", err)
	}
	return nil
}

func (c *QuotationController) retryPolicy() backoff.BackOff {
	if c.Backoff != nil {
		return c.Backoff()
	}
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 200 * time.Millisecond
	exp.MaxInterval = 5 * time.Second
	exp.MaxElapsedTime = 0
	return exp
}

func (c *QuotationController) release(ctx context.Context, log *zap.Logger, requestID string) {
	rel, ok := c.Idem.(Releaser)
	if !ok || requestID == "" {
		return
	}
	if err := rel.Release(ctx, requestID); err != nil {
		log.Warn("idempotency_release_failed", zap.Error(err))
	}
}

func (c *QuotationController) logger() *zap.Logger {
	if c.Log == nil {
		return zap.NewNop()
	}
	return c.Log.With(zap.String("worker", "kafka"))
}
