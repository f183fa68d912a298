// Package queue consumes ledger upload notifications from SQS and syncs
// the referenced portfolio.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	tradebook_errors "tradebook/internal"
	"tradebook/internal/logger"
	"tradebook/internal/metrics"
	"tradebook/internal/resolver"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/aws/aws-sdk-go/service/sqs/sqsiface"
	"github.com/google/uuid"
)

var ErrNoMessages = errors.New("no new messages in queue")

type uploadMessage struct {
	PortfolioID string `json:"portfolioId"`
	FileName    string `json:"fileName"`
	Contents    string `json:"contents"`
}

type Consumer struct {
	Sqs      sqsiface.SQSAPI
	QueueURL string
	Resolver resolver.Resolver
	Metrics  *metrics.Metrics
	// long-poll wait per receive, in seconds
	WaitTimeSeconds int64
}

func NewConsumer(sqsService sqsiface.SQSAPI, queueURL string, r resolver.Resolver, m *metrics.Metrics) Consumer {
	return Consumer{
		Sqs:             sqsService,
		QueueURL:        queueURL,
		Resolver:        r,
		Metrics:         m,
		WaitTimeSeconds: 20,
	}
}

func (c Consumer) getNext(ctx context.Context) (*sqs.Message, error) {
	out, err := c.Sqs.ReceiveMessageWithContext(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(c.QueueURL),
		MaxNumberOfMessages: aws.Int64(1),
		WaitTimeSeconds:     aws.Int64(c.WaitTimeSeconds),
	})
	if err != nil {
		return nil, err
	}

	if out == nil || len(out.Messages) == 0 {
		return nil, ErrNoMessages
	}

	return out.Messages[0], nil
}

func (c Consumer) delete(ctx context.Context, msg *sqs.Message) error {
	_, err := c.Sqs.DeleteMessageWithContext(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(c.QueueURL),
		ReceiptHandle: msg.ReceiptHandle,
	})
	if err != nil {
		return fmt.Errorf("failed to delete message %s: %w", aws.StringValue(msg.MessageId), err)
	}
	return nil
}

func (c Consumer) count(outcome string) {
	if c.Metrics != nil {
		c.Metrics.QueueMessages.WithLabelValues(outcome).Inc()
	}
}

// GetAndProcess handles at most one message. A message that can't be
// decoded, or whose ledger can't be read, is deleted so it is not
// redelivered; any other sync failure leaves it on the queue.
func (c Consumer) GetAndProcess(ctx context.Context) error {
	msg, err := c.getNext(ctx)
	if err != nil {
		return err
	}
	ctx = logger.WithContext(ctx, "messageId", aws.StringValue(msg.MessageId))

	var upload uploadMessage
	err = json.Unmarshal([]byte(aws.StringValue(msg.Body)), &upload)
	if err != nil {
		c.count("malformed")
		return errors.Join(fmt.Errorf("failed to decode message: %w", err), c.delete(ctx, msg))
	}
	portfolioID, err := uuid.Parse(upload.PortfolioID)
	if err != nil {
		c.count("malformed")
		return errors.Join(fmt.Errorf("invalid portfolio id %q: %w", upload.PortfolioID, err), c.delete(ctx, msg))
	}

	resp, err := c.Resolver.SyncPortfolio(ctx, portfolioID, upload.FileName, []byte(upload.Contents))
	if errors.As(err, &tradebook_errors.ErrInvalidLedger{}) {
		c.count("malformed")
		return errors.Join(err, c.delete(ctx, msg))
	}
	if err != nil {
		c.count("failed")
		return err
	}

	err = c.delete(ctx, msg)
	if err != nil {
		return err
	}
	c.count("processed")

	logger.FromContext(ctx).Info("synced portfolio from queue",
		"portfolioId", resp.PortfolioID,
		"openPositions", len(resp.Positions),
	)
	return nil
}

// Run processes messages until ctx is done. Failures are logged and
// retried after backoff.
func (c Consumer) Run(ctx context.Context, backoff time.Duration) error {
	for {
		err := c.GetAndProcess(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil && !errors.Is(err, ErrNoMessages) {
			logger.FromContext(ctx).Error("failed to process message", "error", err.Error())
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}
	}
}
