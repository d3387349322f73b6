package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/draftea/payment-simulator/shared/events"
	"github.com/draftea/payment-simulator/shared/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSNS struct {
	mu      sync.Mutex
	inputs  []*sns.PublishBatchInput
	err     error
	failAll bool
}

func (f *fakeSNS) PublishBatch(ctx context.Context, params *sns.PublishBatchInput, optFns ...func(*sns.Options)) (*sns.PublishBatchOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}

	out := &sns.PublishBatchOutput{}
	if f.failAll {
		for _, entry := range params.PublishBatchRequestEntries {
			out.Failed = append(out.Failed, types.BatchResultErrorEntry{Id: entry.Id, Code: aws.String("InternalError")})
		}
	}
	return out, nil
}

func newTestEvents(n int) []*events.Event {
	evts := make([]*events.Event, n)
	for i := range evts {
		evts[i] = events.NewEvent(models.ID(fmt.Sprintf("method-%d", i)), events.TransactionLoggedEvent, map[string]int{"n": i}).
			WithMetadata("method_type", "wallet")
	}
	return evts
}

func TestSNSEventPublisher_Publish(t *testing.T) {
	client := &fakeSNS{}
	publisher := NewSNSEventPublisher(client, "arn:aws:sns:us-east-1:000000000000:payment-events")

	err := publisher.Publish(context.Background(), newTestEvents(23)...)

	require.NoError(t, err)
	require.Len(t, client.inputs, 3)

	total := 0
	for _, input := range client.inputs {
		assert.Equal(t, "arn:aws:sns:us-east-1:000000000000:payment-events", aws.ToString(input.TopicArn))
		assert.LessOrEqual(t, len(input.PublishBatchRequestEntries), maxBatchSize)
		total += len(input.PublishBatchRequestEntries)

		entry := input.PublishBatchRequestEntries[0]
		assert.Equal(t, events.TransactionLoggedEvent, aws.ToString(entry.MessageAttributes["event_type"].StringValue))
		assert.Equal(t, "wallet", aws.ToString(entry.MessageAttributes["method_type"].StringValue))

		var msg snsMessage
		require.NoError(t, json.Unmarshal([]byte(aws.ToString(entry.Message)), &msg))
		assert.Equal(t, aws.ToString(entry.Id), msg.ID)
		assert.Equal(t, events.TransactionLoggedEvent, msg.EventType)
	}
	assert.Equal(t, 23, total)
}

func TestSNSEventPublisher_PublishNothing(t *testing.T) {
	client := &fakeSNS{}
	publisher := NewSNSEventPublisher(client, "topic")

	assert.NoError(t, publisher.Publish(context.Background()))
	assert.Empty(t, client.inputs)
}

func TestSNSEventPublisher_Errors(t *testing.T) {
	tests := []struct {
		name          string
		client        *fakeSNS
		expectedError string
	}{
		{
			name:          "client error",
			client:        &fakeSNS{err: errors.New("connection refused")},
			expectedError: "failed to publish batch to SNS",
		},
		{
			name:          "rejected entries",
			client:        &fakeSNS{failAll: true},
			expectedError: "2 of 2 events rejected by SNS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher := NewSNSEventPublisher(tt.client, "topic")
			err := publisher.Publish(context.Background(), newTestEvents(2)...)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestSplitToChunks(t *testing.T) {
	chunks := splitToChunks([]int{1, 2, 3, 4, 5}, 2)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, chunks)
	assert.Nil(t, splitToChunks([]int{}, 2))
}
