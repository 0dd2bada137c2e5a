package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"questbets/models"
)

// TestEventDeliveryIntegration tests the complete event flow from TransactionalBus to main Bus
func TestEventDeliveryIntegration(t *testing.T) {
	// Create main event bus
	mainBus := NewBus()

	// Create transactional bus that wraps the main bus
	transactionalBus := NewTransactionalBus(mainBus)

	// Set up a channel to capture received events
	eventReceived := make(chan SubmissionRecordedEvent, 1)
	var wg sync.WaitGroup
	wg.Add(1)

	// Subscribe to submission events on the main bus
	mainBus.Subscribe(EventTypeSubmissionRecorded, func(ctx context.Context, event Event) {
		defer wg.Done()
		if recorded, ok := event.(SubmissionRecordedEvent); ok {
			select {
			case eventReceived <- recorded:
			case <-time.After(1 * time.Second):
				t.Error("Timeout sending event to channel")
			}
		} else {
			t.Errorf("Expected SubmissionRecordedEvent, got %T", event)
		}
	})

	// Create a test event
	testEvent := SubmissionRecordedEvent{
		UserID:        "user-1",
		Address:       "0xabc",
		DiscordHandle: "disc",
		XHandle:       "xh",
		Selections: []models.BetSelection{
			{BetID: "a", SelectedOutcome: "yes"},
		},
	}

	// Publish event to transactional bus (simulating service layer)
	transactionalBus.Publish(testEvent)

	// Flush events (simulating successful transaction commit)
	transactionalBus.Flush(context.Background())

	// Wait for event to be processed
	wg.Wait()

	// Verify the event was received
	select {
	case receivedEvent := <-eventReceived:
		assert.Equal(t, testEvent.UserID, receivedEvent.UserID)
		assert.Equal(t, testEvent.Address, receivedEvent.Address)
		assert.Equal(t, testEvent.DiscordHandle, receivedEvent.DiscordHandle)
		assert.Equal(t, testEvent.XHandle, receivedEvent.XHandle)
		assert.Equal(t, testEvent.Selections, receivedEvent.Selections)
	case <-time.After(2 * time.Second):
		t.Fatal("Event was not received within timeout")
	}
}

// TestMultipleEventsDelivery tests delivering multiple events in sequence
func TestMultipleEventsDelivery(t *testing.T) {
	mainBus := NewBus()
	transactionalBus := NewTransactionalBus(mainBus)

	eventsReceived := make(chan SubmissionRecordedEvent, 3)
	var wg sync.WaitGroup
	wg.Add(3)

	mainBus.Subscribe(EventTypeSubmissionRecorded, func(ctx context.Context, event Event) {
		defer wg.Done()
		if recorded, ok := event.(SubmissionRecordedEvent); ok {
			eventsReceived <- recorded
		}
	})

	// Create and publish multiple test events
	testEvents := []SubmissionRecordedEvent{
		{UserID: "user-1", Address: "0x1"},
		{UserID: "user-2", Address: "0x2"},
		{UserID: "user-3", Address: "0x3"},
	}

	for _, event := range testEvents {
		transactionalBus.Publish(event)
	}

	// Flush all events
	transactionalBus.Flush(context.Background())

	// Wait for all events to be processed
	wg.Wait()

	// Verify all events were received
	receivedEvents := make([]SubmissionRecordedEvent, 0, 3)
	for i := 0; i < 3; i++ {
		select {
		case event := <-eventsReceived:
			receivedEvents = append(receivedEvents, event)
		case <-time.After(2 * time.Second):
			t.Fatalf("Only received %d out of 3 events", len(receivedEvents))
		}
	}

	assert.Len(t, receivedEvents, 3)

	// Check that all original events were received (order may vary due to goroutines)
	addresses := make(map[string]bool)
	for _, received := range receivedEvents {
		addresses[received.Address] = true
	}

	assert.True(t, addresses["0x1"])
	assert.True(t, addresses["0x2"])
	assert.True(t, addresses["0x3"])
}

// TestTransactionalBusDiscard tests that discarded events are not delivered
func TestTransactionalBusDiscard(t *testing.T) {
	mainBus := NewBus()
	transactionalBus := NewTransactionalBus(mainBus)

	eventReceived := make(chan bool, 1)

	mainBus.Subscribe(EventTypeSubmissionRecorded, func(ctx context.Context, event Event) {
		eventReceived <- true
	})

	// Publish event
	transactionalBus.Publish(SubmissionRecordedEvent{UserID: "user-1", Address: "0x1"})

	// Discard instead of flush (simulating transaction rollback)
	transactionalBus.Discard()

	// Verify no event was received
	select {
	case <-eventReceived:
		t.Fatal("Event was received despite being discarded")
	case <-time.After(100 * time.Millisecond):
		// Expected - no event should be received
	}
}
