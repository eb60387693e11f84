package kafka

import (
	"encoding/json"
	"log/slog"
	"testing"

	"coordinator/internal/core/domain/model/kernel"

	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNotifier(producer *mocks.SyncProducer) *Notifier {
	return &Notifier{
		producer: producer,
		topic:    "notifications",
		logger:   slog.New(slog.DiscardHandler),
	}
}

func Test_Notifier_NotifyDeliveryAssigned_PublishesEvent(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	orderID := kernel.NewUUID()
	volunteerID := kernel.NewUUID()

	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(value []byte) error {
		var message notificationMessage
		if err := json.Unmarshal(value, &message); err != nil {
			return err
		}
		assert.Equal(t, EventDeliveryAssigned, message.Event)
		assert.Equal(t, orderID.String(), message.OrderID)
		assert.Equal(t, volunteerID.String(), message.VolunteerID)
		assert.False(t, message.OccurredAt.IsZero())
		return nil
	})

	err := testNotifier(producer).NotifyDeliveryAssigned(t.Context(), orderID, volunteerID)

	require.NoError(t, err)
	require.NoError(t, producer.Close())
}

func Test_Notifier_NotifyDeliveryRequestUpdate_CarriesOutcome(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	requestID := kernel.NewUUID()
	volunteerID := kernel.NewUUID()

	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(value []byte) error {
		var message notificationMessage
		if err := json.Unmarshal(value, &message); err != nil {
			return err
		}
		assert.Equal(t, EventDeliveryRequestUpdate, message.Event)
		assert.Equal(t, requestID.String(), message.RequestID)
		assert.Equal(t, "rejected", message.Outcome)
		return nil
	})

	err := testNotifier(producer).NotifyDeliveryRequestUpdate(t.Context(), requestID, "rejected", volunteerID)

	require.NoError(t, err)
	require.NoError(t, producer.Close())
}

func Test_Notifier_NotifyPendingRequestsReminder_CarriesCount(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)

	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(value []byte) error {
		var message notificationMessage
		if err := json.Unmarshal(value, &message); err != nil {
			return err
		}
		assert.Equal(t, EventPendingRequestsReminder, message.Event)
		assert.Equal(t, 7, message.PendingCount)
		return nil
	})

	err := testNotifier(producer).NotifyPendingRequestsReminder(t.Context(), 7)

	require.NoError(t, err)
	require.NoError(t, producer.Close())
}

func Test_Notifier_Publish_ReturnsBrokerError(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(assert.AnError)

	err := testNotifier(producer).NotifyVolunteerApproved(t.Context(), kernel.NewUUID())

	require.Error(t, err)
	require.NoError(t, producer.Close())
}
