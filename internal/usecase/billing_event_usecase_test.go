package usecase

import (
	"context"
	"errors"
	"testing"

	"fieldpilot/internal/domain/entities"
	mock_interfaces "fieldpilot/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestBillingEventUseCase_Apply(t *testing.T) {
	t.Run("quote accepted schedules the engagement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		dispatcher := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewBillingEventUseCase(repo, dispatcher)

		stored := entities.Engagement{ID: "eng-1", OwnerID: "own-1", Status: entities.EngagementStatusSent, ExternalQuoteRef: "qt_1"}
		updated := stored
		updated.Status = entities.EngagementStatusScheduled

		repo.EXPECT().GetByQuoteRef(gomock.Any(), "qt_1").Return(stored, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "eng-1",
			entities.EngagementStatusSent, entities.EngagementStatusScheduled).Return(updated, nil)
		dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil)

		err := uc.Apply(context.Background(), entities.BillingEvent{Kind: entities.BillingEventQuoteAccepted, SubjectID: "qt_1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("invoice created stamps the invoice ref", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		dispatcher := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewBillingEventUseCase(repo, dispatcher)

		stored := entities.Engagement{ID: "eng-1", OwnerID: "own-1", Status: entities.EngagementStatusScheduled, ExternalQuoteRef: "qt_1"}
		updated := stored
		updated.Status = entities.EngagementStatusPaymentNeeded
		updated.ExternalInvoiceRef = "inv_123"

		repo.EXPECT().GetByQuoteRef(gomock.Any(), "qt_1").Return(stored, nil)
		repo.EXPECT().UpdateStatusWithInvoiceRef(gomock.Any(), "eng-1",
			entities.EngagementStatusScheduled, entities.EngagementStatusPaymentNeeded, "inv_123").Return(updated, nil)
		dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil)

		err := uc.Apply(context.Background(), entities.BillingEvent{
			Kind: entities.BillingEventInvoiceCreated, SubjectID: "inv_123", QuoteRef: "qt_1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("duplicate delivery is a silent no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		dispatcher := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewBillingEventUseCase(repo, dispatcher)

		// Already complete: no write, no second notification.
		repo.EXPECT().GetByInvoiceRef(gomock.Any(), "inv_123").Return(entities.Engagement{
			ID: "eng-1", Status: entities.EngagementStatusComplete, ExternalInvoiceRef: "inv_123",
		}, nil)

		err := uc.Apply(context.Background(), entities.BillingEvent{Kind: entities.BillingEventInvoicePaid, SubjectID: "inv_123"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("out-of-order event is an anomaly, not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		uc := NewBillingEventUseCase(repo, nil)

		// invoice.paid before any invoice was ever recorded.
		repo.EXPECT().GetByInvoiceRef(gomock.Any(), "inv_123").Return(entities.Engagement{
			ID: "eng-1", Status: entities.EngagementStatusScheduled,
		}, nil)

		err := uc.Apply(context.Background(), entities.BillingEvent{Kind: entities.BillingEventInvoicePaid, SubjectID: "inv_123"})
		if err != nil {
			t.Fatalf("expected acknowledged anomaly, got %v", err)
		}
	})

	t.Run("unknown subject is dropped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		uc := NewBillingEventUseCase(repo, nil)

		repo.EXPECT().GetByQuoteRef(gomock.Any(), "qt_other").Return(entities.Engagement{}, nil)

		err := uc.Apply(context.Background(), entities.BillingEvent{Kind: entities.BillingEventQuoteFinalized, SubjectID: "qt_other"})
		if err != nil {
			t.Fatalf("expected dropped event, got %v", err)
		}
	})

	t.Run("store failure propagates for redelivery", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		uc := NewBillingEventUseCase(repo, nil)

		repo.EXPECT().GetByInvoiceRef(gomock.Any(), "inv_123").Return(entities.Engagement{}, errors.New("db down"))

		err := uc.Apply(context.Background(), entities.BillingEvent{Kind: entities.BillingEventInvoicePaid, SubjectID: "inv_123"})
		if err == nil || err.Error() != "db down" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("lost write race is acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		uc := NewBillingEventUseCase(repo, nil)

		stored := entities.Engagement{ID: "eng-1", Status: entities.EngagementStatusSent, ExternalQuoteRef: "qt_1"}
		repo.EXPECT().GetByQuoteRef(gomock.Any(), "qt_1").Return(stored, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "eng-1",
			entities.EngagementStatusSent, entities.EngagementStatusScheduled).Return(entities.Engagement{}, nil)

		err := uc.Apply(context.Background(), entities.BillingEvent{Kind: entities.BillingEventQuoteAccepted, SubjectID: "qt_1"})
		if err != nil {
			t.Fatalf("expected acknowledged race, got %v", err)
		}
	})
}

// Redelivery of invoice.paid: first application completes the engagement
// and notifies once; the second finds the target status already reached and
// does nothing. The dispatcher mock's single expectation enforces the
// exactly-one-notification part.
func TestBillingEventUseCase_PaidRedelivery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIEngagementRepository(ctrl)
	dispatcher := mock_interfaces.NewMockINotificationDispatcher(ctrl)
	uc := NewBillingEventUseCase(repo, dispatcher)

	needed := entities.Engagement{ID: "eng-1", OwnerID: "own-1", Status: entities.EngagementStatusPaymentNeeded, ExternalInvoiceRef: "inv_123"}
	complete := needed
	complete.Status = entities.EngagementStatusComplete

	repo.EXPECT().GetByInvoiceRef(gomock.Any(), "inv_123").Return(needed, nil)
	repo.EXPECT().UpdateStatus(gomock.Any(), "eng-1",
		entities.EngagementStatusPaymentNeeded, entities.EngagementStatusComplete).Return(complete, nil)
	dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	repo.EXPECT().GetByInvoiceRef(gomock.Any(), "inv_123").Return(complete, nil)

	ev := entities.BillingEvent{Kind: entities.BillingEventInvoicePaid, SubjectID: "inv_123"}
	if err := uc.Apply(context.Background(), ev); err != nil {
		t.Fatalf("first application failed: %v", err)
	}
	if err := uc.Apply(context.Background(), ev); err != nil {
		t.Fatalf("second application failed: %v", err)
	}
}
