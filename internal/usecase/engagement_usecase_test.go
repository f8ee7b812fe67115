package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"fieldpilot/internal/domain/entities"
	"fieldpilot/internal/domain/lifecycle"
	mock_interfaces "fieldpilot/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestEngagementUseCase_Create(t *testing.T) {
	t.Run("invalid owner", func(t *testing.T) {
		uc := NewEngagementUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateEngagementCommand{OwnerID: "  ", Title: "Mow lawn"})
		if !errors.Is(err, ErrInvalidOwnerID) {
			t.Fatalf("expected ErrInvalidOwnerID, got %v", err)
		}
	})

	t.Run("invalid title", func(t *testing.T) {
		uc := NewEngagementUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateEngagementCommand{OwnerID: "own-1", Title: " "})
		if !errors.Is(err, ErrInvalidTitle) {
			t.Fatalf("expected ErrInvalidTitle, got %v", err)
		}
	})

	t.Run("invalid item", func(t *testing.T) {
		uc := NewEngagementUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateEngagementCommand{
			OwnerID: "own-1", Title: "Mow lawn",
			Items: []entities.LineItem{{Description: "mow", Quantity: 0, UnitAmountCents: 100}},
		})
		if !errors.Is(err, ErrInvalidLineItems) {
			t.Fatalf("expected ErrInvalidLineItems, got %v", err)
		}
	})

	t.Run("half-open window fails and writes nothing", func(t *testing.T) {
		start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
		uc := NewEngagementUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateEngagementCommand{
			OwnerID: "own-1", Title: "Mow lawn", Start: &start,
		})
		if !errors.Is(err, ErrInvalidSchedule) {
			t.Fatalf("expected ErrInvalidSchedule, got %v", err)
		}
	})

	t.Run("end before start", func(t *testing.T) {
		start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
		end := start.Add(-time.Hour)
		uc := NewEngagementUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateEngagementCommand{
			OwnerID: "own-1", Title: "Mow lawn", Start: &start, End: &end,
		})
		if !errors.Is(err, ErrInvalidSchedule) {
			t.Fatalf("expected ErrInvalidSchedule, got %v", err)
		}
	})

	t.Run("send with no items fails", func(t *testing.T) {
		uc := NewEngagementUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateEngagementCommand{
			OwnerID: "own-1", Title: "Mow lawn", Send: true,
		})
		if !errors.Is(err, ErrInvalidLineItems) {
			t.Fatalf("expected ErrInvalidLineItems, got %v", err)
		}
	})

	t.Run("draft without window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		dispatcher := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewEngagementUseCase(repo, dispatcher, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Engagement{}), nil).DoAndReturn(
			func(_ context.Context, e entities.Engagement, event *entities.CalendarEvent) (entities.Engagement, error) {
				if e.ID == "" || e.OwnerID != "own-1" || e.Status != entities.EngagementStatusDraft {
					t.Fatalf("unexpected engagement: %+v", e)
				}
				if e.TotalAmountCents != 25100 {
					t.Fatalf("expected derived total 25100, got %d", e.TotalAmountCents)
				}
				if event != nil {
					t.Fatalf("expected no calendar event")
				}
				return e, nil
			},
		)
		dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.Notification) error {
				if n.Type != "engagement.created" || n.OwnerID != "own-1" {
					t.Fatalf("unexpected notification: %+v", n)
				}
				return nil
			},
		)

		res, err := uc.Create(context.Background(), CreateEngagementCommand{
			OwnerID: " own-1 ", Title: " Mow lawn ",
			Items: []entities.LineItem{
				{Description: "mow", Quantity: 2, UnitAmountCents: 5000},
				{Description: "edge", Quantity: 2, UnitAmountCents: 2550},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.TotalAmountCents != 25100 {
			t.Fatalf("expected 25100, got %d", res.TotalAmountCents)
		}
	})

	t.Run("window yields exactly one job event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		dispatcher := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewEngagementUseCase(repo, dispatcher, nil)

		start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
		end := start.Add(2 * time.Hour)

		repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Engagement, event *entities.CalendarEvent) (entities.Engagement, error) {
				if event == nil {
					t.Fatalf("expected a calendar event")
				}
				if event.Type != entities.CalendarEventTypeJob {
					t.Fatalf("expected job event, got %s", event.Type)
				}
				if event.EngagementID != e.ID || event.OwnerID != e.OwnerID {
					t.Fatalf("event not linked to engagement: %+v", event)
				}
				if !event.Start.Equal(start) || !event.End.Equal(end) {
					t.Fatalf("unexpected window: %+v", event)
				}
				return e, nil
			},
		)
		dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil)

		_, err := uc.Create(context.Background(), CreateEngagementCommand{
			OwnerID: "own-1", Title: "Mow lawn",
			Items: []entities.LineItem{{Description: "mow", Quantity: 1, UnitAmountCents: 5000}},
			Start:  &start, End: &end,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("dispatch failure does not fail creation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		dispatcher := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewEngagementUseCase(repo, dispatcher, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Engagement, _ *entities.CalendarEvent) (entities.Engagement, error) {
				return e, nil
			},
		)
		dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(errors.New("queue full"))

		_, err := uc.Create(context.Background(), CreateEngagementCommand{OwnerID: "own-1", Title: "Mow lawn"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEngagementUseCase_UpdateItems(t *testing.T) {
	t.Run("invalid item rejected before any read", func(t *testing.T) {
		uc := NewEngagementUseCase(nil, nil, nil)
		_, err := uc.UpdateItems(context.Background(), "eng-1", []entities.LineItem{
			{Description: "mow", Quantity: 0, UnitAmountCents: 100},
		})
		if !errors.Is(err, ErrInvalidLineItems) {
			t.Fatalf("expected ErrInvalidLineItems, got %v", err)
		}
	})

	t.Run("frozen once sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		uc := NewEngagementUseCase(repo, nil, nil)

		// No UpdateItems expectation: a frozen engagement must not write.
		repo.EXPECT().GetByID(gomock.Any(), "eng-1").Return(entities.Engagement{
			ID: "eng-1", Status: entities.EngagementStatusSent,
		}, nil)

		_, err := uc.UpdateItems(context.Background(), "eng-1", []entities.LineItem{
			{Description: "mow", Quantity: 1, UnitAmountCents: 5000},
		})
		if !errors.Is(err, ErrItemsFrozen) {
			t.Fatalf("expected ErrItemsFrozen, got %v", err)
		}
	})

	t.Run("editable after a revision request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		uc := NewEngagementUseCase(repo, nil, nil)

		items := []entities.LineItem{
			{Description: "mow", Quantity: 2, UnitAmountCents: 5000},
			{Description: "edge", Quantity: 1, UnitAmountCents: 2500},
		}

		repo.EXPECT().GetByID(gomock.Any(), "eng-1").Return(entities.Engagement{
			ID: "eng-1", Status: entities.EngagementStatusRevisionRequested,
		}, nil)
		repo.EXPECT().UpdateItems(gomock.Any(), "eng-1",
			entities.EngagementStatusRevisionRequested, items, int64(12500)).Return(entities.Engagement{
			ID: "eng-1", Status: entities.EngagementStatusRevisionRequested,
			LineItems: items, TotalAmountCents: 12500,
		}, nil)

		res, err := uc.UpdateItems(context.Background(), " eng-1 ", items)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.TotalAmountCents != 12500 {
			t.Fatalf("expected rederived total 12500, got %d", res.TotalAmountCents)
		}
	})

	t.Run("racing transition wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		uc := NewEngagementUseCase(repo, nil, nil)

		items := []entities.LineItem{{Description: "mow", Quantity: 1, UnitAmountCents: 5000}}

		repo.EXPECT().GetByID(gomock.Any(), "eng-1").Return(entities.Engagement{
			ID: "eng-1", Status: entities.EngagementStatusDraft,
		}, nil)
		repo.EXPECT().UpdateItems(gomock.Any(), "eng-1",
			entities.EngagementStatusDraft, items, int64(5000)).Return(entities.Engagement{}, nil)

		_, err := uc.UpdateItems(context.Background(), "eng-1", items)
		if !errors.Is(err, ErrEngagementStateMoved) {
			t.Fatalf("expected ErrEngagementStateMoved, got %v", err)
		}
	})
}

func TestEngagementUseCase_Send(t *testing.T) {
	t.Run("empty line items rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		uc := NewEngagementUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "eng-1").Return(entities.Engagement{
			ID: "eng-1", Status: entities.EngagementStatusDraft,
		}, nil)

		_, err := uc.Send(context.Background(), "eng-1", "")
		if !errors.Is(err, ErrInvalidLineItems) {
			t.Fatalf("expected ErrInvalidLineItems, got %v", err)
		}
	})

	t.Run("draft to sent with quote ref", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		dispatcher := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewEngagementUseCase(repo, dispatcher, nil)

		stored := entities.Engagement{
			ID: "eng-1", OwnerID: "own-1", Status: entities.EngagementStatusDraft,
			LineItems: []entities.LineItem{{Description: "mow", Quantity: 1, UnitAmountCents: 5000}},
		}
		sent := stored
		sent.Status = entities.EngagementStatusSent
		sent.ExternalQuoteRef = "qt_42"

		repo.EXPECT().GetByID(gomock.Any(), "eng-1").Return(stored, nil)
		repo.EXPECT().UpdateStatusWithQuoteRef(gomock.Any(), "eng-1",
			entities.EngagementStatusDraft, entities.EngagementStatusSent, "qt_42").Return(sent, nil)
		dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil)

		res, err := uc.Send(context.Background(), " eng-1 ", " qt_42 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.EngagementStatusSent || res.ExternalQuoteRef != "qt_42" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("send from scheduled rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		uc := NewEngagementUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "eng-1").Return(entities.Engagement{
			ID: "eng-1", Status: entities.EngagementStatusScheduled,
			LineItems: []entities.LineItem{{Description: "mow", Quantity: 1, UnitAmountCents: 5000}},
		}, nil)

		_, err := uc.Send(context.Background(), "eng-1", "")
		var ite *lifecycle.InvalidTransitionError
		if !errors.As(err, &ite) {
			t.Fatalf("expected InvalidTransitionError, got %v", err)
		}
	})
}

func TestEngagementUseCase_ApplyActions(t *testing.T) {
	cases := []struct {
		name string
		call func(uc *EngagementUseCase, ctx context.Context, id string) (entities.Engagement, error)
		from entities.EngagementStatus
		to   entities.EngagementStatus
	}{
		{"accept", (*EngagementUseCase).Accept, entities.EngagementStatusSent, entities.EngagementStatusScheduled},
		{"decline", (*EngagementUseCase).Decline, entities.EngagementStatusSent, entities.EngagementStatusDeclined},
		{"cancel", (*EngagementUseCase).Cancel, entities.EngagementStatusScheduled, entities.EngagementStatusCanceled},
		{"overdue", (*EngagementUseCase).MarkOverdue, entities.EngagementStatusPaymentNeeded, entities.EngagementStatusPaymentOverdue},
		{"paid", (*EngagementUseCase).MarkPaid, entities.EngagementStatusPaymentOverdue, entities.EngagementStatusComplete},
	}

	for _, tc := range cases {
		t.Run(tc.name+" success", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIEngagementRepository(ctrl)
			dispatcher := mock_interfaces.NewMockINotificationDispatcher(ctrl)
			uc := NewEngagementUseCase(repo, dispatcher, nil)

			stored := entities.Engagement{ID: "eng-1", OwnerID: "own-1", Status: tc.from}
			updated := stored
			updated.Status = tc.to

			repo.EXPECT().GetByID(gomock.Any(), "eng-1").Return(stored, nil)
			repo.EXPECT().UpdateStatus(gomock.Any(), "eng-1", tc.from, tc.to).Return(updated, nil)
			dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil)

			res, err := tc.call(uc, context.Background(), "eng-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.to {
				t.Fatalf("expected %s, got %s", tc.to, res.Status)
			}
		})

		t.Run(tc.name+" not found", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIEngagementRepository(ctrl)
			uc := NewEngagementUseCase(repo, nil, nil)

			repo.EXPECT().GetByID(gomock.Any(), "eng-1").Return(entities.Engagement{}, nil)

			_, err := tc.call(uc, context.Background(), "eng-1")
			if !errors.Is(err, ErrEngagementNotFound) {
				t.Fatalf("expected ErrEngagementNotFound, got %v", err)
			}
		})
	}

	t.Run("invalid from-state leaves state unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		uc := NewEngagementUseCase(repo, nil, nil)

		// No UpdateStatus expectation: a rejected transition must not write.
		repo.EXPECT().GetByID(gomock.Any(), "eng-1").Return(entities.Engagement{
			ID: "eng-1", Status: entities.EngagementStatusComplete,
		}, nil)

		_, err := uc.Cancel(context.Background(), "eng-1")
		var ite *lifecycle.InvalidTransitionError
		if !errors.As(err, &ite) {
			t.Fatalf("expected InvalidTransitionError, got %v", err)
		}
	})

	t.Run("racing writer wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		uc := NewEngagementUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "eng-1").Return(entities.Engagement{
			ID: "eng-1", Status: entities.EngagementStatusSent,
		}, nil)
		// The conditional write loses: the store reports no row matched.
		repo.EXPECT().UpdateStatus(gomock.Any(), "eng-1",
			entities.EngagementStatusSent, entities.EngagementStatusScheduled).Return(entities.Engagement{}, nil)

		_, err := uc.Accept(context.Background(), "eng-1")
		if !errors.Is(err, ErrEngagementStateMoved) {
			t.Fatalf("expected ErrEngagementStateMoved, got %v", err)
		}
	})
}

func TestEngagementUseCase_RequestRevision(t *testing.T) {
	t.Run("reason is mandatory", func(t *testing.T) {
		uc := NewEngagementUseCase(nil, nil, nil)
		_, err := uc.RequestRevision(context.Background(), "eng-1", "   ")
		if !errors.Is(err, ErrMissingRevisionNote) {
			t.Fatalf("expected ErrMissingRevisionNote, got %v", err)
		}
	})

	t.Run("reason travels on the notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		dispatcher := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewEngagementUseCase(repo, dispatcher, nil)

		stored := entities.Engagement{ID: "eng-1", OwnerID: "own-1", Status: entities.EngagementStatusSent}
		updated := stored
		updated.Status = entities.EngagementStatusRevisionRequested

		repo.EXPECT().GetByID(gomock.Any(), "eng-1").Return(stored, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "eng-1",
			entities.EngagementStatusSent, entities.EngagementStatusRevisionRequested).Return(updated, nil)
		dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.Notification) error {
				if n.Data["reason"] != "too expensive" {
					t.Fatalf("expected reason on notification, got %+v", n.Data)
				}
				return nil
			},
		)

		_, err := uc.RequestRevision(context.Background(), "eng-1", "too expensive")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEngagementUseCase_CreatePaymentIntent(t *testing.T) {
	t.Run("not awaiting payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		provider := mock_interfaces.NewMockIBillingProvider(ctrl)
		uc := NewEngagementUseCase(repo, nil, provider)

		repo.EXPECT().GetByID(gomock.Any(), "eng-1").Return(entities.Engagement{
			ID: "eng-1", Status: entities.EngagementStatusScheduled,
		}, nil)

		_, _, err := uc.CreatePaymentIntent(context.Background(), "eng-1")
		if !errors.Is(err, ErrNotAwaitingPayment) {
			t.Fatalf("expected ErrNotAwaitingPayment, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		provider := mock_interfaces.NewMockIBillingProvider(ctrl)
		uc := NewEngagementUseCase(repo, nil, provider)

		stored := entities.Engagement{ID: "eng-1", Status: entities.EngagementStatusPaymentNeeded, TotalAmountCents: 25100}
		repo.EXPECT().GetByID(gomock.Any(), "eng-1").Return(stored, nil)
		provider.EXPECT().CreatePaymentIntent(gomock.Any(), stored).Return("pi_1", nil, nil)

		ref, _, err := uc.CreatePaymentIntent(context.Background(), "eng-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ref != "pi_1" {
			t.Fatalf("expected pi_1, got %s", ref)
		}
	})
}

func TestEngagementUseCase_ListByOwner(t *testing.T) {
	t.Run("invalid status filter", func(t *testing.T) {
		uc := NewEngagementUseCase(nil, nil, nil)
		_, err := uc.ListByOwner(context.Background(), "own-1", "upcoming")
		if !errors.Is(err, ErrInvalidStatusFilter) {
			t.Fatalf("expected ErrInvalidStatusFilter, got %v", err)
		}
	})

	t.Run("filter passthrough", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		uc := NewEngagementUseCase(repo, nil, nil)

		repo.EXPECT().ListByOwner(gomock.Any(), "own-1", entities.EngagementStatusSent).Return([]entities.Engagement{{ID: "eng-1"}}, nil)

		res, err := uc.ListByOwner(context.Background(), "own-1", "sent")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "eng-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
