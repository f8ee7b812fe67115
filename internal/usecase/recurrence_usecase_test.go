package usecase

import (
	"context"
	"errors"
	"testing"

	"fieldpilot/internal/domain/entities"
	mock_interfaces "fieldpilot/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func intPtr(v int) *int { return &v }

func TestRecurrenceUseCase_Submit(t *testing.T) {
	t.Run("invalid frequency", func(t *testing.T) {
		uc := NewRecurrenceUseCase(nil, nil, nil, nil)
		_, err := uc.Submit(context.Background(), "own-1", "eng-1", 0, nil)
		if !errors.Is(err, ErrInvalidFrequency) {
			t.Fatalf("expected ErrInvalidFrequency, got %v", err)
		}
	})

	t.Run("invalid weekday", func(t *testing.T) {
		uc := NewRecurrenceUseCase(nil, nil, nil, nil)
		_, err := uc.Submit(context.Background(), "own-1", "eng-1", 7, intPtr(7))
		if !errors.Is(err, ErrInvalidWeekday) {
			t.Fatalf("expected ErrInvalidWeekday, got %v", err)
		}
	})

	t.Run("foreign engagement reads as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		engagements := mock_interfaces.NewMockIEngagementRepository(ctrl)
		uc := NewRecurrenceUseCase(nil, engagements, nil, nil)

		engagements.EXPECT().GetByID(gomock.Any(), "eng-1").Return(entities.Engagement{
			ID: "eng-1", OwnerID: "somebody-else",
		}, nil)

		_, err := uc.Submit(context.Background(), "own-1", "eng-1", 7, nil)
		if !errors.Is(err, ErrEngagementNotFound) {
			t.Fatalf("expected ErrEngagementNotFound, got %v", err)
		}
	})

	t.Run("unavailable weekday echoes the set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		engagements := mock_interfaces.NewMockIEngagementRepository(ctrl)
		settings := mock_interfaces.NewMockIScheduleSettings(ctrl)
		uc := NewRecurrenceUseCase(nil, engagements, settings, nil)

		engagements.EXPECT().GetByID(gomock.Any(), "eng-1").Return(entities.Engagement{ID: "eng-1", OwnerID: "own-1"}, nil)
		settings.EXPECT().UnavailableWeekdays(gomock.Any()).Return([]int{0, 6}, nil)

		_, err := uc.Submit(context.Background(), "own-1", "eng-1", 7, intPtr(6))
		var uwe *UnavailableWeekdayError
		if !errors.As(err, &uwe) {
			t.Fatalf("expected UnavailableWeekdayError, got %v", err)
		}
		if uwe.Weekday != 6 || len(uwe.Unavailable) != 2 {
			t.Fatalf("error must echo the unavailable set: %+v", uwe)
		}
	})

	t.Run("available weekday stored as pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRecurrenceRequestRepository(ctrl)
		engagements := mock_interfaces.NewMockIEngagementRepository(ctrl)
		settings := mock_interfaces.NewMockIScheduleSettings(ctrl)
		dispatcher := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewRecurrenceUseCase(repo, engagements, settings, dispatcher)

		engagements.EXPECT().GetByID(gomock.Any(), "eng-1").Return(entities.Engagement{ID: "eng-1", OwnerID: "own-1"}, nil)
		settings.EXPECT().UnavailableWeekdays(gomock.Any()).Return([]int{0, 6}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.RecurrenceRequest{})).DoAndReturn(
			func(_ context.Context, r entities.RecurrenceRequest) (entities.RecurrenceRequest, error) {
				if r.ID == "" || r.Status != entities.RecurrenceRequestStatusPending {
					t.Fatalf("unexpected request: %+v", r)
				}
				if r.FrequencyDays != 14 || r.RequestedWeekday == nil || *r.RequestedWeekday != 3 {
					t.Fatalf("unexpected terms: %+v", r)
				}
				return r, nil
			},
		)
		dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil)

		res, err := uc.Submit(context.Background(), " own-1 ", " eng-1 ", 14, intPtr(3))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.RecurrenceRequestStatusPending {
			t.Fatalf("expected pending, got %s", res.Status)
		}
	})

	t.Run("no weekday preference skips the check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRecurrenceRequestRepository(ctrl)
		engagements := mock_interfaces.NewMockIEngagementRepository(ctrl)
		settings := mock_interfaces.NewMockIScheduleSettings(ctrl)
		uc := NewRecurrenceUseCase(repo, engagements, settings, nil)

		engagements.EXPECT().GetByID(gomock.Any(), "eng-1").Return(entities.Engagement{ID: "eng-1", OwnerID: "own-1"}, nil)
		settings.EXPECT().UnavailableWeekdays(gomock.Any()).Return([]int{0, 1, 2, 3, 4, 5, 6}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.RecurrenceRequest) (entities.RecurrenceRequest, error) { return r, nil },
		)

		_, err := uc.Submit(context.Background(), "own-1", "eng-1", 7, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestRecurrenceUseCase_ListByEngagement(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewRecurrenceUseCase(nil, nil, nil, nil)
		_, err := uc.ListByEngagement(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidEngagementID) {
			t.Fatalf("expected ErrInvalidEngagementID, got %v", err)
		}
	})

	t.Run("returns the history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRecurrenceRequestRepository(ctrl)
		uc := NewRecurrenceUseCase(repo, nil, nil, nil)

		repo.EXPECT().ListByEngagement(gomock.Any(), "eng-1").Return([]entities.RecurrenceRequest{
			{ID: "req-1", Status: entities.RecurrenceRequestStatusDeclined},
			{ID: "req-2", Status: entities.RecurrenceRequestStatusPending},
		}, nil)

		reqs, err := uc.ListByEngagement(context.Background(), " eng-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(reqs) != 2 || reqs[1].ID != "req-2" {
			t.Fatalf("unexpected history: %+v", reqs)
		}
	})
}

func TestRecurrenceUseCase_Resolve(t *testing.T) {
	cases := []struct {
		name   string
		call   func(uc *RecurrenceUseCase, ctx context.Context, id string) (entities.RecurrenceRequest, error)
		status entities.RecurrenceRequestStatus
	}{
		{"accept", (*RecurrenceUseCase).Accept, entities.RecurrenceRequestStatusAccepted},
		{"decline", (*RecurrenceUseCase).Decline, entities.RecurrenceRequestStatusDeclined},
	}

	for _, tc := range cases {
		t.Run(tc.name+" not found", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIRecurrenceRequestRepository(ctrl)
			uc := NewRecurrenceUseCase(repo, nil, nil, nil)

			repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.RecurrenceRequest{}, nil)

			_, err := tc.call(uc, context.Background(), "req-1")
			if !errors.Is(err, ErrRecurrenceRequestNotFound) {
				t.Fatalf("expected ErrRecurrenceRequestNotFound, got %v", err)
			}
		})

		t.Run(tc.name+" already resolved", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIRecurrenceRequestRepository(ctrl)
			uc := NewRecurrenceUseCase(repo, nil, nil, nil)

			repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.RecurrenceRequest{
				ID: "req-1", Status: entities.RecurrenceRequestStatusDeclined,
			}, nil)

			_, err := tc.call(uc, context.Background(), "req-1")
			if !errors.Is(err, ErrRecurrenceAlreadyResolved) {
				t.Fatalf("expected ErrRecurrenceAlreadyResolved, got %v", err)
			}
		})

		t.Run(tc.name+" success", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIRecurrenceRequestRepository(ctrl)
			dispatcher := mock_interfaces.NewMockINotificationDispatcher(ctrl)
			uc := NewRecurrenceUseCase(repo, nil, nil, dispatcher)

			pending := entities.RecurrenceRequest{ID: "req-1", OwnerID: "own-1", Status: entities.RecurrenceRequestStatusPending}
			resolved := pending
			resolved.Status = tc.status

			repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(pending, nil)
			repo.EXPECT().UpdateStatus(gomock.Any(), "req-1",
				entities.RecurrenceRequestStatusPending, tc.status).Return(resolved, nil)
			dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil)

			res, err := tc.call(uc, context.Background(), " req-1 ")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.status {
				t.Fatalf("expected %s, got %s", tc.status, res.Status)
			}
		})

		t.Run(tc.name+" raced resolution", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIRecurrenceRequestRepository(ctrl)
			uc := NewRecurrenceUseCase(repo, nil, nil, nil)

			repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.RecurrenceRequest{
				ID: "req-1", Status: entities.RecurrenceRequestStatusPending,
			}, nil)
			repo.EXPECT().UpdateStatus(gomock.Any(), "req-1",
				entities.RecurrenceRequestStatusPending, tc.status).Return(entities.RecurrenceRequest{}, nil)

			_, err := tc.call(uc, context.Background(), "req-1")
			if !errors.Is(err, ErrRecurrenceAlreadyResolved) {
				t.Fatalf("expected ErrRecurrenceAlreadyResolved, got %v", err)
			}
		})
	}
}
