package usecase

import (
	"errors"
	"sync"
	"testing"
	"time"

	"commerce_2checkout/internal/domain/entities"
	"commerce_2checkout/internal/infrastructure/security"
	mock_interfaces "commerce_2checkout/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCorrelationTracker_BeginFlow(t *testing.T) {
	t.Run("record shape", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokens := mock_interfaces.NewMockITokenGenerator(ctrl)
		tracker := NewCorrelationTracker(tokens)
		fixed := time.Date(2026, 3, 4, 5, 6, 7, 0, time.FixedZone("BRT", -3*3600))
		tracker.now = func() time.Time { return fixed }

		tokens.EXPECT().Generate().Return("tok-1", nil)

		rec, err := tracker.BeginFlow(77)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.OrderID != 77 || rec.FlowKind != "2co" || rec.Token != "tok-1" || !rec.IsOffsite || rec.PayerReference != nil {
			t.Fatalf("unexpected record: %+v", rec)
		}
		if rec.CreatedAt.Location() != time.UTC || !rec.CreatedAt.Equal(fixed) {
			t.Fatalf("expected UTC timestamp, got %v", rec.CreatedAt)
		}
	})

	t.Run("generator error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokens := mock_interfaces.NewMockITokenGenerator(ctrl)
		tokens.EXPECT().Generate().Return("", errors.New("entropy"))

		_, err := NewCorrelationTracker(tokens).BeginFlow(77)
		if !errors.Is(err, ErrTokenGeneration) {
			t.Fatalf("expected ErrTokenGeneration, got %v", err)
		}
	})

	t.Run("empty token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokens := mock_interfaces.NewMockITokenGenerator(ctrl)
		tokens.EXPECT().Generate().Return("", nil)

		_, err := NewCorrelationTracker(tokens).BeginFlow(77)
		if !errors.Is(err, ErrTokenGeneration) {
			t.Fatalf("expected ErrTokenGeneration, got %v", err)
		}
	})

	t.Run("tokens are unique across concurrent flows", func(t *testing.T) {
		tracker := NewCorrelationTracker(security.NewRandomTokenGenerator())
		const n = 200

		var (
			mu   sync.Mutex
			seen = make(map[string]struct{}, n)
			wg   sync.WaitGroup
		)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(id int64) {
				defer wg.Done()
				rec, err := tracker.BeginFlow(id % 3)
				if err != nil {
					t.Errorf("unexpected error: %v", err)
					return
				}
				mu.Lock()
				seen[rec.Token] = struct{}{}
				mu.Unlock()
			}(int64(i))
		}
		wg.Wait()

		if len(seen) != n {
			t.Fatalf("expected %d distinct tokens, got %d", n, len(seen))
		}
	})
}

func TestCorrelationTracker_Validate(t *testing.T) {
	tracker := NewCorrelationTracker(security.NewRandomTokenGenerator())
	fresh := entities.OrderCorrelationRecord{OrderID: 5, FlowKind: entities.FlowKind2CO, Token: "tok-current", IsOffsite: true}
	consumed := tracker.Consume(fresh, "4550")

	cases := []struct {
		name   string
		record entities.OrderCorrelationRecord
		token  string
		want   error
	}{
		{name: "valid", record: fresh, token: "tok-current", want: nil},
		{name: "no record", record: entities.OrderCorrelationRecord{}, token: "tok-current", want: ErrCorrelationNotFound},
		{name: "superseded token", record: fresh, token: "tok-previous", want: ErrInvalidToken},
		{name: "empty token", record: fresh, token: "", want: ErrInvalidToken},
		{name: "other flow", record: entities.OrderCorrelationRecord{FlowKind: "paypal", Token: "tok-current", IsOffsite: true}, token: "tok-current", want: ErrInvalidToken},
		{name: "replay", record: consumed, token: "tok-current", want: ErrReplayedCallback},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tracker.Validate(tc.record, tc.token)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestCorrelationTracker_Consume(t *testing.T) {
	tracker := NewCorrelationTracker(security.NewRandomTokenGenerator())
	rec := entities.OrderCorrelationRecord{OrderID: 5, FlowKind: entities.FlowKind2CO, Token: "tok", IsOffsite: true}

	out := tracker.Consume(rec, "4550")
	if out.PayerReference == nil || *out.PayerReference != "4550" || !out.Consumed() {
		t.Fatalf("unexpected record: %+v", out)
	}
	if rec.Consumed() {
		t.Fatalf("input record must not be modified")
	}
}
