package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/game-narrative-script/internal/platform/health"
	"github.com/jsamuelsen11/game-narrative-script/mocks"
)

type ctxKey struct{}

func TestCheckAll_Empty(t *testing.T) {
	t.Parallel()

	results := health.New().CheckAll(context.Background())

	if results == nil {
		t.Fatal("expected non-nil map, got nil")
	}
	if len(results) != 0 {
		t.Errorf("expected empty map, got %d entries", len(results))
	}
}

func TestCheckAll_MixedHealth(t *testing.T) {
	t.Parallel()

	story := mocks.NewMockHealthChecker(t)
	story.EXPECT().Name().Return("story")
	story.EXPECT().HealthCheck(mock.Anything).Return(nil)

	bucketErr := errors.New("bucket stories does not exist")
	store := mocks.NewMockHealthChecker(t)
	store.EXPECT().Name().Return("object-store")
	store.EXPECT().HealthCheck(mock.Anything).Return(bucketErr)

	r := health.New()
	r.Register(story)
	r.Register(store)

	results := r.CheckAll(context.Background())

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results["story"] != nil {
		t.Errorf("story check = %v, want nil", results["story"])
	}
	if !errors.Is(results["object-store"], bucketErr) {
		t.Errorf("object-store check = %v, want %v", results["object-store"], bucketErr)
	}
}

func TestCheckAll_ContextPropagated(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), ctxKey{}, "probe")

	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("story")
	checker.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		_, hasDeadline := ctx.Deadline()
		return ctx.Value(ctxKey{}) == "probe" && hasDeadline
	})).Return(nil)

	r := health.New()
	r.Register(checker)

	if err := r.CheckAll(ctx)["story"]; err != nil {
		t.Errorf("story check = %v, want nil", err)
	}
}

func TestCheckAll_Timeout(t *testing.T) {
	t.Parallel()

	called := make(chan struct{})
	slow := mocks.NewMockHealthChecker(t)
	slow.EXPECT().Name().Return("object-store")
	slow.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(ctx context.Context) error {
		close(called)
		<-ctx.Done()
		return ctx.Err()
	})

	r := health.New(health.WithCheckTimeout(10 * time.Millisecond))
	r.Register(slow)

	err := r.CheckAll(context.Background())["object-store"]
	<-called

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("object-store check = %v, want context.DeadlineExceeded", err)
	}
}

func TestCheckAll_RunsConcurrently(t *testing.T) {
	t.Parallel()

	// Each check waits for the other, so sequential execution would time out.
	var ready sync.WaitGroup
	ready.Add(2)
	rendezvous := func(context.Context) error {
		ready.Done()
		ready.Wait()
		return nil
	}

	a := mocks.NewMockHealthChecker(t)
	a.EXPECT().Name().Return("story")
	a.EXPECT().HealthCheck(mock.Anything).RunAndReturn(rendezvous)

	b := mocks.NewMockHealthChecker(t)
	b.EXPECT().Name().Return("object-store")
	b.EXPECT().HealthCheck(mock.Anything).RunAndReturn(rendezvous)

	r := health.New(health.WithCheckTimeout(5 * time.Second))
	r.Register(a)
	r.Register(b)

	for name, err := range r.CheckAll(context.Background()) {
		if err != nil {
			t.Errorf("%s check = %v, want nil", name, err)
		}
	}
}

func TestCheckAll_DuplicateNames_LastWriteWins(t *testing.T) {
	t.Parallel()

	first := mocks.NewMockHealthChecker(t)
	first.EXPECT().Name().Return("story")
	first.EXPECT().HealthCheck(mock.Anything).Return(nil)

	secondErr := errors.New("second failure")
	second := mocks.NewMockHealthChecker(t)
	second.EXPECT().Name().Return("story")
	second.EXPECT().HealthCheck(mock.Anything).Return(secondErr)

	r := health.New()
	r.Register(first)
	r.Register(second)

	results := r.CheckAll(context.Background())

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if !errors.Is(results["story"], secondErr) {
		t.Errorf("story check = %v, want %v (from last registered checker)", results["story"], secondErr)
	}
}

func TestCheckAll_ConcurrentSafety(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	const goroutines = 50

	// Half the goroutines register checkers, half call CheckAll.
	for i := range goroutines {
		if i%2 == 0 {
			wg.Go(func() {
				c := mocks.NewMockHealthChecker(t)
				c.EXPECT().Name().Return("checker").Maybe()
				c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
				r.Register(c)
			})
		} else {
			wg.Go(func() {
				r.CheckAll(context.Background())
			})
		}
	}

	wg.Wait()
}
