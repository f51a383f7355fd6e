package registry

import (
	"errors"
	"math/rand"
	"strings"
	"sync"
	"testing"
)

func TestNew(t *testing.T) {
	r := New()
	if r == nil {
		t.Fatal("expected non-nil registry")
	}
}

func TestSingletonIdentity(t *testing.T) {
	r := New()

	type box struct{ v float64 }
	err := r.RegisterSingleton("A", func() (any, error) {
		return &box{v: rand.Float64()}, nil
	})
	if err != nil {
		t.Fatalf("RegisterSingleton failed: %v", err)
	}

	first, err := r.GetSingleton("A")
	if err != nil {
		t.Fatalf("GetSingleton failed: %v", err)
	}
	second, err := r.GetSingleton("A")
	if err != nil {
		t.Fatalf("second GetSingleton failed: %v", err)
	}

	if first != second {
		t.Error("expected both resolutions to return the identical instance")
	}
	if first.(*box).v != second.(*box).v {
		t.Error("expected equal values from the shared instance")
	}
}

func TestSingletonLazyConstruction(t *testing.T) {
	r := New()
	callCount := 0

	r.RegisterSingleton("svc", func() (any, error) {
		callCount++
		return "value", nil
	})
	if callCount != 0 {
		t.Errorf("expected factory not called at registration, got %d calls", callCount)
	}

	if _, err := r.GetSingleton("svc"); err != nil {
		t.Fatalf("GetSingleton failed: %v", err)
	}
	if callCount != 1 {
		t.Errorf("expected 1 call after first resolution, got %d", callCount)
	}

	if _, err := r.GetSingleton("svc"); err != nil {
		t.Fatalf("second GetSingleton failed: %v", err)
	}
	if callCount != 1 {
		t.Errorf("expected factory still called once after cache, got %d", callCount)
	}
}

func TestFactoryFreshness(t *testing.T) {
	r := New()

	type box struct{ v float64 }
	callCount := 0
	r.RegisterFactory("B", func() (any, error) {
		callCount++
		return &box{v: rand.Float64()}, nil
	})

	first, err := r.GetFactory("B")
	if err != nil {
		t.Fatalf("GetFactory failed: %v", err)
	}
	second, err := r.GetFactory("B")
	if err != nil {
		t.Fatalf("second GetFactory failed: %v", err)
	}

	if first == second {
		t.Error("expected distinct instances from factory resolution")
	}
	if callCount != 2 {
		t.Errorf("expected factory invoked once per call, got %d calls", callCount)
	}
}

func TestGetSingletonNotRegistered(t *testing.T) {
	r := New()
	_, err := r.GetSingleton("nonexistent")
	if err == nil {
		t.Fatal("expected error for unregistered key")
	}
	if !strings.Contains(err.Error(), "not registered") {
		t.Errorf("expected 'not registered' in error, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "nonexistent") {
		t.Errorf("expected offending key in error, got %q", err.Error())
	}
	if !errors.Is(err, ErrNotRegistered) {
		t.Error("expected errors.Is(err, ErrNotRegistered)")
	}

	var nre *NotRegisteredError
	if !errors.As(err, &nre) {
		t.Fatal("expected NotRegisteredError")
	}
	if nre.Key != "nonexistent" || nre.Kind != KindSingleton {
		t.Errorf("unexpected error fields: key=%q kind=%q", nre.Key, nre.Kind)
	}
}

func TestGetFactoryNotRegistered(t *testing.T) {
	r := New()
	_, err := r.GetFactory("nonexistent")
	if err == nil {
		t.Fatal("expected error for unregistered key")
	}

	var nre *NotRegisteredError
	if !errors.As(err, &nre) {
		t.Fatal("expected NotRegisteredError")
	}
	if nre.Kind != KindFactory {
		t.Errorf("expected factory kind, got %q", nre.Kind)
	}
}

func TestNamespacesDoNotCollide(t *testing.T) {
	r := New()
	r.RegisterSingleton("item", func() (any, error) { return "from-singleton", nil })
	r.RegisterFactory("item", func() (any, error) { return "from-factory", nil })

	s, err := r.GetSingleton("item")
	if err != nil {
		t.Fatalf("GetSingleton failed: %v", err)
	}
	if s != "from-singleton" {
		t.Errorf("expected 'from-singleton', got %v", s)
	}

	f, err := r.GetFactory("item")
	if err != nil {
		t.Fatalf("GetFactory failed: %v", err)
	}
	if f != "from-factory" {
		t.Errorf("expected 'from-factory', got %v", f)
	}
}

func TestResetClearsAll(t *testing.T) {
	r := New()
	r.RegisterSingleton("s1", func() (any, error) { return 1, nil })
	r.RegisterSingleton("s2", func() (any, error) { return 2, nil })
	r.RegisterFactory("f1", func() (any, error) { return 3, nil })

	// Populate one singleton cache before resetting.
	if _, err := r.GetSingleton("s1"); err != nil {
		t.Fatalf("GetSingleton failed: %v", err)
	}

	r.Reset()

	for _, key := range []string{"s1", "s2"} {
		if _, err := r.GetSingleton(key); !errors.Is(err, ErrNotRegistered) {
			t.Errorf("expected %q unregistered after reset, got %v", key, err)
		}
	}
	if _, err := r.GetFactory("f1"); !errors.Is(err, ErrNotRegistered) {
		t.Errorf("expected f1 unregistered after reset, got %v", err)
	}

	// Reset is idempotent.
	r.Reset()
}

func TestOverrideBeforeResolution(t *testing.T) {
	r := New()
	oldCalls := 0
	r.RegisterSingleton("svc", func() (any, error) {
		oldCalls++
		return "old", nil
	})
	r.RegisterSingleton("svc", func() (any, error) { return "new", nil })

	val, err := r.GetSingleton("svc")
	if err != nil {
		t.Fatalf("GetSingleton failed: %v", err)
	}
	if val != "new" {
		t.Errorf("expected override to win, got %v", val)
	}
	if oldCalls != 0 {
		t.Errorf("expected replaced factory never invoked, got %d calls", oldCalls)
	}
}

func TestOverrideAfterResolutionDropsCache(t *testing.T) {
	r := New()
	r.RegisterSingleton("svc", func() (any, error) { return "old", nil })
	if _, err := r.GetSingleton("svc"); err != nil {
		t.Fatalf("GetSingleton failed: %v", err)
	}

	r.RegisterSingleton("svc", func() (any, error) { return "new", nil })

	val, err := r.GetSingleton("svc")
	if err != nil {
		t.Fatalf("GetSingleton after override failed: %v", err)
	}
	if val != "new" {
		t.Errorf("expected cached instance dropped on re-registration, got %v", val)
	}
}

func TestSingletonFactoryErrorLeavesSlotEmpty(t *testing.T) {
	r := New()
	boom := errors.New("init failed")
	attempts := 0

	r.RegisterSingleton("flaky", func() (any, error) {
		attempts++
		if attempts == 1 {
			return nil, boom
		}
		return "recovered", nil
	})

	_, err := r.GetSingleton("flaky")
	if !errors.Is(err, boom) {
		t.Fatalf("expected factory error propagated as-is, got %v", err)
	}

	// The failed attempt must not cache anything; the next call retries.
	val, err := r.GetSingleton("flaky")
	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if val != "recovered" {
		t.Errorf("expected 'recovered', got %v", val)
	}
	if attempts != 2 {
		t.Errorf("expected 2 construction attempts, got %d", attempts)
	}
}

func TestFactoryErrorPropagates(t *testing.T) {
	r := New()
	boom := errors.New("construction failed")
	r.RegisterFactory("bad", func() (any, error) { return nil, boom })

	_, err := r.GetFactory("bad")
	if !errors.Is(err, boom) {
		t.Errorf("expected factory error propagated as-is, got %v", err)
	}
}

func TestRegisterEmptyKey(t *testing.T) {
	r := New()
	if err := r.RegisterSingleton("", func() (any, error) { return nil, nil }); err == nil {
		t.Error("expected error for empty singleton key")
	}
	if err := r.RegisterFactory("", func() (any, error) { return nil, nil }); err == nil {
		t.Error("expected error for empty factory key")
	}
}

func TestRegisterNilFactory(t *testing.T) {
	r := New()
	if err := r.RegisterSingleton("svc", nil); err == nil {
		t.Error("expected error for nil factory")
	}
}

func TestConcurrentSingletonResolution(t *testing.T) {
	r := New()
	var mu sync.Mutex
	callCount := 0

	type box struct{ n int }
	r.RegisterSingleton("shared", func() (any, error) {
		mu.Lock()
		callCount++
		n := callCount
		mu.Unlock()
		return &box{n: n}, nil
	})

	const workers = 32
	results := make([]any, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			v, err := r.GetSingleton("shared")
			if err != nil {
				t.Errorf("GetSingleton failed: %v", err)
				return
			}
			results[i] = v
		}(i)
	}
	wg.Wait()

	if callCount != 1 {
		t.Errorf("expected exactly one factory invocation under contention, got %d", callCount)
	}
	for i := 1; i < workers; i++ {
		if results[i] != results[0] {
			t.Fatalf("worker %d observed a different instance", i)
		}
	}
}

func TestRegistrations(t *testing.T) {
	r := New()
	r.RegisterSingleton("s", func() (any, error) { return 1, nil })
	r.RegisterFactory("f", func() (any, error) { return 2, nil })
	r.GetSingleton("s")

	regs := r.Registrations()
	if len(regs) != 2 {
		t.Fatalf("expected 2 registrations, got %d", len(regs))
	}

	byKey := make(map[string]RegistrationInfo)
	for _, info := range regs {
		byKey[info.Key] = info
	}

	if info := byKey["s"]; info.Kind != KindSingleton || !info.Built {
		t.Errorf("singleton: kind=%q built=%v", info.Kind, info.Built)
	}
	if info := byKey["f"]; info.Kind != KindFactory || info.Built {
		t.Errorf("factory: kind=%q built=%v", info.Kind, info.Built)
	}
}

func TestLayeredResolutionOrder(t *testing.T) {
	// Repository -> service -> handler, each factory resolving the layer
	// below. Registration order matters by convention only: resolution of a
	// missing layer fails fast.
	r := New()

	r.RegisterSingleton("widget.repository", func() (any, error) {
		return "repo", nil
	})
	r.RegisterSingleton("widget.service", func() (any, error) {
		repo, err := r.GetSingleton("widget.repository")
		if err != nil {
			return nil, err
		}
		return "service(" + repo.(string) + ")", nil
	})
	r.RegisterSingleton("widget.handler", func() (any, error) {
		svc, err := r.GetSingleton("widget.service")
		if err != nil {
			return nil, err
		}
		return "handler(" + svc.(string) + ")", nil
	})

	h, err := r.GetSingleton("widget.handler")
	if err != nil {
		t.Fatalf("GetSingleton failed: %v", err)
	}
	if h != "handler(service(repo))" {
		t.Errorf("unexpected chain result: %v", h)
	}
}

func TestLayeredResolutionMissingDependency(t *testing.T) {
	r := New()
	r.RegisterSingleton("widget.service", func() (any, error) {
		return r.GetSingleton("widget.repository")
	})

	_, err := r.GetSingleton("widget.service")
	if !errors.Is(err, ErrNotRegistered) {
		t.Errorf("expected not-registered error from nested resolution, got %v", err)
	}
}
