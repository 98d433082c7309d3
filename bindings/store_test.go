package bindings

import (
	"sync"
	"testing"
)

func TestStoreLifecycle(t *testing.T) {
	s := NewStore()

	if s.Snapshot() != nil {
		t.Errorf("fresh store has a graph")
	}
	if _, ok := s.BindingByID("spaceship_general.v_eject"); ok {
		t.Errorf("empty store resolved an action")
	}

	g := buildSampleGraph(t)
	s.Replace(g)

	if s.Snapshot() != g {
		t.Errorf("Snapshot() did not return the published graph")
	}
	if _, ok := s.BindingByID("spaceship_general.v_eject"); !ok {
		t.Errorf("BindingByID failed after Replace")
	}

	s.Clear()
	if s.Snapshot() != nil {
		t.Errorf("Clear() left a graph behind")
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := NewStore()
	g := buildSampleGraph(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Replace(g)
				s.Clear()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if snap := s.Snapshot(); snap != nil {
					snap.BindingByID("spaceship_general.v_eject")
				}
			}
		}()
	}
	wg.Wait()
}
