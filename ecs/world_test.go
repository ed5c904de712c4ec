package ecs

import (
	"testing"

	"github.com/milk9111/giftrunner/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("second DestroyEntity should return false")
				}
			}
		})
	}
}

func TestRecycledSlotRejectsStaleHandle(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()

	old := CreateEntity(w)
	if err := Add(w, old, kind, intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected slot reuse, got id %d vs %d", fresh.id(), old.id())
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle should not be alive")
	}
	if _, ok := Get(w, fresh, kind); ok {
		t.Fatalf("recycled entity should not inherit components")
	}
	if err := Add(w, old, kind, intPtr(2)); err != component.ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestComponentsAddGetRemove(t *testing.T) {
	w := NewWorld()
	ki := component.NewComponentKind[int]()
	ks := component.NewComponentKind[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	name := "b"

	tests := []struct {
		name  string
		setup func() error
		check func(t *testing.T)
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, ki, intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, ki)
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
		},
		{
			name:  "add_string_to_e2",
			setup: func() error { return Add(w, e2, ks, &name) },
			check: func(t *testing.T) {
				if !Has(w, e2, ks) || Has(w, e1, ks) {
					t.Fatalf("string component should only be on e2")
				}
			},
		},
		{
			name:  "nil_value_rejected",
			setup: func() error { return nil },
			check: func(t *testing.T) {
				if err := Add[int](w, e1, ki, nil); err != component.ErrNilComponent {
					t.Fatalf("expected ErrNilComponent, got %v", err)
				}
			},
		},
		{
			name:  "remove_int",
			setup: func() error { return nil },
			check: func(t *testing.T) {
				if !Remove(w, e1, ki) {
					t.Fatalf("remove should report true")
				}
				if Has(w, e1, ki) {
					t.Fatalf("component still present after remove")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
		})
	}
}

func TestQueryAndForEach(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)
	_ = Add(w, e1, ka, intPtr(1))
	_ = Add(w, e2, ka, intPtr(2))
	_ = Add(w, e2, kb, intPtr(3))
	_ = Add(w, e3, kb, intPtr(4))

	t.Run("single_kind", func(t *testing.T) {
		var ents []Entity
		ForEach(w, ka, func(e Entity, _ *int) { ents = append(ents, e) })
		set := toSet(ents)
		if _, ok := set[e1]; !ok {
			t.Fatalf("expected e1")
		}
		if _, ok := set[e2]; !ok {
			t.Fatalf("expected e2")
		}
		if _, ok := set[e3]; ok {
			t.Fatalf("did not expect e3")
		}
	})

	t.Run("intersection", func(t *testing.T) {
		res := w.Query(ka, kb)
		if len(res) != 1 || res[0] != e2 {
			t.Fatalf("expected only e2, got %v", res)
		}
		sum := 0
		ForEach2(w, ka, kb, func(_ Entity, a, b *int) { sum += *a + *b })
		if sum != 5 {
			t.Fatalf("expected 5, got %d", sum)
		}
	})

	t.Run("missing_store", func(t *testing.T) {
		kc := component.NewComponentKind[int]()
		if res := w.Query(ka, kc); len(res) != 0 {
			t.Fatalf("expected empty result, got %v", res)
		}
		var res []Entity
		ForEach3(w, ka, kb, kc, func(e Entity, _, _, _ *int) { res = append(res, e) })
		if len(res) != 0 {
			t.Fatalf("expected empty result, got %v", res)
		}
	})

	t.Run("destroy_during_iteration", func(t *testing.T) {
		visited := 0
		ForEach(w, kb, func(e Entity, _ *int) {
			visited++
			DestroyEntity(w, e2)
			DestroyEntity(w, e3)
		})
		if visited != 1 {
			t.Fatalf("destroyed entities should be skipped, visited=%d", visited)
		}
		if _, ok := First(w, kb); ok {
			t.Fatalf("no entity should carry kb anymore")
		}
	})
}

func TestEventQueue(t *testing.T) {
	w := NewWorld()
	w.Events().Push(Event{Type: EventRoundWon})
	w.Events().Push(Event{Type: EventPlayerEnemyContact, Data: ContactEvent{}})
	w.Events().Push(Event{Type: EventPlayerEnemyContact, Data: ContactEvent{}})

	contacts := 0
	w.Events().Each(EventPlayerEnemyContact, func(Event) { contacts++ })
	if contacts != 2 {
		t.Fatalf("expected 2 contact events, got %d", contacts)
	}
	if got := len(w.Events().Drain()); got != 3 {
		t.Fatalf("expected 3 drained events, got %d", got)
	}
	if w.Events().Len() != 0 {
		t.Fatalf("queue should be empty after drain")
	}
}

type countingSystem struct {
	order *[]string
	name  string
}

func (s countingSystem) Update(*World) { *s.order = append(*s.order, s.name) }

func TestSchedulerOrder(t *testing.T) {
	var order []string
	s := NewScheduler(countingSystem{&order, "input"}, nil, countingSystem{&order, "physics"})
	s.Add(countingSystem{&order, "render"})
	s.Update(NewWorld())
	if len(order) != 3 || order[0] != "input" || order[1] != "physics" || order[2] != "render" {
		t.Fatalf("unexpected order %v", order)
	}
}
