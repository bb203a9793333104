package registry

import "testing"

func TestRegisterAndList(t *testing.T) {
	Register(Character{ID: "test-cheap", Name: "Cheap", Cost: 1})
	Register(Character{ID: "test-pricey", Name: "Pricey", Cost: 99, WindFactor: 0.5})
	Register(Character{ID: "test-free", Name: "Free"})

	list := List()
	if len(list) < 3 {
		t.Fatalf("List() returned %d characters", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].Cost > list[i].Cost {
			t.Fatalf("List() not ordered by cost: %v before %v", list[i-1].ID, list[i].ID)
		}
	}

	c, err := Get("test-cheap")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if c.WindFactor != 1 {
		t.Errorf("zero wind factor should default to 1, got %v", c.WindFactor)
	}
	if p, _ := Get("test-pricey"); p.WindFactor != 0.5 {
		t.Errorf("explicit wind factor lost: %v", p.WindFactor)
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("no-such-penguin"); err == nil {
		t.Error("Get of unknown ID should fail")
	}
	if Exists("no-such-penguin") {
		t.Error("Exists of unknown ID should be false")
	}
	if c := Lookup("no-such-penguin"); c.ID != DefaultCharacterID {
		t.Errorf("Lookup fallback = %q, expected %q", c.ID, DefaultCharacterID)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(Character{ID: "test-dup"})
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(Character{ID: "test-dup"})
}
