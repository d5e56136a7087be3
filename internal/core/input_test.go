package core

import "testing"

func TestInputFrameEvents(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionFire) {
		t.Error("empty frame should not have Fire")
	}

	f.Set(ActionFire)
	if !f.Has(ActionFire) {
		t.Error("Fire should be set")
	}
	if f.IsHeld(ActionFire) {
		t.Error("a discrete event must not count as held")
	}

	f.SetHeld(ActionFire, true)
	if !f.IsHeld(ActionFire) {
		t.Error("Fire should be held")
	}
	f.SetHeld(ActionFire, false)
	if f.IsHeld(ActionFire) {
		t.Error("Fire should be released")
	}

	f.Set(ActionJump)
	f.SetHeld(ActionFire, true)
	f.Clear()
	if f.Has(ActionJump) || f.IsHeld(ActionFire) {
		t.Error("Clear should reset events and held keys")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame

	if f.Has(ActionJump) || f.IsHeld(ActionFire) {
		t.Error("zero frame should report nothing")
	}

	f.Set(ActionJump)
	f.SetHeld(ActionFire, true)
	if !f.Has(ActionJump) || !f.IsHeld(ActionFire) {
		t.Error("zero frame should lazily allocate")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionJump:  "Jump",
		ActionFire:  "Fire",
		ActionQuit:  "Quit",
		Action(999): "Unknown",
	}
	for a, expected := range tests {
		if a.String() != expected {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), a.String(), expected)
		}
	}
}
