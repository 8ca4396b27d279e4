package engine

import (
	"testing"

	"hotkeyengine/internal/buttontype"
)

func TestTaggingInjectorAlwaysTagsEmissions(t *testing.T) {
	raw := &NoopRawInjector{}
	injector := NewTaggingInjector(raw)

	if err := injector.Press(buttontype.A); err != nil {
		t.Fatalf("Press: %v", err)
	}
	if err := injector.Release(buttontype.A); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if err := injector.Click(buttontype.B); err != nil {
		t.Fatalf("Click: %v", err)
	}

	if len(raw.Sent) != 4 {
		t.Fatalf("expected 4 recorded emissions (press, release, click's press+release), got %d", len(raw.Sent))
	}
	for _, sent := range raw.Sent {
		if !sent.Injected {
			t.Errorf("emission %+v must carry the origin tag", sent)
		}
	}
}

func TestTaggingInjectorMotionAndWheel(t *testing.T) {
	raw := &NoopRawInjector{}
	injector := NewTaggingInjector(raw)

	if err := injector.MoveRel(5, -3); err != nil {
		t.Fatalf("MoveRel: %v", err)
	}
	if err := injector.MoveAbs(100, 200); err != nil {
		t.Fatalf("MoveAbs: %v", err)
	}
	if err := injector.RotateWheel(120); err != nil {
		t.Fatalf("RotateWheel: %v", err)
	}

	x, y, err := injector.CursorPosition()
	if err != nil {
		t.Fatalf("CursorPosition: %v", err)
	}
	if x != 100 || y != 200 {
		t.Errorf("CursorPosition() = (%d, %d), want (100, 200)", x, y)
	}
}

func TestTaggingInjectorQueries(t *testing.T) {
	raw := &NoopRawInjector{}
	injector := NewTaggingInjector(raw)

	pressed, err := injector.IsPressed(buttontype.A)
	if err != nil || pressed {
		t.Errorf("IsPressed = %v, %v, want false, nil", pressed, err)
	}
	toggled, err := injector.IsToggled(buttontype.A)
	if err != nil || toggled {
		t.Errorf("IsToggled = %v, %v, want false, nil", toggled, err)
	}
}
