package movement

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/gridstep/internal/direction"
	"github.com/vovakirdan/gridstep/internal/input"
)

// fakeTransform records every write it receives.
type fakeTransform struct {
	rotation  mgl64.Quat
	position  mgl64.Vec3
	rotWrites int
	posWrites int
}

func (f *fakeTransform) SetRotation(q mgl64.Quat) {
	f.rotation = q
	f.rotWrites++
}

func (f *fakeTransform) SetPosition(p mgl64.Vec3) {
	f.position = p
	f.posWrites++
}

// sameOrientation compares quaternions up to sign.
func sameOrientation(a, b mgl64.Quat) bool {
	const eps = 1e-9
	return a.ApproxEqualThreshold(b, eps) || a.ApproxEqualThreshold(b.Scale(-1), eps)
}

func newTestStepper(facing direction.Direction) (*Stepper, *fakeTransform) {
	tf := &fakeTransform{}
	cfg := Config{MovementSpeed: 2, RotateSpeed: 2}
	return NewStepper(cfg, tf, mgl64.Vec3{0, 0, 0}, facing), tf
}

func TestNewStepperWritesInitialState(t *testing.T) {
	s, tf := newTestStepper(direction.Left)

	if s.Moving() {
		t.Error("new stepper should be idle")
	}
	if tf.rotWrites != 1 || tf.posWrites != 1 {
		t.Errorf("expected one initial write each, got %d rotation, %d position", tf.rotWrites, tf.posWrites)
	}
	if !sameOrientation(tf.rotation, direction.Left.Rotation()) {
		t.Errorf("initial rotation = %v, expected Left", tf.rotation)
	}
}

func TestRotateThenTranslate(t *testing.T) {
	s, tf := newTestStepper(direction.Up)

	if !s.Press(direction.Right) {
		t.Fatal("Press on idle stepper should be accepted")
	}
	if s.Phase() != PhaseRotate {
		t.Fatalf("Phase() = %v, expected Rotate", s.Phase())
	}

	s.Tick(0.5)
	if s.Facing() != direction.Right {
		t.Errorf("Facing() = %v, expected Right after rotation completes", s.Facing())
	}
	if s.Phase() != PhaseTranslate {
		t.Errorf("Phase() = %v, expected Translate", s.Phase())
	}
	if s.Progress() != 0 {
		t.Errorf("translation progress = %f, expected 0", s.Progress())
	}
	if !sameOrientation(tf.rotation, direction.Right.Rotation()) {
		t.Errorf("rotation = %v, expected Right", tf.rotation)
	}
	if tf.position != (mgl64.Vec3{0, 0, 0}) {
		t.Errorf("position moved during rotation: %v", tf.position)
	}

	finished := s.Tick(0.5)
	if !finished {
		t.Error("Tick should report the move finished")
	}
	if s.Moving() {
		t.Error("stepper should be idle after the move")
	}
	if tf.position != (mgl64.Vec3{1, 0, 0}) {
		t.Errorf("position = %v, expected (1, 0, 0)", tf.position)
	}
}

func TestRotationInterpolates(t *testing.T) {
	s, tf := newTestStepper(direction.Up)
	s.Press(direction.Left)

	s.Tick(0.25)
	if s.Progress() != 0.5 {
		t.Fatalf("Progress() = %f, expected 0.5", s.Progress())
	}
	if s.Facing() != direction.Up {
		t.Errorf("facing should not change until rotation completes, got %v", s.Facing())
	}

	// Halfway from 0 to 90 degrees about Z.
	expected := mgl64.QuatRotate(mgl64.DegToRad(45), mgl64.Vec3{0, 0, 1})
	if !sameOrientation(tf.rotation, expected) {
		t.Errorf("rotation = %v, expected %v", tf.rotation, expected)
	}
}

func TestRotationTakesShortArc(t *testing.T) {
	s, tf := newTestStepper(direction.Up)
	s.Press(direction.Right)

	s.Tick(0.25)
	// Up is 0 degrees and Right is 270, so halfway is -45 degrees.
	expected := mgl64.QuatRotate(mgl64.DegToRad(-45), mgl64.Vec3{0, 0, 1})
	if !sameOrientation(tf.rotation, expected) {
		t.Errorf("rotation = %v, expected %v", tf.rotation, expected)
	}
}

func TestSameDirectionSkipsRotation(t *testing.T) {
	s, tf := newTestStepper(direction.Right)
	rotWrites := tf.rotWrites

	s.Press(direction.Right)
	if s.Phase() != PhaseTranslate {
		t.Fatalf("Phase() = %v, expected Translate", s.Phase())
	}

	s.Tick(0.25)
	if s.Progress() != 0.5 {
		t.Errorf("Progress() = %f, expected 0.5", s.Progress())
	}
	if tf.position != (mgl64.Vec3{0.5, 0, 0}) {
		t.Errorf("position = %v, expected (0.5, 0, 0)", tf.position)
	}
	if tf.rotWrites != rotWrites {
		t.Errorf("rotation written %d times during a straight move", tf.rotWrites-rotWrites)
	}
}

func TestPressWhileMovingIsDropped(t *testing.T) {
	s, tf := newTestStepper(direction.Up)
	s.Press(direction.Right)
	s.Tick(0.25)

	if s.Press(direction.Down) {
		t.Error("Press while moving should be dropped")
	}
	if s.Target() != direction.Right {
		t.Errorf("Target() = %v, expected Right", s.Target())
	}

	for s.Moving() {
		s.Tick(0.1)
	}

	ref, refTf := newTestStepper(direction.Up)
	ref.Press(direction.Right)
	for ref.Moving() {
		ref.Tick(0.1)
	}

	if s.Facing() != ref.Facing() {
		t.Errorf("Facing() = %v, expected %v", s.Facing(), ref.Facing())
	}
	if !tf.position.ApproxEqual(refTf.position) {
		t.Errorf("position = %v, expected %v", tf.position, refTf.position)
	}
}

func TestIdleAcceptsAfterMove(t *testing.T) {
	s, tf := newTestStepper(direction.Down)
	s.Press(direction.Down)
	s.Tick(1)

	if !s.Press(direction.Down) {
		t.Fatal("Press after completed move should be accepted")
	}
	s.Tick(1)
	if tf.position != (mgl64.Vec3{0, -2, 0}) {
		t.Errorf("position = %v, expected (0, -2, 0)", tf.position)
	}
}

func TestTickWhileIdle(t *testing.T) {
	s, tf := newTestStepper(direction.Up)
	writes := tf.posWrites + tf.rotWrites

	if s.Tick(1) {
		t.Error("idle Tick should not report completion")
	}
	if tf.posWrites+tf.rotWrites != writes {
		t.Error("idle Tick should not write to the transform")
	}
}

func TestProgressClamped(t *testing.T) {
	s, tf := newTestStepper(direction.Up)
	s.Press(direction.Up)
	s.Tick(10)

	if tf.position != (mgl64.Vec3{0, 1, 0}) {
		t.Errorf("position = %v, expected exactly one step", tf.position)
	}
}

func TestSetFacingResyncsRotation(t *testing.T) {
	s, tf := newTestStepper(direction.Up)

	s.SetFacing(direction.Down)
	if s.Facing() != direction.Down {
		t.Errorf("Facing() = %v, expected Down", s.Facing())
	}
	if !sameOrientation(tf.rotation, direction.Down.Rotation()) {
		t.Errorf("rotation = %v, expected Down", tf.rotation)
	}
	if s.Moving() {
		t.Error("SetFacing should not start a move")
	}
}

func TestAttachDetach(t *testing.T) {
	src := input.NewDispatcher()
	s, tf := newTestStepper(direction.Left)

	s.Attach(src)
	if !s.Attached() || src.Len() != 1 {
		t.Fatal("stepper should be registered after Attach")
	}

	src.Emit(direction.Left)
	if !s.Moving() {
		t.Fatal("event should start a move")
	}
	s.Tick(1)

	s.Detach()
	if s.Attached() || src.Len() != 0 {
		t.Fatal("stepper should be deregistered after Detach")
	}
	src.Emit(direction.Left)
	if s.Moving() {
		t.Error("detached stepper should ignore events")
	}
	if tf.position != (mgl64.Vec3{-1, 0, 0}) {
		t.Errorf("position = %v, expected (-1, 0, 0)", tf.position)
	}
}

func TestDetachedByPeerDuringDispatch(t *testing.T) {
	src := input.NewDispatcher()
	victim, tf := newTestStepper(direction.Up)

	src.Subscribe(input.ListenerFunc(func(direction.Direction) {
		victim.Detach()
	}))
	victim.Attach(src)

	src.Emit(direction.Up)

	if victim.Moving() {
		t.Errorf("detached stepper started a move, phase = %v", victim.Phase())
	}
	if tf.posWrites != 1 {
		t.Errorf("posWrites = %d, expected only the initial write", tf.posWrites)
	}
}

func TestSetFacingDuringRotation(t *testing.T) {
	s, tf := newTestStepper(direction.Up)
	s.Press(direction.Right)
	s.Tick(0.25)

	s.SetFacing(direction.Down)
	if !sameOrientation(tf.rotation, direction.Down.Rotation()) {
		t.Fatalf("rotation = %v, expected Down right after SetFacing", tf.rotation)
	}
	if s.Phase() != PhaseRotate {
		t.Fatalf("Phase() = %v, expected rotation to continue", s.Phase())
	}

	s.Tick(0.25)
	if s.Phase() != PhaseTranslate || s.Facing() != direction.Right {
		t.Errorf("after rotation: phase %v facing %v, expected Translate facing Right", s.Phase(), s.Facing())
	}
	if !sameOrientation(tf.rotation, direction.Right.Rotation()) {
		t.Errorf("rotation = %v, expected the running rotation to win", tf.rotation)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"positive", Config{MovementSpeed: 1, RotateSpeed: 3}, false},
		{"zero movement", Config{MovementSpeed: 0, RotateSpeed: 3}, true},
		{"negative rotate", Config{MovementSpeed: 1, RotateSpeed: -1}, true},
	}

	for _, tc := range tests {
		err := tc.cfg.Validate()
		if tc.wantErr != (err != nil) {
			t.Errorf("%s: Validate() = %v, wantErr %v", tc.name, err, tc.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidSpeed) {
			t.Errorf("%s: error should wrap ErrInvalidSpeed", tc.name)
		}
	}
}
