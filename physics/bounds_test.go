package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/paperflight/component"
)

func TestPlaneBoundsLevel(t *testing.T) {
	p := component.Plane{Position: mgl64.Vec3{1, 10, -2}}
	b := PlaneBounds(&p)

	wantMin := mgl64.Vec3{-0.2, 10, -2.6}
	wantMax := mgl64.Vec3{2.2, 10.3, -1.4}
	if !b.Min.ApproxEqualThreshold(wantMin, 1e-12) {
		t.Errorf("Min = %v, want %v", b.Min, wantMin)
	}
	if !b.Max.ApproxEqualThreshold(wantMax, 1e-12) {
		t.Errorf("Max = %v, want %v", b.Max, wantMax)
	}
}

func TestPlaneBoundsRollRaisesWingTip(t *testing.T) {
	p := component.Plane{Roll: 0.5}
	b := PlaneBounds(&p)

	// A rolled wing tip at x=±1.2 swings by 1.2*sin(0.5) vertically
	reach := 1.2 * math.Sin(0.5)
	if b.Max.Y() < reach-1e-9 || b.Min.Y() > -reach+1e-9 {
		t.Errorf("rolled hull y span = [%v,%v], want at least ±%v", b.Min.Y(), b.Max.Y(), reach)
	}
	if b.Max.X() >= 1.2 {
		t.Errorf("rolled span should shrink below 1.2, got %v", b.Max.X())
	}
}

func TestRingReached(t *testing.T) {
	p := component.Plane{Position: mgl64.Vec3{0, 5, 0}}
	tests := []struct {
		ring mgl64.Vec3
		want bool
	}{
		{mgl64.Vec3{0, 5, 0}, true},
		{mgl64.Vec3{1, 1 + 5, 0}, true},
		{mgl64.Vec3{0, 5, 1.5}, false},
		{mgl64.Vec3{3, 5, 0}, false},
	}
	for _, tt := range tests {
		r := component.Ring{Position: tt.ring}
		if got := RingReached(&p, &r, 1.5); got != tt.want {
			t.Errorf("RingReached(%v) = %v, want %v", tt.ring, got, tt.want)
		}
	}
}
