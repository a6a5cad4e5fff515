package core

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNewIntersection_Sentinel(t *testing.T) {
	ray := NewRay(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, -1})
	hit := NewIntersection(ray)

	if !math.IsInf(hit.T, 1) {
		t.Errorf("Expected T=+Inf, got %f", hit.T)
	}
	if hit.Index != NoHit {
		t.Errorf("Expected Index=%d, got %d", NoHit, hit.Index)
	}
	if hit.EpsilonT != DefaultEpsilonT {
		t.Errorf("Expected EpsilonT=%f, got %f", DefaultEpsilonT, hit.EpsilonT)
	}
	if hit.Hit() {
		t.Error("Sentinel record must not report a hit")
	}
	if hit.Ray != ray {
		t.Errorf("Expected query ray to be retained, got %v", hit.Ray)
	}
}

func TestIntersection_Hit(t *testing.T) {
	hit := NewIntersection(NewRay(mgl64.Vec3{}, mgl64.Vec3{0, 0, -1}))
	hit.T = 4
	hit.Index = 0

	if !hit.Hit() {
		t.Error("Expected record with Index=0 to report a hit")
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, -1})
	point := ray.At(4)

	expected := mgl64.Vec3{0, 0, 1}
	if !point.ApproxEqualThreshold(expected, 1e-12) {
		t.Errorf("Expected point %v, got %v", expected, point)
	}
}
