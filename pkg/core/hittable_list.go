package core

import (
	"github.com/df07/go-raytracer-core/pkg/math"
)

// HittableList is a flat collection of hittables, itself a Hittable
type HittableList struct {
	objects []Hittable
}

// NewHittableList creates a list holding the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	list := &HittableList{}
	for _, object := range objects {
		list.Add(object)
	}
	return list
}

// Add appends an object to the list
func (l *HittableList) Add(object Hittable) {
	l.objects = append(l.objects, object)
}

// Clear removes all objects
func (l *HittableList) Clear() {
	l.objects = nil
}

// Len returns the number of objects
func (l *HittableList) Len() int {
	return len(l.objects)
}

// Objects returns a copy of the contained objects
func (l *HittableList) Objects() []Hittable {
	objects := make([]Hittable, len(l.objects))
	copy(objects, l.objects)
	return objects
}

// Hit tests every object and returns the closest intersection.
// The upper bound shrinks to the best t found so far, so later objects can
// only report nearer hits.
func (l *HittableList) Hit(ray math.Ray, tMin, tMax float64) (*HitRecord, bool) {
	var closestHit *HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, object := range l.objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T()
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}
