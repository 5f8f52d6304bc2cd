// Package picking casts pointer rays against editor pickables using the orbit camera.
package picking

import (
	"github.com/philipparndt/gobox/internal/editor"
	"github.com/philipparndt/gobox/pkg/geometry"
	"github.com/philipparndt/gobox/pkg/viewer"
)

// Provider implements editor.GeometryProvider on top of a viewer.Camera
type Provider struct {
	Camera *viewer.Camera
	Aspect float64 // Viewport width / height
}

// NewProvider creates a provider for the given camera and viewport size
func NewProvider(camera *viewer.Camera, width, height float64) *Provider {
	p := &Provider{Camera: camera}
	p.Resize(width, height)
	return p
}

// Resize updates the viewport aspect ratio
func (p *Provider) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		p.Aspect = 1
		return
	}
	p.Aspect = width / height
}

// Ray projects normalized device coordinates into a world ray
func (p *Provider) Ray(ndc geometry.Vector2) geometry.Ray {
	return p.Camera.RayFromNDC(ndc, p.Aspect)
}

// Intersect returns the nearest pickable hit by the ray. Ties keep the
// earlier pickable, so callers list preferred targets first.
func (p *Provider) Intersect(ray geometry.Ray, targets []editor.Pickable) (editor.Hit, bool) {
	var best editor.Hit
	found := false

	for _, t := range targets {
		dist, normal, ok := t.Bounds.IntersectRay(ray)
		if !ok {
			continue
		}
		if found && dist >= best.Distance {
			continue
		}
		best = editor.Hit{
			Target:   t.Target,
			Point:    ray.At(dist),
			Normal:   normal,
			Distance: dist,
		}
		found = true
	}
	return best, found
}

// IntersectPlane intersects the ray with a plane
func (p *Provider) IntersectPlane(ray geometry.Ray, plane geometry.Plane) (geometry.Vector3, bool) {
	return plane.IntersectRay(ray)
}

// CameraPosition returns the camera's world position
func (p *Provider) CameraPosition() geometry.Vector3 {
	return p.Camera.Position
}

var _ editor.GeometryProvider = (*Provider)(nil)
