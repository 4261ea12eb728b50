package sm64

// DynamicSurface is a movable collision object, such as a lift or a
// rotating platform. Create it with Sm64.CreateDynamicSurface.
type DynamicSurface struct {
	ctx    *Sm64
	id     uint32
	closed bool
}

// Transform repositions or rotates the surface.
func (d *DynamicSurface) Transform(transform SurfaceTransform) {
	t := transform.native()
	d.ctx.lib.surfaceObjectMove(d.id, &t)
}

// Close deletes the native surface object. It is idempotent;
// Sm64.Close closes any dynamic surface still live.
func (d *DynamicSurface) Close() {
	if d.closed {
		return
	}
	delete(d.ctx.objects, d.id)
	d.release()
}

func (d *DynamicSurface) release() {
	d.closed = true
	d.ctx.lib.surfaceObjectDelete(d.id)
}
