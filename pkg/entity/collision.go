// pkg/entity/collision.go
package entity

// CraftHitsObstacle reports whether the craft's hit circle overlaps the
// obstacle. Touching circles do not collide.
func CraftHitsObstacle(c *Craft, o *Obstacle) bool {
	return c.Collider().Collides(o.Collider())
}

// ProjectileHitsObstacle reports whether the projectile overlaps the obstacle.
func ProjectileHitsObstacle(p *Projectile, o *Obstacle) bool {
	return p.Collider().Collides(o.Collider())
}
