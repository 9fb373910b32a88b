package core

// Color is a semantic foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorEnemy         // Enemy target
	ColorCivilian      // Civilian target
	ColorProjectile    // Projectile in flight
	ColorSight         // Aiming sight
	ColorBaseline      // Divider between field and player zone
	ColorPlayer        // Player turret
	ColorHUD           // Score/time/health line
	ColorHealth        // Remaining hearts
	ColorDim           // Secondary text
)
