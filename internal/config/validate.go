package config

import "fmt"

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that the configuration describes a playable gallery.
// Checks:
//   - Field dimensions are positive and the spawn band fits the largest target
//   - Size and TTL ranges are ordered
//   - Timers and health are positive
//   - Shots start inside the field
//   - Damage and name length are not negative
func (c GalleryConfig) Validate() error {
	if err := c.validateField(); err != nil {
		return err
	}
	if err := c.validateTargets(); err != nil {
		return err
	}
	if err := c.validateSession(); err != nil {
		return err
	}

	if c.Projectile.Speed <= 0 {
		return ValidationError{
			Code:    "INVALID_SPEED",
			Message: fmt.Sprintf("projectile speed must be positive, got %g", c.Projectile.Speed),
		}
	}
	if off := c.Projectile.LaunchOffset; off < 0 || off >= c.Field.SpawnHeight() {
		return ValidationError{
			Code:    "INVALID_LAUNCH_OFFSET",
			Message: fmt.Sprintf("launch_offset must be in [0, %g), got %g", c.Field.SpawnHeight(), off),
		}
	}
	if sc := c.Scoring; sc.CivilianDamage < 0 || sc.EscapeDamage < 0 {
		return ValidationError{
			Code:    "INVALID_SCORING",
			Message: fmt.Sprintf("civilian_damage %d and escape_damage %d must not be negative", sc.CivilianDamage, sc.EscapeDamage),
		}
	}
	if c.Leaderboard.Size <= 0 {
		return ValidationError{
			Code:    "INVALID_LEADERBOARD",
			Message: fmt.Sprintf("leaderboard size must be positive, got %d", c.Leaderboard.Size),
		}
	}
	if c.Leaderboard.NameMaxLen < 0 {
		return ValidationError{
			Code:    "INVALID_LEADERBOARD",
			Message: fmt.Sprintf("name_max_len must not be negative, got %d", c.Leaderboard.NameMaxLen),
		}
	}

	return nil
}

func (c GalleryConfig) validateField() error {
	f := c.Field
	if f.Width <= 0 || f.Height <= 0 {
		return ValidationError{
			Code:    "INVALID_FIELD",
			Message: fmt.Sprintf("field must have positive size, got %gx%g", f.Width, f.Height),
		}
	}
	if f.PlayerZone < 0 || f.PlayerZone >= 1 {
		return ValidationError{
			Code:    "INVALID_FIELD",
			Message: fmt.Sprintf("player_zone must be in [0, 1), got %g", f.PlayerZone),
		}
	}
	if c.Targets.MaxSize > f.Width || c.Targets.MaxSize > f.SpawnHeight() {
		return ValidationError{
			Code:    "FIELD_TOO_SMALL",
			Message: fmt.Sprintf("largest target (%g) does not fit the spawn area %gx%g", c.Targets.MaxSize, f.Width, f.SpawnHeight()),
		}
	}
	return nil
}

func (c GalleryConfig) validateTargets() error {
	t := c.Targets
	if t.MinSize <= 0 || t.MinSize > t.MaxSize {
		return ValidationError{
			Code:    "INVALID_SIZE_RANGE",
			Message: fmt.Sprintf("target size range [%g, %g] is invalid", t.MinSize, t.MaxSize),
		}
	}
	if t.MinTTL <= 0 || t.MinTTL > t.MaxTTL {
		return ValidationError{
			Code:    "INVALID_TTL_RANGE",
			Message: fmt.Sprintf("target ttl range [%s, %s] is invalid", t.MinTTL, t.MaxTTL),
		}
	}
	if t.SpawnInterval <= 0 {
		return ValidationError{
			Code:    "INVALID_SPAWN_INTERVAL",
			Message: fmt.Sprintf("spawn interval must be positive, got %s", t.SpawnInterval),
		}
	}
	if t.DangerChance < 0 || t.DangerChance > 1 {
		return ValidationError{
			Code:    "INVALID_DANGER_CHANCE",
			Message: fmt.Sprintf("danger_chance must be in [0, 1], got %g", t.DangerChance),
		}
	}
	return nil
}

func (c GalleryConfig) validateSession() error {
	s := c.Session
	if s.Duration <= 0 || s.CountdownInterval <= 0 {
		return ValidationError{
			Code:    "INVALID_DURATION",
			Message: fmt.Sprintf("duration %s and countdown interval %s must be positive", s.Duration, s.CountdownInterval),
		}
	}
	if s.MaxHealth <= 0 {
		return ValidationError{
			Code:    "INVALID_HEALTH",
			Message: fmt.Sprintf("max_health must be positive, got %d", s.MaxHealth),
		}
	}
	return nil
}
