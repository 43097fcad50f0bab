package config

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be within [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}
	if c.Auth.MinPasswordLen < 1 {
		return fmt.Errorf("auth.min_password_len must be > 0 (got %d)", c.Auth.MinPasswordLen)
	}

	if c.RateLimit.AuthPerMinute < 1 || c.RateLimit.APIPerMinute < 1 {
		return fmt.Errorf("rate_limit: per-minute limits must be > 0 (got auth=%d api=%d)",
			c.RateLimit.AuthPerMinute, c.RateLimit.APIPerMinute)
	}

	if err := c.Detector.validate(); err != nil {
		return fmt.Errorf("detector: %w", err)
	}
	if err := c.Capture.validate(); err != nil {
		return fmt.Errorf("capture: %w", err)
	}
	if c.Capture.Classifier == "remote" && c.Detector.Backend != "grpc" {
		return errors.New("capture.classifier=remote requires detector.backend=grpc")
	}

	return nil
}

func (d *DetectorConfig) validate() error {
	if !slices.Contains([]string{"grpc", "static"}, d.Backend) {
		return fmt.Errorf("backend must be one of grpc, static (got %q)", d.Backend)
	}
	if d.Backend == "grpc" && d.Address == "" {
		return errors.New("address is required for the grpc backend")
	}
	if d.DetectTimeout <= 0 {
		return fmt.Errorf("detect_timeout must be > 0 (got %v)", d.DetectTimeout)
	}
	if d.InitTimeout <= 0 {
		return fmt.Errorf("init_timeout must be > 0 (got %v)", d.InitTimeout)
	}
	if d.MaxMessageSizeMB <= 0 {
		return fmt.Errorf("max_message_size_mb must be > 0 (got %d)", d.MaxMessageSizeMB)
	}
	if d.StaticFaces < 0 {
		return fmt.Errorf("static_faces must be >= 0 (got %d)", d.StaticFaces)
	}
	if d.BreakerFailureRatio <= 0 || d.BreakerFailureRatio > 1 {
		return fmt.Errorf("breaker_failure_ratio must be within (0, 1] (got %v)", d.BreakerFailureRatio)
	}
	return nil
}

func (c *CaptureConfig) validate() error {
	if c.FrameWidth <= 0 || c.FrameHeight <= 0 {
		return fmt.Errorf("frame size must be positive (got %dx%d)", c.FrameWidth, c.FrameHeight)
	}
	if !slices.Contains([]string{"user", "environment"}, c.FacingMode) {
		return fmt.Errorf("facing_mode must be user or environment (got %q)", c.FacingMode)
	}
	if !slices.Contains([]string{"random", "remote"}, c.Classifier) {
		return fmt.Errorf("classifier must be random or remote (got %q)", c.Classifier)
	}
	return nil
}
