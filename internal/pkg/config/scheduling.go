package config

import (
	"fmt"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

const maxMaterializeDaysLimit = 3660

// ApplyFile overlays the keys present in a YAML file onto c. Absent keys keep their current value.
func (c *SchedulingConfig) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read scheduling config %s: %w", path, err)
	}
	return c.ApplyYAML(data)
}

func (c *SchedulingConfig) ApplyYAML(data []byte) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse scheduling config: %w", err)
	}
	return nil
}

func (c SchedulingConfig) Validate() error {
	if c.SlotGranularity < time.Minute || c.SlotGranularity%time.Minute != 0 {
		return fmt.Errorf("slot granularity must be a positive whole number of minutes, got %s", c.SlotGranularity)
	}
	if c.MaxMaterializeDays < 1 || c.MaxMaterializeDays > maxMaterializeDaysLimit {
		return fmt.Errorf("max materialize days must be between 1 and %d, got %d", maxMaterializeDaysLimit, c.MaxMaterializeDays)
	}
	if c.IdempotencyTTL <= 0 {
		return fmt.Errorf("idempotency ttl must be positive, got %s", c.IdempotencyTTL)
	}
	if c.DefaultCapacity < 1 {
		return fmt.Errorf("default capacity must be at least 1, got %d", c.DefaultCapacity)
	}
	return nil
}

func (c HorizonConfig) Validate() error {
	if _, err := cron.ParseStandard(c.Schedule); err != nil {
		return fmt.Errorf("invalid horizon schedule %q: %w", c.Schedule, err)
	}
	if c.Days < 1 {
		return fmt.Errorf("horizon days must be at least 1, got %d", c.Days)
	}
	return nil
}
