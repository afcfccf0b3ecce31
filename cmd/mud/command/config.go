package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"

	"github.com/thornvale/mud/internal/combat"
	"github.com/thornvale/mud/internal/dispatch"
	"github.com/thornvale/mud/internal/driver"
)

type Config struct {
	TickLength      string        `json:"tick_length,omitempty"`
	CombatInterval  string        `json:"combat_interval,omitempty"`
	InactivityLimit string        `json:"inactivity_limit,omitempty"`
	SpawnRoom       string        `json:"spawn_room"`
	Storage         StorageConfig `json:"storage"`
	Nats            NatsConfig    `json:"nats"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if _, err := c.tickLength(); err != nil {
		el.Add(err)
	}
	if _, err := c.combatInterval(); err != nil {
		el.Add(err)
	}
	if _, err := c.inactivityLimit(); err != nil {
		el.Add(err)
	}
	if c.SpawnRoom == "" {
		el.Add(fmt.Errorf("spawn_room is required"))
	}

	el.Add(c.Storage.validate())
	el.Add(c.Nats.validate())

	return el.Err()
}

func (c *Config) tickLength() (time.Duration, error) {
	return parseDuration("tick_length", c.TickLength, driver.DefaultTickLength)
}

func (c *Config) combatInterval() (time.Duration, error) {
	return parseDuration("combat_interval", c.CombatInterval, combat.DefaultInterval)
}

func (c *Config) inactivityLimit() (time.Duration, error) {
	return parseDuration("inactivity_limit", c.InactivityLimit, dispatch.DefaultInactivityLimit)
}

func parseDuration(name, value string, fallback time.Duration) (time.Duration, error) {
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", name, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", name)
	}
	return d, nil
}
