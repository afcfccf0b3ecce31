package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
	"github.com/thornvale/mud/internal/messaging"
)

type NatsConfig struct {
	Host         string `json:"host,omitempty"`
	Port         int    `json:"port,omitempty"`
	StartTimeout string `json:"start_timeout,omitempty"`
}

func (c *NatsConfig) validate() error {
	el := errors.NewErrorList()

	if c.StartTimeout != "" {
		if _, err := time.ParseDuration(c.StartTimeout); err != nil {
			el.Add(fmt.Errorf("parsing start_timeout: %w", err))
		}
	}

	return el.Err()
}

func (c *NatsConfig) buildNatsServer() (*messaging.NatsServer, error) {
	var opts []messaging.NatsServerOpt
	if c.StartTimeout != "" {
		d, err := time.ParseDuration(c.StartTimeout)
		if err != nil {
			return nil, fmt.Errorf("parsing start_timeout: %w", err)
		}
		opts = append(opts, messaging.WithStartupTimeout(d))
	}
	if c.Host != "" {
		opts = append(opts, messaging.WithHost(c.Host))
	}
	if c.Port != 0 {
		opts = append(opts, messaging.WithPort(c.Port))
	}

	return messaging.NewNatsServer(opts...)
}
