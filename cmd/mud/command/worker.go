package command

import (
	"fmt"

	"github.com/pixil98/go-service"

	"github.com/thornvale/mud/internal/combat"
	"github.com/thornvale/mud/internal/commands"
	"github.com/thornvale/mud/internal/dispatch"
	"github.com/thornvale/mud/internal/driver"
	"github.com/thornvale/mud/internal/messaging"
	"github.com/thornvale/mud/internal/mobs"
	"github.com/thornvale/mud/internal/session"
)

// BuildWorkers assembles the full game core: storage, world, delivery
// bus, combat engine, mob scheduler, command processor, and the tick
// driver that runs them.
func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	tickLength, err := cfg.tickLength()
	if err != nil {
		return nil, err
	}
	combatInterval, err := cfg.combatInterval()
	if err != nil {
		return nil, err
	}
	inactivityLimit, err := cfg.inactivityLimit()
	if err != nil {
		return nil, err
	}

	natsServer, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	chars, err := cfg.Storage.BuildCharacterStore()
	if err != nil {
		return nil, fmt.Errorf("creating character store: %w", err)
	}

	world, err := cfg.Storage.BuildWorld(cfg.SpawnRoom)
	if err != nil {
		return nil, fmt.Errorf("building world: %w", err)
	}

	pub := messaging.NewNatsPublisher(natsServer, world)
	sessions := session.NewRegistry()

	outcomes := combat.NewOutcomeHandler(world, sessions, pub)
	engine := combat.NewEngine(pub, outcomes, combat.WithInterval(combatInterval))

	scheduler := mobs.NewScheduler(world, engine, pub)

	handlers := dispatch.NewHandlerRegistry()
	if err := commands.NewSet(engine).RegisterAll(handlers); err != nil {
		return nil, fmt.Errorf("registering commands: %w", err)
	}

	processor := dispatch.NewProcessor(sessions, world, dispatch.FieldsParser{}, handlers,
		engine, chars, pub, dispatch.WithInactivityLimit(inactivityLimit))

	// Processing order within a tick: player commands, then combat
	// rounds, then mob behavior.
	d := driver.New([]driver.Manager{processor, engine, scheduler},
		driver.WithTickLength(tickLength))

	return service.WorkerList{
		"nats":   natsServer,
		"driver": d,
	}, nil
}
