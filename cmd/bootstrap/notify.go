package bootstrap

import (
	"context"

	"equiploan/internal/notify"
	"equiploan/internal/usecase/commands"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewHub,
		fx.Annotate(
			func(hub *notify.Hub) *notify.Hub { return hub },
			fx.As(new(commands.EventPublisher)),
		),
	),
)

func NewHub(lc fx.Lifecycle) *notify.Hub {
	hub := notify.NewHub()

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go hub.Run()
			return nil
		},
		OnStop: func(_ context.Context) error {
			hub.Stop()
			return nil
		},
	})

	return hub
}
