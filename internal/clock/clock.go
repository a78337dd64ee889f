package clock

import (
	"time"

	"go.uber.org/fx"
)

// Clock abstracts wall-clock time so schedule generation and rule
// validity checks stay testable.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

func NewSystemClock() Clock { return systemClock{} }

var Module = fx.Module("clock",
	fx.Provide(NewSystemClock),
)
