package usecase

import (
	"context"
	"time"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

// Probe reports a dependency's health; nil means healthy
type Probe func(ctx context.Context) error

type healthUsecase struct {
	probes map[string]Probe
}

// NewHealthUsecase builds a checker over named probes. A nil probe marks
// the dependency as disabled.
func NewHealthUsecase(probes map[string]Probe) HealthUsecase {
	return &healthUsecase{probes: probes}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{"status": "ok"}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	for name, probe := range u.probes {
		switch {
		case probe == nil:
			status[name] = "disabled"
		case probe(ctx) != nil:
			status[name] = "down"
			status["status"] = "degraded"
		default:
			status[name] = "up"
		}
	}
	return status
}
