package commands

import (
	"errors"

	"pedidos/internal/pkg/guard"
)

var ErrSweepOverdueCreditsCommandIsNotConstructed = errors.New(
	"SweepOverdueCreditsCommand must be created via NewSweepOverdueCreditsCommand constructor",
)

// SweepOverdueCreditsCommand moves every active credit past its payment term
// into vencido. Issued by the scheduler, not by an actor.
type SweepOverdueCreditsCommand struct {
	guard guard.ConstructorGuard
}

// NewSweepOverdueCreditsCommand creates a parameterless sweep command.
func NewSweepOverdueCreditsCommand() SweepOverdueCreditsCommand {
	return SweepOverdueCreditsCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c SweepOverdueCreditsCommand) Validate() error {
	return c.guard.Validate(ErrSweepOverdueCreditsCommandIsNotConstructed)
}
