// Package actor models the identity invoking a core operation. Every command
// declares the role it requires; callers lacking it are rejected up front
// instead of trusting the caller's screen context.
package actor

import (
	"fmt"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
)

// Role is the capability set of an actor.
type Role int

const (
	// RoleUnknown catches uninitialized Role values.
	RoleUnknown Role = iota

	// RoleCliente places orders and reviews warehouse adjustments.
	RoleCliente

	// RoleBodega validates order items in the warehouse.
	RoleBodega

	// RoleSupervisor approves promotions and credit, assigns routes and
	// resolves incidents.
	RoleSupervisor

	// RoleTransportista executes deliveries on route.
	RoleTransportista
)

func roleStrings() map[Role]string {
	return map[Role]string{
		RoleCliente:       "cliente",
		RoleBodega:        "bodega",
		RoleSupervisor:    "supervisor",
		RoleTransportista: "transportista",
	}
}

// RoleFromString parses a wire role value. Unknown values are rejected at the
// boundary rather than defaulted.
func RoleFromString(s string) (Role, error) {
	for role, str := range roleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a known role", s))
}

// String returns the wire value of the role.
func (r Role) String() string {
	if s, ok := roleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// Validate rejects RoleUnknown and out-of-range values.
func (r Role) Validate() error {
	if _, ok := roleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// Actor is the validated identity of a caller: who they are and what they may do.
type Actor struct {
	id   kernel.UUID
	role Role
}

// NewActor creates an actor identity from an id and role.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role}, nil
}

// ID returns the actor's identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// Validate rejects the zero value.
func (a Actor) Validate() error {
	if err := a.id.Validate(); err != nil {
		return err
	}
	return a.role.Validate()
}

// Require returns an InvalidRequest error when the actor does not hold any of
// the given roles. Commands call this in their constructors.
func (a Actor) Require(roles ...Role) error {
	for _, role := range roles {
		if a.role == role {
			return nil
		}
	}
	return errs.NewInvalidRequestError(
		fmt.Sprintf("role %s is not allowed to perform this operation", a.role))
}
