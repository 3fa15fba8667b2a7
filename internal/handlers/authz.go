package handlers

import (
	"errors"

	"scorequest/user/internal/models"
)

var errNoTarget = errors.New("no target account resolved")

// resolveTargetID decides whose record a mutating request may touch.
// Admins may target the id supplied in the route; everyone else only
// ever operates on their own account, whatever the route says. A
// principal with an unrecognized role resolves to nothing rather than
// falling through to some arbitrary record.
func resolveTargetID(p models.Principal, routeID string) (string, error) {
	switch p.Role {
	case models.RoleAdmin:
		if routeID != "" {
			return routeID, nil
		}
		return p.ID, nil
	case models.RoleUser:
		return p.ID, nil
	default:
		return "", errNoTarget
	}
}
