package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission is one route of the table. Skip marks a public route; Review
// carries a note for routes whose gating is waiting on a product decision.
type Permission struct {
	Path   string `json:"path"`
	Method string `json:"method"`
	Skip   bool   `json:"skip"`
	Review string `json:"review,omitempty"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
}

// FindPermissions looks up the route pattern. Routes missing from the table
// are reported as not found and stay gated.
func (r *PermissionData) FindPermissions(path, method string) (Permission, bool) {
	idx := slices.IndexFunc(r.Endpoints, func(rp Permission) bool {
		return rp.Path == path && rp.Method == method
	})

	if idx == -1 {
		return Permission{}, false
	}

	return r.Endpoints[idx], true
}

// Public reports whether the route may be called without a bearer token.
func (r *PermissionData) Public(path, method string) bool {
	permission, found := r.FindPermissions(path, method)

	return found && permission.Skip
}

// Flagged returns the routes carrying a review note.
func (r *PermissionData) Flagged() []Permission {
	flagged := []Permission{}

	for _, permission := range r.Endpoints {
		if permission.Review != "" {
			flagged = append(flagged, permission)
		}
	}

	return flagged
}

func Parse(data []byte) (*PermissionData, error) {
	var permissions PermissionData

	if err := json.Unmarshal(data, &permissions); err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &permissions, nil
}

func Get() *PermissionData {
	permissions, err := Parse(permissionsData)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to decode embedded permissions")
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	for _, permission := range permissions.Flagged() {
		log.Warn().
			Str("method", permission.Method).
			Str("path", permission.Path).
			Bool("public", permission.Skip).
			Str("review", permission.Review).
			Msg("Route gating flagged for review")
	}

	return permissions
}
