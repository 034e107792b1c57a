// Copyright 2026 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"slices"
)

// AuthContext is the caller's tenant and role, resolved once per request.
// It lives in the request context only and is never cached across requests.
type AuthContext struct {
	UserID       string  `json:"user_id"`
	TenantID     *string `json:"tenant_id"`
	Role         string  `json:"role"`
	IsSuperAdmin bool    `json:"is_super_admin"`
}

func (ac *AuthContext) canAccessTenant(tenantID string) bool {
	return ac.IsSuperAdmin || (ac.TenantID != nil && *ac.TenantID == tenantID)
}

func (ac *AuthContext) hasTenantRole(tenantID string, roles []string) bool {
	if ac.IsSuperAdmin {
		return true
	}
	return ac.TenantID != nil && *ac.TenantID == tenantID && slices.Contains(roles, ac.Role)
}

// Principal identifies who a guard is evaluated for: either a bare user id,
// answered from user_roles, or an already resolved AuthContext, answered in memory.
type Principal struct {
	userID string
	ac     *AuthContext
}

func ForUser(userID string) Principal {
	return Principal{userID: userID}
}

func ForContext(ac *AuthContext) Principal {
	if ac == nil {
		return Principal{}
	}
	return Principal{userID: ac.UserID, ac: ac}
}

func (p Principal) UserID() string {
	return p.userID
}

// AuthContext reports whether p carries a resolved context.
func (p Principal) AuthContext() (*AuthContext, bool) {
	return p.ac, p.ac != nil
}
