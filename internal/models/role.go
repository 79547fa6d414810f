package models

import (
	"fmt"
	"strings"
)

// Role is the closed set of account kinds. It is chosen at registration and
// never changes afterwards.
type Role string

const (
	RoleStudent  Role = "student"
	RoleInvestor Role = "investor"
)

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleInvestor
}

func (r Role) String() string {
	return string(r)
}

// ParseRole accepts a role name in any letter case.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}
