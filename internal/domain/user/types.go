package user

type Role string

const (
	RoleRequester Role = "requester"
	RoleApprover  Role = "approver"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleRequester, RoleApprover:
		return true
	default:
		return false
	}
}

func (r Role) CanApprove() bool {
	return r == RoleApprover
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
