package rbac

type Permission struct {
	Role     string `json:"role"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

type PermissionsResponse struct {
	Role        string       `json:"role"`
	Permissions []Permission `json:"permissions"`
}
