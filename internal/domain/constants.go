package domain

const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleAdmin      = "ADMIN"
)

// ValidRole reports whether r is one of the two admin roles.
func ValidRole(r string) bool {
	return r == RoleSuperAdmin || r == RoleAdmin
}

// DefaultMessageSubject is stored when a visitor leaves the subject blank.
const DefaultMessageSubject = "留言咨询"

// LatestNewsLimit is the size of the home-page news strip.
const LatestNewsLimit = 6

// MaxConfigKeyLength bounds system_configs.config_key, in characters.
const MaxConfigKeyLength = 100

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Activity actions recorded for the dashboard feed.
const (
	ActionCreate         = "CREATE"
	ActionUpdate         = "UPDATE"
	ActionDelete         = "DELETE"
	ActionReply          = "REPLY"
	ActionMarkRead       = "MARK_READ"
	ActionChangePassword = "CHANGE_PASSWORD"
	ActionUpsert         = "UPSERT"
)
