package registry

// CoreNames defines the keys for infrastructure components registered by the
// bootstrap layer. Applications embed or extend these with their own keys.
type CoreNames struct {
	Config         string
	Logger         string
	Server         string
	TokenService   string
	PasswordHasher string
}

// Core contains the well-known infrastructure keys.
var Core = CoreNames{
	Config:         "config",
	Logger:         "logger",
	Server:         "server",
	TokenService:   "token_service",
	PasswordHasher: "password_hasher",
}

// RepositoryKey returns the singleton key for a resource's repository.
func RepositoryKey(resource string) string {
	return resource + ".repository"
}

// ServiceKey returns the singleton key for a resource's service (use case).
func ServiceKey(resource string) string {
	return resource + ".service"
}

// HandlerKey returns the singleton key for a resource's HTTP handler.
func HandlerKey(resource string) string {
	return resource + ".handler"
}
