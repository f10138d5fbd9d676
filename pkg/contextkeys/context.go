package contextkeys

// Custom key type to avoid collisions with other context values.
type contextKey string

// DBContextKey is the key under which the *gorm.DB handle (the pool, or a
// transaction injected by tests) is stored for the duration of a request.
const DBContextKey = contextKey("db")
