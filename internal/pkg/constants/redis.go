package constants

// Redis key formats
const (
	// Users service
	KeyRevokedToken = "user:token:revoked:%s" // Format: user:token:revoked:{token_id}

	// Houses service
	KeyHouseSnapshot = "houses:snapshot" // JSON array of every listing

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{ip}
)
