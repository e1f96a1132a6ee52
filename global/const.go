package global

const (
	AppVersion = "1.0.0" // shown in boot logs and /health

	// Gin context key holding the models.Variant resolved from the :variant path segment.
	CtxVariantKey = "variant"

	// Redis list key for the audit log.
	RedisLogKey = "logs:app"
)
