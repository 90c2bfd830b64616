package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldUserAgent  = "user_agent"
	FieldError      = "error"
	FieldBackend    = "backend"
	FieldSource     = "source"
	FieldCategories = "categories"
	FieldWarnings   = "warnings"
	FieldGoal       = "savings_goal"
	FieldHorizon    = "horizon_months"
	FieldRecipient  = "recipient"
	FieldSMTPHost   = "smtp_host"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentHTTP     = "http"
	ComponentData     = "data"
	ComponentReport   = "report"
	ComponentMail     = "mail"
	ComponentTemplate = "template"
)
