package constant

import "regexp"

const (
	SettingKeyWhatsappNumber = "whatsapp_number"
)

// WhatsappNumberPattern is the only accepted shape of the stored whatsapp_number.
var WhatsappNumberPattern = regexp.MustCompile(`^62\d{8,15}$`)

const WhatsappNumberFormat = "Must start with 62 followed by 8-15 digits"

type contextKey string

// AdminSessionKey holds the *model.AdminSession of an authenticated admin request.
const AdminSessionKey contextKey = "admin_session"
