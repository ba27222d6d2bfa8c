package model

type Setting struct {
	Key   string `db:"key" json:"key"`
	Value string `db:"value" json:"value"`
}

type UpsertSettingRequest struct {
	Value string `json:"value"`
}

type WhatsappConfigRequest struct {
	WhatsappNumber string `json:"whatsapp_number" validate:"required"`
}

type WhatsappConfigResponse struct {
	Configured     bool   `json:"configured"`
	WhatsappNumber string `json:"whatsapp_number,omitempty"`
}
