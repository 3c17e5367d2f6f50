package dto

// LowStockPreviewResponse correo de alerta que se enviaría al tenant, sin enviarlo.
type LowStockPreviewResponse struct {
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	Items     int    `json:"items"`
	WouldSend bool   `json:"would_send"`
}
