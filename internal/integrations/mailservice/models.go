package mailservice

// Message письмо для отправки через MailService
type Message struct {
	Recipients []string `json:"recipients"`
	Subject    string   `json:"subject"`
	Body       string   `json:"body"` // HTML
}

// SendResponse ответ MailService на постановку письма в очередь
type SendResponse struct {
	MessageID string `json:"messageId"`
	Queued    bool   `json:"queued"`
}

// ErrorResponse модель ошибки от MailService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
