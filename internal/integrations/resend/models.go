package resend

// Email тело запроса POST /emails
type Email struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendResponse ответ API на отправку письма
type SendResponse struct {
	ID string `json:"id"`
}
