package domain

const (
	FlashSuccess = "success"
	FlashError   = "error"
)

type Flash struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type SessionUser struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email,omitempty"`
	IsGuest  bool     `json:"isGuest"`
	Progress Progress `json:"progress"`
}

type Session struct {
	ID    string       `json:"id"`
	User  *SessionUser `json:"user,omitempty"`
	Flash *Flash       `json:"flash,omitempty"`
}
