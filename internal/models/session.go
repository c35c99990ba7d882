package models

// Session is the single active login of this process.
type Session struct {
	Identity Identity `json:"user"`
	Token    string   `json:"token"`
}
