package mq

// Event channels published by the API server.
const (
	// ChannelAccountRegistered carries AccountRegistered payloads.
	ChannelAccountRegistered = "account.registered"
)

// AccountRegistered is emitted after a new account is persisted. It
// never carries the generated password, only the public identity.
type AccountRegistered struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
}
