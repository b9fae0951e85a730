package types

// SecretState is the rotation status of a secret.
type SecretState string

const (
	SecretExpired     SecretState = "expired"
	SecretExpiresSoon SecretState = "expires_soon"
	SecretNotExpired  SecretState = "not_expired"
	SecretIgnored     SecretState = "ignored"
)

// AllSecretStates lists states in order of urgency.
var AllSecretStates = []SecretState{
	SecretExpired,
	SecretExpiresSoon,
	SecretNotExpired,
	SecretIgnored,
}

func (x SecretState) String() string {
	return string(x)
}
