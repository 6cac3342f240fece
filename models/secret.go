package models

// SecretDescriptor identifies one entry of the remote secrets backend.
// It is produced by listing and consumed by fetching.
type SecretDescriptor struct {
	// ID is the backend identifier (an ARN for Secrets Manager compatible
	// backends). It is the value passed to GetSecretValue.
	ID string `json:"id"`
	// Name is the display name, e.g. "PROD/MYAPP_DATABASE".
	Name string `json:"name"`
}

// SecretPage is one page of a paginated secrets listing.
type SecretPage struct {
	Secrets []SecretDescriptor
	// NextToken continues the listing. Empty means the listing is exhausted.
	NextToken string
}
