package domain

// CreateResult is returned after a successful create.
type CreateResult struct {
	// Username is the account reference to pass to every later call.
	Username          string `json:"username"`
	Domain            string `json:"domain,omitempty"`
	PackageIdentifier string `json:"package_identifier,omitempty"`
	Message           string `json:"message"`
}

// LoginResult carries a single sign-on URL.
type LoginResult struct {
	URL     string `json:"url"`
	Message string `json:"message,omitempty"`
}

// EmptyResult is returned by operations with nothing but a status message.
type EmptyResult struct {
	Message string `json:"message"`
}

// About describes a provider.
type About struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url,omitempty"`
}
