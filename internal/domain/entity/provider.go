package entity

// ProviderType identifies an external login provider.
type ProviderType string

const (
	ProviderTypeGoogle ProviderType = "google"
	ProviderTypeGitHub ProviderType = "github"
	ProviderTypeNaver  ProviderType = "naver"
	ProviderTypeKakao  ProviderType = "kakao"
)

// String returns the string representation of the provider.
func (p ProviderType) String() string {
	return string(p)
}

// IsValid checks if the provider is a known value.
func (p ProviderType) IsValid() bool {
	switch p {
	case ProviderTypeGoogle, ProviderTypeGitHub, ProviderTypeNaver, ProviderTypeKakao:
		return true
	default:
		return false
	}
}
