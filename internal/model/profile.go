package model

// UserProfile is the data shape that flows out of onboarding / the auth
// provider. The authentication mechanics themselves live outside this service.
type UserProfile struct {
	Name         string
	Location     string
	HasOnboarded bool
}
