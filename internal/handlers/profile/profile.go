package profile

// Profile is the API response model for the singleton profile.
type Profile struct {
	Name       string   `json:"name" doc:"Display name"`
	Currency   string   `json:"currency" doc:"Currency symbol"`
	DarkMode   bool     `json:"darkMode" doc:"Preferred dark mode"`
	Categories []string `json:"categories" doc:"Active category list"`
	Onboarded  bool     `json:"onboarded" doc:"Whether onboarding is completed"`
}
