package model

import "time"

// Account holds the static account summary shown next to the profile name.
// None of it is persisted.
type Account struct {
	Phone   string    `json:"phone"`
	Credits int       `json:"credits"`
	City    string    `json:"city"`
	Joined  time.Time `json:"joined"`
}

// DemoAccount returns the account summary rendered on the profile screen.
func DemoAccount() Account {
	return Account{
		Phone:   "+91 7070018xxx",
		Credits: 8,
		City:    "Bangalore",
		Joined:  time.Date(2025, time.September, 16, 0, 0, 0, 0, time.UTC),
	}
}
