package models

import "time"

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash []byte
	Role         string
	CreatedAt    time.Time
}
