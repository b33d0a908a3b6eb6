package entity

import "time"

// User representa la credencial compartida del dashboard.
// PasswordHash es bcrypt; nunca se almacena el password en claro.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
