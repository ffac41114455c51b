package user

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Status representa o status da conta do usuário
type Status string

// Constantes para Status
const (
	StatusActive   Status = "active"   // Conta ativa
	StatusInactive Status = "inactive" // Conta desativada
)

// User representa o perfil de um usuário da plataforma
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // O hash da senha não é retornado nas respostas JSON
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	AvatarURL string    `json:"avatar_url"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SetPassword configura a senha do usuário com hash bcrypt
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifica se a senha fornecida é válida
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// IsActive verifica se a conta está ativa
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// DisplayName retorna o nome de exibição do usuário
func (u *User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.Email
	}
}
