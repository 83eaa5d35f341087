// internal/usuario/model.go
package usuario

import (
	"time"

	"gorm.io/gorm"
)

// Usuario é um operador do painel administrativo. O formulário público
// de orçamento não exige login; estas contas servem para o catálogo, o
// construtor de formulário e o acompanhamento das solicitações.
type Usuario struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nome      string    `gorm:"size:100;not null" json:"nome"`
	Sobrenome string    `gorm:"size:100" json:"sobrenome"`
	Email     string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"` // não expõe a senha no JSON
	IsAdmin   bool      `gorm:"default:false" json:"isAdmin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Usuario{})
}
