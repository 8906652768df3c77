package domain

// Customer optionals are stored as NULL when blank so the cpf unique
// index only applies to rows that actually carry one.
type Customer struct {
	ID    uint    `gorm:"primaryKey"`
	Name  string  `gorm:"column:nome;size:255;not null"`
	CPF   *string `gorm:"column:cpf;size:14;uniqueIndex"`
	Email *string `gorm:"column:email;size:255"`
	Phone *string `gorm:"column:telefone;size:20"`
}

func (Customer) TableName() string { return "cliente" }
