package domain

type Drink struct {
	ID    uint    `gorm:"primaryKey"`
	Name  string  `gorm:"column:nome;size:255;not null"`
	Size  *string `gorm:"column:tamanho;size:50"`
	Price float64 `gorm:"column:preco;type:decimal(10,2);not null"`
}

func (Drink) TableName() string { return "bebida" }
