package domain

// Product is a skewer on the menu.
type Product struct {
	ID    uint    `gorm:"primaryKey"`
	Name  string  `gorm:"column:nome;size:255;not null"`
	Price float64 `gorm:"column:preco;type:decimal(10,2);not null"`
}

func (Product) TableName() string { return "produto" }
