package domain

import "time"

type ItemKind string

const (
	ItemKindProduct ItemKind = "espetinho"
	ItemKindDrink   ItemKind = "bebida"
)

type Order struct {
	ID         uint        `gorm:"primaryKey"`
	CustomerID uint        `gorm:"column:cliente_id;not null;index"`
	CreatedAt  time.Time   `gorm:"column:criado_em;autoCreateTime"`
	Items      []OrderItem `gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string { return "pedido" }

// OrderItem carries a snapshot of the catalog row it was built from.
// Name, Size and UnitPrice are copied at order time and never re-read
// from the catalog, so later edits don't rewrite order history.
type OrderItem struct {
	ID        uint     `gorm:"primaryKey"`
	OrderID   uint     `gorm:"column:pedido_id;not null;index"`
	Kind      ItemKind `gorm:"column:tipo;type:varchar(20);not null"`
	RefID     uint     `gorm:"column:referencia_id;not null"`
	Name      string   `gorm:"column:nome;size:255;not null"`
	Size      *string  `gorm:"column:tamanho;size:50"`
	Qty       int      `gorm:"column:qtd;not null"`
	UnitPrice float64  `gorm:"column:preco_unit;type:decimal(10,2);not null"`
	Total     float64  `gorm:"column:total;type:decimal(10,2);not null"`
}

func (OrderItem) TableName() string { return "pedido_item" }

// OrderView is one row of the orders listing: items partitioned by kind
// and the total already summed.
type OrderView struct {
	ID           uint
	CustomerName string
	CreatedAt    time.Time
	Products     []OrderItem
	Drinks       []OrderItem
	Total        float64
}
