package model

type Order struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"not null"`
	Description *string `json:"description" gorm:"type:text"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Address     *string `json:"address"`
	Price       *int    `json:"price"`
	CustomerID  *uint   `json:"customer_id"`
	ExecutorID  *uint   `json:"executor_id"`

	Offers []Offer `json:"-" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (Order) TableName() string {
	return "orders"
}

type Offer struct {
	ID         uint  `json:"id" gorm:"primaryKey"`
	OrderID    *uint `json:"order_id"`
	ExecutorID *uint `json:"executor_id"`
}

func (Offer) TableName() string {
	return "offers"
}
