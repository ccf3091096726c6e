package model

const (
	RoleCustomer = "customer"
	RoleExecutor = "executor"
)

// Limits mirrored by the users table checks.
const (
	MinUserAge     = 18
	MaxPhoneLength = 12

	UserAgeCheck   = "chk_users_age"
	UserPhoneCheck = "chk_users_phone"
)

// User is the root entity. Its role decides which projection row
// (Customer or Executor) exists for it.
type User struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	FirstName string  `json:"first_name" gorm:"not null"`
	LastName  string  `json:"last_name" gorm:"not null"`
	Age       *int    `json:"age" gorm:"check:chk_users_age,age >= 18"`
	Email     *string `json:"email" gorm:"uniqueIndex"`
	Phone     *string `json:"phone" gorm:"size:12;uniqueIndex;check:chk_users_phone,length(phone) <= 12"`
	Role      *string `json:"role"`

	Customer *Customer `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Executor *Executor `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) HasRole(role string) bool {
	return u.Role != nil && *u.Role == role
}

type Customer struct {
	UserID uint `gorm:"primaryKey;autoIncrement:false"`

	Orders []Order `gorm:"foreignKey:CustomerID;references:UserID;constraint:OnDelete:CASCADE"`
}

func (Customer) TableName() string {
	return "customers"
}

type Executor struct {
	UserID uint `gorm:"primaryKey;autoIncrement:false"`

	Orders []Order `gorm:"foreignKey:ExecutorID;references:UserID;constraint:OnDelete:CASCADE"`
	Offers []Offer `gorm:"foreignKey:ExecutorID;references:UserID;constraint:OnDelete:CASCADE"`
}

func (Executor) TableName() string {
	return "executors"
}
