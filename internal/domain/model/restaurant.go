package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// メニューのカテゴリ
type MenuCategory string

const (
	MenuCategoryAppetizer MenuCategory = "appetizer"
	MenuCategoryMain      MenuCategory = "main"
	MenuCategoryDessert   MenuCategory = "dessert"
	MenuCategoryBeverage  MenuCategory = "beverage"
	MenuCategorySide      MenuCategory = "side"
)

// 店舗所有のメニュー項目。restaurants.menu（jsonb）に埋め込む。
type MenuItem struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	Category        MenuCategory    `json:"category"`
	Image           string          `json:"image"`
	IsAvailable     bool            `json:"isAvailable"`
	PreparationTime int             `json:"preparationTime"` // 分
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Address struct {
	Street      string       `json:"street"`
	City        string       `json:"city"`
	State       string       `json:"state"`
	ZipCode     string       `json:"zipCode"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

type DayHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

type OperatingHours struct {
	Monday    DayHours `json:"monday"`
	Tuesday   DayHours `json:"tuesday"`
	Wednesday DayHours `json:"wednesday"`
	Thursday  DayHours `json:"thursday"`
	Friday    DayHours `json:"friday"`
	Saturday  DayHours `json:"saturday"`
	Sunday    DayHours `json:"sunday"`
}

// 店舗。メニュー・住所・営業時間はドキュメントとしてjsonbに持つ。
type Restaurant struct {
	ID                    int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name                  string          `gorm:"type:varchar(255);not null" json:"name"`
	Description           string          `gorm:"type:text;not null" json:"description"`
	Cuisine               string          `gorm:"type:varchar(100);not null;index" json:"cuisine"`
	Address               Address         `gorm:"serializer:json;type:jsonb" json:"address"`
	Phone                 string          `gorm:"type:varchar(50);not null" json:"phone"`
	Email                 string          `gorm:"type:varchar(255);not null" json:"email"`
	Rating                decimal.Decimal `gorm:"type:numeric(3,2);not null;default:0" json:"rating"`
	ReviewCount           int64           `gorm:"not null;default:0" json:"reviewCount"`
	DeliveryFee           decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"deliveryFee"`
	MinimumOrder          decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"minimumOrder"`
	EstimatedDeliveryTime int             `gorm:"not null;default:30" json:"estimatedDeliveryTime"` // 分
	IsOpen                bool            `gorm:"not null;default:true;index" json:"isOpen"`
	OperatingHours        OperatingHours  `gorm:"serializer:json;type:jsonb" json:"operatingHours"`
	Image                 string          `gorm:"type:text" json:"image"`
	Menu                  []MenuItem      `gorm:"serializer:json;type:jsonb" json:"menu"`
	Categories            []string        `gorm:"serializer:json;type:jsonb" json:"categories"`
	CreatedAt             time.Time       `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt             time.Time       `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

// メニューからID一致の項目を探す
func (r Restaurant) FindMenuItem(menuItemID string) (MenuItem, bool) {
	for _, m := range r.Menu {
		if m.ID == menuItemID {
			return m, true
		}
	}
	return MenuItem{}, false
}

// 提供可能なメニューだけを返す
func (r Restaurant) AvailableMenu() []MenuItem {
	items := make([]MenuItem, 0, len(r.Menu))
	for _, m := range r.Menu {
		if m.IsAvailable {
			items = append(items, m)
		}
	}
	return items
}
