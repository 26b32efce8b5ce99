package cart

import (
	"github.com/shopspring/decimal"
)

// カートの明細（クライアント表示用のスナップショット）
type LineItem struct {
	MenuItemID          string          `json:"menuItemId"`
	Name                string          `json:"name"`
	UnitPrice           decimal.Decimal `json:"price"`
	Quantity            int64           `json:"quantity"`
	SpecialInstructions string          `json:"specialInstructions,omitempty"`
}

// Cart は1セッション分のカート状態。
// 値として扱い、各操作は新しいCartを返す（元の値は変更しない）。
type Cart struct {
	Items          []LineItem `json:"items"`
	RestaurantID   string     `json:"restaurantId,omitempty"`
	RestaurantName string     `json:"restaurantName,omitempty"`
}

// 空のカート
func New() Cart {
	return Cart{Items: []LineItem{}}
}

func (c Cart) clone() Cart {
	items := make([]LineItem, len(c.Items))
	copy(items, c.Items)
	c.Items = items
	return c
}

// Add は明細を追加する。同一menuItemIdは数量加算（重複行は作らない）。
func (c Cart) Add(item LineItem) Cart {
	if item.Quantity < 1 {
		return c.clone()
	}

	next := c.clone()
	for i, it := range next.Items {
		if it.MenuItemID == item.MenuItemID {
			next.Items[i].Quantity = it.Quantity + item.Quantity
			return next
		}
	}

	next.Items = append(next.Items, item)
	return next
}

// Remove は明細を取り除く。無ければそのまま（冪等）。
func (c Cart) Remove(menuItemID string) Cart {
	next := c.clone()

	items := next.Items[:0]
	for _, it := range next.Items {
		if it.MenuItemID != menuItemID {
			items = append(items, it)
		}
	}
	next.Items = items
	return next
}

// UpdateQuantity は数量を置き換える（加算ではない）。
// qty <= 0 は削除と同じ扱い。数量0の明細は残さない。
func (c Cart) UpdateQuantity(menuItemID string, qty int64) Cart {
	if qty <= 0 {
		return c.Remove(menuItemID)
	}

	next := c.clone()
	for i, it := range next.Items {
		if it.MenuItemID == menuItemID {
			next.Items[i].Quantity = qty
		}
	}
	return next
}

// Clear は明細と店舗選択を両方リセットする。
func (c Cart) Clear() Cart {
	return New()
}

// SetRestaurant は店舗だけを設定する。明細はクリアしない。
// 店舗を切り替えるときは SwitchRestaurant を使うこと。
func (c Cart) SetRestaurant(id string, name string) Cart {
	next := c.clone()
	next.RestaurantID = id
	next.RestaurantName = name
	return next
}

// SwitchRestaurant はクリア＋店舗設定を1アクションで行う。
// 「カート内は同一店舗のみ」を呼び出し側の手順に頼らず保つ。
func (c Cart) SwitchRestaurant(id string, name string) Cart {
	return New().SetRestaurant(id, name)
}

// TotalItems は数量の合計
func (c Cart) TotalItems() int64 {
	var total int64
	for _, it := range c.Items {
		total += it.Quantity
	}
	return total
}

// Subtotal は 単価×数量 の合計。decimalで誤差なく計算する。
func (c Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity)))
	}
	return total
}
