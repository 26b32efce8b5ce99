package model

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusReady          OrderStatus = "ready"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// ハッピーパスの並び。進捗表示もこの並びを使う。
var statusOrder = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
}

func (s OrderStatus) Valid() bool {
	if s == OrderStatusCancelled {
		return true
	}
	return s.index() >= 0
}

// delivered / cancelled は終端。以降の遷移は無い。
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

func (s OrderStatus) index() int {
	for i, v := range statusOrder {
		if v == s {
			return i
		}
	}
	return -1
}

// CanTransition は遷移表。
// 非終端からcancelledへは常に可。それ以外は直後のステータスのみ。
func CanTransition(from OrderStatus, to OrderStatus) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if from.Terminal() {
		return false
	}
	if to == OrderStatusCancelled {
		return true
	}
	return to.index() == from.index()+1
}

// 追跡画面の1ステップ
type ProgressStep struct {
	Status    OrderStatus `json:"status"`
	Completed bool        `json:"completed"`
	Current   bool        `json:"current"`
}

// ProgressSteps は現在ステータスの位置から各ステップの完了状態を組み立てる。
// cancelledなど並びに無いステータスは進捗を持たない（nil）。
func ProgressSteps(current OrderStatus) []ProgressStep {
	idx := current.index()
	if idx < 0 {
		return nil
	}

	steps := make([]ProgressStep, len(statusOrder))
	for i, s := range statusOrder {
		steps[i] = ProgressStep{
			Status:    s,
			Completed: i < idx,
			Current:   i == idx,
		}
	}
	return steps
}
