package model

// Amount 可缺失的数值
// Valid 为 false 表示来源列缺失或单元格为空，使用前必须先判断
type Amount struct {
	Value float64 `json:"value"`
	Valid bool    `json:"valid"`
}

// NewAmount 构造有效数值
func NewAmount(v float64) Amount {
	return Amount{Value: v, Valid: true}
}

// Or 取值，缺失时返回 def
func (a Amount) Or(def float64) float64 {
	if !a.Valid {
		return def
	}
	return a.Value
}
