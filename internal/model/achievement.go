package model

// Achievement 当期成就徽章，每条规则至多产生一个得主
type Achievement struct {
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	Recipient string `json:"recipient"`
}

// TeamAchievementCount 各队成就数量统计
type TeamAchievementCount struct {
	Team  string `json:"team"`
	Count int    `json:"count"`
}
