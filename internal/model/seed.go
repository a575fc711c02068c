package model

import "time"

// SeedCollection returns the built-in example records shown on first run,
// before the user has captured anything of their own. They are also the
// fallback when stored data exists but cannot be decoded.
//
// Order matters: the collection's natural order is most-recent-first, so the
// newest example comes first. Each call returns a fresh slice; callers may
// mutate it freely.
func SeedCollection() []Inspiration {
	return []Inspiration{
		{
			ID:        "seed-1",
			Title:     "移动应用设计思路",
			Content:   "为大学生设计一款时间管理应用的初步构思，界面设计要简洁，突出核心功能。考虑使用卡片式布局，方便用户快速查看和管理任务。",
			Category:  CategoryCreation,
			Color:     "#ffffff",
			CreatedAt: time.Date(2024, 10, 17, 10, 45, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 10, 17, 10, 45, 0, 0, time.UTC),
		},
		{
			ID:        "seed-2",
			Title:     "摄影系列创意",
			Content:   "一组以\"城市寂静\"为主题的摄影系列，捕捉大都市中宁静的瞬间。重点关注清晨的街道、深夜的咖啡店、雨后的公园等场景。",
			Category:  CategoryCreation,
			Color:     "#ffffff",
			CreatedAt: time.Date(2024, 10, 17, 9, 30, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 10, 17, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:        "seed-3",
			Title:     "学习方法总结",
			Content:   "今天学习了费曼学习法，通过向别人解释概念来检验自己的理解程度。这个方法很有效，可以快速发现知识盲点。",
			Category:  CategoryLearning,
			Color:     "#ffffff",
			CreatedAt: time.Date(2024, 10, 16, 14, 20, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 10, 16, 14, 20, 0, 0, time.UTC),
		},
		{
			ID:        "seed-4",
			Title:     "研究课题想法",
			Content:   "关于人工智能在教育领域的应用研究，特别是个性化学习路径的推荐算法。可以结合学习者的认知特点和学习历史数据。",
			Category:  CategoryResearch,
			Color:     "#ffffff",
			CreatedAt: time.Date(2024, 10, 15, 16, 15, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 10, 15, 16, 15, 0, 0, time.UTC),
		},
	}
}
