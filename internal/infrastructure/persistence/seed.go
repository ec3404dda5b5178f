package persistence

import (
	"github.com/shopspring/decimal"

	"github.com/Zxyilyy/cooked/internal/domain/inventory"
)

type seedItem struct {
	id       string
	name     string
	quantity float64
	unit     string
	price    float64
	itemType inventory.ItemType
	batch    string
	count    float64
}

// seedItems is the opening inventory installed on first start: the current
// acquisition cycle's purchases, historical fixed assets, and historical
// materials that are tracked but hold no stock.
var seedItems = []seedItem{
	// current acquisition cycle
	{"c1", "澳洲Queen香草膏", 140, "g", 88.0, inventory.ItemTypeIngredient, "2026-02-13", 1},
	{"c2", "若竹抹茶粉", 50, "g", 29.98, inventory.ItemTypeIngredient, "2026-02-13", 1},
	{"c3", "直身6寸活底模具(2个)", 2, "个", 29.94, inventory.ItemTypeTool, "2026-02-13", 1},
	{"c4", "烘焙纸托6寸(30个)", 30, "个", 25.71, inventory.ItemTypePackaging, "2026-02-13", 1},
	{"c5", "茉莉花粉", 100, "g", 8.96, inventory.ItemTypeIngredient, "2026-02-13", 1},
	{"c6", "巴斯克6寸油纸(100个)", 100, "个", 14.8, inventory.ItemTypePackaging, "2026-02-13", 1},
	{"c7", "刨丝器", 1, "个", 15.58, inventory.ItemTypeTool, "2026-02-13", 1},
	{"c8", "80目筛网", 1, "个", 12.8, inventory.ItemTypeTool, "2026-02-13", 1},
	{"c9", "量杯1000ml(2个)", 2, "个", 20.8, inventory.ItemTypeTool, "2026-02-13", 1},
	{"c10", "电子厨房秤", 1, "个", 55.9, inventory.ItemTypeTool, "2026-02-13", 1},
	{"c11", "手动打蛋器", 1, "个", 36.9, inventory.ItemTypeTool, "2026-02-13", 1},
	{"c12", "锡纸(1卷)", 1, "卷", 12.8, inventory.ItemTypeConsumable, "2026-02-13", 1},
	{"c13", "丁晴手套(100只)", 100, "只", 23.8, inventory.ItemTypeConsumable, "2026-02-13", 1},
	{"c14", "玫瑰花酱", 200, "g", 32.0, inventory.ItemTypeIngredient, "2026-02-13", 1},
	{"c15", "蓝风车淡奶油", 1000, "ml", 65.5, inventory.ItemTypeIngredient, "2026-02-13", 1},
	{"c16", "总统淡奶油", 1000, "ml", 49.8, inventory.ItemTypeIngredient, "2026-02-13", 1},
	{"c17", "硅胶刀", 1, "个", 19.5, inventory.ItemTypeTool, "2026-02-13", 1},
	{"c18", "挤酱瓶(3个)", 3, "个", 8.8, inventory.ItemTypeTool, "2026-02-13", 1},
	{"c19", "不锈钢奶锅", 1, "个", 44.6, inventory.ItemTypeTool, "2026-02-13", 1},
	{"c20", "平口切刀", 1, "个", 46.47, inventory.ItemTypeTool, "2026-02-13", 1},
	{"c21", "蘸料蝶不锈钢(2个)", 2, "个", 9.8, inventory.ItemTypeTool, "2026-02-13", 1},
	// historical fixed assets
	{"h1", "商用烤箱", 1, "台", 1550.0, inventory.ItemTypeTool, "历史资产", 1},
	{"h2", "摆摊推车", 1, "个", 199.23, inventory.ItemTypeTool, "历史资产", 1},
	{"h3", "电磁炉", 1, "个", 169.0, inventory.ItemTypeTool, "历史资产", 1},
	{"h4", "露营灯", 1, "个", 60.0, inventory.ItemTypeTool, "历史资产", 1},
	{"h5", "摆摊椅子(2个)", 2, "个", 41.0, inventory.ItemTypeTool, "历史资产", 1},
	{"h6", "日本巴斯克6寸模具", 1, "个", 21.55, inventory.ItemTypeTool, "历史资产", 1},
	{"h7", "日本直身6寸活底模具", 1, "个", 18.68, inventory.ItemTypeTool, "历史资产", 1},
	{"h8", "烤箱温度计", 1, "个", 24.9, inventory.ItemTypeTool, "历史资产", 1},
	{"h9", "手持温度计", 1, "个", 41.0, inventory.ItemTypeTool, "历史资产", 1},
	{"h10", "面包切刀两件套", 1, "套", 26.29, inventory.ItemTypeTool, "历史资产", 1},
	{"h11", "蛋糕切分器(5切)", 1, "个", 18.6, inventory.ItemTypeTool, "历史资产", 1},
	{"h12", "慕斯圈12件套", 1, "套", 11.78, inventory.ItemTypeTool, "历史资产", 1},
	{"h13", "玻璃量杯", 1, "个", 15.88, inventory.ItemTypeTool, "历史资产", 1},
	{"h14", "不锈钢老打蛋器", 1, "个", 25.9, inventory.ItemTypeTool, "历史资产", 1},
	{"h15", "筛网31目16cm", 1, "个", 11.9, inventory.ItemTypeTool, "历史资产", 1},
	{"h16", "筛网31目25cm", 1, "个", 23.9, inventory.ItemTypeTool, "历史资产", 1},
	{"h17", "三角铲子", 1, "个", 18.1, inventory.ItemTypeTool, "历史资产", 1},
	{"h18", "曲奇烤垫", 1, "个", 23.37, inventory.ItemTypeTool, "历史资产", 1},
	{"h19", "泡芙裱花嘴(3个)", 3, "个", 5.22, inventory.ItemTypeTool, "历史资产", 1},
	// historical materials, depleted
	{"m1", "Kiri奶油奶酪(2kg)", 2000, "g", 168.0, inventory.ItemTypeIngredient, "历史采购", 1},
	{"m1_b", "Kiri奶油奶酪(1kg)", 1000, "g", 85.0, inventory.ItemTypeIngredient, "历史采购", 2},
	{"m2", "大利年奶油奶酪(2kg)", 2000, "g", 105.0, inventory.ItemTypeIngredient, "历史采购", 1},
	{"m3", "卡夫菲力奶油奶酪(2kg)", 2000, "g", 148.0, inventory.ItemTypeIngredient, "历史采购", 1},
	{"m4", "铁塔奶油奶酪(2kg)", 2000, "g", 145.0, inventory.ItemTypeIngredient, "历史采购", 1},
	{"m5", "安佳黄油(454g)", 454, "g", 46.0, inventory.ItemTypeIngredient, "历史采购", 1},
	{"m6", "安佳淡奶油(1L)", 1000, "ml", 45.8, inventory.ItemTypeIngredient, "历史采购", 1},
	{"m6_b", "安佳淡奶油(1L)补货", 1000, "ml", 45.0, inventory.ItemTypeIngredient, "历史采购", 1},
	{"m7", "铁塔淡奶油(1L)", 1000, "ml", 56.0, inventory.ItemTypeIngredient, "历史采购", 1},
	{"m8", "韩国细砂糖(2.5kg)", 2500, "g", 29.5, inventory.ItemTypeIngredient, "历史采购", 2},
	{"m9", "赤砂糖(1kg)", 1000, "g", 19.0, inventory.ItemTypeIngredient, "历史采购", 1},
	{"m10", "正荣翠绿开心果酱(500g)", 500, "g", 121.0, inventory.ItemTypeIngredient, "历史采购", 1},
	{"m11", "水怡(700g)", 700, "g", 16.5, inventory.ItemTypeIngredient, "历史采购", 1},
	{"m12", "川宁伯爵红茶(100g)", 100, "g", 55.0, inventory.ItemTypeIngredient, "历史采购", 1},
	{"m13", "嘉利宝70%黑巧(500g)", 500, "g", 78.0, inventory.ItemTypeIngredient, "历史采购", 1},
	{"m14", "嘉利宝32%白巧(500g)", 500, "g", 77.0, inventory.ItemTypeIngredient, "历史采购", 1},
	{"m15", "玉米油(350ml)", 350, "ml", 10.48, inventory.ItemTypeIngredient, "历史采购", 1},
	{"m16", "鸡蛋(30个)", 30, "个", 18.0, inventory.ItemTypeIngredient, "历史采购", 1},
	{"m17", "炼乳(185g)", 185, "g", 8.4, inventory.ItemTypeIngredient, "历史采购", 1},
	{"m18", "黄油牛乳(1L)", 1000, "ml", 28.0, inventory.ItemTypeIngredient, "历史采购", 1},
	{"m19", "美雅士黑朗姆酒(750ml)", 750, "ml", 81.0, inventory.ItemTypeIngredient, "历史采购", 1},
	{"m20", "茉莉雪芽茶叶(500g)", 500, "g", 57.5, inventory.ItemTypeIngredient, "历史采购", 1},
	{"p1", "手提袋\"祝你天天开心\"(100个)", 100, "个", 33.6, inventory.ItemTypePackaging, "历史采购", 1},
	{"p2", "木浆盒+勺子套装(50套)", 50, "套", 26.29, inventory.ItemTypePackaging, "历史采购", 1},
}

// SeedBatches builds the opening inventory. Tools start with their unit
// count in stock, items of the active cycle with their full content, and
// historical materials with zero: they exist for the investment total only.
func SeedBatches(activeCycle string) []*inventory.Batch {
	batches := make([]*inventory.Batch, len(seedItems))
	for i, it := range seedItems {
		quantity := decimal.NewFromFloat(it.quantity)
		count := decimal.NewFromFloat(it.count)

		var stock decimal.Decimal
		switch {
		case it.itemType == inventory.ItemTypeTool:
			stock = count
		case it.batch == activeCycle:
			stock = quantity.Mul(count)
		default:
			stock = decimal.Zero
		}

		batches[i] = &inventory.Batch{
			ID:           it.id,
			Name:         it.name,
			Type:         it.itemType,
			Unit:         it.unit,
			Quantity:     quantity,
			Price:        decimal.NewFromFloat(it.price),
			Count:        count,
			BatchLabel:   it.batch,
			CurrentStock: stock,
		}
	}
	return batches
}
