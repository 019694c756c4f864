package catalog

// DefaultProducts is the fixed catalog inserted when the product collection
// is empty. Image paths are public asset paths served by the frontend.
var DefaultProducts = []Product{
	{
		Name:        "Diamond Sword",
		Description: "Sharp V ready! Deal massive damage.",
		Price:       12.99,
		Category:    "Weapons",
		Image:       "/items/diamond_sword.png",
	},
	{
		Name:        "Enchanted Pickaxe",
		Description: "Efficiency V, Unbreaking III.",
		Price:       10.49,
		Category:    "Tools",
		Image:       "/items/enchanted_pickaxe.png",
	},
	{
		Name:        "Netherite Armor Set",
		Description: "Full protection for endgame raiding.",
		Price:       39.99,
		Category:    "Armor",
		Image:       "/items/netherite_armor.png",
	},
	{
		Name:        "VIP Rank (30 Days)",
		Description: "Perks: /fly, kits, queue skip.",
		Price:       14.99,
		Category:    "Ranks",
		Image:       "/items/vip_rank.png",
	},
}
