package catalog

import (
	"fmt"

	"github.com/google/uuid"
)

// Item IDs are fixed so persisted references stay stable across releases.
func itemID(n int) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("00000001-0001-0001-0001-%012d", n))
}

var builtinItems = []Item{
	// Organics and compostables.
	{
		ID:           itemID(1),
		Name:         "Banana Peel",
		ImageName:    "banana_peel",
		BaseCategory: CategoryCompost,
		Subcategory:  SubOrganic,
		Fact:         "Banana peels break down quickly and make great compost.",
		Keywords:     []string{"banana", "peel", "fruit", "food"},
	},
	{
		ID:           itemID(2),
		Name:         "Apple Core",
		ImageName:    "apple_core",
		BaseCategory: CategoryCompost,
		Subcategory:  SubOrganic,
		Fact:         "Apple cores decompose naturally and belong in compost.",
		Keywords:     []string{"apple", "core", "fruit", "food"},
	},
	{
		ID:           itemID(3),
		Name:         "Eggshells",
		ImageName:    "eggshells",
		BaseCategory: CategoryCompost,
		Subcategory:  SubOrganic,
		Fact:         "Eggshells add calcium to compost and break down over time.",
		Keywords:     []string{"egg", "shell", "breakfast"},
	},
	{
		ID:           itemID(4),
		Name:         "Coffee Grounds",
		ImageName:    "coffee_grounds",
		BaseCategory: CategoryCompost,
		Subcategory:  SubOrganic,
		Fact:         "Coffee grounds are rich in nitrogen and perfect for compost.",
		Keywords:     []string{"coffee", "grounds"},
	},
	{
		ID:           itemID(5),
		Name:         "Paper Towel",
		ImageName:    "paper_towel",
		BaseCategory: CategoryCompost,
		Subcategory:  SubPaper,
		Fact:         "Used paper towels with no chemicals or oils can be composted.",
		Keywords:     []string{"paper", "towel", "napkin"},
	},

	// Paper recycling.
	{
		ID:           itemID(6),
		Name:         "Cardboard",
		ImageName:    "cardboard",
		BaseCategory: CategoryRecycle,
		Subcategory:  SubPaper,
		Fact:         "Clean cardboard is widely accepted in recycling.",
		Keywords:     []string{"cardboard", "box", "paper"},
	},
	{
		ID:           itemID(7),
		Name:         "Newspaper",
		ImageName:    "newspaper",
		BaseCategory: CategoryRecycle,
		Subcategory:  SubPaper,
		Fact:         "Newspapers can be recycled into new paper products.",
		Keywords:     []string{"newspaper", "paper", "news"},
	},
	{
		ID:           itemID(8),
		Name:         "Office Paper",
		ImageName:    "office_paper",
		BaseCategory: CategoryRecycle,
		Subcategory:  SubPaper,
		Fact:         "Clean office paper can be recycled easily.",
		Keywords:     []string{"paper", "office", "printer"},
	},
	{
		ID:           itemID(9),
		Name:         "Envelopes",
		ImageName:    "envelope",
		BaseCategory: CategoryRecycle,
		Subcategory:  SubPaper,
		Fact:         "Most envelopes can be recycled, even with plastic windows.",
		Keywords:     []string{"envelope", "mail", "paper"},
	},

	// Plastic recycling.
	{
		ID:           itemID(10),
		Name:         "Plastic Bottle",
		ImageName:    "plastic_bottle",
		BaseCategory: CategoryRecycle,
		Subcategory:  SubPlastic,
		Fact:         "Plastic bottles can be recycled into new containers or textiles.",
		Keywords:     []string{"plastic", "bottle", "drink", "water"},
	},
	{
		ID:           itemID(11),
		Name:         "Plastic Container",
		ImageName:    "plastic_container",
		BaseCategory: CategoryRecycle,
		Subcategory:  SubPlastic,
		Fact:         "Clean plastic containers are widely recyclable.",
		Keywords:     []string{"plastic", "container", "food"},
	},

	// Metal and glass.
	{
		ID:           itemID(12),
		Name:         "Aluminum Can",
		ImageName:    "aluminum_can",
		BaseCategory: CategoryRecycle,
		Subcategory:  SubMetal,
		Fact:         "Aluminum cans can be recycled endlessly with no quality loss.",
		Keywords:     []string{"aluminum", "can", "drink"},
	},
	{
		ID:           itemID(13),
		Name:         "Tin Can",
		ImageName:    "tin_can",
		BaseCategory: CategoryRecycle,
		Subcategory:  SubMetal,
		Fact:         "Tin cans can be recycled after rinsing leftover food.",
		Keywords:     []string{"tin", "can", "food"},
	},
	{
		ID:           itemID(14),
		Name:         "Glass Bottle",
		ImageName:    "glass_bottle",
		BaseCategory: CategoryRecycle,
		Subcategory:  SubGlass,
		Fact:         "Glass bottles are infinitely recyclable.",
		Keywords:     []string{"glass", "bottle", "drink"},
	},
	{
		ID:           itemID(15),
		Name:         "Glass Jar",
		ImageName:    "glass_jar",
		BaseCategory: CategoryRecycle,
		Subcategory:  SubGlass,
		Fact:         "Glass jars can be rinsed and recycled repeatedly.",
		Keywords:     []string{"glass", "jar", "container"},
	},

	// Cartons and mixed paper.
	{
		ID:           itemID(16),
		Name:         "Milk Carton",
		ImageName:    "milk_carton",
		BaseCategory: CategoryRecycle,
		Subcategory:  SubPaper,
		Fact:         "Milk cartons contain paper and can be recycled when clean.",
		Keywords:     []string{"milk", "carton", "paper"},
	},
	{
		ID:           itemID(17),
		Name:         "Egg Carton",
		ImageName:    "egg_carton",
		BaseCategory: CategoryRecycle,
		Subcategory:  SubPaper,
		Fact:         "Paper egg cartons are recyclable and biodegradable.",
		Keywords:     []string{"egg", "carton", "paper"},
	},
	{
		ID:           itemID(18),
		Name:         "Greasy Pizza Box",
		ImageName:    "pizza_box",
		BaseCategory: CategoryCompost,
		Subcategory:  SubPaper,
		Fact:         "Greasy pizza boxes often belong in compost, not recycling.",
		Keywords:     []string{"pizza", "box", "cardboard"},
	},
	{
		ID:           itemID(19),
		Name:         "Tea Bag",
		ImageName:    "tea_bag",
		BaseCategory: CategoryCompost,
		Subcategory:  SubOrganic,
		Fact:         "Most tea bags are compostable unless made with plastic mesh.",
		Keywords:     []string{"tea", "bag", "drink"},
	},
	{
		ID:           itemID(20),
		Name:         "Bread",
		ImageName:    "bread",
		BaseCategory: CategoryCompost,
		Subcategory:  SubOrganic,
		Fact:         "Stale bread breaks down well in compost.",
		Keywords:     []string{"bread", "food", "slice"},
	},

	// Landfill.
	{
		ID:           itemID(21),
		Name:         "Chip Bag",
		ImageName:    "chip_bag",
		BaseCategory: CategoryLandfill,
		Subcategory:  SubGeneral,
		Fact:         "Chip bags are made of mixed materials and can't be recycled.",
		Keywords:     []string{"chip", "bag", "snack"},
	},
	{
		ID:           itemID(22),
		Name:         "Candy Wrapper",
		ImageName:    "candy_wrapper",
		BaseCategory: CategoryLandfill,
		Subcategory:  SubGeneral,
		Fact:         "Plastic/foil wrappers belong in landfill due to mixed materials.",
		Keywords:     []string{"candy", "wrapper", "snack"},
	},
	{
		ID:           itemID(23),
		Name:         "Styrofoam Cup",
		ImageName:    "styrofoam_cup",
		BaseCategory: CategoryLandfill,
		Subcategory:  SubGeneral,
		Fact:         "Most places do not recycle Styrofoam; it goes to landfill.",
		Keywords:     []string{"styrofoam", "cup"},
	},
	{
		ID:           itemID(24),
		Name:         "Styrofoam Tray",
		ImageName:    "styrofoam_tray",
		BaseCategory: CategoryLandfill,
		Subcategory:  SubGeneral,
		Fact:         "Food-soiled Styrofoam trays belong in landfill.",
		Keywords:     []string{"styrofoam", "tray"},
	},
	{
		ID:           itemID(25),
		Name:         "Plastic Cutlery",
		ImageName:    "plastic_cutlery",
		BaseCategory: CategoryLandfill,
		Subcategory:  SubPlastic,
		Fact:         "Most plastic cutlery is not recyclable due to its size and shape.",
		Keywords:     []string{"plastic", "fork", "knife", "cutlery"},
	},
	{
		ID:           itemID(26),
		Name:         "Broken Mug",
		ImageName:    "broken_mug",
		BaseCategory: CategoryLandfill,
		Subcategory:  SubGeneral,
		Fact:         "Ceramics like broken mugs cannot be recycled.",
		Keywords:     []string{"mug", "broken", "ceramic"},
	},
	{
		ID:           itemID(27),
		Name:         "Toothbrush",
		ImageName:    "toothbrush",
		BaseCategory: CategoryLandfill,
		Subcategory:  SubPlastic,
		Fact:         "Toothbrushes contain mixed plastics and typically go to landfill.",
		Keywords:     []string{"toothbrush", "brush", "teeth"},
	},
	{
		ID:           itemID(28),
		Name:         "Paper Cup",
		ImageName:    "paper_cup",
		BaseCategory: CategoryLandfill,
		Subcategory:  SubPaper,
		Fact:         "Most paper cups are lined with plastic that prevents recycling.",
		Keywords:     []string{"cup", "paper", "coffee"},
	},

	// Food scraps and soiled paper.
	{
		ID:           itemID(29),
		Name:         "Pizza Slice",
		ImageName:    "pizza_slice",
		BaseCategory: CategoryCompost,
		Subcategory:  SubOrganic,
		Fact:         "Leftover pizza scraps belong in compost when food waste is accepted.",
		Keywords:     []string{"pizza", "slice", "food"},
	},
	{
		ID:           itemID(30),
		Name:         "Tissue",
		ImageName:    "tissue",
		BaseCategory: CategoryCompost,
		Subcategory:  SubPaper,
		Fact:         "Used tissues can be composted unless heavily soiled with chemicals.",
		Keywords:     []string{"tissue", "kleenex"},
	},
	{
		ID:           itemID(31),
		Name:         "Napkin",
		ImageName:    "napkin",
		BaseCategory: CategoryCompost,
		Subcategory:  SubPaper,
		Fact:         "Napkins are compostable unless coated or laminated.",
		Keywords:     []string{"napkin", "paper"},
	},

	// Soft plastics and region-sensitive items.
	{
		ID:           itemID(32),
		Name:         "Plastic Straw",
		ImageName:    "plastic_straw",
		BaseCategory: CategoryLandfill,
		Subcategory:  SubPlastic,
		Fact:         "Plastic straws are too small to be recycled and go to landfill.",
		Keywords:     []string{"straw", "plastic"},
	},
	{
		ID:           itemID(33),
		Name:         "Bread Bag",
		ImageName:    "bread_bag",
		BaseCategory: CategoryLandfill,
		Subcategory:  SubPlastic,
		Fact:         "Soft plastic bags require special drop-off programs, not recycling bins.",
		Keywords:     []string{"bread", "bag", "plastic"},
	},
	{
		ID:           itemID(34),
		Name:         "Paper Bag",
		ImageName:    "paper_bag",
		BaseCategory: CategoryRecycle,
		Subcategory:  SubPaper,
		Fact:         "Clean paper bags are recyclable or compostable depending on region.",
		Keywords:     []string{"paper", "bag"},
	},
	{
		ID:           itemID(35),
		Name:         "Yogurt Cup",
		ImageName:    "yogurt_cup",
		BaseCategory: CategoryRecycle,
		Subcategory:  SubPlastic,
		Fact:         "Clean yogurt cups can be recycled in many regions.",
		Keywords:     []string{"yogurt", "cup", "plastic"},
	},
	{
		ID:           itemID(36),
		Name:         "Paper Plate",
		ImageName:    "paper_plate",
		BaseCategory: CategoryCompost,
		Subcategory:  SubPaper,
		Fact:         "Uncoated paper plates can go into compost.",
		Keywords:     []string{"paper", "plate", "dishes"},
	},
}
