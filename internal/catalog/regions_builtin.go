package catalog

var builtinRegions = []Region{
	{
		Name: "Ontario",
		Overrides: map[string]Override{
			"pizza_box":       {Category: CategoryCompost, Subcategory: SubPaper},
			"paper_cup":       {Category: CategoryLandfill, Subcategory: SubPaper},
			"bread_bag":       {Category: CategoryLandfill, Subcategory: SubPlastic},
			"plastic_straw":   {Category: CategoryLandfill, Subcategory: SubPlastic},
			"plastic_cutlery": {Category: CategoryLandfill, Subcategory: SubPlastic},
			"glass_bottle":    {Category: CategoryRecycle, Subcategory: SubGlass},
			"glass_jar":       {Category: CategoryRecycle, Subcategory: SubGlass},
			"tin_can":         {Category: CategoryRecycle, Subcategory: SubMetal},
			"aluminum_can":    {Category: CategoryRecycle, Subcategory: SubMetal},
			"paper_bag":       {Category: CategoryRecycle, Subcategory: SubPaper},
			"milk_carton":     {Category: CategoryRecycle, Subcategory: SubPaper},
			"yogurt_cup":      {Category: CategoryRecycle, Subcategory: SubPlastic},
		},
	},
	{
		Name: "British Columbia",
		Overrides: map[string]Override{
			"pizza_box":      {Category: CategoryCompost, Subcategory: SubPaper},
			"paper_cup":      {Category: CategoryLandfill, Subcategory: SubPaper},
			"bread_bag":      {Category: CategoryLandfill, Subcategory: SubPlastic},
			"plastic_straw":  {Category: CategoryLandfill, Subcategory: SubPlastic},
			"yogurt_cup":     {Category: CategoryRecycle, Subcategory: SubPlastic},
			"milk_carton":    {Category: CategoryRecycle, Subcategory: SubPaper},
			"plastic_bottle": {Category: CategoryRecycle, Subcategory: SubPlastic},
			"glass_bottle":   {Category: CategoryRecycle, Subcategory: SubGlass},
			"tin_can":        {Category: CategoryRecycle, Subcategory: SubMetal},
		},
	},
	{
		Name: "California",
		Overrides: map[string]Override{
			"pizza_box":       {Category: CategoryCompost, Subcategory: SubPaper},
			"paper_cup":       {Category: CategoryLandfill, Subcategory: SubPaper},
			"bread_bag":       {Category: CategoryLandfill, Subcategory: SubPlastic},
			"plastic_straw":   {Category: CategoryLandfill, Subcategory: SubPlastic},
			"plastic_cutlery": {Category: CategoryLandfill, Subcategory: SubPlastic},
			"glass_bottle":    {Category: CategoryRecycle, Subcategory: SubGlass},
			"glass_jar":       {Category: CategoryRecycle, Subcategory: SubGlass},
			"aluminum_can":    {Category: CategoryRecycle, Subcategory: SubMetal},
			"tin_can":         {Category: CategoryRecycle, Subcategory: SubMetal},
			"yogurt_cup":      {Category: CategoryRecycle, Subcategory: SubPlastic},
			"milk_carton":     {Category: CategoryRecycle, Subcategory: SubPaper},
		},
	},
	{
		Name: "United Kingdom",
		Overrides: map[string]Override{
			"pizza_box":       {Category: CategoryRecycle, Subcategory: SubPaper},
			"paper_cup":       {Category: CategoryLandfill, Subcategory: SubPaper},
			"bread_bag":       {Category: CategoryLandfill, Subcategory: SubPlastic},
			"plastic_straw":   {Category: CategoryLandfill, Subcategory: SubPlastic},
			"plastic_cutlery": {Category: CategoryLandfill, Subcategory: SubPlastic},
			"glass_bottle":    {Category: CategoryRecycle, Subcategory: SubGlass},
			"glass_jar":       {Category: CategoryRecycle, Subcategory: SubGlass},
			"aluminum_can":    {Category: CategoryRecycle, Subcategory: SubMetal},
			"tin_can":         {Category: CategoryRecycle, Subcategory: SubMetal},
			"paper_bag":       {Category: CategoryRecycle, Subcategory: SubPaper},
			"milk_carton":     {Category: CategoryRecycle, Subcategory: SubPaper},
			"yogurt_cup":      {Category: CategoryRecycle, Subcategory: SubPlastic},
		},
	},
	{
		Name: "Australia",
		Overrides: map[string]Override{
			"pizza_box":         {Category: CategoryCompost, Subcategory: SubPaper},
			"paper_cup":         {Category: CategoryLandfill, Subcategory: SubPaper},
			"bread_bag":         {Category: CategoryLandfill, Subcategory: SubPlastic},
			"plastic_straw":     {Category: CategoryLandfill, Subcategory: SubPlastic},
			"plastic_cutlery":   {Category: CategoryLandfill, Subcategory: SubPlastic},
			"plastic_bottle":    {Category: CategoryRecycle, Subcategory: SubPlastic},
			"plastic_container": {Category: CategoryRecycle, Subcategory: SubPlastic},
			"yogurt_cup":        {Category: CategoryRecycle, Subcategory: SubPlastic},
			"aluminum_can":      {Category: CategoryRecycle, Subcategory: SubMetal},
			"tin_can":           {Category: CategoryRecycle, Subcategory: SubMetal},
			"glass_bottle":      {Category: CategoryRecycle, Subcategory: SubGlass},
			"glass_jar":         {Category: CategoryRecycle, Subcategory: SubGlass},
			"cardboard":         {Category: CategoryRecycle, Subcategory: SubPaper},
			"paper_bag":         {Category: CategoryRecycle, Subcategory: SubPaper},
			"milk_carton":       {Category: CategoryRecycle, Subcategory: SubPaper},
			"tissue":            {Category: CategoryCompost, Subcategory: SubPaper},
			"napkin":            {Category: CategoryCompost, Subcategory: SubPaper},
			"bread":             {Category: CategoryCompost, Subcategory: SubOrganic},
			"tea_bag":           {Category: CategoryCompost, Subcategory: SubOrganic},
			"apple_core":        {Category: CategoryCompost, Subcategory: SubOrganic},
			"banana_peel":       {Category: CategoryCompost, Subcategory: SubOrganic},
			"coffee_grounds":    {Category: CategoryCompost, Subcategory: SubOrganic},
		},
	},
}
