package catalog

// productsDE is the built-in German product catalog.
var productsDE = []Product{
	{Name: "milch", Category: "dairy", Aliases: []string{"vollmilch"}, Popularity: 10},
	{Name: "butter", Category: "dairy", Popularity: 9},
	{Name: "käse", Category: "dairy", Aliases: []string{"gouda"}, Popularity: 9},
	{Name: "joghurt", Category: "dairy", Popularity: 8},
	{Name: "sahne", Category: "dairy", Aliases: []string{"schlagsahne"}, Popularity: 6},
	{Name: "eier", Category: "dairy", Aliases: []string{"ei"}, Popularity: 10},
	{Name: "quark", Category: "dairy", Popularity: 6},
	{Name: "hafermilch", Category: "dairy", Aliases: []string{"haferdrink"}, Popularity: 5},

	{Name: "äpfel", Category: "produce", Aliases: []string{"apfel"}, Popularity: 9},
	{Name: "bananen", Category: "produce", Aliases: []string{"banane"}, Popularity: 10},
	{Name: "orangen", Category: "produce", Aliases: []string{"orange"}, Popularity: 7},
	{Name: "zitronen", Category: "produce", Aliases: []string{"zitrone"}, Popularity: 6},
	{Name: "tomaten", Category: "produce", Aliases: []string{"tomate"}, Popularity: 9},
	{Name: "kartoffeln", Category: "produce", Aliases: []string{"kartoffel"}, Popularity: 9},
	{Name: "zwiebeln", Category: "produce", Aliases: []string{"zwiebel"}, Popularity: 8},
	{Name: "knoblauch", Category: "produce", Popularity: 7},
	{Name: "karotten", Category: "produce", Aliases: []string{"möhren"}, Popularity: 7},
	{Name: "gurke", Category: "produce", Aliases: []string{"salatgurke"}, Popularity: 6},
	{Name: "paprika", Category: "produce", Popularity: 6},
	{Name: "champignons", Category: "produce", Aliases: []string{"pilze"}, Popularity: 5},

	{Name: "brot", Category: "bakery", Aliases: []string{"vollkornbrot"}, Popularity: 10},
	{Name: "brötchen", Category: "bakery", Aliases: []string{"semmeln"}, Popularity: 8},

	{Name: "hähnchenbrust", Category: "meat", Aliases: []string{"hähnchen"}, Popularity: 8},
	{Name: "hackfleisch", Category: "meat", Aliases: []string{"gehacktes"}, Popularity: 8},
	{Name: "wurst", Category: "meat", Aliases: []string{"aufschnitt"}, Popularity: 7},
	{Name: "lachs", Category: "meat", Popularity: 5},

	{Name: "reis", Category: "pantry", Popularity: 8},
	{Name: "nudeln", Category: "pantry", Aliases: []string{"spaghetti"}, Popularity: 8},
	{Name: "mehl", Category: "pantry", Popularity: 6},
	{Name: "zucker", Category: "pantry", Popularity: 7},
	{Name: "salz", Category: "pantry", Popularity: 7},
	{Name: "olivenöl", Category: "pantry", Popularity: 6},
	{Name: "haferflocken", Category: "pantry", Popularity: 6},
	{Name: "marmelade", Category: "pantry", Aliases: []string{"konfitüre"}, Popularity: 4},
	{Name: "honig", Category: "pantry", Popularity: 5},

	{Name: "kaffee", Category: "beverages", Popularity: 9},
	{Name: "tee", Category: "beverages", Popularity: 7},
	{Name: "mineralwasser", Category: "beverages", Aliases: []string{"sprudel"}, Popularity: 8},
	{Name: "orangensaft", Category: "beverages", Aliases: []string{"o-saft"}, Popularity: 6},
	{Name: "bier", Category: "beverages", Popularity: 6},

	{Name: "schokolade", Category: "snacks", Popularity: 7},
	{Name: "chips", Category: "snacks", Popularity: 6},
	{Name: "kekse", Category: "snacks", Popularity: 5},

	{Name: "toilettenpapier", Category: "household", Aliases: []string{"klopapier"}, Popularity: 8},
	{Name: "spülmittel", Category: "household", Popularity: 6},
	{Name: "waschmittel", Category: "household", Popularity: 6},
	{Name: "zahnpasta", Category: "household", Popularity: 6},
	{Name: "müllbeutel", Category: "household", Popularity: 5},
}
