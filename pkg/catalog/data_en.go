package catalog

// productsEN is the built-in English product catalog.
// Pure data: name, category, optional aliases, static popularity 1..10.
var productsEN = []Product{
	{Name: "milk", Category: "dairy", Aliases: []string{"whole milk", "cow milk"}, Popularity: 10},
	{Name: "butter", Category: "dairy", Popularity: 9},
	{Name: "cheese", Category: "dairy", Aliases: []string{"cheddar"}, Popularity: 9},
	{Name: "yogurt", Category: "dairy", Aliases: []string{"yoghurt"}, Popularity: 8},
	{Name: "cream", Category: "dairy", Aliases: []string{"heavy cream", "whipping cream"}, Popularity: 6},
	{Name: "eggs", Category: "dairy", Aliases: []string{"egg"}, Popularity: 10},
	{Name: "oat milk", Category: "dairy", Aliases: []string{"oat drink"}, Popularity: 5},
	{Name: "soy milk", Category: "dairy", Aliases: []string{"soya milk"}, Popularity: 4},

	{Name: "apples", Category: "produce", Aliases: []string{"apple"}, Popularity: 9},
	{Name: "bananas", Category: "produce", Aliases: []string{"banana"}, Popularity: 10},
	{Name: "oranges", Category: "produce", Aliases: []string{"orange"}, Popularity: 8},
	{Name: "lemons", Category: "produce", Aliases: []string{"lemon"}, Popularity: 6},
	{Name: "grapes", Category: "produce", Popularity: 6},
	{Name: "strawberries", Category: "produce", Aliases: []string{"strawberry"}, Popularity: 7},
	{Name: "blueberries", Category: "produce", Aliases: []string{"blueberry"}, Popularity: 5},
	{Name: "tomatoes", Category: "produce", Aliases: []string{"tomato"}, Popularity: 9},
	{Name: "potatoes", Category: "produce", Aliases: []string{"potato"}, Popularity: 9},
	{Name: "onions", Category: "produce", Aliases: []string{"onion"}, Popularity: 8},
	{Name: "garlic", Category: "produce", Popularity: 7},
	{Name: "carrots", Category: "produce", Aliases: []string{"carrot"}, Popularity: 7},
	{Name: "cucumber", Category: "produce", Popularity: 6},
	{Name: "lettuce", Category: "produce", Aliases: []string{"salad greens"}, Popularity: 6},
	{Name: "spinach", Category: "produce", Popularity: 5},
	{Name: "broccoli", Category: "produce", Popularity: 5},
	{Name: "peppers", Category: "produce", Aliases: []string{"bell pepper", "capsicum"}, Popularity: 6},
	{Name: "mushrooms", Category: "produce", Aliases: []string{"mushroom"}, Popularity: 5},
	{Name: "avocado", Category: "produce", Popularity: 6},

	{Name: "bread", Category: "bakery", Aliases: []string{"loaf"}, Popularity: 10},
	{Name: "bagels", Category: "bakery", Aliases: []string{"bagel"}, Popularity: 4},
	{Name: "croissants", Category: "bakery", Aliases: []string{"croissant"}, Popularity: 4},
	{Name: "tortillas", Category: "bakery", Aliases: []string{"wraps"}, Popularity: 5},

	{Name: "chicken breast", Category: "meat", Aliases: []string{"chicken"}, Popularity: 9},
	{Name: "ground beef", Category: "meat", Aliases: []string{"minced beef", "mince"}, Popularity: 8},
	{Name: "bacon", Category: "meat", Popularity: 7},
	{Name: "ham", Category: "meat", Popularity: 6},
	{Name: "sausages", Category: "meat", Aliases: []string{"sausage"}, Popularity: 6},
	{Name: "salmon", Category: "meat", Popularity: 6},
	{Name: "tuna", Category: "meat", Aliases: []string{"canned tuna"}, Popularity: 5},

	{Name: "rice", Category: "pantry", Popularity: 8},
	{Name: "pasta", Category: "pantry", Aliases: []string{"spaghetti", "noodles"}, Popularity: 8},
	{Name: "flour", Category: "pantry", Popularity: 6},
	{Name: "sugar", Category: "pantry", Popularity: 7},
	{Name: "salt", Category: "pantry", Popularity: 7},
	{Name: "pepper", Category: "pantry", Aliases: []string{"black pepper"}, Popularity: 6},
	{Name: "olive oil", Category: "pantry", Popularity: 7},
	{Name: "vinegar", Category: "pantry", Popularity: 4},
	{Name: "honey", Category: "pantry", Popularity: 5},
	{Name: "oats", Category: "pantry", Aliases: []string{"oatmeal", "rolled oats"}, Popularity: 6},
	{Name: "cereal", Category: "pantry", Aliases: []string{"cornflakes"}, Popularity: 6},
	{Name: "peanut butter", Category: "pantry", Popularity: 5},
	{Name: "jam", Category: "pantry", Aliases: []string{"jelly", "marmalade"}, Popularity: 4},
	{Name: "ketchup", Category: "pantry", Popularity: 5},
	{Name: "mustard", Category: "pantry", Popularity: 4},
	{Name: "canned tomatoes", Category: "pantry", Aliases: []string{"tomato sauce"}, Popularity: 5},
	{Name: "beans", Category: "pantry", Aliases: []string{"canned beans"}, Popularity: 5},
	{Name: "lentils", Category: "pantry", Popularity: 3},

	{Name: "frozen pizza", Category: "frozen", Aliases: []string{"pizza"}, Popularity: 6},
	{Name: "ice cream", Category: "frozen", Popularity: 7},
	{Name: "frozen peas", Category: "frozen", Aliases: []string{"peas"}, Popularity: 5},

	{Name: "coffee", Category: "beverages", Aliases: []string{"ground coffee"}, Popularity: 9},
	{Name: "tea", Category: "beverages", Popularity: 7},
	{Name: "orange juice", Category: "beverages", Aliases: []string{"oj"}, Popularity: 6},
	{Name: "sparkling water", Category: "beverages", Aliases: []string{"soda water", "seltzer"}, Popularity: 5},
	{Name: "beer", Category: "beverages", Popularity: 6},
	{Name: "wine", Category: "beverages", Popularity: 6},

	{Name: "chocolate", Category: "snacks", Popularity: 7},
	{Name: "chips", Category: "snacks", Aliases: []string{"crisps", "potato chips"}, Popularity: 7},
	{Name: "cookies", Category: "snacks", Aliases: []string{"biscuits"}, Popularity: 6},
	{Name: "nuts", Category: "snacks", Aliases: []string{"mixed nuts"}, Popularity: 5},
	{Name: "crackers", Category: "snacks", Popularity: 4},

	{Name: "toilet paper", Category: "household", Aliases: []string{"loo roll"}, Popularity: 8},
	{Name: "paper towels", Category: "household", Aliases: []string{"kitchen roll"}, Popularity: 6},
	{Name: "dish soap", Category: "household", Aliases: []string{"washing up liquid"}, Popularity: 6},
	{Name: "laundry detergent", Category: "household", Aliases: []string{"washing powder"}, Popularity: 6},
	{Name: "trash bags", Category: "household", Aliases: []string{"bin bags", "garbage bags"}, Popularity: 5},
	{Name: "toothpaste", Category: "household", Popularity: 6},
	{Name: "shampoo", Category: "household", Popularity: 5},
}
