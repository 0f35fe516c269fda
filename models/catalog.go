package models

// Destination categories.
const (
	CategoryNorthIndia = "North India"
	CategorySouthIndia = "South India"
	CategoryEastIndia  = "East India"
	CategoryWestIndia  = "West India"
	CategoryIslands    = "Islands"
	CategoryHimalayas  = "Himalayas"
)

// AllDestinations is the static destination catalog surfaced in the UI and
// referenced by the assistant when suggesting trips.
var AllDestinations = []Destination{
	{ID: "agra", Name: "Agra (Taj Mahal)", Image: "https://images.unsplash.com/photo-1564507592333-c60657eea523?q=80&w=1000&auto=format&fit=crop", StartingPrice: "₹8,000", Tags: []string{"Heritage", "Wonder"}, Category: CategoryNorthIndia},
	{ID: "jaipur", Name: "Jaipur", Image: "https://images.unsplash.com/photo-1477587458883-47145ed94245?q=80&w=1000&auto=format&fit=crop", StartingPrice: "₹12,000", Tags: []string{"Palaces", "Culture"}, Category: CategoryNorthIndia},
	{ID: "varanasi", Name: "Varanasi", Image: "https://images.unsplash.com/photo-1561361513-2d000a50f0dc?q=80&w=1000&auto=format&fit=crop", StartingPrice: "₹10,000", Tags: []string{"Spiritual", "Ghats"}, Category: CategoryNorthIndia},
	{ID: "rishikesh", Name: "Rishikesh", Image: "https://images.unsplash.com/photo-1588416936097-41850ab3d86d?q=80&w=1000&auto=format&fit=crop", StartingPrice: "₹9,500", Tags: []string{"Yoga", "Adventure"}, Category: CategoryNorthIndia},
	{ID: "ladakh", Name: "Ladakh", Image: "https://images.unsplash.com/photo-1626621341517-bbf3d9990a23?q=80&w=1000&auto=format&fit=crop", StartingPrice: "₹25,000", Tags: []string{"Adventure", "Mountains"}, Category: CategoryHimalayas},
	{ID: "kashmir", Name: "Kashmir", Image: "https://images.unsplash.com/photo-1598091383021-15ddea10925d?q=80&w=1000&auto=format&fit=crop", StartingPrice: "₹22,000", Tags: []string{"Nature", "Snow"}, Category: CategoryHimalayas},
	{ID: "manali", Name: "Manali", Image: "https://images.unsplash.com/photo-1626621341517-bbf3d9990a23?q=80&w=1000&auto=format&fit=crop", StartingPrice: "₹15,000", Tags: []string{"Hill Station", "Snow"}, Category: CategoryHimalayas},
	{ID: "darjeeling", Name: "Darjeeling", Image: "https://images.unsplash.com/photo-1544634076-a901606f41b8?q=80&w=1000&auto=format&fit=crop", StartingPrice: "₹18,000", Tags: []string{"Tea", "Hills"}, Category: CategoryHimalayas},
	{ID: "kerala_backwaters", Name: "Alleppey (Kerala)", Image: "https://images.unsplash.com/photo-1602216056096-3b40cc0c9944?q=80&w=1000&auto=format&fit=crop", StartingPrice: "₹14,000", Tags: []string{"Backwaters", "Relax"}, Category: CategorySouthIndia},
	{ID: "munnar", Name: "Munnar", Image: "https://images.unsplash.com/photo-1593693396865-78d5583e5ad1?q=80&w=1000&auto=format&fit=crop", StartingPrice: "₹12,000", Tags: []string{"Tea", "Hills"}, Category: CategorySouthIndia},
	{ID: "hampi", Name: "Hampi", Image: "https://images.unsplash.com/photo-1600100598914-3041956ccb58?q=80&w=1000&auto=format&fit=crop", StartingPrice: "₹9,000", Tags: []string{"Ruins", "History"}, Category: CategorySouthIndia},
	{ID: "ooty", Name: "Ooty", Image: "https://images.unsplash.com/photo-1517420847814-257a0753d0e2?q=80&w=1000&auto=format&fit=crop", StartingPrice: "₹11,000", Tags: []string{"Hills", "Nature"}, Category: CategorySouthIndia},
	{ID: "coorg", Name: "Coorg", Image: "https://images.unsplash.com/photo-1593693411515-c20d638e53ba?q=80&w=1000&auto=format&fit=crop", StartingPrice: "₹13,000", Tags: []string{"Coffee", "Hills"}, Category: CategorySouthIndia},
	{ID: "pondicherry", Name: "Pondicherry", Image: "https://images.unsplash.com/photo-1582556360534-118837267503?q=80&w=1000&auto=format&fit=crop", StartingPrice: "₹10,500", Tags: []string{"French", "Beaches"}, Category: CategorySouthIndia},
	{ID: "madurai", Name: "Madurai", Image: "https://images.unsplash.com/photo-1582555725350-b0c441c9b68d?q=80&w=1000&auto=format&fit=crop", StartingPrice: "₹8,500", Tags: []string{"Temples", "Culture"}, Category: CategorySouthIndia},
	{ID: "rameswaram", Name: "Rameswaram", Image: "https://images.unsplash.com/photo-1620138546344-7b2c38516cdf?q=80&w=1000&auto=format&fit=crop", StartingPrice: "₹9,000", Tags: []string{"Pilgrimage", "Sea"}, Category: CategorySouthIndia},
	{ID: "goa", Name: "Goa", Image: "https://images.unsplash.com/photo-1512343879784-a960bf40e7f2?q=80&w=1000&auto=format&fit=crop", StartingPrice: "₹12,000", Tags: []string{"Beaches", "Party"}, Category: CategoryWestIndia},
	{ID: "udaipur", Name: "Udaipur", Image: "https://images.unsplash.com/photo-1615836245337-f5b9b2303f10?q=80&w=1000&auto=format&fit=crop", StartingPrice: "₹15,000", Tags: []string{"Lakes", "Romance"}, Category: CategoryWestIndia},
	{ID: "kutch", Name: "Rann of Kutch", Image: "https://images.unsplash.com/photo-1549643276-fbc2bd53630d?q=80&w=1000&auto=format&fit=crop", StartingPrice: "₹16,000", Tags: []string{"Desert", "Salt"}, Category: CategoryWestIndia},
	{ID: "kolkata", Name: "Kolkata", Image: "https://images.unsplash.com/photo-1558431382-27e303142255?q=80&w=1000&auto=format&fit=crop", StartingPrice: "₹10,000", Tags: []string{"Culture", "City"}, Category: CategoryEastIndia},
	{ID: "gangtok", Name: "Gangtok", Image: "https://images.unsplash.com/photo-1582136081395-927906d0285a?q=80&w=1000&auto=format&fit=crop", StartingPrice: "₹18,500", Tags: []string{"NorthEast", "Hills"}, Category: CategoryEastIndia},
	{ID: "andaman", Name: "Andaman Islands", Image: "https://images.unsplash.com/photo-1589330273594-fade1ee91647?q=80&w=1000&auto=format&fit=crop", StartingPrice: "₹28,000", Tags: []string{"Beaches", "Diving"}, Category: CategoryIslands},
	{ID: "lakshadweep", Name: "Lakshadweep", Image: "https://images.unsplash.com/photo-1631868817929-37e408546f60?q=80&w=1000&auto=format&fit=crop", StartingPrice: "₹35,000", Tags: []string{"Coral", "Luxury"}, Category: CategoryIslands},
}

// DestinationsByCategory filters the catalog; an empty category returns
// the full list.
func DestinationsByCategory(category string) []Destination {
	if category == "" {
		return AllDestinations
	}
	var out []Destination
	for _, d := range AllDestinations {
		if d.Category == category {
			out = append(out, d)
		}
	}
	return out
}
