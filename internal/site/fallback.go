package site

import "clean-backend/internal/content"

// Shown when the API is unreachable or has no rows yet.

var fallbackAreas = []content.Area{
	{ID: 1, Name: "L'Erdre", Description: content.StringPtr("Notre terrain d'action principal"), Order: 1, Latitude: "47.2359", Longitude: "-1.5497"},
	{ID: 2, Name: "La Loire", Description: content.StringPtr("Interventions ponctuelles"), Order: 2, Latitude: "47.2073", Longitude: "-1.5537"},
	{ID: 3, Name: "Extension future", Description: content.StringPtr("Nos ambitions"), Order: 3, Latitude: "47.2183", Longitude: "-1.5517"},
}

var fallbackPartners = []content.Partner{
	{ID: 1, Name: "Ville de Nantes", Logo: "https://placehold.co/200x100?text=Logo+Nantes", URL: "https://metropole.nantes.fr", Order: 1},
	{ID: 2, Name: "Région Pays de la Loire", Logo: "https://placehold.co/200x100?text=Logo+Region", URL: "https://www.paysdelaloire.fr", Order: 2},
	{ID: 3, Name: "Université de Nantes", Logo: "https://placehold.co/200x100?text=Logo+Universit%C3%A9", URL: "https://www.univ-nantes.fr", Order: 3},
	{ID: 4, Name: "FNE Pays de la Loire", Logo: "https://placehold.co/200x100?text=Logo+FNE", URL: "https://www.fne-pays-de-la-loire.fr", Order: 4},
	{ID: 5, Name: "EcoCène", Logo: "https://placehold.co/200x100?text=Logo+EcoC%C3%A8ne", URL: "https://www.eco-cene.fr", Order: 5},
	{ID: 6, Name: "Entreprise Verte", Logo: "https://placehold.co/200x100?text=Logo+Entreprise", URL: "https://example.com/entreprise-verte", Order: 6},
}
