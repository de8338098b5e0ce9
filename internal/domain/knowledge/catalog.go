package knowledge

import "github.com/kumisdelbalcon/balcon-api/internal/domain/entity"

// DefaultCatalog carta completa de Kumis del Balcón, en orden de presentación.
func DefaultCatalog() []entity.MenuCategory {
	return []entity.MenuCategory{
		{
			Label: "🐮 Lácteos y Arroz con Leche",
			Items: []entity.MenuItem{
				{Name: "Kumis Tradicional (16oz)", Price: 8000, Description: "Cremoso, dulce y delicioso. El favorito.", ImageRef: "kumis.png"},
				{Name: "Kumis Litro", Price: 18000, Description: "Para compartir en familia.", ImageRef: "kumis.png"},
				{Name: "Yogurt de Frutas", Price: 9000, Description: "Mora, Melocotón o Fresa.", ImageRef: "yogurt.png"},
				{Name: "Arroz con Leche", Price: 6500, Description: "Con canela, pasas y queso rallado.", ImageRef: "arroz.png"},
				{Name: "Fresas con Crema", Price: 12000, Description: "Fresas del campo con nuestra crema especial.", ImageRef: "fresas.png"},
			},
		},
		{
			Label: "🥐 Panadería y Tradición",
			Items: []entity.MenuItem{
				{Name: "Torta de Almojábana", Price: 7000, Description: "Esponjosa torta de queso y maíz.", ImageRef: "torta_almojabana.png"},
				{Name: "Torta de Choclo", Price: 7000, Description: "Dulce de maíz tierno con queso.", ImageRef: "torta_choclo.png"},
				{Name: "Pandebono Valluno", Price: 3500, Description: "Calientito y chicludo.", ImageRef: "pandebono.png"},
				{Name: "Buñuelo Grande", Price: 3000, Description: "Crocante por fuera, suave por dentro.", ImageRef: "bunuelo.png"},
				{Name: "Empanada de Cambray", Price: 4000, Description: "Rellena de dulce de guayaba y queso.", ImageRef: "empanada.png"},
			},
		},
		{
			Label: "🍰 Repostería y Dulces",
			Items: []entity.MenuItem{
				{Name: "Cheesecake de Maracuyá", Price: 9500, Description: "Postre frío con salsa natural.", ImageRef: "cheesecake.png"},
				{Name: "Galleta de Chip", Price: 2500, Description: "Galleta estilo americano.", ImageRef: "galleta.png"},
				{Name: "Torta de Zanahoria", Price: 7500, Description: "Con frosting de queso crema.", ImageRef: "torta_zanahoria.png"},
			},
		},
		{
			Label: "☕ Bebidas y Algo más",
			Items: []entity.MenuItem{
				{Name: "Café de la Casa", Price: 4000, Description: "Tinto campesino cultivado en Sevilla.", ImageRef: "cafe.png"},
				{Name: "Chocolate Santafereno", Price: 6000, Description: "En leche, espumoso y con clavos.", ImageRef: "chocolate.png"},
				{Name: "Avena Helada", Price: 5000, Description: "Espesa y refrescante.", ImageRef: "avena.png"},
				{Name: "Sándwich Jamón y Queso", Price: 9000, Description: "En pan artesanal.", ImageRef: "sandwich.png"},
			},
		},
	}
}

// categoryKeywords palabras clave que activan cada categoría en el chat,
// indexadas por la etiqueta de la categoría.
var categoryKeywords = map[string][]string{
	"🐮 Lácteos y Arroz con Leche": {"lácteos", "kumis", "yogurt", "arroz con leche"},
	"🥐 Panadería y Tradición":     {"panadería", "pandebono", "buñuelo", "torta"},
	"🍰 Repostería y Dulces":       {"repostería", "cheesecake", "galleta", "dulce"},
	"☕ Bebidas y Algo más":         {"bebida", "café", "chocolate", "avena"},
}
