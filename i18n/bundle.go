package i18n

// Categories labels the category chips.
type Categories struct {
	All        string
	Pickleball string
	Padel      string
	Beach      string
	Apparel    string
}

// Label returns the label for a category slug; "" is the "all" chip.
// Unknown slugs are returned unchanged.
func (c Categories) Label(slug string) string {
	switch slug {
	case "":
		return c.All
	case "pickleball":
		return c.Pickleball
	case "padel":
		return c.Padel
	case "beach":
		return c.Beach
	case "apparel":
		return c.Apparel
	}
	return slug
}

// Bundle is the full set of UI strings for one locale.
type Bundle struct {
	Locale           Locale
	Title            string
	Subtitle         string
	Search           string
	Categories       Categories
	Wishlist         string
	Add              string
	Subscribe        string
	Newsletter       string
	Recommendations  string
	Blog             string
	Events           string
	Details          string
	EmailPlaceholder string
}

var english = Bundle{
	Locale:   English,
	Title:    "Pikalba — Sustainable Sports Gear",
	Subtitle: "Pickleball, Padel, Beach & Apparel",
	Search:   "Search",
	Categories: Categories{
		All:        "All",
		Pickleball: "Pickleball",
		Padel:      "Padel",
		Beach:      "Beach Sports",
		Apparel:    "Apparel",
	},
	Wishlist:         "Wishlist",
	Add:              "Add to cart",
	Subscribe:        "Subscribe",
	Newsletter:       "Join our newsletter",
	Recommendations:  "You may also like",
	Blog:             "From the blog",
	Events:           "Upcoming events",
	Details:          "Details",
	EmailPlaceholder: "you@example.com",
}

var spanish = Bundle{
	Locale:   Spanish,
	Title:    "Pikalba — Equipamiento Deportivo Sostenible",
	Subtitle: "Pickleball, Pádel, Playa y Ropa",
	Search:   "Buscar",
	Categories: Categories{
		All:        "Todos",
		Pickleball: "Pickleball",
		Padel:      "Pádel",
		Beach:      "Deportes de Playa",
		Apparel:    "Ropa",
	},
	Wishlist:         "Favoritos",
	Add:              "Añadir al carrito",
	Subscribe:        "Suscribirse",
	Newsletter:       "Únete a nuestro boletín",
	Recommendations:  "También te puede gustar",
	Blog:             "Del blog",
	Events:           "Próximos eventos",
	Details:          "Detalles",
	EmailPlaceholder: "tu@ejemplo.com",
}

// For returns the bundle for l. Values outside the supported set get the
// English bundle.
func For(l Locale) Bundle {
	switch l {
	case Spanish:
		return spanish
	default:
		return english
	}
}
