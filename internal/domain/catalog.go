// Package domain holds the core types of the cinema chat service.
//
// Field names mirror the catalog JSON document (Spanish keys) so the
// decoded structs can be rendered back into prompt context without any
// remapping layer.
package domain

// Catalog is the full cinema dataset fetched per request. It is immutable
// for the lifetime of one turn; callers never mutate it after decode.
type Catalog struct {
	Cine                 string      `json:"cine"`
	Ubicacion            string      `json:"ubicacion"`
	PromocionesGenerales []Promotion `json:"promociones_generales"`
	Combos               []Combo     `json:"combos"`
	Peliculas            []Movie     `json:"peliculas"`
}

// Promotion is a cinema-wide promotion (not tied to a movie).
type Promotion struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// Combo is a snack combo with its price in soles.
type Combo struct {
	Nombre    string  `json:"nombre"`
	Contenido string  `json:"contenido"`
	Precio    float64 `json:"precio"`
}

// Movie is a single catalog entry. Precios is kept as a map so that an
// absent tier (e.g. no "general" price) is distinguishable from zero.
type Movie struct {
	Titulo        string             `json:"titulo"`
	Genero        []string           `json:"genero"`
	Sinopsis      string             `json:"sinopsis"`
	Duracion      int                `json:"duracion"`
	Clasificacion string             `json:"clasificacion"`
	Horarios      []string           `json:"horarios"`
	Precios       map[string]float64 `json:"precios"`
	Promociones   []string           `json:"promociones,omitempty"`
	Rating        float64            `json:"rating"`
}

// Price tier keys as they appear in the catalog document.
const (
	PriceGeneral     = "general"
	PriceNinos       = "niños"
	PriceTerceraEdad = "tercera_edad"
	PriceVIP         = "VIP"
)
