package structs

// CacheSchemaVersion is the expected schema version of a persisted hero
// catalog. A cache written with any other version is treated as absent.
const CacheSchemaVersion = 1

// Powerstats holds the six numeric attributes of a hero. The upstream
// catalog reports null for unknown stats, hence the pointers.
type Powerstats struct {
	Intelligence *int `json:"intelligence"`
	Strength     *int `json:"strength"`
	Speed        *int `json:"speed"`
	Durability   *int `json:"durability"`
	Power        *int `json:"power"`
	Combat       *int `json:"combat"`
}

type Appearance struct {
	Gender    string   `json:"gender,omitempty"`
	Race      string   `json:"race,omitempty"`
	Height    []string `json:"height,omitempty"`
	Weight    []string `json:"weight,omitempty"`
	EyeColor  string   `json:"eyeColor,omitempty"`
	HairColor string   `json:"hairColor,omitempty"`
}

type Biography struct {
	FullName        string   `json:"fullName"`
	AlterEgos       string   `json:"alterEgos,omitempty"`
	Aliases         []string `json:"aliases,omitempty"`
	PlaceOfBirth    string   `json:"placeOfBirth,omitempty"`
	FirstAppearance string   `json:"firstAppearance,omitempty"`
	Publisher       string   `json:"publisher,omitempty"`
	Alignment       string   `json:"alignment,omitempty"`
}

type Work struct {
	Occupation string `json:"occupation,omitempty"`
	Base       string `json:"base,omitempty"`
}

type Connections struct {
	GroupAffiliation string `json:"groupAffiliation,omitempty"`
	Relatives        string `json:"relatives,omitempty"`
}

type Images struct {
	XS string `json:"xs"`
	SM string `json:"sm"`
	MD string `json:"md"`
	LG string `json:"lg"`
}

// Superhero is a single catalog entry. Heroes are sourced wholesale from the
// remote catalog and never mutated locally; everything else in the system
// references them by ID only.
type Superhero struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Slug        string      `json:"slug"`
	Powerstats  Powerstats  `json:"powerstats"`
	Appearance  Appearance  `json:"appearance"`
	Biography   Biography   `json:"biography"`
	Work        Work        `json:"work"`
	Connections Connections `json:"connections"`
	Images      Images      `json:"images"`
}

func (s *Superhero) GetID() int {
	return s.ID
}

func (s *Superhero) GetName() string {
	return s.Name
}

// HeroesCache is the persisted envelope for the full hero catalog. It is
// always replaced wholesale, never patched.
type HeroesCache struct {
	Version     int         `json:"version"`
	LastUpdated int64       `json:"lastUpdated"`
	Heroes      []Superhero `json:"heroes"`
}

// Usable reports whether the cache can serve a regular (non-fallback) read:
// current schema version and at least one hero.
func (c *HeroesCache) Usable() bool {
	return c != nil && c.Version == CacheSchemaVersion && len(c.Heroes) > 0
}
