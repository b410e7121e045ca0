package moddb

// Raw records as returned by the ModDB API. The list endpoints wrap their
// payload in an object with a single array key ("mods" / "authors").

// Mod is one entry of the /api/mods collection.
type Mod struct {
	ModID          uint     `json:"modid"`   // ModDB's own row id
	AssetID        uint     `json:"assetid"` // asset id of the mod package
	Name           string   `json:"name"`
	Summary        *string  `json:"summary"`
	Author         string   `json:"author"` // display name, resolved against the authors collection
	URLAlias       *string  `json:"urlalias"`
	Downloads      int      `json:"downloads"`
	Follows        int      `json:"follows"`
	TrendingPoints int      `json:"trendingpoints"`
	Comments       int      `json:"comments"`
	Logo           *string  `json:"logo"`
	Side           string   `json:"side"` // server, client or both
	Type           string   `json:"type"` // mod, externaltool or other
	LastReleased   string   `json:"lastreleased"` // "2006-01-02 15:04:05"
	ModIDStrs      []string `json:"modidstrs"`
	Tags           []string `json:"tags"`
}

// Author is one entry of the /api/authors collection.
type Author struct {
	UserID uint    `json:"userid"`
	Name   *string `json:"name"` // some accounts have no display name
}
