package db

// InstallSide says which game role must install a mod.
type InstallSide string

const (
	SideServer InstallSide = "server"
	SideClient InstallSide = "client"
	SideBoth   InstallSide = "both"
)

// ModType is the ModDB package kind.
type ModType string

const (
	TypeMod          ModType = "mod"
	TypeExternalTool ModType = "externaltool"
	TypeOther        ModType = "other"
)

// Author represents a ModDB author account. The primary key is the external
// userid, not a surrogate.
type Author struct {
	ID   uint    `gorm:"primaryKey"`
	Name *string // some accounts have no display name

	Mods []Mod
}

// Mod represents one mod package. The primary key is the external modid;
// AssetID is the repository's asset identifier and is unique on its own.
type Mod struct {
	ID             uint `gorm:"primaryKey"`
	AssetID        uint `gorm:"uniqueIndex"`
	Name           string
	Summary        *string
	AuthorID       uint
	Author         Author
	URLAlias       *string
	Downloads      int
	Follows        int
	TrendingPoints int
	CommentCount   int // "comments" in the API
	Logo           *string
	Side           InstallSide
	ModType        ModType // "type" in the API
	LastReleased   UnixTime

	ModIDStrs []ModIDStr
	Tags      []Tag `gorm:"many2many:mod_tags"`
	Versions  []ModVersion
}

// ModIDStr is an alternate string identifier for a mod (a package slug). The
// alias string itself is the primary key, so an alias belongs to exactly one
// mod store-wide.
type ModIDStr struct {
	ModIDStr string `gorm:"primaryKey;column:modid_str"`
	ModID    uint
}

// TableName keeps the ModDB spelling of "modid".
func (ModIDStr) TableName() string { return "modid_strs" }

// ModVersion is a released version string. Version strings are unique across
// the store, not just per mod.
type ModVersion struct {
	ID      uint
	ModID   uint
	Version string `gorm:"uniqueIndex"`
}

// Tag is a unique label, attached to mods through the mod_tags join table.
type Tag struct {
	ID  uint
	Tag string `gorm:"uniqueIndex"`

	Mods []Mod `gorm:"many2many:mod_tags"`
}
