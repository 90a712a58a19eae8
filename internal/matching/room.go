package matching

// Key identifies a room within the list it came from.
type Key struct {
	Source string
	Room   string
}

// Record is a room that can take part in pairing.
type Record interface {
	Key() Key
	Normalized() string
}

// Normalizer turns raw room names into canonical token strings.
type Normalizer interface {
	NormalizeAll(names []string) ([]string, error)
}

// ReferenceRoom is a room of the curated catalog sent with a request.
type ReferenceRoom struct {
	PropertyID     string
	PropertyName   string
	RoomID         string
	RoomName       string
	NormalizedName string
}

func (r ReferenceRoom) Key() Key           { return Key{Source: r.PropertyID, Room: r.RoomID} }
func (r ReferenceRoom) Normalized() string { return r.NormalizedName }

// SupplierRoom is a room offered by a supplier.
type SupplierRoom struct {
	SupplierID     string
	RoomID         string
	RoomName       string
	NormalizedName string
}

func (r SupplierRoom) Key() Key           { return Key{Source: r.SupplierID, Room: r.RoomID} }
func (r SupplierRoom) Normalized() string { return r.NormalizedName }

// PropertyRoom is a row of the reference dataset.
type PropertyRoom struct {
	HotelID        string
	LPID           string
	RoomID         string
	RoomName       string
	NormalizedName string
}

func (r PropertyRoom) Key() Key           { return Key{Source: r.LPID, Room: r.RoomID} }
func (r PropertyRoom) Normalized() string { return r.NormalizedName }

// RoomInfo is a room as it arrives in a catalog, before normalization.
type RoomInfo struct {
	ID   string
	Name string
}

// ReferenceCatalog is the curated room list of a property.
type ReferenceCatalog struct {
	PropertyID   string
	PropertyName string
	Rooms        []RoomInfo
}

// SupplierCatalog is the room list of one supplier.
type SupplierCatalog struct {
	SupplierID string
	Rooms      []RoomInfo
}

// RoomData is one matching request: a reference catalog and its supplier catalogs.
type RoomData struct {
	Reference ReferenceCatalog
	Suppliers []SupplierCatalog
}
