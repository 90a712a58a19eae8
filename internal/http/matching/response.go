package matching

import (
	"github.com/MrJamesThe3rd/roommapper/internal/matching"
)

type supplierMatchResponse struct {
	SupplierName     string `json:"supplierName,omitempty"`
	SupplierRoomID   string `json:"supplierRoomId"`
	SupplierRoomName string `json:"supplierRoomName"`
	MatchScore       int    `json:"matchScore"`
}

type referenceGroupResponse struct {
	ReferenceName     string                  `json:"referenceName"`
	ReferenceID       string                  `json:"referenceId"`
	ReferenceRoomID   string                  `json:"referenceRoomId"`
	ReferenceRoomName string                  `json:"referenceRoomName"`
	MappedRooms       []supplierMatchResponse `json:"mappedRooms"`
}

type propertyGroupResponse struct {
	HotelID           string                  `json:"hotelId"`
	LPID              string                  `json:"lpId"`
	ReferenceRoomID   string                  `json:"referenceRoomId"`
	ReferenceRoomName string                  `json:"referenceRoomName"`
	MappedRooms       []supplierMatchResponse `json:"mappedRooms"`
}

type unmappedReferenceResponse struct {
	ReferenceName     string `json:"referenceName"`
	ReferenceID       string `json:"referenceId"`
	ReferenceRoomID   string `json:"referenceRoomId"`
	ReferenceRoomName string `json:"referenceRoomName"`
	ProcessedRoomName string `json:"processedRoomName"`
}

type unmappedSupplierResponse struct {
	SupplierName      string `json:"supplierName"`
	SupplierRoomID    string `json:"supplierRoomId"`
	SupplierRoomName  string `json:"supplierRoomName"`
	ProcessedRoomName string `json:"processedRoomName"`
}

type catalogResponse struct {
	ReferenceCatalog       string                      `json:"referenceCatalog"`
	MappedRooms            []referenceGroupResponse    `json:"mappedRooms"`
	UnmappedReferenceRooms []unmappedReferenceResponse `json:"unmappedReferenceRooms"`
	UnmappedRooms          []unmappedSupplierResponse  `json:"unmappedRooms"`
}

type propertyResponse struct {
	ReferenceCatalog string                     `json:"referenceCatalog"`
	MappedRooms      []propertyGroupResponse    `json:"mappedRooms"`
	UnmappedRooms    []unmappedSupplierResponse `json:"unmappedRooms"`
}

type normalizeResponse struct {
	Normalized []string `json:"normalized"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func toCatalogResponse(res *matching.CatalogResult) catalogResponse {
	resp := catalogResponse{
		ReferenceCatalog:       res.PropertyID,
		MappedRooms:            make([]referenceGroupResponse, len(res.Groups)),
		UnmappedReferenceRooms: make([]unmappedReferenceResponse, len(res.UnmatchedReference)),
		UnmappedRooms:          toUnmappedSuppliers(res.UnmatchedSupplier),
	}

	for i, g := range res.Groups {
		resp.MappedRooms[i] = referenceGroupResponse{
			ReferenceName:     g.Reference.PropertyName,
			ReferenceID:       g.Reference.PropertyID,
			ReferenceRoomID:   g.Reference.RoomID,
			ReferenceRoomName: g.Reference.RoomName,
			MappedRooms:       toSupplierMatches(g.Matches, true),
		}
	}

	for i, r := range res.UnmatchedReference {
		resp.UnmappedReferenceRooms[i] = unmappedReferenceResponse{
			ReferenceName:     r.PropertyName,
			ReferenceID:       r.PropertyID,
			ReferenceRoomID:   r.RoomID,
			ReferenceRoomName: r.RoomName,
			ProcessedRoomName: r.NormalizedName,
		}
	}

	return resp
}

func toPropertyResponse(res *matching.PropertyResult) propertyResponse {
	resp := propertyResponse{
		ReferenceCatalog: res.PropertyID,
		MappedRooms:      make([]propertyGroupResponse, len(res.Groups)),
		UnmappedRooms:    toUnmappedSuppliers(res.UnmatchedSupplier),
	}

	for i, g := range res.Groups {
		resp.MappedRooms[i] = propertyGroupResponse{
			HotelID:           g.Reference.HotelID,
			LPID:              g.Reference.LPID,
			ReferenceRoomID:   g.Reference.RoomID,
			ReferenceRoomName: g.Reference.RoomName,
			MappedRooms:       toSupplierMatches(g.Matches, false),
		}
	}

	return resp
}

func toSupplierMatches(matches []matching.SupplierMatch, withSupplier bool) []supplierMatchResponse {
	out := make([]supplierMatchResponse, len(matches))

	for i, m := range matches {
		out[i] = supplierMatchResponse{
			SupplierRoomID:   m.Supplier.RoomID,
			SupplierRoomName: m.Supplier.RoomName,
			MatchScore:       m.Score,
		}

		if withSupplier {
			out[i].SupplierName = m.Supplier.SupplierID
		}
	}

	return out
}

func toUnmappedSuppliers(rooms []matching.SupplierRoom) []unmappedSupplierResponse {
	out := make([]unmappedSupplierResponse, len(rooms))

	for i, r := range rooms {
		out[i] = unmappedSupplierResponse{
			SupplierName:      r.SupplierID,
			SupplierRoomID:    r.RoomID,
			SupplierRoomName:  r.RoomName,
			ProcessedRoomName: r.NormalizedName,
		}
	}

	return out
}
