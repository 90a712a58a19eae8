package matching

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"

	"github.com/MrJamesThe3rd/roommapper/internal/matching"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type referenceRoomRequest struct {
	RoomID   string  `json:"roomId" validate:"required"`
	RoomName *string `json:"roomName" validate:"required"`
}

type referenceCatalogRequest struct {
	PropertyID        string                 `json:"propertyId" validate:"required"`
	PropertyName      string                 `json:"propertyName"`
	ReferenceRoomInfo []referenceRoomRequest `json:"referenceRoomInfo" validate:"omitempty,dive"`
}

type supplierRoomRequest struct {
	SupplierRoomID   string  `json:"supplierRoomId" validate:"required"`
	SupplierRoomName *string `json:"supplierRoomName" validate:"required"`
}

type supplierCatalogRequest struct {
	SupplierID       string                `json:"supplierId" validate:"required"`
	SupplierRoomInfo []supplierRoomRequest `json:"supplierRoomInfo" validate:"required,dive"`
}

type roomDataRequest struct {
	ReferenceCatalog referenceCatalogRequest  `json:"referenceCatalog"`
	InputCatalog     []supplierCatalogRequest `json:"inputCatalog" validate:"required,dive"`
}

type bulkRequest struct {
	BulkMatches []roomDataRequest `json:"bulk_matches" validate:"required,dive"`
}

type normalizeRequest struct {
	Names []string `json:"names" validate:"required"`
}

func (req roomDataRequest) toRoomData() matching.RoomData {
	refs := make([]matching.RoomInfo, len(req.ReferenceCatalog.ReferenceRoomInfo))
	for i, room := range req.ReferenceCatalog.ReferenceRoomInfo {
		refs[i] = matching.RoomInfo{ID: room.RoomID, Name: *room.RoomName}
	}

	return matching.RoomData{
		Reference: matching.ReferenceCatalog{
			PropertyID:   req.ReferenceCatalog.PropertyID,
			PropertyName: req.ReferenceCatalog.PropertyName,
			Rooms:        refs,
		},
		Suppliers: req.suppliers(),
	}
}

func (req roomDataRequest) suppliers() []matching.SupplierCatalog {
	out := make([]matching.SupplierCatalog, len(req.InputCatalog))

	for i, catalog := range req.InputCatalog {
		rooms := make([]matching.RoomInfo, len(catalog.SupplierRoomInfo))
		for j, room := range catalog.SupplierRoomInfo {
			rooms[j] = matching.RoomInfo{ID: room.SupplierRoomID, Name: *room.SupplierRoomName}
		}

		out[i] = matching.SupplierCatalog{SupplierID: catalog.SupplierID, Rooms: rooms}
	}

	return out
}

// DecodeRoomData reads one room match request in the API wire format.
func DecodeRoomData(r io.Reader) (matching.RoomData, error) {
	var req roomDataRequest
	if err := decodeRequest(r, &req); err != nil {
		return matching.RoomData{}, err
	}

	return req.toRoomData(), nil
}

func decodeRequest(r io.Reader, dst any) error {
	if err := json.NewDecoder(r).Decode(dst); err != nil {
		return fmt.Errorf("decoding request: %w", err)
	}

	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("validating request: %w", err)
	}

	return nil
}
