package matching_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpmatching "github.com/MrJamesThe3rd/roommapper/internal/http/matching"
	"github.com/MrJamesThe3rd/roommapper/internal/matching"
)

func TestDecodeRoomData(t *testing.T) {
	body := `{
		"referenceCatalog": {
			"propertyId": "lp98f3b",
			"propertyName": "Hola",
			"referenceRoomInfo": [{"roomId": "1", "roomName": "Classic Room "}]
		},
		"inputCatalog": [
			{"supplierId": "supplier 1", "supplierRoomInfo": [{"supplierRoomId": "2", "supplierRoomName": ""}]},
			{"supplierId": "supplier 2", "supplierRoomInfo": []}
		]
	}`

	got, err := httpmatching.DecodeRoomData(strings.NewReader(body))
	require.NoError(t, err)

	assert.Equal(t, matching.RoomData{
		Reference: matching.ReferenceCatalog{
			PropertyID:   "lp98f3b",
			PropertyName: "Hola",
			Rooms:        []matching.RoomInfo{{ID: "1", Name: "Classic Room "}},
		},
		Suppliers: []matching.SupplierCatalog{
			{SupplierID: "supplier 1", Rooms: []matching.RoomInfo{{ID: "2", Name: ""}}},
			{SupplierID: "supplier 2", Rooms: []matching.RoomInfo{}},
		},
	}, got)
}

func TestDecodeRoomData_ReferenceRoomsOptional(t *testing.T) {
	got, err := httpmatching.DecodeRoomData(strings.NewReader(`{"referenceCatalog": {"propertyId": "123"}, "inputCatalog": []}`))
	require.NoError(t, err)
	assert.Empty(t, got.Reference.Rooms)
	assert.Empty(t, got.Suppliers)
}

func TestDecodeRoomData_Invalid(t *testing.T) {
	tests := map[string]string{
		"Syntax":            `not json`,
		"MissingSupplierID": `{"referenceCatalog": {"propertyId": "1"}, "inputCatalog": [{"supplierRoomInfo": []}]}`,
		"MissingRoomID":     `{"referenceCatalog": {"propertyId": "1", "referenceRoomInfo": [{"roomName": "x"}]}, "inputCatalog": []}`,
		"NullSupplierName":  `{"referenceCatalog": {"propertyId": "1"}, "inputCatalog": [{"supplierId": "a", "supplierRoomInfo": [{"supplierRoomId": "1", "supplierRoomName": null}]}]}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := httpmatching.DecodeRoomData(strings.NewReader(body))
			assert.Error(t, err)
		})
	}
}
