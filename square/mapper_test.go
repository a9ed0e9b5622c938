package square

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawObject(t *testing.T, s string) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(s), &m))
	return m
}

func TestDecodeCatalogObject_Variation(t *testing.T) {
	raw := rawObject(t, `{
		"id": "VAR1",
		"type": "ITEM_VARIATION",
		"item_variation_data": {
			"item_id": "ITEM1",
			"name": "S",
			"price_money": {"amount": 2000, "currency": "USD"},
			"image_ids": ["IMG1"]
		}
	}`)

	obj, err := DecodeCatalogObject(raw)
	require.NoError(t, err)
	assert.Equal(t, "VAR1", obj.ID)
	assert.Equal(t, TypeItemVariation, obj.Type)
	require.NotNil(t, obj.ItemVariationData)
	assert.Equal(t, "ITEM1", obj.ItemVariationData.ItemID)
	require.NotNil(t, obj.ItemVariationData.PriceMoney)
	assert.Equal(t, int64(2000), obj.ItemVariationData.PriceMoney.Amount)
	assert.Equal(t, []string{"IMG1"}, obj.ItemVariationData.ImageIDs)
}

func TestDecodeCatalogObject_StringAmount(t *testing.T) {
	raw := rawObject(t, `{
		"id": "VAR1",
		"type": "ITEM_VARIATION",
		"item_variation_data": {
			"item_id": "ITEM1",
			"name": "S",
			"price_money": {"amount": "5500", "currency": "USD"}
		}
	}`)

	obj, err := DecodeCatalogObject(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(5500), obj.ItemVariationData.PriceMoney.Amount)
}

func TestDecodeCatalogObject_BadAmount(t *testing.T) {
	raw := rawObject(t, `{
		"id": "VAR1",
		"type": "ITEM_VARIATION",
		"item_variation_data": {
			"price_money": {"amount": "not-a-number"}
		}
	}`)
	_, err := DecodeCatalogObject(raw)
	assert.Error(t, err)
}

func TestDecodeCatalogObjects_ItemAndImage(t *testing.T) {
	raws := []map[string]interface{}{
		rawObject(t, `{"id":"ITEM1","type":"ITEM","item_data":{"name":"Tee","image_ids":["IMG1"]}}`),
		rawObject(t, `{"id":"IMG1","type":"IMAGE","image_data":{"url":"https://cdn.example/tee.png"}}`),
	}
	objs, err := DecodeCatalogObjects(raws)
	require.NoError(t, err)
	require.Len(t, objs, 2)
	assert.Equal(t, "Tee", objs[0].ItemData.Name)
	assert.Equal(t, "https://cdn.example/tee.png", objs[1].ImageData.URL)
	assert.Nil(t, objs[0].ItemVariationData)
}
