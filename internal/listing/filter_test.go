package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"inmolista/server/internal/models"
)

func TestFilter_WildcardsReturnInputUnchanged(t *testing.T) {
	props := sampleProperties()
	result := Filter(props, wildcards())

	assert.Equal(t, props, result)
}

func TestFilter_EmptyInput(t *testing.T) {
	result := Filter(nil, wildcards())
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestFilter_SelectsSubsequence(t *testing.T) {
	props := sampleProperties()

	filters := wildcards()
	filters.Type = models.TypeApartment
	result := Filter(props, filters)

	assert.Len(t, result, 1)
	assert.Equal(t, "p2", result[0].ID)
}

func TestFilter_PreservesOrder(t *testing.T) {
	props := []models.Property{
		{ID: "a", Title: "Casa Uno", City: "Puebla", Price: 100},
		{ID: "b", Title: "Casa Dos", City: "Puebla", Price: 50},
		{ID: "c", Title: "Casa Tres", City: "Puebla", Price: 200},
	}

	filters := models.FilterSet{MinPrice: "60"}
	result := Filter(props, filters)

	assert.Equal(t, []string{"a", "c"}, []string{result[0].ID, result[1].ID})
}

func TestFilter_NeverLongerThanInput(t *testing.T) {
	props := sampleProperties()
	for _, filters := range []models.FilterSet{
		{},
		{Search: "casa"},
		{Type: models.TypeHouse},
		{MinPrice: "0"},
	} {
		result := Filter(props, filters)
		assert.LessOrEqual(t, len(result), len(props))
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	props := sampleProperties()
	original := sampleProperties()

	filters := wildcards()
	filters.Operation = models.OperationSale
	Filter(props, filters)

	assert.Equal(t, original, props)
}
