package explore

import (
	"regexp"
	"testing"

	"ritmo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildFilterEmpty(t *testing.T) {
	filter := BuildFilter(models.ExploreFilter{}, "2024-01-04")

	// Only the date window applies.
	or, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	assert.Len(t, or, 2)
	assert.NotContains(t, filter, "$and")
	assert.NotContains(t, filter, "city")
}

func TestBuildFilterScalarFields(t *testing.T) {
	price := 15.0
	filter := BuildFilter(models.ExploreFilter{
		City:     "Madrid",
		Styles:   []string{"salsa", "bachata"},
		Types:    []string{models.EventTypeClass},
		PriceMax: &price,
	}, "2024-01-04")

	assert.Equal(t, "Madrid", filter["city"])
	assert.Equal(t, bson.M{"$in": []string{"salsa", "bachata"}}, filter["styles"])
	assert.Equal(t, bson.M{"$in": []string{models.EventTypeClass}}, filter["type"])
	assert.Equal(t, bson.M{"$lte": 15.0}, filter["price"])
}

func TestBuildFilterDateWindow(t *testing.T) {
	filter := BuildFilter(models.ExploreFilter{}, "2024-01-04")

	or := filter["$or"].([]bson.M)
	assert.Equal(t, bson.M{"date": bson.M{"$exists": false}}, or[0])
	assert.Equal(t, bson.M{"date": bson.M{"$gte": "2024-01-04"}}, or[1])
}

func TestBuildFilterCombinesGroupsWithAnd(t *testing.T) {
	filter := BuildFilter(models.ExploreFilter{
		Weekdays: []int{3, 5},
		Query:    "bachata",
	}, "2024-01-04")

	groups, ok := filter["$and"].([]bson.M)
	require.True(t, ok)
	// Date window + weekday group + text group.
	assert.Len(t, groups, 3)
	assert.NotContains(t, filter, "$or")
}

func TestBuildFilterQueryIsEscaped(t *testing.T) {
	filter := BuildFilter(models.ExploreFilter{Query: "rock (n) roll?"}, "2024-01-04")

	groups := filter["$and"].([]bson.M)
	textGroup := groups[len(groups)-1]["$or"].([]bson.M)
	require.NotEmpty(t, textGroup)
	for _, clause := range textGroup {
		for _, v := range clause {
			pattern, ok := v.(primitive.Regex)
			require.True(t, ok)
			assert.Equal(t, regexp.QuoteMeta("rock (n) roll?"), pattern.Pattern)
			assert.Equal(t, "i", pattern.Options)
		}
	}
}
