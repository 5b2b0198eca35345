package explore

import (
	"regexp"

	"ritmo/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BuildFilter turns client filter state into a MongoDB filter. todayKey is
// today's date in the reference timezone; one-off rows whose date already
// passed are excluded at the query, recurring rows always qualify.
func BuildFilter(f models.ExploreFilter, todayKey string) bson.M {
	filter := bson.M{}
	var groups []bson.M

	if f.City != "" {
		filter["city"] = f.City
	}
	if len(f.Styles) > 0 {
		filter["styles"] = bson.M{"$in": f.Styles}
	}
	if len(f.Types) > 0 {
		filter["type"] = bson.M{"$in": f.Types}
	}
	if f.PriceMax != nil {
		filter["price"] = bson.M{"$lte": *f.PriceMax}
	}

	// Date window: either no explicit date (recurring rows) or not yet passed.
	groups = append(groups, bson.M{"$or": []bson.M{
		{"date": bson.M{"$exists": false}},
		{"date": bson.M{"$gte": todayKey}},
	}})

	if len(f.Weekdays) > 0 {
		groups = append(groups, bson.M{"$or": []bson.M{
			{"weekday": bson.M{"$in": f.Weekdays}},
			{"weekdays": bson.M{"$in": f.Weekdays}},
			{"date": bson.M{"$exists": true}},
		}})
	}

	if f.Query != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(f.Query), Options: "i"}
		groups = append(groups, bson.M{"$or": []bson.M{
			{"title": pattern},
			{"description": pattern},
			{"venue": pattern},
		}})
	}

	if len(groups) == 1 {
		for k, v := range groups[0] {
			filter[k] = v
		}
	} else if len(groups) > 1 {
		filter["$and"] = groups
	}

	return filter
}
