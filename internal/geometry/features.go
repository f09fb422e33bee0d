package geometry

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"realestate/server/internal/models"
)

// PropertyFeatures renders every property that has both coordinates as a
// GeoJSON point feature. Properties without a location are skipped. The
// collection's bbox covers all emitted points.
func PropertyFeatures(properties []models.Property) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	points := make(orb.MultiPoint, 0, len(properties))
	for i := range properties {
		p := &properties[i]
		if !p.HasCoordinates() {
			continue
		}

		point := orb.Point{*p.Longitude, *p.Latitude}
		points = append(points, point)

		feature := geojson.NewFeature(point)
		feature.ID = p.ID
		feature.Properties = geojson.Properties{
			"id":             p.ID,
			"title":          p.Title,
			"price":          p.Price,
			"property_type":  p.PropertyType.String(),
			"listing_status": p.ListingStatus.String(),
		}
		fc.Append(feature)
	}

	if len(points) > 0 {
		fc.BBox = geojson.NewBBox(points.Bound())
	}
	return fc
}
