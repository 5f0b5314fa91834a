// README: Common geo coordinate value object used across modules.
package types

// GeoPoint is a latitude/longitude pair as emitted by the model and the Places API.
type GeoPoint struct {
	Lat float64 `json:"latitude" firestore:"latitude"`
	Lng float64 `json:"longitude" firestore:"longitude"`
}
