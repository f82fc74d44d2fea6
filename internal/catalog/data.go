package catalog

import "doonconnect/internal/domain/models"

// Static city data for the Dehradun network. The booking flow treats this as
// immutable; a future GTFS import would replace this file.

func defaultStops() []models.Stop {
	return []models.Stop{
		{ID: "isbt", Name: "ISBT", Location: models.GeoPoint{Lat: 30.3398, Lng: 78.0664}, Routes: []string{"R2A", "R1", "R3", "R4", "R6"}, Amenities: []string{"shelter", "seating", "cafe", "restroom"}},
		{ID: "shimla-bypass", Name: "Shimla Bypass", Location: models.GeoPoint{Lat: 30.3420, Lng: 78.0680}, Routes: []string{"R2A"}, Amenities: []string{"shelter", "seating"}},
		{ID: "majra", Name: "Majra", Location: models.GeoPoint{Lat: 30.3445, Lng: 78.0695}, Routes: []string{"R2A"}, Amenities: []string{"shelter"}},
		{ID: "iti-niranjanpur", Name: "ITI Niranjanpur", Location: models.GeoPoint{Lat: 30.3470, Lng: 78.0710}, Routes: []string{"R2A"}, Amenities: []string{"shelter", "seating"}},
		{ID: "sabji-mandi-chowk", Name: "Sabji Mandi Chowk", Location: models.GeoPoint{Lat: 30.3485, Lng: 78.0720}, Routes: []string{"R2A"}, Amenities: []string{"shelter", "seating"}},
		{ID: "patel-nagar-police-station", Name: "Patel Nagar Police Station", Location: models.GeoPoint{Lat: 30.3500, Lng: 78.0735}, Routes: []string{"R2A"}, Amenities: []string{"shelter"}},
		{ID: "lal-pul", Name: "Lal Pul", Location: models.GeoPoint{Lat: 30.3515, Lng: 78.0750}, Routes: []string{"R2A"}, Amenities: []string{"shelter", "seating"}},
		{ID: "pnb-patel-nagar", Name: "PNB Patel Nagar", Location: models.GeoPoint{Lat: 30.3530, Lng: 78.0765}, Routes: []string{"R2A"}, Amenities: []string{"shelter"}},
		{ID: "matawala-bagh", Name: "Matawala Bagh", Location: models.GeoPoint{Lat: 30.3545, Lng: 78.0780}, Routes: []string{"R2A"}, Amenities: []string{"shelter", "seating"}},
		{ID: "saharanpur-chowk", Name: "Saharanpur Chowk", Location: models.GeoPoint{Lat: 30.3560, Lng: 78.0795}, Routes: []string{"R2A"}, Amenities: []string{"shelter", "seating"}},
		{ID: "dehradun-railway-station", Name: "Railway Station", Location: models.GeoPoint{Lat: 30.3142, Lng: 78.0347}, Routes: []string{"R2A", "R1", "R6", "R8"}, Amenities: []string{"shelter", "seating", "cafe", "restroom", "wifi"}},
		{ID: "prince-chowk", Name: "Prince Chowk", Location: models.GeoPoint{Lat: 30.3155, Lng: 78.0355}, Routes: []string{"R2A"}, Amenities: []string{"shelter"}},
		{ID: "cyber-police-station", Name: "Cyber Police Station", Location: models.GeoPoint{Lat: 30.3160, Lng: 78.0360}, Routes: []string{"R2A"}, Amenities: []string{"shelter"}},
		{ID: "tehshil-chowk", Name: "Tehshil Chowk", Location: models.GeoPoint{Lat: 30.3162, Lng: 78.0365}, Routes: []string{"R2A"}, Amenities: []string{"shelter", "seating"}},
		{ID: "darshan-lal-chowk", Name: "Darshan Lal Chowk", Location: models.GeoPoint{Lat: 30.3164, Lng: 78.0370}, Routes: []string{"R2A"}, Amenities: []string{"shelter"}},
		{ID: "clocktower", Name: "Clock Tower", Location: models.GeoPoint{Lat: 30.3165, Lng: 78.0322}, Routes: []string{"R2A", "R1", "R2", "R5"}, Amenities: []string{"shelter", "seating", "wifi"}},
		{ID: "gandhi-park", Name: "Gandhi Park", Location: models.GeoPoint{Lat: 30.3170, Lng: 78.0325}, Routes: []string{"R2A"}, Amenities: []string{"shelter", "seating"}},
		{ID: "st-joseph-academy", Name: "St. Joseph Academy", Location: models.GeoPoint{Lat: 30.3175, Lng: 78.0330}, Routes: []string{"R2A"}, Amenities: []string{"shelter"}},
		{ID: "sachiwalaya", Name: "Sachiwalaya", Location: models.GeoPoint{Lat: 30.3180, Lng: 78.0335}, Routes: []string{"R2A"}, Amenities: []string{"shelter", "seating"}},
		{ID: "bhel-chowk", Name: "Bhel Chowk", Location: models.GeoPoint{Lat: 30.3185, Lng: 78.0340}, Routes: []string{"R2A"}, Amenities: []string{"shelter"}},
		{ID: "dilaram-chowk", Name: "Dilaram Chowk", Location: models.GeoPoint{Lat: 30.3190, Lng: 78.0345}, Routes: []string{"R2A"}, Amenities: []string{"shelter", "seating"}},
		{ID: "madhuban-hotel", Name: "Madhuban Hotel", Location: models.GeoPoint{Lat: 30.3195, Lng: 78.0350}, Routes: []string{"R2A"}, Amenities: []string{"shelter"}},
		{ID: "ajanta-chowk", Name: "Ajanta Chowk", Location: models.GeoPoint{Lat: 30.3200, Lng: 78.0355}, Routes: []string{"R2A"}, Amenities: []string{"shelter", "seating"}},
		{ID: "survey-of-india", Name: "Survey of India", Location: models.GeoPoint{Lat: 30.3205, Lng: 78.0360}, Routes: []string{"R2A"}, Amenities: []string{"shelter"}},
		{ID: "nivh-front-gate", Name: "NIVH Front Gate", Location: models.GeoPoint{Lat: 30.3210, Lng: 78.0365}, Routes: []string{"R2A"}, Amenities: []string{"shelter", "seating"}},
		{ID: "jakhan", Name: "Jakhan", Location: models.GeoPoint{Lat: 30.3215, Lng: 78.0370}, Routes: []string{"R2A"}, Amenities: []string{"shelter"}},
		{ID: "pacific-mall", Name: "Pacific Mall", Location: models.GeoPoint{Lat: 30.3220, Lng: 78.0375}, Routes: []string{"R2A"}, Amenities: []string{"shelter", "seating", "cafe"}},
		{ID: "inder-bawa-marg", Name: "Inder Bawa Marg", Location: models.GeoPoint{Lat: 30.3225, Lng: 78.0380}, Routes: []string{"R2A"}, Amenities: []string{"shelter"}},
		{ID: "mussoorie-diversion", Name: "Mussoorie Diversion", Location: models.GeoPoint{Lat: 30.4278, Lng: 78.0447}, Routes: []string{"R2A", "R5", "R9"}, Amenities: []string{"shelter", "seating"}},
		{ID: "sai-mandir", Name: "Sai Mandir", Location: models.GeoPoint{Lat: 30.4285, Lng: 78.0450}, Routes: []string{"R2A"}, Amenities: []string{"shelter"}},
		{ID: "tehari-house-grd", Name: "Tehari House/GRD", Location: models.GeoPoint{Lat: 30.4290, Lng: 78.0455}, Routes: []string{"R2A"}, Amenities: []string{"shelter", "seating"}},
		{ID: "rajpur", Name: "Rajpur", Location: models.GeoPoint{Lat: 30.3293, Lng: 78.0428}, Routes: []string{"R2A", "R2", "R5", "R7"}, Amenities: []string{"shelter", "seating"}},
		{ID: "sahastradhara", Name: "Sahastradhara", Location: models.GeoPoint{Lat: 30.3734, Lng: 78.0199}, Routes: []string{"R3", "R8"}, Amenities: []string{"shelter", "seating", "cafe"}},
		{ID: "forest-research-institute", Name: "Forest Research Institute", Location: models.GeoPoint{Lat: 30.3350, Lng: 77.9999}, Routes: []string{"R4", "R7"}, Amenities: []string{"shelter", "seating", "wifi"}},
		{ID: "it-park", Name: "IT Park Sahastradhara Road", Location: models.GeoPoint{Lat: 30.3612, Lng: 78.0156}, Routes: []string{"R2", "R3", "R9"}, Amenities: []string{"shelter", "seating", "wifi", "cafe"}},
	}
}

func defaultRoutes() []models.Route {
	return []models.Route{
		{
			ID: "R2A", Name: "Doon Electric Bus Route 2A", Color: "#10B981",
			Stops: []string{
				"isbt", "shimla-bypass", "majra", "iti-niranjanpur", "sabji-mandi-chowk",
				"patel-nagar-police-station", "lal-pul", "pnb-patel-nagar", "matawala-bagh",
				"saharanpur-chowk", "dehradun-railway-station", "prince-chowk", "cyber-police-station",
				"tehshil-chowk", "darshan-lal-chowk", "clocktower", "gandhi-park", "st-joseph-academy",
				"sachiwalaya", "bhel-chowk", "dilaram-chowk", "madhuban-hotel", "ajanta-chowk",
				"survey-of-india", "nivh-front-gate", "jakhan", "pacific-mall", "inder-bawa-marg",
				"mussoorie-diversion", "sai-mandir", "tehari-house-grd", "rajpur",
			},
			Fare: 25, Frequency: 15,
		},
		{ID: "R1", Name: "Clock Tower - ISBT - Railway Station", Color: "#8B5CF6", Stops: []string{"clocktower", "isbt", "dehradun-railway-station"}, Fare: 15, Frequency: 10},
		{ID: "R2", Name: "Rajpur Road - IT Park", Color: "#A855F7", Stops: []string{"rajpur", "clocktower", "it-park"}, Fare: 20, Frequency: 15},
		{ID: "R3", Name: "ISBT - Sahastradhara - IT Park", Color: "#9333EA", Stops: []string{"isbt", "sahastradhara", "it-park"}, Fare: 25, Frequency: 20},
		{ID: "R4", Name: "ISBT - Forest Research Institute", Color: "#7C3AED", Stops: []string{"isbt", "forest-research-institute"}, Fare: 18, Frequency: 12},
		{ID: "R5", Name: "Clock Tower - Rajpur Road - Mussoorie Diversion", Color: "#6D28D9", Stops: []string{"clocktower", "rajpur", "mussoorie-diversion"}, Fare: 30, Frequency: 25},
		{ID: "R6", Name: "ISBT - Railway Station", Color: "#5B21B6", Stops: []string{"isbt", "dehradun-railway-station"}, Fare: 12, Frequency: 8},
		{ID: "R7", Name: "Rajpur Road - Forest Research Institute", Color: "#4C1D95", Stops: []string{"rajpur", "forest-research-institute"}, Fare: 22, Frequency: 18},
		{ID: "R8", Name: "Sahastradhara - Railway Station", Color: "#581C87", Stops: []string{"sahastradhara", "dehradun-railway-station"}, Fare: 28, Frequency: 22},
		{ID: "R9", Name: "Mussoorie Diversion - IT Park", Color: "#6B46C1", Stops: []string{"mussoorie-diversion", "it-park"}, Fare: 35, Frequency: 30},
	}
}

func defaultLiveBuses() []models.LiveBus {
	return []models.LiveBus{
		{ID: "E001", RouteID: "R2A", CurrentStop: "clocktower", NextStop: "gandhi-park", EstimatedArrival: 2, Distance: 0.2, Occupancy: models.OccupancyMedium},
		{ID: "E002", RouteID: "R2A", CurrentStop: "jakhan", NextStop: "pacific-mall", EstimatedArrival: 8, Distance: 1.5, Occupancy: models.OccupancyLow},
		{ID: "B001", RouteID: "R1", CurrentStop: "clocktower", NextStop: "isbt", EstimatedArrival: 3, Distance: 0.45, Occupancy: models.OccupancyMedium},
		{ID: "B002", RouteID: "R2", CurrentStop: "rajpur", NextStop: "clocktower", EstimatedArrival: 7, Distance: 0.85, Occupancy: models.OccupancyLow},
		{ID: "B003", RouteID: "R3", CurrentStop: "sahastradhara", NextStop: "it-park", EstimatedArrival: 12, Distance: 1.2, Occupancy: models.OccupancyHigh},
		{ID: "B004", RouteID: "R5", CurrentStop: "rajpur", NextStop: "mussoorie-diversion", EstimatedArrival: 5, Distance: 0.65, Occupancy: models.OccupancyMedium},
	}
}
