// models/nigeria.go
package models

// Region is one of the six Nigerian geopolitical zones.
type Region string

const (
	RegionNorthCentral Region = "North Central"
	RegionNorthEast    Region = "North East"
	RegionNorthWest    Region = "North West"
	RegionSouthEast    Region = "South East"
	RegionSouthSouth   Region = "South South"
	RegionSouthWest    Region = "South West"
)

// AllRegionsSentinel is the region-selector value meaning "do not filter by
// region". It is what the UI's selectbox sends for its default entry.
const AllRegionsSentinel = "All Regions"

// Regions lists the six zones in the fixed order used for dataset
// generation. Iterating the RegionStates map directly would randomize record
// order between runs, so always range over this slice instead.
var Regions = []Region{
	RegionNorthCentral,
	RegionNorthEast,
	RegionNorthWest,
	RegionSouthEast,
	RegionSouthSouth,
	RegionSouthWest,
}

// RegionStates maps each zone to its member states. 37 entries total
// (7+6+7+5+6+6), counting the Federal Capital Territory under North Central.
// This table is fixed reference data, not configuration.
var RegionStates = map[Region][]string{
	RegionNorthCentral: {"Benue", "Kogi", "Kwara", "Nasarawa", "Niger", "Plateau", "FCT"},
	RegionNorthEast:    {"Adamawa", "Bauchi", "Borno", "Gombe", "Taraba", "Yobe"},
	RegionNorthWest:    {"Jigawa", "Kaduna", "Kano", "Katsina", "Kebbi", "Sokoto", "Zamfara"},
	RegionSouthEast:    {"Abia", "Anambra", "Ebonyi", "Enugu", "Imo"},
	RegionSouthSouth:   {"Akwa Ibom", "Bayelsa", "Cross River", "Delta", "Edo", "Rivers"},
	RegionSouthWest:    {"Ekiti", "Lagos", "Ogun", "Ondo", "Osun", "Oyo"},
}

// TotalStates is the fixed cardinality of the generated dataset.
const TotalStates = 37

// Centroid is an approximate map anchor for a region.
type Centroid struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// RegionCentroids holds approximate geographic centers for the six zones,
// used as anchors for the jittered coverage map.
var RegionCentroids = map[Region]Centroid{
	RegionNorthCentral: {Lat: 8.5, Lon: 8.0},
	RegionNorthEast:    {Lat: 10.5, Lon: 12.5},
	RegionNorthWest:    {Lat: 12.0, Lon: 8.0},
	RegionSouthEast:    {Lat: 5.5, Lon: 7.5},
	RegionSouthSouth:   {Lat: 5.0, Lon: 6.0},
	RegionSouthWest:    {Lat: 7.0, Lon: 4.0},
}

// IsValidRegion reports whether name is one of the six zone names.
func IsValidRegion(name string) bool {
	_, ok := RegionStates[Region(name)]
	return ok
}
