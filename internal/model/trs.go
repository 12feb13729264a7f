package model

// TRSProperties are the properties of one township-range-section feature.
// Every feature in a TRS collection carries the same basin-wide
// avg_interval_footages.
type TRSProperties struct {
	TRS                 Text                     `json:"trs"`
	Basin               Text                     `json:"basin"`
	TR                  Text                     `json:"tr"`
	Section             Text                     `json:"section"`
	Lat                 float64                  `json:"lat"`
	Lon                 float64                  `json:"lon"`
	TotalWellFootage    float64                  `json:"total_well_footage"`
	TotalWellCount      float64                  `json:"total_well_count"`
	IntervalFootages    OrderedMap[IntervalStat] `json:"interval_footages"`
	AvgIntervalFootages OrderedMap[IntervalStat] `json:"avg_interval_footages"`
}

// TRSFeature is one section polygon with its footage statistics.
type TRSFeature = Feature[TRSProperties]

// TRSCollection is the payload of /api/trs.
type TRSCollection = FeatureCollection[TRSProperties]
