package model

// WellActivity is one point of a well's monthly activity series.
type WellActivity struct {
	Timestamp Date   `json:"timestamp" yaml:"timestamp"`
	Color     string `json:"color" yaml:"color"`
}

// WellProperties are the properties of a well feature.
type WellProperties struct {
	WellID             Text                     `json:"well_id"`
	WellName           Text                     `json:"well_name"`
	Operator           Text                     `json:"operator"`
	WellStatus         Text                     `json:"well_status"`
	PermitApprovedDate Date                     `json:"permit_approved_date"`
	SpudDate           Date                     `json:"spud_date"`
	FirstProdDate      Date                     `json:"first_prod_date"`
	TRS                Text                     `json:"trs"`
	IntervalFootages   OrderedMap[IntervalStat] `json:"interval_footages"`
	Data               []WellActivity           `json:"data"`
}

// WellFeature is one well lateral.
type WellFeature = Feature[WellProperties]

// WellCollection is the payload of /api/wells and /api/get_wells.
type WellCollection = FeatureCollection[WellProperties]
