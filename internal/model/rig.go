package model

// RigRecord is one row of /api/get_rigs: a rig's active interval on a lease.
type RigRecord struct {
	RigID     Text    `json:"rig_id" yaml:"rig_id"`
	LeaseName Text    `json:"lease_name" yaml:"lease_name"`
	FirstDate Date    `json:"first_date" yaml:"first_date"`
	LastDate  Date    `json:"last_date" yaml:"last_date"`
	LatMean   float64 `json:"lat_mean" yaml:"lat_mean"`
	LonMean   float64 `json:"lon_mean" yaml:"lon_mean"`
	APIList   Text    `json:"api_lst" yaml:"api_lst"`
	Operator  Text    `json:"operator" yaml:"operator"`
}

// ActiveOn reports whether d lies inside [FirstDate, LastDate], inclusive.
// A rig with either end unknown is never active.
func (r RigRecord) ActiveOn(d Date) bool {
	if r.FirstDate.IsZero() || r.LastDate.IsZero() {
		return false
	}
	return !d.Before(r.FirstDate) && !d.After(r.LastDate)
}
