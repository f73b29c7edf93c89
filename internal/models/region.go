package models

// Region values match the shard tag names configured on the cluster;
// matching is case-sensitive on purpose.
const (
	RegionEurope = "Europe"
	RegionAsia   = "Asia"
	RegionUS     = "US"
)

var Regions = []string{RegionEurope, RegionAsia, RegionUS}

func ValidRegion(region string) bool {
	for _, r := range Regions {
		if region == r {
			return true
		}
	}
	return false
}
