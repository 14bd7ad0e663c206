package models

// CostRow is one itemized cost estimate. The optional fields come from the
// secondary details table and stay nil when the generator omitted them or
// answered with a not-applicable sentinel.
type CostRow struct {
	Item          string   `json:"item"`
	OEMInterval   string   `json:"oemInterval"`
	DIYDifficulty int      `json:"diyDifficulty"`
	PartsPhp      int      `json:"partsPhp"`
	LaborPhp      int      `json:"laborPhp"`
	TotalPhp      int      `json:"totalPhp"`
	WhyNeeded     *string  `json:"whyNeeded,omitempty"`
	SpecialTools  []string `json:"specialTools,omitempty"`
	OEMPartNumber *string  `json:"oemPartNumber,omitempty"`
	Aftermarket   *int     `json:"aftermarketPrice,omitempty"`
	SurplusPrice  *int     `json:"surplusPrice,omitempty"`
	CostPerKm     *float64 `json:"costPerKm,omitempty"`
	VideoURL      *string  `json:"videoUrl,omitempty"`
}

// CostReport is the parsed cost table. GrandTotal is the upstream-declared
// total taken verbatim, not recomputed from the rows.
type CostReport struct {
	Rows       []CostRow `json:"rows"`
	GrandTotal int       `json:"grandTotal"`
}

// CostRowDetails holds the optional per-item fields parsed from the
// secondary details table, keyed by item name before merging.
type CostRowDetails struct {
	WhyNeeded     *string
	SpecialTools  []string
	OEMPartNumber *string
	Aftermarket   *int
	SurplusPrice  *int
	CostPerKm     *float64
	VideoURL      *string
}
