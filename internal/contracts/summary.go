package contracts

// MarketSummary holds aggregate statistics over one snapshot.
type MarketSummary struct {
	TotalCount   int            `json:"total_count"`
	MarketCounts map[string]int `json:"market_counts"` // key: KOSPI, KOSDAQ, ...

	Advancing int     `json:"advancing"`
	Declining int     `json:"declining"`
	Flat      int     `json:"flat"`
	MeanPct   float64 `json:"mean_pct"` // 평균 등락률 (%)

	MeanVolume    float64 `json:"mean_volume"`
	TopVolumeCode string  `json:"top_volume_code"`
	TopVolumeName string  `json:"top_volume_name"`

	ForeignBuyers  int `json:"foreign_buyers"`  // 외국인 순매수 종목 수
	ForeignSellers int `json:"foreign_sellers"`
	InstBuyers     int `json:"inst_buyers"`
	InstSellers    int `json:"inst_sellers"`
}
