package entity

// Country is a selectable country of residence with its base price.
type Country struct {
	ISOCode        string  `json:"iso_code"`
	CountryCode    string  `json:"country_code"`
	Name           string  `json:"name"`
	FlagEmoji      string  `json:"flag_emoji"`
	CurrencyISO    string  `json:"currency_iso_code"`
	CurrencySymbol string  `json:"currency_symbol"`
	PriceBase      float64 `json:"price_base"`
	IsPlaceholder  bool    `json:"is_placeholder"`
}

// Accomodation is an allowed sleeping option with its price discount.
type Accomodation struct {
	Name     string  `json:"name"`
	Discount float64 `json:"discount"`
}

// LookupLists bundles the allow-lists the registration form offers.
type LookupLists struct {
	Genders          []string        `json:"genders"`
	Countries        []*Country      `json:"countries"`
	Accomodations    []*Accomodation `json:"accomodations"`
	MeansOfTransport []string        `json:"means_of_transport"`
}
