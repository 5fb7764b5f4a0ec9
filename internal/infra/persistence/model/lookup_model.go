package model

// CountryModel mirrors the 'countries' table.
type CountryModel struct {
	ISOCode         string  `gorm:"type:text;primaryKey"`
	CountryCode     string  `gorm:"type:text"`
	Name            string  `gorm:"type:text"`
	FlagEmoji       string  `gorm:"type:text"`
	CurrencyISOCode string  `gorm:"column:currency_iso_code;type:text"`
	CurrencySymbol  string  `gorm:"type:text"`
	PriceBase       float64 `gorm:"not null"`
	IsPlaceholder   bool    `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (CountryModel) TableName() string {
	return "countries"
}

// GenderModel mirrors the 'genders' table.
type GenderModel struct {
	Name string `gorm:"type:text;primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (GenderModel) TableName() string {
	return "genders"
}

// AccomodationModel mirrors the 'accomodations' table.
type AccomodationModel struct {
	Name     string  `gorm:"type:text;primaryKey"`
	Discount float64 `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (AccomodationModel) TableName() string {
	return "accomodations"
}

// MeansOfTransportModel mirrors the 'means_of_transport' table.
type MeansOfTransportModel struct {
	Name string `gorm:"type:text;primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (MeansOfTransportModel) TableName() string {
	return "means_of_transport"
}
