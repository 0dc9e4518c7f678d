package shipping

type Courier struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var couriers = []Courier{
	{Code: "jne", Name: "JNE"},
	{Code: "pos", Name: "POS Indonesia"},
	{Code: "tiki", Name: "TIKI"},
}

type Province struct {
	ProvinceID string `json:"province_id"`
	Province   string `json:"province"`
}

type City struct {
	CityID     string `json:"city_id"`
	ProvinceID string `json:"province_id"`
	Province   string `json:"province,omitempty"`
	Type       string `json:"type"`
	CityName   string `json:"city_name"`
	PostalCode string `json:"postal_code"`
}

// CostRequest asks for shipping prices. Origin and Destination are city ids, Weight is in grams.
type CostRequest struct {
	Origin      int
	Destination int
	Weight      int
	Courier     string
}

// Quote is one flattened courier service price.
type Quote struct {
	Courier     string `json:"courier"`
	Service     string `json:"service"`
	Description string `json:"description"`
	Cost        int64  `json:"cost"`
	ETD         string `json:"etd"`
	Note        string `json:"note,omitempty"`
}

// envelope is the RajaOngkir response wrapper shared by every endpoint.
type envelope[T any] struct {
	RajaOngkir struct {
		Status struct {
			Code        int    `json:"code"`
			Description string `json:"description"`
		} `json:"status"`
		Results T `json:"results"`
	} `json:"rajaongkir"`
}

type costResult struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Costs []struct {
		Service     string `json:"service"`
		Description string `json:"description"`
		Cost        []struct {
			Value int64  `json:"value"`
			ETD   string `json:"etd"`
			Note  string `json:"note"`
		} `json:"cost"`
	} `json:"costs"`
}
