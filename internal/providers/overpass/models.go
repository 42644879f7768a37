package overpass

// InterpreterAPIResponse models an Overpass QL JSON result.
type InterpreterAPIResponse struct {
	Version   float64   `json:"version"`
	Generator string    `json:"generator"`
	Elements  []Element `json:"elements"`
}

type Element struct {
	Type string            `json:"type"`
	Id   int64             `json:"id"`
	Lat  float64           `json:"lat"`
	Lon  float64           `json:"lon"`
	Tags map[string]string `json:"tags"`
}
