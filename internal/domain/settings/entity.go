package settings

// Setting mirrors one row of the configuracion table. Keys carry payroll
// values such as valor_hora_ordinaria and valor_hora_extra_diurna.
type Setting struct {
	Key         string  `json:"key"`
	Value       string  `json:"value"`
	Description *string `json:"description,omitempty"`
	DataType    string  `json:"data_type"`
}
