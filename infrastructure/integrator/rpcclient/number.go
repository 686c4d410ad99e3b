package rpcclient

import (
	"bytes"
	"strconv"
)

// FlexInt aceita números JSON, strings numéricas e null, pois os bancos de
// plataforma serializam bigint como string dependendo do driver.
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	data = bytes.Trim(data, `"`)
	if len(data) == 0 {
		*f = 0
		return nil
	}

	parsed, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		*f = 0
		return nil
	}

	*f = FlexInt(int64(parsed))

	return nil
}

func (f FlexInt) Int() int {
	return int(f)
}

// FlexFloat segue a mesma política de coerção do FlexInt para valores
// monetários e percentuais.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	data = bytes.Trim(data, `"`)
	if len(data) == 0 {
		*f = 0
		return nil
	}

	parsed, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		*f = 0
		return nil
	}

	*f = FlexFloat(parsed)

	return nil
}

func (f FlexFloat) Float() float64 {
	return float64(f)
}
