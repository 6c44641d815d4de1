package backend

import "encoding/json"

// Collection normalizes the three list response shapes the backend
// uses: {"results": [...]}, {"data": [...]}, and a bare JSON array.
type Collection[T any] struct {
	Items []T
	Count int
}

func (c *Collection[T]) UnmarshalJSON(raw []byte) error {
	var bare []T
	if err := json.Unmarshal(raw, &bare); err == nil {
		c.Items = bare
		c.Count = len(bare)
		return nil
	}

	var envelope struct {
		Results []T  `json:"results"`
		Data    []T  `json:"data"`
		Count   *int `json:"count"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return err
	}
	switch {
	case envelope.Results != nil:
		c.Items = envelope.Results
	case envelope.Data != nil:
		c.Items = envelope.Data
	default:
		c.Items = []T{}
	}
	if envelope.Count != nil {
		c.Count = *envelope.Count
	} else {
		c.Count = len(c.Items)
	}
	return nil
}
