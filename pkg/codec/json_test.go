package codec

import "testing"

func TestRoundTrip(t *testing.T) {
	type payload struct {
		Topic string `json:"topic"`
		Total int    `json:"total"`
	}

	data, err := Marshal(payload{Topic: "basket:changed", Total: 750})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got payload
	if err := Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Topic != "basket:changed" || got.Total != 750 {
		t.Errorf("got %+v", got)
	}
}

func TestNilAndEmptyInputs(t *testing.T) {
	if _, err := Marshal(nil); err == nil {
		t.Error("Marshal(nil) must fail")
	}
	if err := Unmarshal(nil, &struct{}{}); err == nil {
		t.Error("Unmarshal of empty data must fail")
	}
	if err := Unmarshal([]byte("{}"), nil); err == nil {
		t.Error("Unmarshal into nil must fail")
	}
}

func TestNullPriceDecodes(t *testing.T) {
	var v struct {
		Price *int `json:"price"`
	}
	if err := Unmarshal([]byte(`{"price":null}`), &v); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if v.Price != nil {
		t.Error("null must decode to a nil price")
	}
}
