package roster

import (
	"testing"

	sonic "github.com/bytedance/sonic"
)

func TestJerseyNumber_AcceptsBothLegacyShapes(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want JerseyNumber
	}{
		{"string", `{"id":"p1","name":"Aino","jerseyNumber":"7"}`, "7"},
		{"number", `{"id":"p1","name":"Aino","jerseyNumber":7}`, "7"},
		{"large number", `{"id":"p1","name":"Aino","jerseyNumber":99}`, "99"},
		{"null", `{"id":"p1","name":"Aino","jerseyNumber":null}`, ""},
		{"absent", `{"id":"p1","name":"Aino"}`, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var p Player
			if err := sonic.UnmarshalString(tc.in, &p); err != nil {
				t.Fatal(err)
			}
			if p.JerseyNumber != tc.want {
				t.Errorf("jersey = %q, want %q", p.JerseyNumber, tc.want)
			}
		})
	}
}

func TestJerseyNumber_RejectsOtherShapes(t *testing.T) {
	var p Player
	err := sonic.UnmarshalString(`{"id":"p1","name":"Aino","jerseyNumber":["7"]}`, &p)
	if err == nil {
		t.Fatal("array jersey number must fail to parse")
	}
}

func TestJerseyNumber_MarshalsAsString(t *testing.T) {
	out, err := sonic.MarshalString(Player{ID: "p1", Name: "Aino", JerseyNumber: "7"})
	if err != nil {
		t.Fatal(err)
	}
	var back Player
	if err := sonic.UnmarshalString(out, &back); err != nil {
		t.Fatal(err)
	}
	if back.JerseyNumber != "7" {
		t.Errorf("round trip jersey = %q", back.JerseyNumber)
	}
}
