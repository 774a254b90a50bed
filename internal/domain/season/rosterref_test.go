package season

import (
	"reflect"
	"testing"

	sonic "github.com/bytedance/sonic"
)

func TestRosterRef_AcceptsBothLegacyShapes(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"scalar", `{"id":"s1","name":"Spring","defaultRosterId":"p1"}`, []string{"p1"}},
		{"array", `{"id":"s1","name":"Spring","defaultRosterId":["p1","p2"]}`, []string{"p1", "p2"}},
		{"null", `{"id":"s1","name":"Spring","defaultRosterId":null}`, nil},
		{"absent", `{"id":"s1","name":"Spring"}`, nil},
		{"empty string", `{"id":"s1","name":"Spring","defaultRosterId":""}`, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var s Season
			if err := sonic.UnmarshalString(tc.in, &s); err != nil {
				t.Fatal(err)
			}
			if got := s.DefaultRosterID.IDs(); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ids = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRosterRef_RejectsOtherShapes(t *testing.T) {
	var s Season
	err := sonic.UnmarshalString(`{"id":"s1","name":"Spring","defaultRosterId":42}`, &s)
	if err == nil {
		t.Fatal("numeric roster reference must fail to parse")
	}
}

func TestRosterRef_MarshalRoundTrip(t *testing.T) {
	out, err := sonic.MarshalString(Season{ID: "s1", Name: "Spring", DefaultRosterID: NewRosterRef("p1", "p2")})
	if err != nil {
		t.Fatal(err)
	}
	var back Season
	if err := sonic.UnmarshalString(out, &back); err != nil {
		t.Fatal(err)
	}
	if got := back.DefaultRosterID.IDs(); !reflect.DeepEqual(got, []string{"p1", "p2"}) {
		t.Errorf("round trip ids = %v", got)
	}
}
