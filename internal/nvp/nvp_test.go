package nvp

import (
	"testing"
)

func TestEncode_PreservesInsertionOrder(t *testing.T) {
	v := New()
	v.Set("METHOD", "SetExpressCheckout")
	v.Set("AMT", "10.00")
	v.Set("CURRENCYCODE", "USD")

	want := "METHOD=SetExpressCheckout&AMT=10.00&CURRENCYCODE=USD"
	if got := v.Encode(); got != want {
		t.Fatalf("Encode got %s want %s", got, want)
	}
}

func TestSet_OverwriteKeepsPosition(t *testing.T) {
	v := New()
	v.Set("a", "1")
	v.Set("b", "2")
	v.Set("a", "3")

	if got := v.Encode(); got != "a=3&b=2" {
		t.Fatalf("Encode got %s want a=3&b=2", got)
	}
	if v.Len() != 2 {
		t.Fatalf("Len got %d want 2", v.Len())
	}
}

func TestEncode_EscapesReservedCharacters(t *testing.T) {
	v := New()
	v.Set("DESC", "coffee & cake")
	v.Set("RETURNURL", "https://shop.example/done?id=1")

	want := "DESC=coffee+%26+cake&RETURNURL=https%3A%2F%2Fshop.example%2Fdone%3Fid%3D1"
	if got := v.Encode(); got != want {
		t.Fatalf("Encode got %s want %s", got, want)
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want map[string]string
		ok   bool
	}{
		{"simple", "a=1&b=2", map[string]string{"a": "1", "b": "2"}, true},
		{"duplicate last wins", "a=1&a=2", map[string]string{"a": "2"}, true},
		{"escaped", "ACK=Success&L_LONGMESSAGE0=Invalid+token", map[string]string{"ACK": "Success", "L_LONGMESSAGE0": "Invalid token"}, true},
		{"empty value", "a=", map[string]string{"a": ""}, true},
		{"bad escape", "a=%zz", nil, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Parse(c.in)
			if (err == nil) != c.ok {
				t.Fatalf("Parse(%q) ok=%v got err=%v", c.in, c.ok, err)
			}
			if !c.ok {
				return
			}
			if len(got) != len(c.want) {
				t.Fatalf("Parse(%q) got %v want %v", c.in, got, c.want)
			}
			for k, w := range c.want {
				if got[k] != w {
					t.Fatalf("Parse(%q)[%s] got %q want %q", c.in, k, got[k], w)
				}
			}
		})
	}
}
