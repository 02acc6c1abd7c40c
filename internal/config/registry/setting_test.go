package registry

import (
	"testing"
)

func TestSettingType_String(t *testing.T) {
	tests := []struct {
		typ      SettingType
		expected string
	}{
		{TypeNumeric, "numeric"},
		{TypeInteger, "integer"},
		{TypeString, "string"},
		{SettingType(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.expected {
			t.Errorf("SettingType(%d).String() = %q, want %q", tt.typ, got, tt.expected)
		}
	}
}

func TestSetting_Parse(t *testing.T) {
	gain := Setting{Name: "synth.gain", Type: TypeNumeric, Minimum: MinValue(0), Maximum: MaxValue(10)}
	poly := Setting{Name: "synth.polyphony", Type: TypeInteger, Minimum: MinValue(1)}
	format := Setting{Name: "audio.sample-format", Type: TypeString, Options: []string{"16bits", "float"}}

	tests := []struct {
		name    string
		setting Setting
		raw     string
		want    any
		wantErr bool
	}{
		{"numeric", gain, "0.5", 0.5, false},
		{"numeric integer text", gain, "2", 2.0, false},
		{"numeric garbage", gain, "loud", nil, true},
		{"numeric over max", gain, "11", nil, true},
		{"integer", poly, " 64 ", 64, false},
		{"integer fraction", poly, "6.5", nil, true},
		{"integer under min", poly, "0", nil, true},
		{"string option", format, "float", "float", false},
		{"string not an option", format, "24bits", nil, true},
		{"free string", Setting{Type: TypeString}, "hw:0", "hw:0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.setting.Parse(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Parse(%q) = %v, want error", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v (%T), want %v (%T)", tt.raw, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestSetting_Validate_Type(t *testing.T) {
	s := Setting{Type: TypeInteger}
	if err := s.Validate(3); err != nil {
		t.Errorf("int should be valid: %v", err)
	}
	if err := s.Validate(3.0); err == nil {
		t.Error("float64 should be invalid for an integer setting")
	}

	n := Setting{Type: TypeNumeric}
	if err := n.Validate(3); err == nil {
		t.Error("int should be invalid for a numeric setting")
	}
}

func TestMinMaxValue(t *testing.T) {
	if *MinValue(1.5) != 1.5 {
		t.Error("MinValue failed")
	}
	if *MaxValue(100) != 100 {
		t.Error("MaxValue failed")
	}
}
