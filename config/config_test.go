// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import "testing"

func TestConfig_deriveOutput(t *testing.T) {
	tests := []struct {
		name     string
		consensi string
		tag      string
		want     string
	}{
		{
			"next to the consensi input",
			"families/consensi.fa",
			"curated",
			"families/consensi.curated.fa",
		},
		{
			"other extension",
			"consensi.fasta",
			"excluded",
			"consensi.excluded.fa",
		},
		{
			"no consensi yet",
			"",
			"curated",
			"curated.fa",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := deriveOutput(tt.consensi, tt.tag); got != tt.want {
				t.Errorf("deriveOutput() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfig_Header(t *testing.T) {
	c := &Config{
		Consensi: "consensi.fa",
		Keep:     "consensi.curated.fa",
		Excluded: "consensi.excluded.fa",
		Verbose:  true,
	}

	h := c.Header()
	if h["consensi"] != "consensi.fa" {
		t.Errorf("header consensi = %q", h["consensi"])
	}
	if h["verbose"] != "true" {
		t.Errorf("header verbose = %q", h["verbose"])
	}
	if _, ok := h["self"]; !ok {
		t.Error("header must echo empty evidence paths too")
	}
}

func TestConfig_Validate(t *testing.T) {
	if err := (&Config{}).Validate(); err == nil {
		t.Error("Validate must reject a missing consensi path")
	}
	if err := (&Config{Consensi: "c.fa"}).Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}
