package models

import (
	"reflect"
	"testing"
)

func TestValidatePermission(t *testing.T) {
	tests := []struct {
		perm    string
		wantErr bool
	}{
		{"I", false},
		{"X", false},
		{"T1", false},
		{"B3", false},
		{"T1,B2", false},
		{"T1, B2", false},
		{"I,T1,B1", false},
		{"", true},
		{" , ", true},
		{"T4", true},
		{"B0", true},
		{"Z9", true},
		{"diizinkan", true},
		{"X,T1", true},
		{"T1,X", true},
	}
	for _, tt := range tests {
		t.Run(tt.perm, func(t *testing.T) {
			err := ValidatePermission(tt.perm)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePermission(%q) error = %v, wantErr %v", tt.perm, err, tt.wantErr)
			}
		})
	}
}

func TestSplitPermission(t *testing.T) {
	tests := []struct {
		perm string
		want []string
	}{
		{"I", []string{"I"}},
		{"T1,B2", []string{"T1", "B2"}},
		{" T1 , B2 ", []string{"T1", "B2"}},
		{",,", nil},
		{"", nil},
	}
	for _, tt := range tests {
		if got := SplitPermission(tt.perm); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitPermission(%q) = %v, want %v", tt.perm, got, tt.want)
		}
	}
}

func TestCanonicalPermission(t *testing.T) {
	tests := []struct {
		perm string
		want string
	}{
		{"I", "I"},
		{"T1,B2", "T1,B2"},
		{"T1, B2", "T1,B2"},
		{" T1 ,B2 ", "T1,B2"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CanonicalPermission(tt.perm); got != tt.want {
			t.Errorf("CanonicalPermission(%q) = %q, want %q", tt.perm, got, tt.want)
		}
	}
}

func TestRegulationDescriptionsIsolated(t *testing.T) {
	first := RegulationDescriptions()
	first[CodeI] = "tampered"
	if RegulationDescriptions()[CodeI] == "tampered" {
		t.Error("description table shares state between calls")
	}
	if len(RegulationDescriptions()) != 8 {
		t.Errorf("description table has %d entries, want 8", len(RegulationDescriptions()))
	}
}
