package models

import "testing"

func TestDefaultRanges(t *testing.T) {
	defaults := DefaultRanges()

	if defaults.PH.Min != 6.0 || defaults.PH.Max != 7.5 {
		t.Fatalf("unexpected pH defaults: %+v", defaults.PH)
	}
	if defaults.Humidity.Min != 60 || defaults.Humidity.Max != 100 {
		t.Fatalf("unexpected humidity defaults: %+v", defaults.Humidity)
	}
	if defaults.Light.Min != 1000 || defaults.Light.Max != 10000 {
		t.Fatalf("unexpected light defaults: %+v", defaults.Light)
	}
	if err := defaults.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestRangesValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Ranges)
		wantErr bool
	}{
		{name: "defaults", mutate: func(r *Ranges) {}, wantErr: false},
		{name: "ph inverted", mutate: func(r *Ranges) { r.PH = RangeConfig{Min: 8, Max: 6} }, wantErr: true},
		{name: "humidity inverted", mutate: func(r *Ranges) { r.Humidity = RangeConfig{Min: 90, Max: 40} }, wantErr: true},
		{name: "humidity above 100", mutate: func(r *Ranges) { r.Humidity.Max = 120 }, wantErr: true},
		{name: "humidity below zero", mutate: func(r *Ranges) { r.Humidity.Min = -5 }, wantErr: true},
		{name: "negative light", mutate: func(r *Ranges) { r.Light.Min = -100 }, wantErr: true},
		{name: "light inverted", mutate: func(r *Ranges) { r.Light = RangeConfig{Min: 5000, Max: 500} }, wantErr: true},
		{name: "custom valid", mutate: func(r *Ranges) {
			r.PH = RangeConfig{Min: 5.5, Max: 7.0}
			r.Humidity = RangeConfig{Min: 40, Max: 80}
			r.Light = RangeConfig{Min: 500, Max: 20000}
		}, wantErr: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ranges := DefaultRanges()
			tc.mutate(&ranges)

			err := ranges.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestValidWindow(t *testing.T) {
	for _, hours := range WindowOptions {
		if !ValidWindow(hours) {
			t.Fatalf("expected %d to be a valid window", hours)
		}
	}
	for _, hours := range []int{0, -1, 2, 25, 100} {
		if ValidWindow(hours) {
			t.Fatalf("expected %d to be rejected", hours)
		}
	}
	if !ValidWindow(DefaultWindowHours) {
		t.Fatal("default window must be selectable")
	}
}
