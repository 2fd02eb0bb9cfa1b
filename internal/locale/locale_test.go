package locale

import "testing"

func TestEur(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{name: "whole euros", amount: 15, want: "15,00 €"},
		{name: "cents", amount: 29.5, want: "29,50 €"},
		{name: "rounding", amount: 7.005, want: "7,01 €"},
		{name: "zero", amount: 0, want: "0,00 €"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Eur(tt.amount); got != tt.want {
				t.Errorf("Eur(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestShortDate(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		want    string
		wantErr bool
	}{
		{name: "rfc1123z", date: "Mon, 15 Apr 2024 09:30:00 +0200", want: "15.04.2024"},
		{name: "rfc1123", date: "Mon, 15 Apr 2024 09:30:00 CEST", want: "15.04.2024"},
		{name: "single digit day", date: "Tue, 2 Jan 2024 09:30:00 +0100", want: "02.01.2024"},
		{name: "already short", date: "15.04.2024", want: "15.04.2024"},
		{name: "iso date", date: "2024-04-15", want: "15.04.2024"},
		{name: "garbage", date: "yesterday-ish", wantErr: true},
		{name: "empty", date: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ShortDate(tt.date)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ShortDate(%q) expected error, got %q", tt.date, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ShortDate(%q) error = %v", tt.date, err)
			}
			if got != tt.want {
				t.Errorf("ShortDate(%q) = %q, want %q", tt.date, got, tt.want)
			}
		})
	}
}

func TestYear(t *testing.T) {
	got, err := Year("15.04.2024")
	if err != nil {
		t.Fatalf("Year() error = %v", err)
	}
	if got != 2024 {
		t.Errorf("Year() = %d, want 2024", got)
	}

	if _, err := Year("nope"); err == nil {
		t.Error("expected error for unparsable date")
	}
}

func TestIsCountry(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{line: "Deutschland", want: true},
		{line: "Österreich", want: true},
		{line: "01234 Berlin", want: false},
		{line: "Musterweg 1", want: false},
		{line: "", want: false},
	}
	for _, tt := range tests {
		if got := IsCountry(tt.line); got != tt.want {
			t.Errorf("IsCountry(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestCountryIndex(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  int
	}{
		{
			name:  "country last",
			lines: []string{"Max Mustermann", "Musterweg 1", "01234 Berlin", "Deutschland"},
			want:  3,
		},
		{
			name:  "country mid-block",
			lines: []string{"Max Mustermann", "Musterweg 1", "1010 Wien", "Österreich", "+431234567"},
			want:  3,
		},
		{
			name:  "no country",
			lines: []string{"Max Mustermann", "Musterweg 1", "01234 Berlin"},
			want:  -1,
		},
		{
			name:  "empty",
			lines: nil,
			want:  -1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountryIndex(tt.lines); got != tt.want {
				t.Errorf("CountryIndex() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTranslateCountry(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{in: "Deutschland", want: "Germany", wantOK: true},
		{in: "Frankreich", want: "France", wantOK: true},
		{in: "Vereinigtes Königreich", want: "United Kingdom", wantOK: true},
		{in: "Narnia", want: "Narnia", wantOK: false}, // unknown names pass through
	}
	for _, tt := range tests {
		got, ok := TranslateCountry(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("TranslateCountry(%q) = %q, %v, want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
